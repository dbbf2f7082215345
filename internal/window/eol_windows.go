package window

const lineTerminator = "\r\n"
