//go:build !windows

package window

const lineTerminator = "\n"
