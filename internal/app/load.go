package app

import (
	"fmt"
	"io"
	"os"

	fsutil "github.com/kk-code-lab/fewer/internal/fs"
	"github.com/kk-code-lab/fewer/internal/index"
	"github.com/kk-code-lab/fewer/internal/logger"
	statepkg "github.com/kk-code-lab/fewer/internal/state"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

// Options describe one pager session.
type Options struct {
	Path           string
	Filters        []string
	DisplayFilters []string
	TabWidth       int
	LineNumbers    bool
}

// OpenIndex indexes path. Plain files are mapped; files starting with a
// byte order mark and standard input are read into memory and converted
// to UTF-8 first.
func OpenIndex(path string, stdin io.Reader) (*index.Index, fsutil.Encoding, error) {
	if path == "" || path == StdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fsutil.EncodingPlain, &index.OpenError{Path: "standard input", Err: err}
		}
		return indexConverted(data)
	}

	head, err := fsutil.ReadHead(path, fsutil.SampleSize)
	if err != nil {
		return nil, fsutil.EncodingPlain, &index.OpenError{Path: path, Err: err}
	}
	if fsutil.DetectEncoding(head) == fsutil.EncodingPlain {
		idx, err := index.Open(path)
		return idx, fsutil.EncodingPlain, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fsutil.EncodingPlain, &index.OpenError{Path: path, Err: err}
	}
	return indexConverted(data)
}

func indexConverted(data []byte) (*index.Index, fsutil.Encoding, error) {
	converted, enc, err := fsutil.ToUTF8(data)
	if err != nil {
		logger.Warn("transcoding failed, showing raw bytes", "encoding", enc.String(), "error", err)
		return index.New(data), fsutil.EncodingPlain, nil
	}
	return index.New(converted), enc, nil
}

// NewSession opens the file named by opts and applies the preset filters.
// A preset filter that does not parse is a startup error.
func NewSession(opts Options, stdin io.Reader) (*statepkg.Session, error) {
	idx, enc, err := OpenIndex(opts.Path, stdin)
	if err != nil {
		return nil, err
	}

	name := opts.Path
	if name == "" || name == StdinName {
		name = "(stdin)"
	}
	session := statepkg.NewSession(name, idx)
	if opts.TabWidth > 0 {
		session.TabWidth = opts.TabWidth
	}
	session.ShowLineNumbers = opts.LineNumbers

	reducer := statepkg.NewStateReducer()
	for _, expr := range opts.Filters {
		if _, err := reducer.Reduce(session, statepkg.AddFilterAction{Expr: expr}); err != nil {
			_ = idx.Close()
			return nil, fmt.Errorf("--regex %s: %w", expr, err)
		}
	}
	for _, expr := range opts.DisplayFilters {
		if _, err := reducer.Reduce(session, statepkg.AddDisplayFilterAction{Expr: expr}); err != nil {
			_ = idx.Close()
			return nil, fmt.Errorf("--df %s: %w", expr, err)
		}
	}

	session.Status = ""
	if enc != fsutil.EncodingPlain {
		session.Status = "decoded " + enc.String()
	}
	if !fsutil.IsText(opts.Path, idx.Head(fsutil.SampleSize)) {
		session.Status = "binary file"
		logger.Warn("file does not look like text", "path", opts.Path)
	}
	logger.Info("session opened", "path", name, "encoding", enc.String(), "size", idx.Size(), "filters", session.Chain.Len(), "visible", session.Window.Len())
	return session, nil
}

// Dump writes the visible lines of session to out. It is used instead of
// the interactive UI when standard output is not a terminal.
func Dump(out io.Writer, session *statepkg.Session) error {
	n, err := session.Window.WriteTo(out, session.Index)
	logger.Debug("dumped visible lines", "lines", n)
	return err
}
