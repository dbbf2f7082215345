package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/fewer/internal/app"
	"github.com/kk-code-lab/fewer/internal/config"
	"github.com/kk-code-lab/fewer/internal/index"
	"github.com/kk-code-lab/fewer/internal/logger"
	renderui "github.com/kk-code-lab/fewer/internal/ui/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Exit statuses from sysexits.h.
const (
	exitFailure = 1
	exitUsage   = 64
	exitNoInput = 66
)

const filterSyntax = `Filter expressions:
  PATTERN                 show lines matching PATTERN (same as /PATTERN/)
  !PATTERN                hide lines matching PATTERN (same as /PATTERN/!)
  /PATTERN/FLAGS          FLAGS: i ignores case, ! hides matches
  |PATTERN|ATTRS          display filter: draw matching lines with ATTRS
  |PATTERN|ATTRS,FG on BG   ATTRS: normal standout underline reverse blink
                          dim bold italic; colours: black red green yellow
                          blue magenta cyan white
  /PATTERN/REPLACEMENT/   display filter: rewrite shown text ($1 for groups)

Slashes inside PATTERN and REPLACEMENT are written as \/.
Several --regex filters are combined: a line must pass all of them.
When standard output is not a terminal the visible lines are printed.`

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type options struct {
	regex       []string
	display     []string
	tabWidth    int
	lineNumbers bool
	debug       bool
	configPath  string
}

func newRootCommand(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "fewer [file]",
		Short:         "Pager that filters lines of large files with regular expressions",
		Long:          "fewer pages through a file, or standard input, showing only the lines\nthat pass a chain of filters.\n\n" + filterSyntax,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := apppkg.StdinName
			if len(args) == 1 {
				path = args[0]
			} else if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return &usageError{err: errors.New("missing file operand")}
			}
			return run(cmd, opts, path, stdin, stdout)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.regex, "regex", "e", nil, "selector filter expression (repeatable)")
	flags.StringArrayVar(&opts.display, "df", nil, "display filter expression (repeatable)")
	flags.IntVar(&opts.tabWidth, "tabwidth", 0, "columns per tab stop (default from config, else 8)")
	flags.BoolVarP(&opts.lineNumbers, "line-numbers", "N", false, "show line numbers")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")
	flags.StringVar(&opts.configPath, "config", "", "path to config.toml")
	return cmd
}

func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if opts.configPath != "" {
		if cfg, err = config.LoadFrom(opts.configPath); err != nil {
			return cfg, fmt.Errorf("config %s: %w", opts.configPath, err)
		}
	} else if cfg, err = config.Load(); err != nil {
		// A broken default config is reported but does not stop the pager.
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
	}

	flags := cmd.Flags()
	if flags.Changed("tabwidth") {
		if opts.tabWidth <= 0 {
			return cfg, &usageError{err: fmt.Errorf("--tabwidth must be positive, got %d", opts.tabWidth)}
		}
		cfg.TabWidth = opts.tabWidth
	}
	if flags.Changed("line-numbers") {
		cfg.LineNumbers = opts.lineNumbers
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	cfg.Filters = append(cfg.Filters, opts.regex...)
	cfg.DisplayFilters = append(cfg.DisplayFilters, opts.display...)
	return cfg, nil
}

func run(cmd *cobra.Command, opts options, path string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	if err := logger.Init("", cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}
	defer logger.Close()

	session, err := apppkg.NewSession(apppkg.Options{
		Path:           path,
		Filters:        cfg.Filters,
		DisplayFilters: cfg.DisplayFilters,
		TabWidth:       cfg.TabWidth,
		LineNumbers:    cfg.LineNumbers,
	}, stdin)
	if err != nil {
		logger.Error("startup failed", "path", path, "error", err)
		return err
	}

	if f, ok := stdout.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		defer func() {
			_ = session.Index.Close()
		}()
		return apppkg.Dump(stdout, session)
	}

	app, err := apppkg.NewApplication(session, renderui.ThemeFromConfig(cfg.Theme))
	if err != nil {
		_ = session.Index.Close()
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return nil
}

func exitCode(err error) int {
	var (
		openErr *index.OpenError
		usage   *usageError
	)
	switch {
	case errors.As(err, &openErr):
		return exitNoInput
	case errors.As(err, &usage):
		return exitUsage
	default:
		return exitFailure
	}
}

func main() {
	// UTF-8 fallback keeps wide and accented characters intact on
	// terminals that report a legacy locale.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	cmd := newRootCommand(os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fewer:", err)
		os.Exit(exitCode(err))
	}
}
