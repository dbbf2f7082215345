package filter

import "fmt"

// SyntaxError reports a malformed filter expression and the structural
// rule it violates.
type SyntaxError struct {
	Expr string
	Rule string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid filter %q: %s: %v", e.Expr, e.Rule, e.Err)
	}
	return fmt.Sprintf("invalid filter %q: %s", e.Expr, e.Rule)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// FlagError reports an unknown flag character.
type FlagError struct {
	Char rune
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("invalid filter flags character: %c", e.Char)
}

func validateFlags(flags string) error {
	for _, c := range flags {
		switch c {
		case 'i', '!':
		default:
			return &FlagError{Char: c}
		}
	}
	return nil
}
