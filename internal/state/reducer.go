package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kk-code-lab/fewer/internal/filter"
	"github.com/kk-code-lab/fewer/internal/logger"
)

// StateReducer handles all state mutations
type StateReducer struct{}

func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies an action to the session. Errors that the user should see
// are also left in Status and LastError.
func (r *StateReducer) Reduce(s *Session, action Action) (*Session, error) {
	switch a := action.(type) {

	// ===== SCROLLING =====

	case ScrollUpAction:
		s.Window.ScrollUp()
		return s, nil

	case ScrollDownAction:
		s.Frame()
		if !s.Window.IsLastDisplayed() {
			s.Window.ScrollDown()
		}
		return s, nil

	case ScrollPageUpAction:
		for i := 0; i < s.ContentRows() && !s.Window.IsFirstDisplayed(); i++ {
			s.Window.ScrollUp()
		}
		return s, nil

	case ScrollPageDownAction:
		s.Frame()
		if !s.Window.IsLastDisplayed() {
			s.Window.PageDown()
		}
		return s, nil

	case ScrollToStartAction:
		s.Window.TopReset()
		return s, nil

	case ScrollToEndAction:
		s.Window.GotoApprox(s.Window.LastLineNumber())
		for i := 1; i < s.ContentRows() && !s.Window.IsFirstDisplayed(); i++ {
			s.Window.ScrollUp()
		}
		return s, nil

	// ===== FILTERS =====

	case AddFilterAction:
		return s, r.addFilter(s, a.Expr)

	case AddDisplayFilterAction:
		return s, r.addDisplayFilter(s, a.Expr)

	case PopFilterAction:
		if !s.Chain.Pop() {
			s.setStatus("no filter to remove")
			return s, nil
		}
		s.Refilter()
		s.setStatus(fmt.Sprintf("%d lines visible", s.Window.Len()))
		logger.Debug("filter removed", "filters", s.Chain.Len())
		return s, nil

	case ClearFiltersAction:
		s.Chain.Clear()
		s.Display = nil
		s.Refilter()
		s.setStatus("filters cleared")
		logger.Debug("filters cleared")
		return s, nil

	// ===== POSITION =====

	case GotoLineAction:
		if s.Window.GotoExact(a.Line) {
			s.setStatus("")
			return s, nil
		}
		s.Window.GotoApprox(a.Line)
		s.setStatus(fmt.Sprintf("line %d is filtered out", a.Line))
		return s, nil

	case GotoPercentAction:
		s.Window.GotoPercent(a.Percent)
		s.setStatus("")
		return s, nil

	case SaveAction:
		n, err := s.Window.Save(a.Path, s.Index)
		if err != nil {
			logger.Error("save failed", "path", a.Path, "error", err)
			s.setError(err)
			return s, err
		}
		logger.Info("saved visible lines", "path", a.Path, "lines", n)
		s.setStatus(fmt.Sprintf("saved %d lines to %s", n, a.Path))
		return s, nil

	// ===== PROMPT =====

	case PromptStartAction:
		s.Prompt = Prompt{Kind: a.Kind}
		return s, nil

	case PromptCharAction:
		if s.Prompt.Active() {
			s.Prompt.Input = append(s.Prompt.Input, a.Char)
		}
		return s, nil

	case PromptBackspaceAction:
		if !s.Prompt.Active() {
			return s, nil
		}
		if len(s.Prompt.Input) == 0 {
			s.Prompt = Prompt{}
			return s, nil
		}
		s.Prompt.Input = s.Prompt.Input[:len(s.Prompt.Input)-1]
		return s, nil

	case PromptCancelAction:
		s.Prompt = Prompt{}
		return s, nil

	case PromptSubmitAction:
		p := s.Prompt
		s.Prompt = Prompt{}
		next, err := promptAction(p)
		if err != nil {
			s.setError(err)
			return s, err
		}
		if next == nil {
			return s, nil
		}
		return r.Reduce(s, next)

	// ===== VIEW =====

	case ResizeAction:
		s.ScreenWidth = a.Width
		s.ScreenHeight = a.Height
		return s, nil

	case ToggleLineNumbersAction:
		s.ShowLineNumbers = !s.ShowLineNumbers
		return s, nil

	case HelpToggleAction:
		s.HelpVisible = !s.HelpVisible
		return s, nil

	case HelpHideAction:
		s.HelpVisible = false
		return s, nil
	}

	return s, nil
}

func (r *StateReducer) addFilter(s *Session, expr string) error {
	f, err := s.Chain.AddString(expr)
	if err != nil {
		logger.Warn("filter rejected", "expr", expr, "error", err)
		s.setError(err)
		return err
	}
	s.Refilter()
	logger.Debug("filter added", "filter", f.String(), "matches", f.Evaluate().Len(), "visible", s.Window.Len())
	s.setStatus(fmt.Sprintf("%s: %d lines visible", f, s.Window.Len()))
	return nil
}

func (r *StateReducer) addDisplayFilter(s *Session, expr string) error {
	e, err := filter.Parse(expr)
	if err == nil {
		var d *filter.Display
		if d, err = filter.NewDisplay(e); err == nil {
			s.Display = append(s.Display, d)
			logger.Debug("display filter added", "filter", d.String(), "kind", e.Kind.String())
			s.setStatus("display filter " + d.String())
			return nil
		}
	}
	logger.Warn("display filter rejected", "expr", expr, "error", err)
	s.setError(err)
	return err
}

var errEmptyNumber = errors.New("expected a number")

func promptAction(p Prompt) (Action, error) {
	input := strings.TrimSpace(string(p.Input))
	switch p.Kind {
	case PromptFilter:
		if input == "" {
			return nil, nil
		}
		return AddFilterAction{Expr: input}, nil
	case PromptDisplayFilter:
		if input == "" {
			return nil, nil
		}
		return AddDisplayFilterAction{Expr: input}, nil
	case PromptGotoLine:
		n, err := parseNumber(input)
		if err != nil {
			return nil, err
		}
		return GotoLineAction{Line: n}, nil
	case PromptPercent:
		n, err := parseNumber(strings.TrimSuffix(input, "%"))
		if err != nil {
			return nil, err
		}
		return GotoPercentAction{Percent: n}, nil
	case PromptSave:
		if input == "" {
			return nil, nil
		}
		return SaveAction{Path: input}, nil
	}
	return nil, nil
}

func parseNumber(input string) (int, error) {
	if input == "" {
		return 0, errEmptyNumber
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", errEmptyNumber, input)
	}
	return n, nil
}
