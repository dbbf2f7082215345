package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/fewer/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.Session // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.Session) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false
// when the event asks the application to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	if ih.state != nil && ih.state.HelpVisible {
		switch {
		case ev.Key() == tcell.KeyEscape:
			ih.actionChan <- statepkg.HelpHideAction{}
		case ev.Key() == tcell.KeyRune && (ev.Rune() == '?' || ev.Rune() == 'q' || ev.Rune() == 'h'):
			ih.actionChan <- statepkg.HelpHideAction{}
		}
		return true
	}

	if ih.state != nil && ih.state.Prompt.Active() {
		return ih.processPromptKey(ev)
	}

	switch ev.Key() {
	case tcell.KeyUp:
		ih.actionChan <- statepkg.ScrollUpAction{}
	case tcell.KeyDown, tcell.KeyEnter:
		ih.actionChan <- statepkg.ScrollDownAction{}
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
	case tcell.KeyHome:
		ih.actionChan <- statepkg.ScrollToStartAction{}
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.ScrollToEndAction{}
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
	case tcell.KeyRune:
		return ih.processRune(ev.Rune())
	}
	return true
}

func (ih *InputHandler) processRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'j':
		ih.actionChan <- statepkg.ScrollDownAction{}
	case 'k':
		ih.actionChan <- statepkg.ScrollUpAction{}
	case ' ', 'f':
		ih.actionChan <- statepkg.ScrollPageDownAction{}
	case 'b':
		ih.actionChan <- statepkg.ScrollPageUpAction{}
	case 'g', '<':
		ih.actionChan <- statepkg.ScrollToStartAction{}
	case 'G', '>':
		ih.actionChan <- statepkg.ScrollToEndAction{}
	case '/':
		ih.actionChan <- statepkg.PromptStartAction{Kind: statepkg.PromptFilter}
	case '&':
		ih.actionChan <- statepkg.PromptStartAction{Kind: statepkg.PromptDisplayFilter}
	case ':':
		ih.actionChan <- statepkg.PromptStartAction{Kind: statepkg.PromptGotoLine}
	case '%':
		ih.actionChan <- statepkg.PromptStartAction{Kind: statepkg.PromptPercent}
	case 's':
		ih.actionChan <- statepkg.PromptStartAction{Kind: statepkg.PromptSave}
	case '-':
		ih.actionChan <- statepkg.PopFilterAction{}
	case '=':
		ih.actionChan <- statepkg.ClearFiltersAction{}
	case '#':
		ih.actionChan <- statepkg.ToggleLineNumbersAction{}
	case '?', 'h':
		ih.actionChan <- statepkg.HelpToggleAction{}
	}
	return true
}

func (ih *InputHandler) processPromptKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.PromptCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.PromptSubmitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.PromptBackspaceAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.PromptCharAction{Char: ev.Rune()}
	}
	return true
}
