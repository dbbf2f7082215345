package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== SCROLL ACTIONS =====

type ScrollUpAction struct{}
type ScrollDownAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}

// ===== FILTER ACTIONS =====

// AddFilterAction adds a selector filter expression to the chain.
type AddFilterAction struct {
	Expr string
}

// AddDisplayFilterAction adds an attribute or substitution filter.
type AddDisplayFilterAction struct {
	Expr string
}

type PopFilterAction struct{}
type ClearFiltersAction struct{}

// ===== POSITION ACTIONS =====

type GotoLineAction struct {
	Line int
}

type GotoPercentAction struct {
	Percent int
}

type SaveAction struct {
	Path string
}

// ===== PROMPT ACTIONS =====

type PromptStartAction struct {
	Kind PromptKind
}
type PromptCharAction struct {
	Char rune
}
type PromptBackspaceAction struct{}
type PromptSubmitAction struct{}
type PromptCancelAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type ToggleLineNumbersAction struct{}
type HelpToggleAction struct{}
type HelpHideAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{}
