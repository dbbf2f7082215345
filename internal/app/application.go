package app

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/fewer/internal/state"
	inputui "github.com/kk-code-lab/fewer/internal/ui/input"
	renderui "github.com/kk-code-lab/fewer/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.Session
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool
}

// NewApplication opens the terminal and prepares the UI for session.
func NewApplication(session *statepkg.Session, theme renderui.ColorTheme) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newApplicationWithScreen(screen, session, theme)
}

func newApplicationWithScreen(screen tcell.Screen, session *statepkg.Session, theme renderui.ColorTheme) (*Application, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}

	w, h := screen.Size()
	session.ScreenWidth = w
	session.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)
	renderer := renderui.NewRenderer(screen)
	renderer.SetTheme(theme)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(session)

	return &Application{
		screen:   screen,
		state:    session,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderer,
		input:    inputHandler,
		actionCh: actionCh,
	}, nil
}

// Close releases the terminal and the file mapping.
func (app *Application) Close() error {
	app.screen.Fini()
	return app.state.Index.Close()
}
