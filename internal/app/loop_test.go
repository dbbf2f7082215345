package app

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/fewer/internal/state"
	renderui "github.com/kk-code-lab/fewer/internal/ui/render"
)

func TestRunProcessesKeysUntilQuit(t *testing.T) {
	session, err := NewSession(Options{Path: StdinName}, strings.NewReader("alpha\nbeta\ngamma\n"))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	scr := tcell.NewSimulationScreen("")
	app, err := newApplicationWithScreen(scr, session, renderui.GetColorTheme())
	if err != nil {
		t.Fatalf("newApplicationWithScreen: %v", err)
	}
	defer app.Close()

	scr.InjectKey(tcell.KeyRune, '/', tcell.ModNone)
	for _, r := range "a$" {
		scr.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	scr.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, '#', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan struct{})
	go func() {
		app.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after q")
	}

	if session.Chain.Len() != 1 {
		t.Fatalf("chain length = %d, want 1", session.Chain.Len())
	}
	if got := session.Window.Lines(); len(got) != 3 {
		t.Fatalf("visible = %v", got)
	}
	if !session.ShowLineNumbers {
		t.Fatalf("# should toggle line numbers")
	}
}

func TestHandleActionQuit(t *testing.T) {
	session, err := NewSession(Options{Path: StdinName}, strings.NewReader("x\n"))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	app := &Application{state: session}
	if app.handleAction(nil) {
		t.Fatalf("nil action should not request a render")
	}
	app.handleAction(statepkg.QuitAction{})
	if !app.shouldQuit {
		t.Fatalf("QuitAction should stop the loop")
	}
}
