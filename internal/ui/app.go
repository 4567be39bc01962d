package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/tinyworld/internal/game"
	"github.com/samdwyer/tinyworld/internal/telemetry"
)

// App drives a session from terminal input.
type App struct {
	screen   *Screen
	renderer *Renderer
	session  *game.Session
	logger   *zap.Logger
	running  bool
}

// NewApp wires a screen, renderer and session together.
func NewApp(screen *Screen, renderer *Renderer, session *game.Session, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		screen:   screen,
		renderer: renderer,
		session:  session,
		logger:   logger,
		running:  true,
	}
}

// Run executes the main loop until the session ends or the user interrupts.
// The screen is closed on return.
func (a *App) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("ui")

	ctx, span := tracer.Start(ctx, "game.run")
	span.SetAttributes(attribute.String("session.id", a.session.ID().String()))
	defer span.End()
	defer a.screen.Close()

	for a.running && !a.session.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.renderer.Render(a.session.View())

		// Blocking
		a.handleEvent(ctx, a.screen.PollEvent())
	}

	a.logger.Info("game loop finished",
		zap.Int("gold", a.session.Player().Gold),
		zap.Bool("player_alive", a.session.Player().IsAlive()),
	)
	return nil
}

// handleEvent processes a single input event. A nil event means the screen
// was finalized.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case nil:
		a.running = false
	case *tcell.EventKey:
		a.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) handleKey(ctx context.Context, key tcell.Key, r rune) {
	if key == tcell.KeyCtrlC {
		a.running = false
		return
	}
	action := KeyAction(a.session.Mode(), key, r)
	if action == game.ActionNone {
		return
	}
	a.session.Dispatch(ctx, action)
}
