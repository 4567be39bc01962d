package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/tinyworld/internal/combat"
	"github.com/samdwyer/tinyworld/internal/dice"
	"github.com/samdwyer/tinyworld/internal/entity"
	"github.com/samdwyer/tinyworld/internal/gamedata"
	"github.com/samdwyer/tinyworld/internal/telemetry"
	"github.com/samdwyer/tinyworld/internal/world"
)

// Session owns all game state. Every mutation goes through Dispatch.
type Session struct {
	id       uuid.UUID
	grid     *world.Grid
	player   *entity.Player
	opponent *entity.Opponent
	item     *entity.Item
	mode     Mode
	message  string
	log      *EventLog
	done     bool

	src         dice.Source
	resolver    *combat.Resolver
	victoryGold int
	turnCount   int

	logger *zap.Logger
	tracer trace.Tracer
}

// NewSession creates a session from world data. The opponent's damage
// range is rolled from src here, so src is consumed from the start.
func NewSession(w *gamedata.World, src dice.Source, opts ...Option) (*Session, error) {
	if w == nil {
		return nil, errors.New("nil world")
	}
	if src == nil {
		return nil, errors.New("nil random source")
	}
	// Re-check every time: the world may have been edited since it loaded.
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}

	player := entity.NewPlayer(entity.Character{
		Name:      w.Player.Name,
		Pos:       w.PlayerStart(),
		MaxHP:     w.Player.HP,
		MinDamage: w.Player.Damage.Min,
		MaxDamage: w.Player.Damage.Max,
		HitChance: w.Player.HitChance,
	})
	opponent := entity.NewOpponent(entity.Character{
		Name:      w.Opponent.Name,
		Pos:       w.OpponentStart(),
		MaxHP:     w.Opponent.HP,
		HitChance: w.Opponent.HitChance,
	}, w.Opponent.MinDamage.Bounds(), w.Opponent.MaxDamage.Bounds(), src)

	s := &Session{
		id:          uuid.New(),
		grid:        w.Grid(),
		player:      player,
		opponent:    opponent,
		item:        entity.NewItem(w.Item.Name, w.Item.Bonus, w.ItemStart()),
		mode:        ModeExploring,
		message:     w.Intro,
		log:         NewEventLog(w.LogCapacity),
		src:         src,
		resolver:    combat.NewResolver(src),
		victoryGold: w.VictoryGold,
		logger:      zap.NewNop(),
		tracer:      telemetry.Tracer("session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session_id", s.id.String()))

	s.logger.Info("session created",
		zap.Int("opponent_min_damage", opponent.MinDamage),
		zap.Int("opponent_max_damage", opponent.MaxDamage),
	)
	return s, nil
}

// Dispatch applies one action. Actions that do not apply to the current
// mode are ignored.
func (s *Session) Dispatch(ctx context.Context, a Action) {
	if s.done {
		return
	}
	s.logger.Debug("dispatch",
		zap.Stringer("action", a),
		zap.Stringer("mode", s.mode),
	)

	switch s.mode {
	case ModeExploring:
		s.dispatchExplore(ctx, a)
	case ModeCombat:
		s.dispatchCombat(ctx, a)
	}
}

func (s *Session) dispatchExplore(ctx context.Context, a Action) {
	if d, ok := a.Direction(); ok {
		if s.MovePlayer(d) {
			if s.item.At(s.player.Pos) {
				s.message = s.item.Name + " lies here. Press E to pick it up."
			} else {
				s.message = ""
			}
		}
		s.Wander()
		return
	}

	switch a {
	case ActionInteract:
		s.interact(ctx)
		s.Wander()
	case ActionShowInventory:
		s.message = s.player.InventoryText()
	case ActionQuit:
		s.done = true
		s.logger.Info("quit requested")
	}
}

func (s *Session) dispatchCombat(ctx context.Context, a Action) {
	switch a {
	case ActionAttack:
		s.attack(ctx)
	case ActionFlee:
		s.flee(ctx)
	}
}

// interact picks up the item if the player stands on it, otherwise starts
// combat if the opponent is adjacent.
func (s *Session) interact(ctx context.Context) {
	if s.item.At(s.player.Pos) {
		s.item.PickUp(s.player)
		s.log.Add(fmt.Sprintf("You picked up the %s (+%d dmg)!", s.item.Name, s.item.Bonus))
		s.message = "You feel power surging through the blade."
		s.logger.Info("item picked up",
			zap.String("item", s.item.Name),
			zap.Int("attack_bonus", s.player.AttackBonus),
		)
		return
	}

	if s.player.Pos.Adjacent(s.opponent.Pos) {
		s.startCombat(ctx)
		return
	}

	s.message = "Nothing to interact with here."
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Done returns true once Quit has been dispatched.
func (s *Session) Done() bool { return s.done }

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Message returns the current narration line.
func (s *Session) Message() string { return s.message }

// Log returns the event log.
func (s *Session) Log() *EventLog { return s.log }

// Grid returns the immutable map.
func (s *Session) Grid() *world.Grid { return s.grid }

// Player returns the player.
func (s *Session) Player() *entity.Player { return s.player }

// Opponent returns the opponent.
func (s *Session) Opponent() *entity.Opponent { return s.opponent }

// Item returns the item.
func (s *Session) Item() *entity.Item { return s.item }

// span starts a span carrying the session id.
func (s *Session) span(ctx context.Context, name string) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, name)
	span.SetAttributes(attribute.String("session.id", s.id.String()))
	return ctx, span
}
