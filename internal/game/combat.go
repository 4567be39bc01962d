package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/tinyworld/internal/combat"
)

// startCombat switches the session into combat.
func (s *Session) startCombat(ctx context.Context) {
	_, span := s.span(ctx, "combat.start")
	span.SetAttributes(
		attribute.Int("player_hp", s.player.HP),
		attribute.Int("opponent_hp", s.opponent.HP),
		attribute.Int("attack_bonus", s.player.AttackBonus),
	)
	span.End()

	s.mode = ModeCombat
	s.turnCount = 0
	s.message = "Battle started! Attack or Run."
	s.log.Add("You face the " + s.opponent.Name + "!")
	s.logger.Info("combat started", zap.Int("player_hp", s.player.HP), zap.Int("opponent_hp", s.opponent.HP))
}

// attack runs one exchange and ends combat on victory or defeat.
func (s *Session) attack(ctx context.Context) {
	s.turnCount++

	ctx, span := s.span(ctx, "combat.turn")
	defer span.End()

	result := s.resolver.Round(s.player, s.opponent)

	if result.Strike.Hit {
		s.log.Add(fmt.Sprintf("You hit for %d!", result.Strike.Rolled))
		span.SetAttributes(attribute.Int("damage", result.Strike.Damage))
	} else {
		s.log.Add("You missed!")
	}

	if c := result.Counter; c != nil {
		if c.Hit {
			s.log.Add(fmt.Sprintf("%s hits you for %d!", s.opponent.Name, c.Rolled))
			span.SetAttributes(attribute.Int("damage_taken", c.Damage))
		} else {
			s.log.Add(s.opponent.Name + " missed!")
		}
	}

	span.SetAttributes(
		attribute.Int("turn", s.turnCount),
		attribute.String("outcome", result.Outcome.String()),
	)
	s.logger.Debug("combat turn",
		zap.Int("turn", s.turnCount),
		zap.Bool("hit", result.Strike.Hit),
		zap.Int("damage", result.Strike.Damage),
		zap.Int("opponent_hp", s.opponent.HP),
		zap.Int("player_hp", s.player.HP),
	)

	if !result.Outcome.Ends() {
		return
	}
	switch result.Outcome {
	case combat.OutcomeVictory:
		s.player.AddGold(s.victoryGold)
		s.message = "You defeated the " + s.opponent.Name + "!"
		s.log.Add(fmt.Sprintf("Victory! +%d gold.", s.victoryGold))
	case combat.OutcomeDefeat:
		s.message = "You were defeated..."
		s.log.Add("You fall. Game over (reload to try again).")
	}
	s.endCombat(ctx, result.Outcome)
}

// flee leaves combat with no exchange.
func (s *Session) flee(ctx context.Context) {
	s.message = "You fled from the battle."
	s.log.Add("You retreat to safety.")
	s.endCombat(ctx, combat.OutcomeFled)
}

// endCombat returns the session to exploration.
func (s *Session) endCombat(ctx context.Context, outcome combat.Outcome) {
	_, span := s.span(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.Int("turns_taken", s.turnCount),
		attribute.Int("player_hp_remaining", s.player.HP),
	)
	span.End()

	s.mode = ModeExploring
	s.logger.Info("combat ended",
		zap.Stringer("outcome", outcome),
		zap.Int("turns", s.turnCount),
		zap.Int("gold", s.player.Gold),
	)
}
