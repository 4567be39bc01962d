package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/samdwyer/tinyworld/internal/dice"
	"github.com/samdwyer/tinyworld/internal/gamedata"
	"github.com/samdwyer/tinyworld/internal/world"
)

// enterCombat places the player next to the opponent and interacts.
func enterCombat(t *testing.T, s *Session) {
	t.Helper()
	s.Player().Pos = world.Position{X: 6, Y: 2}
	s.Opponent().Pos = world.Position{X: 7, Y: 2}
	s.Dispatch(context.Background(), ActionInteract)
	require.Equal(t, ModeCombat, s.Mode())
}

func TestVictoryWithSword(t *testing.T) {
	// Six turns: the player always rolls the minimum (4+6) and hits;
	// the knight misses every counter. The sixth strike fells the knight
	// and consumes no counter roll.
	ints := []int{0, 0, 0, 0, 0, 0}
	floats := []float64{}
	for i := 0; i < 5; i++ {
		floats = append(floats, 0.0, 0.99)
	}
	floats = append(floats, 0.0)

	src := scripted(ints, floats)
	s := newTestSession(t, src)
	ctx := context.Background()

	s.Player().Pos = world.Position{X: 5, Y: 1}
	s.Dispatch(ctx, ActionInteract)
	require.Equal(t, 6, s.Player().AttackBonus)

	enterCombat(t, s)

	turns := 0
	for s.Mode() == ModeCombat && turns < 10 {
		s.Dispatch(ctx, ActionAttack)
		turns++
	}

	// ceil(60 / (4+6)) turns at most
	assert.LessOrEqual(t, turns, 6)
	assert.Equal(t, ModeExploring, s.Mode())
	assert.Zero(t, s.Opponent().HP)
	assert.Equal(t, 40, s.Player().HP)
	assert.Equal(t, 20, s.Player().Gold)
	assert.Equal(t, "You defeated the Knight!", s.Message())
	assert.Equal(t, []string{
		"You hit for 10!",
		"Knight missed!",
		"You hit for 10!",
		"Victory! +20 gold.",
	}, s.Log().Entries())
	assert.True(t, src.Exhausted(), "no counter after the killing blow")
}

func TestKillingBlowClamps(t *testing.T) {
	src := scripted([]int{3}, []float64{0.0})
	s := newTestSession(t, src)
	enterCombat(t, s)
	s.Opponent().HP = 3

	s.Dispatch(context.Background(), ActionAttack)

	assert.Zero(t, s.Opponent().HP)
	assert.Equal(t, ModeExploring, s.Mode())
	// The log narrates the rolled damage, not the 3 HP actually removed.
	assert.Equal(t, []string{"You hit for 7!", "Victory! +20 gold."}, s.Log().Last(2))
	assert.True(t, src.Exhausted())
}

func TestDefeatOnCounter(t *testing.T) {
	// Player misses; knight hits for 6 against 5 HP.
	src := scripted([]int{0, 0}, []float64{0.99, 0.0})
	s := newTestSession(t, src)
	enterCombat(t, s)
	s.Player().HP = 5

	s.Dispatch(context.Background(), ActionAttack)

	assert.Zero(t, s.Player().HP)
	assert.Equal(t, ModeExploring, s.Mode())
	assert.Zero(t, s.Player().Gold)
	assert.Equal(t, 60, s.Opponent().HP)
	assert.Equal(t, "You were defeated...", s.Message())
	assert.Equal(t, []string{
		"You face the Knight!",
		"You missed!",
		"Knight hits you for 6!",
		"You fall. Game over (reload to try again).",
	}, s.Log().Entries())
}

func TestTurnContinues(t *testing.T) {
	src := scripted([]int{1, 2}, []float64{0.5, 0.5})
	s := newTestSession(t, src)
	enterCombat(t, s)

	s.Dispatch(context.Background(), ActionAttack)

	assert.Equal(t, ModeCombat, s.Mode())
	assert.Equal(t, 55, s.Opponent().HP)
	assert.Equal(t, 32, s.Player().HP)
	assert.Equal(t, []string{"You hit for 5!", "Knight hits you for 8!"}, s.Log().Last(2))
	assert.Equal(t, "Battle started! Attack or Run.", s.Message())
}

func TestCombatIgnoresExploreActions(t *testing.T) {
	src := scripted(nil, nil)
	s := newTestSession(t, src)
	enterCombat(t, s)
	ctx := context.Background()

	player, opponent := s.Player().Pos, s.Opponent().Pos
	msg := s.Message()
	logLen := s.Log().Len()

	for _, a := range []Action{ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight, ActionInteract, ActionShowInventory, ActionQuit} {
		s.Dispatch(ctx, a)
	}

	assert.Equal(t, ModeCombat, s.Mode())
	assert.False(t, s.Done())
	assert.Equal(t, player, s.Player().Pos)
	assert.Equal(t, opponent, s.Opponent().Pos)
	assert.Equal(t, msg, s.Message())
	assert.Equal(t, logLen, s.Log().Len())
}

func TestFleeAlwaysSucceeds_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := scripted(nil, nil)
		s, err := NewSession(gamedata.MustLoadWorld(), src)
		require.NoError(rt, err)

		s.Player().Pos = world.Position{X: 6, Y: 2}
		s.Opponent().Pos = world.Position{X: 7, Y: 2}
		s.Dispatch(context.Background(), ActionInteract)
		require.Equal(rt, ModeCombat, s.Mode())

		playerHP := rapid.IntRange(0, 40).Draw(rt, "playerHP")
		opponentHP := rapid.IntRange(0, 60).Draw(rt, "opponentHP")
		s.Player().HP = playerHP
		s.Opponent().HP = opponentHP

		s.Dispatch(context.Background(), ActionFlee)

		assert.Equal(rt, ModeExploring, s.Mode())
		assert.Equal(rt, playerHP, s.Player().HP)
		assert.Equal(rt, opponentHP, s.Opponent().HP)
		assert.Equal(rt, "You fled from the battle.", s.Message())
		assert.Equal(rt, "You retreat to safety.", s.Log().Last(1)[0])
		assert.True(rt, src.Exhausted(), "flee must not roll")
	})
}

func TestDefeatedOpponentCanBeFoughtAgain(t *testing.T) {
	src := scripted([]int{0}, []float64{0.99})
	s := newTestSession(t, src)
	s.Opponent().HP = 0
	s.Player().Gold = 20

	enterCombat(t, s)
	s.Dispatch(context.Background(), ActionAttack)

	assert.Equal(t, ModeExploring, s.Mode())
	assert.Zero(t, s.Opponent().HP)
	assert.Equal(t, 40, s.Player().Gold)
	assert.Equal(t, []string{"You missed!", "Victory! +20 gold."}, s.Log().Last(2))
}

var allActions = []Action{
	ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight,
	ActionInteract, ActionShowInventory, ActionAttack, ActionFlee,
}

func TestSessionInvariants_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64Min(1).Draw(rt, "seed")
		actions := rapid.SliceOfN(rapid.SampledFrom(allActions), 1, 200).Draw(rt, "actions")

		s, err := NewSession(gamedata.MustLoadWorld(), dice.NewSource(seed))
		require.NoError(rt, err)
		ctx := context.Background()

		for _, a := range actions {
			before := s.Mode()
			adjacent := s.Player().Pos.Adjacent(s.Opponent().Pos)
			onItem := s.Item().At(s.Player().Pos)
			gold := s.Player().Gold

			s.Dispatch(ctx, a)

			p, o := s.Player().Pos, s.Opponent().Pos
			require.True(rt, s.Passable(p.X, p.Y), "player on impassable tile %s", p)
			require.True(rt, s.Passable(o.X, o.Y), "opponent on impassable tile %s", o)
			require.NotEqual(rt, p, o, "player and opponent share a tile")

			if before == ModeExploring && s.Mode() == ModeCombat {
				require.Equal(rt, ActionInteract, a)
				require.True(rt, adjacent, "combat entered without adjacency")
				require.False(rt, onItem, "combat entered while standing on the item")
			}

			require.Equal(rt, s.Item().OnGrid(), len(s.Player().Inventory) == 0, "item must be on the grid xor held")
			require.LessOrEqual(rt, s.Log().Len(), 4)
			require.GreaterOrEqual(rt, s.Player().HP, 0)
			require.GreaterOrEqual(rt, s.Opponent().HP, 0)
			require.GreaterOrEqual(rt, s.Player().Gold, gold)
		}
	})
}
