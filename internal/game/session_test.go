package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/samdwyer/tinyworld/internal/dice"
	"github.com/samdwyer/tinyworld/internal/gamedata"
	"github.com/samdwyer/tinyworld/internal/telemetry"
	"github.com/samdwyer/tinyworld/internal/world"
)

// scripted returns a source whose first two ints roll the opponent's
// damage range to 6-8, followed by the given draws.
func scripted(ints []int, floats []float64) *dice.Script {
	return &dice.Script{
		Ints:   append([]int{0, 0}, ints...),
		Floats: floats,
	}
}

func newTestSession(t *testing.T, src dice.Source) *Session {
	t.Helper()
	s, err := NewSession(gamedata.MustLoadWorld(), src,
		WithLogger(zaptest.NewLogger(t)),
		WithTracer(telemetry.NoopTracer()),
	)
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	src := scripted(nil, nil)
	s := newTestSession(t, src)

	assert.Equal(t, ModeExploring, s.Mode())
	assert.Equal(t, world.Position{X: 1, Y: 2}, s.Player().Pos)
	assert.Equal(t, world.Position{X: 7, Y: 2}, s.Opponent().Pos)
	assert.Equal(t, 40, s.Player().HP)
	assert.Equal(t, 60, s.Opponent().HP)
	assert.Equal(t, 6, s.Opponent().MinDamage)
	assert.Equal(t, 8, s.Opponent().MaxDamage)
	assert.True(t, s.Item().OnGrid())
	assert.NotEmpty(t, s.Message())
	assert.Zero(t, s.Log().Len())
	assert.False(t, s.Done())
	assert.True(t, src.Exhausted())
}

func TestNewSessionErrors(t *testing.T) {
	_, err := NewSession(nil, dice.NewSource(1))
	assert.Error(t, err)

	_, err = NewSession(gamedata.MustLoadWorld(), nil)
	assert.Error(t, err)

	bad := gamedata.MustLoadWorld()
	bad.Map = []string{"~~~"}
	bad.Player.X, bad.Player.Y = 0, 0
	require.Error(t, bad.Validate())
	_, err = NewSession(bad, dice.NewSource(1))
	assert.Error(t, err)
}

func TestNewSessionRevalidatesEditedWorld(t *testing.T) {
	w := gamedata.MustLoadWorld()
	require.NotNil(t, w.Grid())

	// Water at (2,2).
	w.Player.X, w.Player.Y = 2, 2

	s, err := NewSession(w, dice.NewSource(1))
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "player position (2,2) is not passable")
}

func TestMoveBlockedByTerrain(t *testing.T) {
	s := newTestSession(t, scripted(nil, nil))

	// (2,2) is water.
	assert.False(t, s.MovePlayer(world.Right))
	assert.Equal(t, world.Position{X: 1, Y: 2}, s.Player().Pos)

	// (8,3) is a wall.
	s.Player().Pos = world.Position{X: 8, Y: 2}
	assert.False(t, s.MovePlayer(world.Down))
	assert.Equal(t, world.Position{X: 8, Y: 2}, s.Player().Pos)
}

func TestMoveBlockedAtEdge(t *testing.T) {
	s := newTestSession(t, scripted(nil, nil))
	s.Player().Pos = world.Position{X: 0, Y: 0}

	assert.False(t, s.MovePlayer(world.Up))
	assert.False(t, s.MovePlayer(world.Left))
	assert.Equal(t, world.Position{X: 0, Y: 0}, s.Player().Pos)

	assert.True(t, s.MovePlayer(world.Right))
	assert.Equal(t, world.Position{X: 1, Y: 0}, s.Player().Pos)
}

func TestPlayerCannotEnterOpponentTile(t *testing.T) {
	s := newTestSession(t, scripted(nil, nil))
	s.Player().Pos = world.Position{X: 6, Y: 2}

	assert.False(t, s.MovePlayer(world.Right))
	assert.Equal(t, world.Position{X: 6, Y: 2}, s.Player().Pos)
}

func TestWanderAvoidsPlayer(t *testing.T) {
	src := scripted(nil, nil)
	// Left, Up, Right, Down
	src.Perms = [][]int{{2, 0, 3, 1}}
	s := newTestSession(t, src)

	s.Opponent().Pos = world.Position{X: 9, Y: 0}
	s.Player().Pos = world.Position{X: 8, Y: 0}

	assert.True(t, s.Wander())
	assert.Equal(t, world.Position{X: 9, Y: 1}, s.Opponent().Pos)
}

func TestWanderStuck(t *testing.T) {
	w := gamedata.MustLoadWorld()
	w.Map = []string{
		"#####",
		"#...#",
		"#####",
	}
	w.Item.X, w.Item.Y = 1, 1
	w.Player.X, w.Player.Y = 2, 1
	w.Opponent.X, w.Opponent.Y = 3, 1
	require.NoError(t, w.Validate())

	s, err := NewSession(w, scripted(nil, nil))
	require.NoError(t, err)

	assert.False(t, s.Wander())
	assert.Equal(t, world.Position{X: 3, Y: 1}, s.Opponent().Pos)
}

func TestMoveDispatchTriggersWander(t *testing.T) {
	s := newTestSession(t, scripted(nil, nil))
	ctx := context.Background()

	// Blocked move still lets the opponent wander (identity order: up first).
	s.Dispatch(ctx, ActionMoveRight)
	assert.Equal(t, world.Position{X: 1, Y: 2}, s.Player().Pos)
	assert.Equal(t, world.Position{X: 7, Y: 1}, s.Opponent().Pos)

	s.Dispatch(ctx, ActionMoveUp)
	assert.Equal(t, world.Position{X: 1, Y: 1}, s.Player().Pos)
	assert.Equal(t, world.Position{X: 7, Y: 0}, s.Opponent().Pos)
	assert.Empty(t, s.Message(), "plain move clears the message")
}

func TestMoveOntoItemHints(t *testing.T) {
	s := newTestSession(t, scripted(nil, nil))
	ctx := context.Background()
	s.Player().Pos = world.Position{X: 5, Y: 0}

	s.Dispatch(ctx, ActionMoveDown)
	assert.Equal(t, "Sword of Dawn lies here. Press E to pick it up.", s.Message())

	s.Dispatch(ctx, ActionMoveUp)
	assert.Empty(t, s.Message())
}

func TestInteractNothingAtDistanceTwo(t *testing.T) {
	s := newTestSession(t, scripted(nil, nil))
	s.Player().Pos = world.Position{X: 5, Y: 2}
	require.Equal(t, 2, s.Player().Pos.Distance(s.Opponent().Pos))

	s.Dispatch(context.Background(), ActionInteract)

	assert.Equal(t, ModeExploring, s.Mode())
	assert.Equal(t, "Nothing to interact with here.", s.Message())
	assert.Zero(t, s.Log().Len())
}

func TestPickupExactlyOnce(t *testing.T) {
	s := newTestSession(t, scripted(nil, nil))
	ctx := context.Background()
	s.Player().Pos = world.Position{X: 5, Y: 1}

	s.Dispatch(ctx, ActionInteract)

	assert.Equal(t, []string{"Sword of Dawn"}, s.Player().Inventory)
	assert.Equal(t, 6, s.Player().AttackBonus)
	assert.False(t, s.Item().OnGrid())
	assert.Equal(t, []string{"You picked up the Sword of Dawn (+6 dmg)!"}, s.Log().Entries())
	assert.Equal(t, "You feel power surging through the blade.", s.Message())
	assert.Equal(t, ModeExploring, s.Mode())

	s.Player().AttackBonus = 0
	s.Dispatch(ctx, ActionInteract)

	assert.Len(t, s.Player().Inventory, 1, "inventory must not duplicate")
	assert.Zero(t, s.Player().AttackBonus, "bonus must not be reapplied")
	assert.Equal(t, "Nothing to interact with here.", s.Message())
}

func TestPickupBeatsCombat(t *testing.T) {
	s := newTestSession(t, scripted(nil, nil))
	s.Player().Pos = world.Position{X: 5, Y: 1}
	s.Opponent().Pos = world.Position{X: 6, Y: 1}

	s.Dispatch(context.Background(), ActionInteract)

	assert.Equal(t, ModeExploring, s.Mode())
	assert.True(t, s.Player().HasItem("Sword of Dawn"))
}

func TestInteractStartsCombat(t *testing.T) {
	s := newTestSession(t, scripted(nil, nil))
	s.Player().Pos = world.Position{X: 6, Y: 2}

	s.Dispatch(context.Background(), ActionInteract)

	assert.Equal(t, ModeCombat, s.Mode())
	assert.Equal(t, "Battle started! Attack or Run.", s.Message())
	assert.Equal(t, []string{"You face the Knight!"}, s.Log().Entries())
	// The opponent still takes its wander step after the interaction.
	assert.Equal(t, world.Position{X: 7, Y: 1}, s.Opponent().Pos)
}

func TestShowInventoryDoesNotWander(t *testing.T) {
	s := newTestSession(t, scripted(nil, nil))
	before := s.Opponent().Pos

	s.Dispatch(context.Background(), ActionShowInventory)

	assert.Equal(t, "Inv: (empty)", s.Message())
	assert.Equal(t, before, s.Opponent().Pos)
}

func TestQuit(t *testing.T) {
	s := newTestSession(t, scripted(nil, nil))
	ctx := context.Background()
	player, opponent := s.Player().Pos, s.Opponent().Pos

	s.Dispatch(ctx, ActionQuit)
	assert.True(t, s.Done())
	assert.Equal(t, player, s.Player().Pos)
	assert.Equal(t, opponent, s.Opponent().Pos)

	s.Dispatch(ctx, ActionMoveUp)
	assert.Equal(t, player, s.Player().Pos, "no dispatch after quit")
}

func TestExploreIgnoresCombatActions(t *testing.T) {
	src := scripted(nil, nil)
	s := newTestSession(t, src)
	ctx := context.Background()
	opponent := s.Opponent().Pos

	s.Dispatch(ctx, ActionAttack)
	s.Dispatch(ctx, ActionFlee)
	s.Dispatch(ctx, ActionNone)

	assert.Equal(t, ModeExploring, s.Mode())
	assert.Equal(t, opponent, s.Opponent().Pos)
	assert.Zero(t, s.Log().Len())
}

func TestViewIsSnapshot(t *testing.T) {
	s := newTestSession(t, scripted(nil, nil))
	s.Player().Pos = world.Position{X: 5, Y: 1}
	s.Dispatch(context.Background(), ActionInteract)

	v := s.View()
	assert.False(t, v.ItemOnGrid)
	assert.Equal(t, []string{"Sword of Dawn"}, v.Inventory)
	assert.Equal(t, "Inv: Sword of Dawn", v.InventoryText)
	assert.Equal(t, "Knight", v.Opponent.Name)
	assert.Equal(t, 60, v.Opponent.MaxHP)
	assert.LessOrEqual(t, len(v.RecentLog), 2)

	v.Inventory[0] = "mutated"
	assert.Equal(t, []string{"Sword of Dawn"}, s.Player().Inventory)
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeExploring, "explore"},
		{ModeCombat, "combat"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.mode.String()
		if got != tt.expected {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.expected)
		}
	}
}
