package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/game"
	"github.com/decker502/graveyard/pkg/types"
)

type fakeInput struct {
	pressed map[ebiten.Key]bool
	just    map[ebiten.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{pressed: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(k ebiten.Key) bool     { return f.pressed[k] }
func (f *fakeInput) IsKeyJustPressed(k ebiten.Key) bool { return f.just[k] }
func (f *fakeInput) AnyKeyJustPressed() bool            { return len(f.just) > 0 }

func drain(q *command.Queue) []command.Command {
	var out []command.Command
	for !q.IsEmpty() {
		c, _ := q.Pop()
		out = append(out, c)
	}
	return out
}

func TestDefaultKeyBindings(t *testing.T) {
	pc := NewPlayerControl()
	assert.Equal(t, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, pc.AssignedKeys(ActionMoveLeft))
	assert.Equal(t, []ebiten.Key{ebiten.KeySpace}, pc.AssignedKeys(ActionFire))
	assert.Equal(t, MissionRunning, pc.Status())
}

func TestRealtimeInputPushesOneCommandPerAction(t *testing.T) {
	pc := NewPlayerControl()
	in := newFakeInput()
	in.pressed[ebiten.KeyW] = true
	in.pressed[ebiten.KeyArrowUp] = true
	in.pressed[ebiten.KeyD] = true
	in.pressed[ebiten.KeySpace] = true

	q := command.NewQueue()
	pc.HandleRealtimeInput(in, q)
	cmds := drain(q)

	require.Len(t, cmds, 3)
	assert.Equal(t, command.KindMove, cmds[0].Kind)
	assert.Equal(t, types.Vec2{X: 1}, cmds[0].Direction)
	assert.Equal(t, types.Vec2{Y: -1}, cmds[1].Direction)
	assert.Equal(t, command.KindFire, cmds[2].Kind)
	for _, c := range cmds {
		assert.Equal(t, types.CategoryPlayer, c.Category)
	}
}

func TestAssignKeyRebinds(t *testing.T) {
	pc := NewPlayerControl()
	pc.AssignKey(ActionFire, ebiten.KeyW)

	in := newFakeInput()
	in.pressed[ebiten.KeyW] = true
	q := command.NewQueue()
	pc.HandleRealtimeInput(in, q)

	cmds := drain(q)
	require.Len(t, cmds, 1)
	assert.Equal(t, command.KindFire, cmds[0].Kind)
	assert.Equal(t, []ebiten.Key{ebiten.KeyArrowUp}, pc.AssignedKeys(ActionMoveUp))
	assert.Equal(t, "Fire", ActionFire.String())
}

func TestTitleSceneBlinksAndStarts(t *testing.T) {
	sm := game.NewSceneManager(nil)
	started := 0
	sm.SetSceneFactory(func() (game.Scene, error) {
		started++
		return NewTitleScene(nil, newFakeInput(), nil, nil), nil
	})

	in := newFakeInput()
	title := NewTitleScene(sm, in, nil, nil)
	sm.SwitchTo(title)

	require.True(t, title.TextVisible())
	require.NoError(t, title.Update(0.3))
	assert.True(t, title.TextVisible())
	require.NoError(t, title.Update(0.3))
	assert.False(t, title.TextVisible())

	in.just[ebiten.KeyQ] = true
	require.NoError(t, title.Update(0.01))
	assert.Equal(t, 1, started)
	assert.NotSame(t, title, sm.CurrentScene())
}

func newTestBattle(t *testing.T, sm *game.SceneManager, in Input) *BattleScene {
	t.Helper()
	wc := config.DefaultAppConfig().World
	wc.EnemyCap = 0
	wc.Seed = 42
	s, err := NewBattleScene(BattleConfig{
		World:    wc,
		Table:    config.FixtureActorTable(),
		Manager:  sm,
		Input:    in,
		Settings: game.NewSettingsManager(nil, nil),
		Logger:   zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	return s
}

func TestBattleSceneMovesPlayer(t *testing.T) {
	in := newFakeInput()
	s := newTestBattle(t, nil, in)
	start := s.World().Player().Position

	in.pressed[ebiten.KeyA] = true
	require.NoError(t, s.Update(0.1))

	assert.InDelta(t, start.X-20, s.World().Player().Position.X, 1e-9)
	assert.Equal(t, start.Y, s.World().Player().Position.Y)
}

func TestBattleSceneRestartAfterGameOver(t *testing.T) {
	sm := game.NewSceneManager(nil)
	in := newFakeInput()
	var next *BattleScene
	sm.SetSceneFactory(func() (game.Scene, error) {
		var err error
		next, err = NewBattleScene(BattleConfig{
			World: config.DefaultAppConfig().World,
			Table: config.FixtureActorTable(),
			Input: in,
		})
		return next, err
	})

	s := newTestBattle(t, sm, in)
	sm.SwitchTo(s)

	in.just[ebiten.KeyEnter] = true
	require.NoError(t, s.Update(1.0/60))
	assert.Equal(t, 0, sm.Restarts(), "玩家存活时回车不重开")

	s.World().Player().Damage(100)
	require.NoError(t, s.Update(1.0/60))
	assert.Equal(t, MissionFailure, s.Controls().Status())
	assert.Equal(t, 1, sm.Restarts())
	require.NotNil(t, next)
	assert.Same(t, next, sm.CurrentScene())
	assert.True(t, next.World().HasAlivePlayer())
}

func TestBattleSceneAudioToggles(t *testing.T) {
	in := newFakeInput()
	s := newTestBattle(t, nil, in)

	in.just[ebiten.KeyN] = true
	require.NoError(t, s.Update(1.0/60))
	assert.False(t, s.cfg.Settings.Settings().SoundEnabled)

	delete(in.just, ebiten.KeyN)
	in.just[ebiten.KeyM] = true
	require.NoError(t, s.Update(1.0/60))
	assert.False(t, s.cfg.Settings.Settings().MusicEnabled)
	assert.NoError(t, s.SaveOnExit())
}
