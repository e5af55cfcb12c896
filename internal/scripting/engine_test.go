package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weaveScript = `
function mob_ai(ctx)
  if ctx.summoned then
    return {"return_to_owner", "aggro", "chase", "idle", "sinusoid"}
  end
  if ctx.rarity >= 7 then
    return {"higher_zone", "aggro", "chase", "idle", "idle_move"}
  end
  return {"aggro", "chase", "idle", "idle_move"}
end
`

func TestRunMobAI(t *testing.T) {
	e, err := NewEngineFromString(weaveScript, nil)
	require.NoError(t, err)
	defer e.Close()
	require.True(t, e.HasMobAI())

	tests := []struct {
		name string
		ctx  MobContext
		want []string
	}{
		{"summoned", MobContext{Summoned: true}, []string{"return_to_owner", "aggro", "chase", "idle", "sinusoid"}},
		{"ultimate", MobContext{Rarity: 7}, []string{"higher_zone", "aggro", "chase", "idle", "idle_move"}},
		{"plain", MobContext{State: "idle"}, []string{"aggro", "chase", "idle", "idle_move"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.RunMobAI(tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunMobAI_Errors(t *testing.T) {
	empty, err := NewEngineFromString(`x = 1`, nil)
	require.NoError(t, err)
	defer empty.Close()
	_, err = empty.RunMobAI(MobContext{})
	assert.ErrorIs(t, err, ErrNoMobAI)

	bad, err := NewEngineFromString(`function mob_ai(ctx) error("boom") end`, nil)
	require.NoError(t, err)
	defer bad.Close()
	_, err = bad.RunMobAI(MobContext{})
	assert.Error(t, err)

	notTable, err := NewEngineFromString(`function mob_ai(ctx) return 3 end`, nil)
	require.NoError(t, err)
	defer notTable.Close()
	_, err = notTable.RunMobAI(MobContext{})
	assert.Error(t, err)
}

func TestNewEngine_LoadsAIDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ai"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ai", "mob.lua"), []byte(weaveScript), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ai", "notes.txt"), []byte("not lua"), 0o644))

	e, err := NewEngine(dir, nil)
	require.NoError(t, err)
	defer e.Close()
	assert.True(t, e.HasMobAI())

	missing, err := NewEngine(filepath.Join(dir, "nope"), nil)
	require.NoError(t, err)
	defer missing.Close()
	assert.False(t, missing.HasMobAI())
}

func TestRunMobAI_PassesEveryContextField(t *testing.T) {
	e, err := NewEngineFromString(`
function mob_ai(ctx)
  return {ctx.species, ctx.state, ctx.type, tostring(ctx.ticks), tostring(ctx.rarity),
          tostring(ctx.summoned), tostring(ctx.target_alive), tostring(ctx.stunned)}
end
`, nil)
	require.NoError(t, err)
	defer e.Close()

	got, err := e.RunMobAI(MobContext{
		Species: "hornet", State: "attacking", Type: "aggro",
		Ticks: 12, Rarity: 3, Summoned: true, TargetAlive: false, Stunned: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"hornet", "attacking", "aggro", "12", "3", "true", "false", "true"}, got)
}
