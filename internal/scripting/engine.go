package scripting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// ErrNoMobAI is returned when no script defines mob_ai.
var ErrNoMobAI = errors.New("lua function mob_ai not defined")

// Engine wraps a single gopher-lua VM for species dispatch scripts.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads every script under scriptsDir/ai.
// A missing directory yields an empty engine.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	if err := e.loadDir(filepath.Join(scriptsDir, "ai")); err != nil {
		e.Close()
		return nil, fmt.Errorf("load ai scripts: %w", err)
	}
	return e, nil
}

// NewEngineFromString creates an engine from inline Lua source.
func NewEngineFromString(src string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	if err := e.vm.DoString(src); err != nil {
		e.Close()
		return nil, fmt.Errorf("load inline script: %w", err)
	}
	return e, nil
}

func newEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return &Engine{vm: vm, log: log}
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// HasMobAI reports whether a loaded script defines mob_ai.
func (e *Engine) HasMobAI() bool {
	return e.vm.GetGlobal("mob_ai") != lua.LNil
}

// MobContext is the read-only view of a mob handed to mob_ai.
type MobContext struct {
	Species     string
	State       string // idle, idle_moving, attacking, returning_to_owner, returning_to_higher_zone
	Type        string // passive, neutral, aggro
	Ticks       int
	Rarity      int
	Summoned    bool
	TargetAlive bool
	Stunned     bool
}

// RunMobAI calls Lua mob_ai(ctx) and returns the step names it lists.
func (e *Engine) RunMobAI(ctx MobContext) ([]string, error) {
	fn := e.vm.GetGlobal("mob_ai")
	if fn == lua.LNil {
		return nil, ErrNoMobAI
	}

	t := e.vm.NewTable()
	t.RawSetString("species", lua.LString(ctx.Species))
	t.RawSetString("state", lua.LString(ctx.State))
	t.RawSetString("type", lua.LString(ctx.Type))
	t.RawSetString("ticks", lua.LNumber(ctx.Ticks))
	t.RawSetString("rarity", lua.LNumber(ctx.Rarity))
	t.RawSetString("summoned", lua.LBool(ctx.Summoned))
	t.RawSetString("target_alive", lua.LBool(ctx.TargetAlive))
	t.RawSetString("stunned", lua.LBool(ctx.Stunned))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		return nil, fmt.Errorf("lua mob_ai: %w", err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("lua mob_ai returned %s, want table", result.Type())
	}
	steps := make([]string, 0, rt.Len())
	for i := 1; i <= rt.Len(); i++ {
		if s, ok := rt.RawGetInt(i).(lua.LString); ok {
			steps = append(steps, string(s))
		}
	}
	return steps, nil
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
