package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

const (
	// MinRobotTickInterval keeps robots from acting every tick.
	MinRobotTickInterval = 3
	DefaultLevelBonus    = 1000
	DefaultClearBonus    = 2000
)

// Rules is the Go rendition of the difficulty curve. The Lua engine falls
// back to it whenever a script function is missing or fails.
type Rules struct{}

// RobotTickInterval returns how many ticks a robot waits between actions.
func (Rules) RobotTickInterval(level int) int {
	return clampInterval((28 - level) / 4)
}

// LevelStartBonus returns the decaying bonus a level starts with.
func (Rules) LevelStartBonus(int) int { return DefaultLevelBonus }

// LevelClearBonus returns the fixed bonus for reaching the exit.
func (Rules) LevelClearBonus(int) int { return DefaultClearBonus }

func clampInterval(n int) int {
	if n < MinRobotTickInterval {
		return MinRobotTickInterval
	}
	return n
}

// Engine wraps a single gopher-lua VM holding the difficulty scripts.
// Single-goroutine access only (game loop).
type Engine struct {
	vm       *lua.LState
	log      *zap.Logger
	fallback Rules
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("MIN_ROBOT_TICK_INTERVAL", lua.LNumber(MinRobotTickInterval))

	e := &Engine{vm: vm, log: log}

	// core first, then optional overrides
	for _, sub := range []string{"core", "rules"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}
	return e, nil
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

// LoadString runs a chunk of Lua source, e.g. an override from the tests.
func (e *Engine) LoadString(src string) error {
	return e.vm.DoString(src)
}

// RobotTickInterval calls Lua robot_tick_interval(level). The result never
// drops below MinRobotTickInterval.
func (e *Engine) RobotTickInterval(level int) int {
	if n, ok := e.callIntFunc("robot_tick_interval", level); ok {
		return clampInterval(n)
	}
	return e.fallback.RobotTickInterval(level)
}

// LevelStartBonus calls Lua level_start_bonus(level).
func (e *Engine) LevelStartBonus(level int) int {
	if n, ok := e.callIntFunc("level_start_bonus", level); ok && n >= 0 {
		return n
	}
	return e.fallback.LevelStartBonus(level)
}

// LevelClearBonus calls Lua level_clear_bonus(level).
func (e *Engine) LevelClearBonus(level int) int {
	if n, ok := e.callIntFunc("level_clear_bonus", level); ok && n >= 0 {
		return n
	}
	return e.fallback.LevelClearBonus(level)
}

// callIntFunc calls a Lua function with int args and returns an int result.
// ok is false when the function is missing, fails or returns a non-number.
func (e *Engine) callIntFunc(name string, args ...int) (int, bool) {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		e.log.Debug("lua function not found", zap.String("name", name))
		return 0, false
	}

	lArgs := make([]lua.LValue, len(args))
	for i, a := range args {
		lArgs[i] = lua.LNumber(a)
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lArgs...); err != nil {
		e.log.Error("lua call error", zap.String("func", name), zap.Error(err))
		return 0, false
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	n, ok := result.(lua.LNumber)
	if !ok {
		e.log.Error("lua function returned non-number",
			zap.String("func", name), zap.String("type", result.Type().String()))
		return 0, false
	}
	return int(n), true
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
