package lua

import (
	"log/slog"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Sandbox restricts Lua execution to safe operations.
type Sandbox struct {
	L      *lua.LState
	logger *slog.Logger

	printed []string
	dropped int
}

// MaxPrintedLines caps the print output a sandbox keeps and logs.
const MaxPrintedLines = 1000

// NewSandbox creates a new sandbox for the Lua state.
func NewSandbox(L *lua.LState, logger *slog.Logger) *Sandbox {
	return &Sandbox{L: L, logger: logger}
}

// Install sets up the sandbox restrictions.
func (s *Sandbox) Install() {
	removed := []string{
		"dofile",
		"loadfile",
		"load",
		"loadstring",
		"require",
		"module",
	}
	for _, name := range removed {
		s.L.SetGlobal(name, lua.LNil)
	}

	s.installSafePrint()
}

// installSafePrint replaces print so output goes to the logger instead
// of the terminal the editor is drawing on.
func (s *Sandbox) installSafePrint() {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		if len(s.printed) >= MaxPrintedLines {
			if s.dropped == 0 {
				s.logger.Warn("lua print limit reached; further output dropped", "limit", MaxPrintedLines)
			}
			s.dropped++
			return 0
		}
		line := strings.Join(parts, "\t")
		s.printed = append(s.printed, line)
		s.logger.Info("lua print", "line", line)
		return 0
	}))
}

// Printed returns the lines the script printed so far.
func (s *Sandbox) Printed() []string {
	out := make([]string, len(s.printed))
	copy(out, s.printed)
	return out
}

// DroppedPrints returns how many printed lines exceeded MaxPrintedLines.
func (s *Sandbox) DroppedPrints() int {
	return s.dropped
}
