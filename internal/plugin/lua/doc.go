// Package lua builds seed documents from Lua scripts.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. Two constructors are exposed:
//
//	token(text)       -- a token node
//	coll{a, b, ...}   -- a collection of nodes
//
// Inside coll, plain strings become tokens and plain tables become nested
// collections, so the following are equivalent:
//
//	return coll{ token("defn"), coll{ token("x") } }
//	return coll{ "defn", { "x" } }
//
// The value the script returns becomes the document root.
//
// # State
//
//	state, err := lua.NewState(lua.WithExecutionTimeout(time.Second))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	root, err := state.Build(ctx, script)
//
// # Sandbox
//
// The sandbox removes dofile, loadfile, load, loadstring and require, and
// routes print to the state's logger. io, os, debug and package are never
// opened.
package lua
