package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/arbor/internal/engine/tree"
)

const nodeTypeName = "arbor.node"

// maxNesting bounds nested plain tables passed to coll.
const maxNesting = 256

// installConstructors registers token, coll and the node metatable.
func installConstructors(L *lua.LState) {
	mt := L.NewTypeMetatable(nodeTypeName)
	L.SetField(mt, "__tostring", L.NewFunction(nodeToString))
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"kind": nodeKind,
		"text": nodeText,
		"len":  nodeLen,
	}))

	L.SetGlobal("token", L.NewFunction(newToken))
	L.SetGlobal("coll", L.NewFunction(newColl))
}

func pushNode(L *lua.LState, n *tree.Node) {
	ud := L.NewUserData()
	ud.Value = n
	L.SetMetatable(ud, L.GetTypeMetatable(nodeTypeName))
	L.Push(ud)
}

func checkNode(L *lua.LState, idx int) *tree.Node {
	ud := L.CheckUserData(idx)
	if n, ok := ud.Value.(*tree.Node); ok {
		return n
	}
	L.ArgError(idx, "node expected")
	return nil
}

// token(text)
func newToken(L *lua.LState) int {
	pushNode(L, tree.NewToken(L.OptString(1, "")))
	return 1
}

// coll{...} or coll(a, b, ...)
func newColl(L *lua.LState) int {
	var items []lua.LValue
	if tbl, ok := L.Get(1).(*lua.LTable); ok && L.GetTop() == 1 {
		items = tableItems(tbl)
	} else {
		for i := 1; i <= L.GetTop(); i++ {
			items = append(items, L.Get(i))
		}
	}

	children := make([]*tree.Node, 0, len(items))
	for i, item := range items {
		child, err := toNode(item, 1)
		if err != nil {
			L.RaiseError("coll: item %d: %s", i+1, err.Error())
			return 0
		}
		children = append(children, child)
	}
	pushNode(L, tree.NewCollection(children...))
	return 1
}

// toNode converts a Lua value to a node. Strings and numbers become
// tokens and plain tables become collections.
func toNode(v lua.LValue, depth int) (*tree.Node, error) {
	if depth > maxNesting {
		return nil, fmt.Errorf("nesting deeper than %d", maxNesting)
	}
	switch val := v.(type) {
	case *lua.LUserData:
		if n, ok := val.Value.(*tree.Node); ok {
			return n, nil
		}
		return nil, fmt.Errorf("unexpected userdata")
	case lua.LString:
		return tree.NewToken(string(val)), nil
	case lua.LNumber:
		return tree.NewToken(val.String()), nil
	case *lua.LTable:
		items := tableItems(val)
		children := make([]*tree.Node, 0, len(items))
		for _, item := range items {
			child, err := toNode(item, depth+1)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return tree.NewCollection(children...), nil
	case *lua.LNilType:
		return nil, ErrNoDocument
	default:
		return nil, fmt.Errorf("cannot use %s as a node", v.Type())
	}
}

// tableItems returns the array part of tbl in order.
func tableItems(tbl *lua.LTable) []lua.LValue {
	n := tbl.Len()
	items := make([]lua.LValue, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, tbl.RawGetInt(i))
	}
	return items
}

func nodeToString(L *lua.LState) int {
	n := checkNode(L, 1)
	if n.IsToken() {
		L.Push(lua.LString(fmt.Sprintf("token(%q)", n.Text())))
	} else {
		L.Push(lua.LString(fmt.Sprintf("coll[%d]", n.Len())))
	}
	return 1
}

func nodeKind(L *lua.LState) int {
	L.Push(lua.LString(checkNode(L, 1).Kind().String()))
	return 1
}

func nodeText(L *lua.LState) int {
	L.Push(lua.LString(checkNode(L, 1).Text()))
	return 1
}

func nodeLen(L *lua.LState) int {
	L.Push(lua.LNumber(checkNode(L, 1).Len()))
	return 1
}
