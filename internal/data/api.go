package data

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI регистрирует конструкторы. Оба каррированные:
// Monster "Kobold" { ... } и Object "Dagger" { ... }.
func registerAPI(L *lua.LState, coll *collector, file *string) {
	L.SetGlobal("Monster", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.races = append(coll.races, rawDef{name: name, file: *file, table: tbl})
			return 0
		}))
		return 1
	}))

	L.SetGlobal("Object", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.kinds = append(coll.kinds, rawDef{name: name, file: *file, table: tbl})
			return 0
		}))
		return 1
	}))

	// Blow("BITE", "POISON", "1d6") — короткая запись удара.
	L.SetGlobal("Blow", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("method", lua.LString(L.CheckString(1)))
		tbl.RawSetString("effect", lua.LString(L.OptString(2, "")))
		tbl.RawSetString("dice", lua.LString(L.OptString(3, "")))
		L.Push(tbl)
		return 1
	}))
}
