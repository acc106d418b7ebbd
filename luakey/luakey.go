// Package luakey exposes key-notation parsing to Lua plugin scripts as a
// gopher-lua module.
//
// Preload it under whatever name the host uses:
//
//	L.PreloadModule("viks", luakey.Loader)
//
// Scripts then require it:
//
//	local viks = require("viks")
//	local keys = viks.parse("<leader>w")
//	if viks.valid(user_binding) then ... end
package luakey

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/TundraClimate/viks/keymap"
)

// Loader builds the module table. Pass it to lua.LState.PreloadModule.
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), exports)
	L.Push(mod)
	return 1
}

var exports = map[string]lua.LGFunction{
	"parse":     parse,
	"normalize": normalize,
	"valid":     valid,
}

// parse(notation) -> keys, err
// Parses a key sequence into an array of key tables, each holding code,
// name, notation, and shift/ctrl/alt flags. Returns nil and a message on
// invalid notation.
func parse(L *lua.LState) int {
	spec := L.CheckString(1)

	m, err := keymap.Parse(spec)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	seq := L.NewTable()
	for _, k := range m.Keys() {
		entry := L.NewTable()
		L.SetField(entry, "code", lua.LNumber(k.Code))
		L.SetField(entry, "name", lua.LString(k.Code.String()))
		L.SetField(entry, "notation", lua.LString(k.String()))
		L.SetField(entry, "shift", lua.LBool(k.Mods.HasShift()))
		L.SetField(entry, "ctrl", lua.LBool(k.Mods.HasCtrl()))
		L.SetField(entry, "alt", lua.LBool(k.Mods.HasAlt()))
		seq.Append(entry)
	}

	L.Push(seq)
	return 1
}

// normalize(notation) -> canonical, err
// Re-formats a key sequence to its canonical spelling.
func normalize(L *lua.LState) int {
	spec := L.CheckString(1)

	m, err := keymap.Parse(spec)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	L.Push(lua.LString(m.String()))
	return 1
}

// valid(notation) -> bool
func valid(L *lua.LState) int {
	spec := L.CheckString(1)

	_, err := keymap.Parse(spec)
	L.Push(lua.LBool(err == nil))
	return 1
}
