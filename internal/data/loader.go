// Package data загружает справочники рас монстров и видов предметов из
// Lua-файлов. Lua-машина живет только на время загрузки.
package data

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

//go:embed defaults/*.lua
var defaultFS embed.FS

// collector накапливает определения по мере исполнения файлов.
type collector struct {
	races []rawDef
	kinds []rawDef
}

// rawDef — еще не разобранная таблица Monster "name" {...} или Object "name" {...}.
type rawDef struct {
	name  string
	file  string
	table *lua.LTable
}

// Load читает все .lua файлы каталога dir.
func Load(dir string) (*domain.Registry, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("reading data directory %s: %w", dir, err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadDefault — встроенные в бинарник данные.
func LoadDefault() (*domain.Registry, error) {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		return nil, fmt.Errorf("opening embedded data: %w", err)
	}
	return LoadFS(sub)
}

// MustLoadDefault — для тестов и утилит, где встроенные данные обязаны быть целы.
func MustLoadDefault() *domain.Registry {
	reg, err := LoadDefault()
	if err != nil {
		panic(err)
	}
	return reg
}

// LoadFS исполняет .lua файлы из корня fsys в алфавитном порядке,
// компилирует и проверяет справочники.
func LoadFS(fsys fs.FS) (*domain.Registry, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading data files: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .lua files found")
	}
	sort.Strings(files)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	current := ""
	registerAPI(L, coll, &current)

	for _, f := range files {
		src, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		current = f
		fn, err := L.Load(strings.NewReader(string(src)), f)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", f, err)
		}
		L.Push(fn)
		if err := L.PCall(0, lua.MultRet, nil); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	reg, ve := compile(coll)
	validate(reg, ve)
	for _, w := range ve.Warnings {
		logger.Log.WithField("component", "data_loader").Warn(w)
	}
	if len(ve.Errors) > 0 {
		return nil, ve
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "data_loader",
		"files":     len(files),
		"races":     len(reg.Races) - 1,
		"kinds":     len(reg.Kinds) - 1,
	}).Debug("data loaded")
	return reg, nil
}

// openSafeLibs открывает только безопасную часть стандартной библиотеки.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox убирает опасные глобалы.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	} {
		L.SetGlobal(name, lua.LNil)
	}
	// Данные должны быть детерминированы.
	if tbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		tbl.RawSetString("randomseed", lua.LNil)
		tbl.RawSetString("random", lua.LNil)
	}
}
