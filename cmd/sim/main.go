package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angband/angband-sub026/internal/agent"
	"github.com/angband/angband-sub026/internal/data"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/engine"
	"github.com/angband/angband-sub026/internal/engine/handlers"
	"github.com/angband/angband-sub026/pkg/api"
	"github.com/angband/angband-sub026/pkg/logger"
)

const (
	simSession = "sim"
	logSession = "sim_log"
)

// Стили строк лога.
var (
	styleInfo   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	styleCombat = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleSystem = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
	styleTurn   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(7).Align(lipgloss.Right)
	styleStatus = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)
)

func main() {
	logger.Init()

	cfg := engine.NewConfig()
	var seed int64
	var turns int64
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.IntVar(&cfg.Depth, "depth", 5, "Dungeon level")
	flag.Int64Var(&turns, "turns", 2000, "Game turns to simulate")
	flag.StringVar(&cfg.DataDir, "data", "", "Directory with monsters.lua/objects.lua (empty: embedded)")
	flag.Parse()
	if seed != 0 {
		cfg.Seed = seed
	}

	var reg *domain.Registry
	var err error
	if cfg.DataDir != "" {
		reg, err = data.Load(cfg.DataDir)
	} else {
		reg, err = data.LoadDefault()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "load data:", err)
		os.Exit(1)
	}

	inst, err := engine.NewInstance(cfg, reg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "start game:", err)
		os.Exit(1)
	}
	svc := engine.NewService(inst)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := svc.Hub.Register(logSession)
	go svc.Run(ctx)
	go agent.NewBot(simSession, svc, cfg.Seed).Run(ctx)

	var last api.ServerResponse
	for state := range updates {
		if state.Type != api.TypeUpdate {
			continue
		}
		for _, e := range state.Logs {
			fmt.Println(styleTurn.Render(fmt.Sprint(e.Turn)) + " " + styleFor(e.Type).Render(e.Text))
		}
		last = state
		if state.Turn >= turns || (state.Player != nil && state.Player.IsDead) {
			break
		}
	}
	cancel()
	fmt.Println(status(last, cfg.Seed))
}

func styleFor(logType string) lipgloss.Style {
	switch logType {
	case handlers.MsgCombat:
		return styleCombat
	case handlers.MsgError:
		return styleError
	case handlers.MsgSystem:
		return styleSystem
	}
	return styleInfo
}

// status — итоговая строка: глубина, ход, здоровье, монстры в поле зрения.
func status(s api.ServerResponse, seed int64) string {
	parts := []string{
		fmt.Sprintf("seed %d", seed),
		fmt.Sprintf("depth %d", s.Depth),
		fmt.Sprintf("turn %d", s.Turn),
	}
	if p := s.Player; p != nil {
		parts = append(parts, fmt.Sprintf("hp %d/%d", p.HP, p.MaxHP), fmt.Sprintf("exp %d", p.Exp))
		if p.IsDead {
			parts = append(parts, "DEAD")
		}
	}
	parts = append(parts, fmt.Sprintf("%d in view", len(s.Monsters)))
	return styleStatus.Render(" " + strings.Join(parts, " | ") + " ")
}
