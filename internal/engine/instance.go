package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/engine/handlers"
	"github.com/angband/angband-sub026/internal/engine/handlers/actions"
	"github.com/angband/angband-sub026/internal/infrastructure/storage"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/internal/systems/ai"
	"github.com/angband/angband-sub026/pkg/api"
	"github.com/angband/angband-sub026/pkg/dungeon"
	"github.com/angband/angband-sub026/pkg/logger"
	"github.com/angband/angband-sub026/pkg/utils"
)

var (
	ErrPlayerDead    = errors.New("the character is dead")
	ErrUnknownAction = errors.New("unknown action")
)

// Instance — одна партия: текущий уровень, игрок на нем и лог.
// Все методы вызываются из одной горутины (цикл GameService).
type Instance struct {
	Cfg   Config
	Reg   *domain.Registry
	Level *domain.Level

	Seed int64 // Сид, с которого начался текущий уровень

	Logs   []api.LogEntry        // Записи с прошлой рассылки
	Replay *domain.ReplaySession // Лента команд текущего уровня

	Store *storage.Service

	handlers map[domain.ActionType]handlers.HandlerFunc
	logSeq   uint64
}

func newInstance(cfg Config, reg *domain.Registry) (*Instance, error) {
	i := &Instance{
		Cfg:      cfg,
		Reg:      reg,
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	if cfg.SaveDir != "" {
		store, err := storage.NewService(cfg.SaveDir)
		if err != nil {
			return nil, err
		}
		i.Store = store
	}
	i.registerHandlers()
	return i, nil
}

// NewInstance создает персонажа и первый уровень глубины cfg.Depth.
func NewInstance(cfg Config, reg *domain.Registry) (*Instance, error) {
	i, err := newInstance(cfg, reg)
	if err != nil {
		return nil, err
	}
	p := dungeon.CreatePlayer(cfg.PlayerName, cfg.PlayerLevel, reg)
	i.enterLevel(cfg.Depth, p, nil, 0)
	i.runUntilPlayer()
	return i, nil
}

// LoadInstance продолжает партию из файла сохранения.
func LoadInstance(cfg Config, reg *domain.Registry, path string) (*Instance, error) {
	i, err := newInstance(cfg, reg)
	if err != nil {
		return nil, err
	}
	store := i.Store
	if store == nil {
		store = &storage.Service{}
	}
	save, err := store.Load(path, reg)
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	l := save.Level
	if l.Player == nil {
		return nil, fmt.Errorf("load game: %s has no player", path)
	}
	l.Msgs = domain.MessageFunc(i.gameMsg)
	i.Level = l
	i.Seed = save.Header.Seed
	i.Replay = save.Replay
	if i.Replay == nil {
		i.Replay = &domain.ReplaySession{Depth: l.Depth, Seed: i.Seed, Timestamp: time.Now().Unix()}
	}
	systems.HandleUpdates(l)
	i.runUntilPlayer()
	return i, nil
}

func (i *Instance) registerHandlers() {
	i.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	i.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	i.handlers[domain.ActionTunnel] = handlers.WithPayload(actions.HandleTunnel)
	i.handlers[domain.ActionAttack] = handlers.WithPayload(actions.HandleAttack)
	i.handlers[domain.ActionAim] = handlers.WithPayload(actions.HandleAim)
	i.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	i.handlers[domain.ActionRest] = handlers.WithOptionalPayload(actions.HandleRest)
	i.handlers[domain.ActionPickup] = handlers.WithEmptyPayload(actions.HandlePickup)
	i.handlers[domain.ActionDrop] = handlers.WithPayload(actions.HandleDrop)
	i.handlers[domain.ActionWield] = handlers.WithPayload(actions.HandleWield)
	i.handlers[domain.ActionSave] = handlers.WithEmptyPayload(actions.HandleSave)
}

// enterLevel генерирует уровень depth и ставит на него игрока.
// Знания о монстрах и игровое время переходят с прошлого уровня.
func (i *Instance) enterLevel(depth int, p *domain.Player, lore []domain.Lore, turn int64) {
	seed := i.Cfg.LevelSeed(depth)
	l, start := dungeon.Generate(depth, i.Reg, utils.NewRNG(seed))
	l.Opts = i.Cfg.Options()
	l.Msgs = domain.MessageFunc(i.gameMsg)
	l.Turn = turn
	if len(lore) == len(l.Lore) {
		l.Lore = lore
	}

	p.Leaving = false
	p.NewDepth = 0
	l.PlacePlayer(p, start)
	l.Update |= domain.UpdDistance
	systems.HandleUpdates(l)

	i.Level = l
	i.Seed = seed
	i.Replay = &domain.ReplaySession{
		Depth:     depth,
		Seed:      seed,
		Timestamp: time.Now().Unix(),
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"depth":     depth,
		"seed":      seed,
		"monsters":  l.Monsters.Len(),
	}).Info("level entered")
}

// Act выполняет команду игрока и прокручивает мир до его следующего хода.
func (i *Instance) Act(cmd domain.InternalCommand) (handlers.Result, error) {
	l := i.Level
	if i.Dead() && cmd.Action.TakesTurn() {
		return handlers.EmptyResult(), ErrPlayerDead
	}
	handler, ok := i.handlers[cmd.Action]
	if !ok {
		return handlers.EmptyResult(), fmt.Errorf("%w: %s", ErrUnknownAction, cmd.Action)
	}

	ctx := handlers.Context{Level: l}
	if i.Store != nil {
		ctx.Save = i.Save
	}

	turn := l.Turn
	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		i.AddLog(domain.Capitalize(err.Error())+".", handlers.MsgError)
		return result, err
	}
	if result.Msg != "" {
		i.AddLog(result.Msg, result.MsgType)
	}
	systems.HandleUpdates(l)

	if result.TookTurn {
		i.Replay.Record(turn, cmd.Action, cmd.Payload)
		i.spendTurn()
		i.repeat(result)
	}

	if ev := i.processEvent(); ev != domain.EventNone {
		result.Event = ev
	}
	return result, nil
}

// spendTurn — игрок потратил действие, мир идет до его следующего хода.
func (i *Instance) spendTurn() {
	i.Level.Player.Energy -= domain.TurnEnergy
	i.runUntilPlayer()
}

// repeat продолжает отдых, пока его не прервут.
func (i *Instance) repeat(r handlers.Result) {
	l := i.Level
	p := l.Player
	for n := 0; n < r.Repeat; n++ {
		if p.Leaving || i.disturbed() {
			return
		}
		if r.UntilHealed && p.Chp >= p.Mhp {
			l.Msg("You feel rested.")
			return
		}
		i.spendTurn()
	}
}

// disturbed — рядом видимый бодрствующий монстр.
func (i *Instance) disturbed() bool {
	l := i.Level
	for _, h := range l.Monsters.Handles() {
		if m := l.Monster(h); m.Visible && m.Sleep == 0 {
			return true
		}
	}
	return false
}

// runUntilPlayer крутит игровые ходы, пока у игрока не накопится энергия
// на действие. Монстры с большим запасом энергии ходят раньше игрока.
func (i *Instance) runUntilPlayer() {
	l := i.Level
	p := l.Player
	for !p.Leaving {
		if p.Energy >= domain.TurnEnergy {
			ai.ProcessMonsters(l, p.Energy+1)
			systems.HandleUpdates(l)
			if p.Leaving {
				return
			}
			// Парализованный пропускает ход.
			if p.Is(domain.TmdParalyzed) {
				p.Energy -= domain.TurnEnergy
				continue
			}
			return
		}
		ai.ProcessMonsters(l, domain.TurnEnergy)
		systems.HandleUpdates(l)
		if p.Leaving {
			return
		}
		i.gameTurn()
	}
}

// gameTurn — один игровой ход: обслуживание мира и прирост энергии.
func (i *Instance) gameTurn() {
	l := i.Level
	l.Turn++
	if l.Turn%systems.WorldPeriod == 0 {
		systems.ProcessWorld(l)
		systems.HandleUpdates(l)
	}
	ai.GrantEnergy(l)
}

// Save пишет снимок текущего уровня.
func (i *Instance) Save() (string, error) {
	if i.Store == nil {
		return "", errors.New("no save directory configured")
	}
	return i.Store.Save(storage.NewSave(i.Level, i.Replay))
}

// Dead — персонаж погиб, партия окончена.
func (i *Instance) Dead() bool { return i.Level.Player.IsDead }
