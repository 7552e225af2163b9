package agent

import (
	"context"
	"encoding/json"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/engine"
	"github.com/angband/angband-sub026/internal/engine/handlers"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/pkg/api"
	"github.com/angband/angband-sub026/pkg/logger"
	"github.com/angband/angband-sub026/pkg/utils"
)

// aimRange — дальше этого бот сначала подходит.
const aimRange = 6

// Стихии, которыми стреляет бот.
var botElements = []string{"FIRE", "COLD", "ELEC", "ACID", "POIS", "MISSILE", "LIGHT", "SHARD"}

// Bot — компьютерный игрок (headless agent). Подключается к сервису
// так же, как WebSocket-клиент: получает снимки через Hub и отвечает
// командами через ProcessCommand.
//
// Жизненный цикл:
//  1. NewBot -> регистрация в хабе, получение личного канала (Inbox).
//  2. Run -> захват управления персонажем и INIT.
//  3. На каждый снимок makeMove выбирает одну команду.
type Bot struct {
	Session string
	Service *engine.GameService
	Inbox   chan api.ServerResponse

	rng *utils.RNG
	log *logrus.Entry
}

func NewBot(session string, service *engine.GameService, seed int64) *Bot {
	l := logger.For("bot").WithField("session", session)
	l.Info("creating agent")
	return &Bot{
		Session: session,
		Service: service,
		Inbox:   service.Hub.Register(session),
		rng:     utils.NewRNG(seed),
		log:     l,
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run(ctx context.Context) {
	defer b.Service.Hub.Unregister(b.Session)
	defer b.Service.Release(b.Session)

	if !b.Service.Claim(b.Session) {
		b.log.Warn("character is controlled by someone else")
		return
	}
	b.send(domain.ActionInit, nil)

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-b.Inbox:
			if !ok {
				return
			}
			if state.Type != api.TypeUpdate || state.Player == nil {
				continue
			}
			if state.Player.IsDead {
				b.log.WithField("turn", state.Turn).Info("character died, agent stops")
				return
			}
			b.makeMove(state)
		}
	}
}

// makeMove отправляет решение бота на сервер.
func (b *Bot) makeMove(state api.ServerResponse) {
	action, payload := b.Decide(state)
	b.send(action, payload)
}

// Decide — мозг бота: бить соседа, стрелять в близкого, идти к дальнему,
// отдыхать раненым, иначе бродить.
func (b *Bot) Decide(state api.ServerResponse) (domain.ActionType, any) {
	me := state.Player
	// После отказа сервера не повторяем ту же атаку.
	if target := nearest(state.Monsters); target != nil && !rejected(state) {
		switch {
		case target.Dist <= 1:
			return domain.ActionAttack, api.EntityPayload{TargetID: target.ID}
		case target.Dist > aimRange:
			if d := b.approach(me.Pos, target.Pos); d != 0 {
				step := systems.Dir(d)
				return domain.ActionMove, api.DirectionPayload{Dx: step.X, Dy: step.Y}
			}
		}
		return domain.ActionAim, b.aimAt(target)
	}

	if me.HP < me.MaxHP/2 {
		return domain.ActionRest, api.RestPayload{}
	}
	return b.wander(state)
}

// approach — шаг к цели в обход стен по карте уровня.
func (b *Bot) approach(from, to api.Pos) int {
	var d int
	b.Service.WithLevel(func(l *domain.Level) {
		d = systems.ChaseDir(l, gruid.Point{X: from.X, Y: from.Y}, gruid.Point{X: to.X, Y: to.Y})
	})
	return d
}

func (b *Bot) aimAt(m *api.MonsterView) api.AimPayload {
	aim := api.AimPayload{
		Element:  botElements[b.rng.Pick(len(botElements))],
		Dice:     "3d6",
		TargetID: m.ID,
	}
	switch b.rng.Int0(3) {
	case 0:
		aim.Radius = 2
		aim.Dice = "20"
	case 1:
		aim.Beam = true
	}
	return aim
}

// wander делает случайный шаг; породу, которую можно прокопать, копает.
func (b *Bot) wander(state api.ServerResponse) (domain.ActionType, any) {
	tiles := make(map[api.Pos]api.TileView, len(state.Map))
	for _, t := range state.Map {
		tiles[api.Pos{X: t.X, Y: t.Y}] = t
	}

	me := state.Player.Pos
	for try := 0; try < 8; try++ {
		dir := b.rng.Int1(9)
		if dir == 5 {
			continue
		}
		dx, dy := systems.DDX[dir], systems.DDY[dir]
		t, known := tiles[api.Pos{X: me.X + dx, Y: me.Y + dy}]
		if !known {
			continue
		}
		if !t.IsWall {
			return domain.ActionMove, api.DirectionPayload{Dx: dx, Dy: dy}
		}
		if b.diggable(gruid.Point{X: me.X + dx, Y: me.Y + dy}) {
			return domain.ActionTunnel, api.DirectionPayload{Dx: dx, Dy: dy}
		}
	}
	return domain.ActionWait, nil
}

// diggable — завал или жила по карте уровня.
func (b *Bot) diggable(p gruid.Point) bool {
	var ok bool
	b.Service.WithLevel(func(l *domain.Level) {
		ok = l.Cave.InBounds(p) && systems.Diggable(l.Cave, p)
	})
	return ok
}

// rejected — прошлая команда вернула ошибку.
func rejected(state api.ServerResponse) bool {
	for _, e := range state.Logs {
		if e.Type == handlers.MsgError {
			return true
		}
	}
	return false
}

func nearest(ms []api.MonsterView) *api.MonsterView {
	var best *api.MonsterView
	for i := range ms {
		if best == nil || ms[i].Dist < best.Dist {
			best = &ms[i]
		}
	}
	return best
}

// --- Хелперы для отправки команд на сервер ---

// Command упаковывает решение в команду клиента.
func Command(session string, action domain.ActionType, payload any) (api.ClientCommand, error) {
	cmd := api.ClientCommand{Action: action.String(), Token: session}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return cmd, err
		}
		cmd.Payload = raw
	}
	return cmd, nil
}

func (b *Bot) send(action domain.ActionType, payload any) {
	cmd, err := Command(b.Session, action, payload)
	if err != nil {
		b.log.WithError(err).Error("marshal payload")
		return
	}
	if err := b.Service.ProcessCommand(cmd); err != nil {
		b.log.WithError(err).Warn("command refused")
	}
}
