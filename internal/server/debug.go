package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/engine"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/pkg/logger"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/monsters", h.handleMonsters)
	mux.HandleFunc("/debug/cave", h.handleCave)
	mux.HandleFunc("/debug/player", h.handlePlayer)
	mux.HandleFunc("/debug/flow", h.handleFlow)
	mux.HandleFunc("/debug/sessions", h.handleSessions)
	mux.HandleFunc("/debug/objects", h.handleObjects)
}

// /debug/monsters - все монстры уровня, включая невидимых и спящих
func (h *DebugHandler) handleMonsters(w http.ResponseWriter, r *http.Request) {
	type monsterDump struct {
		ID     string   `json:"id"`
		Race   string   `json:"race"`
		X      int      `json:"x"`
		Y      int      `json:"y"`
		HP     int      `json:"hp"`
		MaxHP  int      `json:"max_hp"`
		Energy int      `json:"energy"`
		Speed  int      `json:"speed"`
		Mood   string   `json:"mood"`
		Cdis   int      `json:"cdis"`
		Smart  []string `json:"smart,omitempty"`
		Known  []string `json:"known,omitempty"`
		Spells []string `json:"spells,omitempty"`
	}

	var dump []monsterDump
	h.Service.WithLevel(func(l *domain.Level) {
		for _, mh := range l.Monsters.Handles() {
			m := l.Monster(mh)
			lore := l.LoreOf(m)
			dump = append(dump, monsterDump{
				ID:     mh.String(),
				Race:   l.RaceOf(m).Name,
				X:      m.Pos.X,
				Y:      m.Pos.Y,
				HP:     m.HP,
				MaxHP:  m.MaxHP,
				Energy: m.Energy,
				Speed:  m.Speed,
				Mood:   m.Mood().String(),
				Cdis:   m.Cdis,
				Smart:  domain.SmartFlagNames(m.Smart),
				Known:  domain.RaceFlagNames(lore.Flags),
				Spells: domain.SpellNames(lore.Spells),
			})
		}
	})
	writeJSON(w, dump)
}

// /debug/cave - вся карта уровня текстом, без тумана войны
func (h *DebugHandler) handleCave(w http.ResponseWriter, r *http.Request) {
	var sb strings.Builder
	h.Service.WithLevel(func(l *domain.Level) {
		c := l.Cave
		for y := 0; y < c.H; y++ {
			for x := 0; x < c.W; x++ {
				pt := gruid.Point{X: x, Y: y}
				occ := c.At(pt)
				switch {
				case occ.IsPlayer():
					sb.WriteByte('@')
				case !occ.IsEmpty():
					mh, _ := occ.Monster()
					sb.WriteByte(l.RaceOf(l.Monster(mh)).Char())
				default:
					sb.WriteRune(c.Feat(pt).Rune())
				}
			}
			sb.WriteByte('\n')
		}
	})
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(sb.String())); err != nil {
		logger.Log.WithError(err).Debug("debug cave write failed")
	}
}

// /debug/player - полная структура персонажа
func (h *DebugHandler) handlePlayer(w http.ResponseWriter, r *http.Request) {
	var p domain.Player
	h.Service.WithLevel(func(l *domain.Level) { p = *l.Player })
	writeJSON(w, p)
}

// /debug/objects - предметы уровня: на полу и у монстров
func (h *DebugHandler) handleObjects(w http.ResponseWriter, r *http.Request) {
	type objectDump struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		Category string   `json:"category"`
		X        int      `json:"x"`
		Y        int      `json:"y"`
		Number   int      `json:"number"`
		HeldBy   string   `json:"held_by,omitempty"`
		Flags    []string `json:"flags,omitempty"`
	}

	var dump []objectDump
	h.Service.WithLevel(func(l *domain.Level) {
		for _, oh := range l.Objects.Handles() {
			o := l.Object(oh)
			d := objectDump{
				ID:       oh.String(),
				Name:     o.Name,
				Category: o.Tval.Category().String(),
				X:        o.Pos.X,
				Y:        o.Pos.Y,
				Number:   o.Number,
				Flags:    domain.ObjFlagNames(o.Flags),
			}
			if !o.HeldBy.IsNil() {
				d.HeldBy = o.HeldBy.String()
			}
			dump = append(dump, d)
		}
	})
	writeJSON(w, dump)
}

// /debug/sessions - подписчики рассылки и владелец управления
func (h *DebugHandler) handleSessions(w http.ResponseWriter, r *http.Request) {
	owner := h.Service.Owner()
	writeJSON(w, map[string]any{
		"subscribers":    h.Service.Hub.SubscriberCount(),
		"owner":          owner,
		"ownerConnected": owner != "" && h.Service.Hub.HasSubscriber(owner),
	})
}

// /debug/flow - поле запаха и звука: шагов до игрока по каждой клетке
func (h *DebugHandler) handleFlow(w http.ResponseWriter, r *http.Request) {
	var sb strings.Builder
	h.Service.WithLevel(func(l *domain.Level) {
		c := l.Cave
		for y := 0; y < c.H; y++ {
			for x := 0; x < c.W; x++ {
				pt := gruid.Point{X: x, Y: y}
				if !systems.FlowFresh(l, pt) {
					sb.WriteByte(' ')
					continue
				}
				cost := c.FlowCost(pt)
				if cost > 35 {
					sb.WriteByte('+')
					continue
				}
				sb.WriteByte("0123456789abcdefghijklmnopqrstuvwxyz"[cost])
			}
			sb.WriteByte('\n')
		}
	})
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(sb.String())); err != nil {
		logger.Log.WithError(err).Debug("debug flow write failed")
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	// Разрешаем запросы с любого источника (нужно для локального отладочного клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("debug json encode failed")
	}
}
