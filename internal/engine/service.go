package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/network"
	"github.com/angband/angband-sub026/pkg/api"
	"github.com/angband/angband-sub026/pkg/logger"
)

// commandBuffer — емкость очереди команд от клиентов.
const commandBuffer = 100

var ErrNotInControl = errors.New("another session controls the character")

// GameService — однопоточный цикл партии. Команды приходят из WebSocket
// через CommandChan, состояние после каждой команды уходит в Hub.
type GameService struct {
	mu   sync.Mutex
	inst *Instance

	// owner — сессия, управляющая персонажем. Остальные только смотрят.
	owner string

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster
}

func NewService(inst *Instance) *GameService {
	return &GameService{
		inst:        inst,
		CommandChan: make(chan domain.InternalCommand, commandBuffer),
		Hub:         network.NewBroadcaster(),
	}
}

// Claim отдает управление сессии, если персонаж свободен.
// Пустой токен — наблюдатель.
func (s *GameService) Claim(session string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session == "" {
		return false
	}
	if s.owner == "" {
		s.owner = session
	}
	return s.owner == session
}

// Release освобождает управление при отключении владельца.
func (s *GameService) Release(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner == session {
		s.owner = ""
	}
}

// Owner — сессия, у которой сейчас управление, или пустая строка.
func (s *GameService) Owner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner
}

// ProcessCommand принимает команду от внешнего мира (WebSocket)
func (s *GameService) ProcessCommand(cmd api.ClientCommand) error {
	action := domain.ParseAction(cmd.Action)
	if action == domain.ActionUnknown {
		return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
	s.CommandChan <- domain.InternalCommand{
		Action:  action,
		Token:   cmd.Token,
		Payload: cmd.Payload,
	}
	return nil
}

// Run обрабатывает очередь команд до отмены ctx.
func (s *GameService) Run(ctx context.Context) {
	log := logger.For("loop")
	log.Info("game loop started")
	for {
		select {
		case <-ctx.Done():
			log.Info("game loop stopped")
			return
		case cmd := <-s.CommandChan:
			state, err := s.Execute(cmd)
			if err != nil {
				s.Hub.SendTo(cmd.Token, api.ServerResponse{Type: api.TypeError, Error: err.Error()})
			}
			if state != nil {
				s.Hub.Broadcast(*state)
			}
		}
	}
}

// Execute выполняет одну команду и возвращает снимок для рассылки.
// Ошибка команды не мешает снимку: лог с текстом ошибки тоже надо разослать.
func (s *GameService) Execute(cmd domain.InternalCommand) (*api.ServerResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cmd.Action != domain.ActionInit && (s.owner == "" || cmd.Token != s.owner) {
		return nil, ErrNotInControl
	}

	res, err := s.inst.Act(cmd)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "loop",
			"action":    cmd.Action.String(),
		}).WithError(err).Debug("command rejected")
	} else if res.Event != domain.EventNone {
		logger.Log.WithFields(logrus.Fields{
			"component": "loop",
			"event":     res.Event.String(),
			"depth":     s.inst.Level.Depth,
		}).Info("level event")
	}

	state := s.inst.BuildState()
	s.inst.DrainLogs()
	return state, err
}

// Snapshot — текущее состояние без выполнения команд.
func (s *GameService) Snapshot() *api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inst.BuildState()
}

// WithLevel дает доступ к уровню под блокировкой цикла.
func (s *GameService) WithLevel(fn func(l *domain.Level)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.inst.Level)
}

// Save пишет снимок партии, например при остановке сервера.
func (s *GameService) Save() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inst.Save()
}
