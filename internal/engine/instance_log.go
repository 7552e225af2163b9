package engine

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/engine/handlers"
	"github.com/angband/angband-sub026/pkg/api"
	"github.com/angband/angband-sub026/pkg/logger"
)

// maxPendingLogs — сколько непрочитанных записей держим; старые отбрасываются.
const maxPendingLogs = 500

// AddLog добавляет запись в лог инстанса и дублирует ее в logrus.
func (i *Instance) AddLog(text, logType string) {
	i.logSeq++
	turn, depth := int64(0), 0
	if i.Level != nil {
		turn, depth = i.Level.Turn, i.Level.Depth
	}
	i.Logs = append(i.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", i.Seed, i.logSeq),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
		Turn:      turn,
	})
	if n := len(i.Logs); n > maxPendingLogs {
		i.Logs = append(i.Logs[:0], i.Logs[n-maxPendingLogs:]...)
	}
	logger.Log.WithFields(logrus.Fields{
		"depth":     depth,
		"turn":      turn,
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)
}

// gameMsg — приемник сообщений уровня.
func (i *Instance) gameMsg(text string) {
	i.AddLog(text, handlers.MsgInfo)
}

// DrainLogs отдает накопленные записи и очищает очередь.
func (i *Instance) DrainLogs() []api.LogEntry {
	out := i.Logs
	i.Logs = nil
	return out
}
