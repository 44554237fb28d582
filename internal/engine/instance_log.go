package engine

import (
	"fmt"
	"time"

	"github.com/nancyzera/jurassic-game/pkg/api"
	"github.com/nancyzera/jurassic-game/pkg/logger"

	"github.com/sirupsen/logrus"
)

// maxPendingLogs bounds the notice buffer of a session nobody drains.
const maxPendingLogs = 64

// addLog queues a player-facing notice for the next snapshot.
func (s *Session) addLog(text, logType string) {
	s.logSeq++
	s.logs = append(s.logs, api.LogEntry{
		ID:        fmt.Sprintf("%s_%d", s.ID, s.logSeq),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	if len(s.logs) > maxPendingLogs {
		s.logs = s.logs[len(s.logs)-maxPendingLogs:]
	}
	logger.Log.WithFields(logrus.Fields{
		"session_id": s.ID,
		"component":  "game_log",
		"log_type":   logType,
	}).Debug(text)
}
