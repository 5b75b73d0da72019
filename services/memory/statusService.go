package memory

import (
	"sync"
	"time"

	"github.com/unicsmcr/hs_activities/entities"
	"github.com/unicsmcr/hs_activities/services"
	"go.uber.org/zap"
)

type inMemoryStatusService struct {
	logger *zap.Logger

	mutex     sync.Mutex
	message   *entities.StatusMessage
	hideTimer *time.Timer
}

// NewInMemoryStatusService creates a StatusService that keeps the single
// transient status message in memory
func NewInMemoryStatusService(logger *zap.Logger) services.StatusService {
	return &inMemoryStatusService{
		logger: logger,
	}
}

func (s *inMemoryStatusService) Set(message entities.StatusMessage, window time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// a pending hide for the previous message must not fire for the new one
	if s.hideTimer != nil {
		s.hideTimer.Stop()
	}

	stored := message
	s.message = &stored
	s.hideTimer = time.AfterFunc(window, func() {
		s.hide(&stored)
	})

	s.logger.Debug("status message set",
		zap.String("text", message.Text),
		zap.String("severity", string(message.Severity)),
		zap.Duration("window", window))
}

func (s *inMemoryStatusService) hide(message *entities.StatusMessage) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// the slot may already hold a newer message
	if s.message == message {
		s.message = nil
		s.hideTimer = nil
	}
}

func (s *inMemoryStatusService) Current() *entities.StatusMessage {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.message == nil {
		return nil
	}

	current := *s.message
	return &current
}

func (s *inMemoryStatusService) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.hideTimer != nil {
		s.hideTimer.Stop()
		s.hideTimer = nil
	}
	s.message = nil
}
