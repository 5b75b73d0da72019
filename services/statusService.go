package services

import (
	"time"

	"github.com/unicsmcr/hs_activities/entities"
)

// StatusService owns the single transient status message shared by the signup
// and unregister flows. Setting a message replaces any prior one and restarts
// the display window, last write wins.
type StatusService interface {
	// Set replaces the current message and hides it once the display window elapses
	Set(message entities.StatusMessage, window time.Duration)
	// Current returns the visible message, or nil when there is none or the
	// display window of the last message has elapsed
	Current() *entities.StatusMessage
	// Clear hides the current message immediately
	Clear()
}
