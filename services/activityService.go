package services

import (
	"context"

	"github.com/unicsmcr/hs_activities/entities"
)

// ActivityService is the service for interactions with the remote activities service
type ActivityService interface {
	// GetActivities fetches the full activity catalog, in the order the
	// activities service reports it
	GetActivities(ctx context.Context) (entities.ActivityCatalog, error)
	// SignUp registers the given email for the given activity and returns the
	// activities service's confirmation message
	SignUp(ctx context.Context, activity string, email string) (string, error)
	// Unregister removes the given email from the given activity and returns
	// the activities service's confirmation message
	Unregister(ctx context.Context, activity string, email string) (string, error)
}
