package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_activities/routers/frontend"
	"github.com/unicsmcr/hs_activities/routers/models"
	"go.uber.org/zap"
)

// MainRouter is the top-level router of the application
type MainRouter interface {
	models.Router
}

type mainRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	frontendRouter frontend.Router
}

// NewMainRouter creates a MainRouter with the application's routers attached
func NewMainRouter(logger *zap.Logger, frontendRouter frontend.Router) MainRouter {
	return &mainRouter{
		logger:         logger,
		frontendRouter: frontendRouter,
	}
}

// RegisterRoutes registers all of the application's routes to the given router group
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("healthcheck", r.Heartbeat)

	r.frontendRouter.RegisterRoutes(routerGroup)
}
