package frontend

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_activities/config"
	"github.com/unicsmcr/hs_activities/routers/models"
	"github.com/unicsmcr/hs_activities/services"
	"go.uber.org/zap"
)

// Router is the router for the activity board frontend
type Router interface {
	models.Router
	ActivityBoardPage(*gin.Context)
	SignUp(*gin.Context)
	ConfirmUnregisterPage(*gin.Context)
	Unregister(*gin.Context)
}

type frontendRouter struct {
	models.BaseRouter
	logger          *zap.Logger
	cfg             *config.AppConfig
	activityService services.ActivityService
	statusService   services.StatusService
}

// NewRouter creates a Router for the activity board frontend
func NewRouter(logger *zap.Logger, cfg *config.AppConfig, activityService services.ActivityService, statusService services.StatusService) Router {
	return &frontendRouter{
		logger:          logger,
		cfg:             cfg,
		activityService: activityService,
		statusService:   statusService,
	}
}

// RegisterRoutes registers all of the frontend's routes to the given router group
func (r *frontendRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("", r.ActivityBoardPage)
	routerGroup.POST("signup", r.SignUp)
	routerGroup.GET("unregister", r.ConfirmUnregisterPage)
	routerGroup.POST("unregister", r.Unregister)
}
