package models

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is the interface for all routers to implement
type Router interface {
	RegisterRoutes(routerGroup *gin.RouterGroup)
	Heartbeat(ctx *gin.Context)
}

// BaseRouter provides the route implementations shared by all routers
type BaseRouter struct{}

type heartbeatResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Heartbeat responds with a heartbeat message
func (r BaseRouter) Heartbeat(ctx *gin.Context) {
	message := fmt.Sprintf("request to %s received", ctx.Request.URL.String())

	ctx.JSON(http.StatusOK, heartbeatResponse{Status: "OK", Code: http.StatusOK, Message: message})
}
