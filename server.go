package main

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_activities/environment"
	"github.com/unicsmcr/hs_activities/routers"
)

// Server is the application's HTTP server
type Server struct {
	*gin.Engine
	Port string
}

// NewServer creates a Server with the application's routes and templates attached
func NewServer(mainRouter routers.MainRouter, env *environment.Env) Server {
	engine := gin.Default()
	engine.LoadHTMLGlob("templates/*/*.gohtml")
	engine.Static("/static", "./static")

	mainRouter.RegisterRoutes(&engine.RouterGroup)

	return Server{
		Engine: engine,
		Port:   env.Get(environment.Port),
	}
}
