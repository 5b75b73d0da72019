//+build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/unicsmcr/hs_activities/config"
	"github.com/unicsmcr/hs_activities/environment"
	"github.com/unicsmcr/hs_activities/routers"
	"github.com/unicsmcr/hs_activities/routers/frontend"
	"github.com/unicsmcr/hs_activities/services/memory"
	"github.com/unicsmcr/hs_activities/services/remote"
	"github.com/unicsmcr/hs_activities/utils"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		frontend.NewRouter,
		remote.NewRemoteActivityService,
		memory.NewInMemoryStatusService,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}
