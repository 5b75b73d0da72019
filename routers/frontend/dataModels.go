package frontend

import (
	"github.com/unicsmcr/hs_activities/config"
	"github.com/unicsmcr/hs_activities/entities"
)

type templateDataModel struct {
	Cfg  *config.AppConfig
	Err  string
	Data interface{}
}

type boardDataModel struct {
	Catalog entities.ActivityCatalog
	Status  *entities.StatusMessage
	// form values to re-populate after a failed signup
	SignupEmail    string
	SignupActivity string
}

type confirmUnregisterDataModel struct {
	Activity string
	Email    string
}
