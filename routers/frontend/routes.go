package frontend

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_activities/entities"
	"github.com/unicsmcr/hs_activities/services"
	"go.uber.org/zap"
)

const (
	loadActivitiesFailedMsg = "Failed to load activities. Please try again later."
	signUpFailedMsg         = "Failed to sign up. Please try again."
	unregisterFailedMsg     = "Failed to unregister. Please try again."
	genericFailureMsg       = "An error occurred"
)

func (r *frontendRouter) ActivityBoardPage(ctx *gin.Context) {
	r.renderBoard(ctx, "", "")
}

// renderBoard fetches a fresh catalog and renders the full board. The catalog
// is never cached, a failed fetch replaces the activity list with a fixed
// failure message and leaves the rest of the page intact.
func (r *frontendRouter) renderBoard(ctx *gin.Context, signupEmail string, signupActivity string) {
	catalog, err := r.activityService.GetActivities(ctx)
	if err != nil {
		r.logger.Error("could not fetch activities", zap.Error(err))
		ctx.HTML(http.StatusOK, "board.gohtml", templateDataModel{
			Cfg: r.cfg,
			Err: loadActivitiesFailedMsg,
			Data: boardDataModel{
				Status:         r.statusService.Current(),
				SignupEmail:    signupEmail,
				SignupActivity: signupActivity,
			},
		})
		return
	}

	ctx.HTML(http.StatusOK, "board.gohtml", templateDataModel{
		Cfg: r.cfg,
		Data: boardDataModel{
			Catalog:        catalog,
			Status:         r.statusService.Current(),
			SignupEmail:    signupEmail,
			SignupActivity: signupActivity,
		},
	})
}

func (r *frontendRouter) SignUp(ctx *gin.Context) {
	email := ctx.PostForm("email")
	activity := ctx.PostForm("activity")

	message, err := r.activityService.SignUp(ctx, activity, email)
	if err != nil {
		r.logger.Error("could not sign up for activity",
			zap.String("activity", activity), zap.String("email", email), zap.Error(err))
		r.statusService.Set(entities.StatusMessage{
			Text:     failureText(err, signUpFailedMsg),
			Severity: entities.StatusError,
		}, r.cfg.StatusWindows.Signup())

		// the form stays populated after a failure
		r.renderBoard(ctx, email, activity)
		return
	}

	r.statusService.Set(entities.StatusMessage{
		Text:     message,
		Severity: entities.StatusSuccess,
	}, r.cfg.StatusWindows.Signup())

	ctx.Redirect(http.StatusSeeOther, "/")
}

func (r *frontendRouter) ConfirmUnregisterPage(ctx *gin.Context) {
	activity := ctx.Query("activity")
	email := ctx.Query("email")
	if activity == "" || email == "" {
		r.logger.Warn("unregister confirmation requested without activity or email")
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	ctx.HTML(http.StatusOK, "confirmUnregister.gohtml", templateDataModel{
		Cfg: r.cfg,
		Data: confirmUnregisterDataModel{
			Activity: activity,
			Email:    email,
		},
	})
}

func (r *frontendRouter) Unregister(ctx *gin.Context) {
	activity := ctx.PostForm("activity")
	email := ctx.PostForm("email")

	message, err := r.activityService.Unregister(ctx, activity, email)
	if err != nil {
		r.logger.Error("could not unregister from activity",
			zap.String("activity", activity), zap.String("email", email), zap.Error(err))
		r.statusService.Set(entities.StatusMessage{
			Text:     failureText(err, unregisterFailedMsg),
			Severity: entities.StatusError,
		}, r.cfg.StatusWindows.UnregisterFailure())

		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	r.statusService.Set(entities.StatusMessage{
		Text:     message,
		Severity: entities.StatusSuccess,
	}, r.cfg.StatusWindows.UnregisterSuccess())

	ctx.Redirect(http.StatusSeeOther, "/")
}

// failureText picks the user-facing text for a failed mutation: the activities
// service's own detail when it sent one, a generic fallback for structured
// failures without detail, and a fixed operation-specific message when no
// response was obtained at all.
func failureText(err error, transportFailureMsg string) string {
	if reqErr, ok := errors.Cause(err).(*services.RequestError); ok {
		if reqErr.Detail != "" {
			return reqErr.Detail
		}
		return genericFailureMsg
	}
	return transportFailureMsg
}
