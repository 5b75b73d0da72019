package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_activities/entities"
	"github.com/unicsmcr/hs_activities/environment"
	"github.com/unicsmcr/hs_activities/services"
	"go.uber.org/zap"
)

type remoteActivityService struct {
	logger  *zap.Logger
	client  *http.Client
	baseURL string
}

// NewRemoteActivityService creates an ActivityService backed by the remote
// activities service over HTTP
func NewRemoteActivityService(logger *zap.Logger, env *environment.Env) services.ActivityService {
	return &remoteActivityService{
		logger:  logger,
		client:  &http.Client{},
		baseURL: env.Get(environment.ActivitiesServiceURL),
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *remoteActivityService) GetActivities(ctx context.Context) (entities.ActivityCatalog, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/activities", s.baseURL), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not create activities request")
	}

	res, err := s.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch activities")
	}
	defer res.Body.Close()

	if !isSuccess(res.StatusCode) {
		return nil, s.requestError(res)
	}

	var catalog entities.ActivityCatalog
	err = json.NewDecoder(res.Body).Decode(&catalog)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode activities response")
	}

	return catalog, nil
}

func (s *remoteActivityService) SignUp(ctx context.Context, activity string, email string) (string, error) {
	endpoint := fmt.Sprintf("%s/activities/%s/signup?email=%s",
		s.baseURL, url.PathEscape(activity), url.QueryEscape(email))

	req, err := http.NewRequest(http.MethodPost, endpoint, nil)
	if err != nil {
		return "", errors.Wrap(err, "could not create signup request")
	}

	res, err := s.client.Do(req.WithContext(ctx))
	if err != nil {
		return "", errors.Wrapf(err, "could not sign up %s for %s", email, activity)
	}
	defer res.Body.Close()

	return s.confirmationMessage(res)
}

func (s *remoteActivityService) Unregister(ctx context.Context, activity string, email string) (string, error) {
	endpoint := fmt.Sprintf("%s/activities/%s/unregister/%s",
		s.baseURL, url.PathEscape(activity), url.PathEscape(email))

	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return "", errors.Wrap(err, "could not create unregister request")
	}

	res, err := s.client.Do(req.WithContext(ctx))
	if err != nil {
		return "", errors.Wrapf(err, "could not unregister %s from %s", email, activity)
	}
	defer res.Body.Close()

	return s.confirmationMessage(res)
}

func (s *remoteActivityService) confirmationMessage(res *http.Response) (string, error) {
	if !isSuccess(res.StatusCode) {
		return "", s.requestError(res)
	}

	var body messageResponse
	err := json.NewDecoder(res.Body).Decode(&body)
	if err != nil {
		return "", errors.Wrap(err, "could not decode confirmation response")
	}

	return body.Message, nil
}

// requestError extracts the service's failure detail from a non-2xx response.
// A response body that cannot be decoded leaves the detail empty rather than
// failing the error path itself.
func (s *remoteActivityService) requestError(res *http.Response) error {
	var body errorResponse
	err := json.NewDecoder(res.Body).Decode(&body)
	if err != nil {
		s.logger.Warn("could not decode failure response from activities service",
			zap.Int("status", res.StatusCode), zap.Error(err))
	}

	return services.NewRequestError(res.StatusCode, body.Detail)
}

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}
