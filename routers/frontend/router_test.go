package frontend

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_activities/config"
	mock_services "github.com/unicsmcr/hs_activities/mocks/services"
	"go.uber.org/zap"
)

func Test_RegisterRoutes__should_register_required_routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAService := mock_services.NewMockActivityService(ctrl)
	mockSService := mock_services.NewMockStatusService(ctrl)

	mockAService.EXPECT().GetActivities(gomock.Any()).Return(nil, nil).AnyTimes()
	mockAService.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil).AnyTimes()
	mockAService.EXPECT().Unregister(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil).AnyTimes()
	mockSService.EXPECT().Set(gomock.Any(), gomock.Any()).AnyTimes()
	mockSService.EXPECT().Current().Return(nil).AnyTimes()

	router := NewRouter(zap.NewNop(), &config.AppConfig{Name: "test"}, mockAService, mockSService)

	tests := []struct {
		route  string
		method string
	}{
		{
			route:  "/",
			method: http.MethodGet,
		},
		{
			route:  "/signup",
			method: http.MethodPost,
		},
		{
			route:  "/unregister",
			method: http.MethodGet,
		},
		{
			route:  "/unregister",
			method: http.MethodPost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.route, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, testServer := gin.CreateTestContext(w)

			router.RegisterRoutes(&testServer.RouterGroup)

			req := httptest.NewRequest(tt.method, tt.route, nil)

			testServer.LoadHTMLGlob("../../templates/*/*.gohtml")
			testServer.ServeHTTP(w, req)

			// making sure route is defined
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}
