package models

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_activities/testutils"
)

func Test_Heartbeat__should_return_OK(t *testing.T) {
	w := httptest.NewRecorder()
	testCtx, _ := gin.CreateTestContext(w)
	testCtx.Request = httptest.NewRequest(http.MethodGet, "/healthcheck", nil)

	router := BaseRouter{}
	router.Heartbeat(testCtx)

	assert.Equal(t, http.StatusOK, w.Code)

	var res heartbeatResponse
	err := testutils.UnmarshallResponse(w.Body, &res)
	assert.NoError(t, err)

	assert.Equal(t, "OK", res.Status)
	assert.Equal(t, http.StatusOK, res.Code)
}
