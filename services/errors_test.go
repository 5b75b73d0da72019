package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RequestError__should_use_the_detail_as_its_message(t *testing.T) {
	err := NewRequestError(http.StatusBadRequest, "Student is already signed up")

	assert.Equal(t, "Student is already signed up", err.Error())
}

func Test_RequestError__should_describe_the_status_when_detail_is_empty(t *testing.T) {
	err := NewRequestError(http.StatusBadGateway, "")

	assert.Equal(t, "activities service rejected the request with status 502", err.Error())
}
