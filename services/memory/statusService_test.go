package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_activities/entities"
	"go.uber.org/zap"
)

func Test_Current__should_return_nil_when_no_message_was_set(t *testing.T) {
	service := NewInMemoryStatusService(zap.NewNop())

	assert.Nil(t, service.Current())
}

func Test_Set__should_make_the_message_visible(t *testing.T) {
	service := NewInMemoryStatusService(zap.NewNop())

	service.Set(entities.StatusMessage{
		Text:     "Signed up a@b.com",
		Severity: entities.StatusSuccess,
	}, time.Minute)

	current := service.Current()
	assert.NotNil(t, current)
	assert.Equal(t, "Signed up a@b.com", current.Text)
	assert.Equal(t, entities.StatusSuccess, current.Severity)
}

func Test_Set__should_replace_the_previous_message(t *testing.T) {
	service := NewInMemoryStatusService(zap.NewNop())

	service.Set(entities.StatusMessage{
		Text:     "first",
		Severity: entities.StatusSuccess,
	}, time.Minute)
	service.Set(entities.StatusMessage{
		Text:     "second",
		Severity: entities.StatusError,
	}, time.Minute)

	current := service.Current()
	assert.NotNil(t, current)
	assert.Equal(t, "second", current.Text)
	assert.Equal(t, entities.StatusError, current.Severity)
}

func Test_Set__should_cancel_the_hide_timer_of_the_previous_message(t *testing.T) {
	service := NewInMemoryStatusService(zap.NewNop())

	service.Set(entities.StatusMessage{
		Text:     "short lived",
		Severity: entities.StatusError,
	}, 20*time.Millisecond)
	service.Set(entities.StatusMessage{
		Text:     "long lived",
		Severity: entities.StatusSuccess,
	}, time.Minute)

	// well past the first message's window
	time.Sleep(100 * time.Millisecond)

	current := service.Current()
	assert.NotNil(t, current)
	assert.Equal(t, "long lived", current.Text)
}

func Test_message_should_be_hidden_once_its_window_elapses(t *testing.T) {
	service := NewInMemoryStatusService(zap.NewNop())

	service.Set(entities.StatusMessage{
		Text:     "transient",
		Severity: entities.StatusSuccess,
	}, 20*time.Millisecond)

	assert.NotNil(t, service.Current())

	time.Sleep(100 * time.Millisecond)

	assert.Nil(t, service.Current())
}

func Test_Clear__should_hide_the_message_immediately(t *testing.T) {
	service := NewInMemoryStatusService(zap.NewNop())

	service.Set(entities.StatusMessage{
		Text:     "transient",
		Severity: entities.StatusSuccess,
	}, time.Minute)
	service.Clear()

	assert.Nil(t, service.Current())
}

func Test_Current__should_return_a_copy_of_the_message(t *testing.T) {
	service := NewInMemoryStatusService(zap.NewNop())

	service.Set(entities.StatusMessage{
		Text:     "original",
		Severity: entities.StatusSuccess,
	}, time.Minute)

	current := service.Current()
	current.Text = "mutated"

	assert.Equal(t, "original", service.Current().Text)
}
