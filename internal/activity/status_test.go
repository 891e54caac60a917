package activity

import (
	"testing"

	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestStatusForEvent(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		expected  string
		wantErr   bool
	}{
		{name: "check out marks asset checked out", eventType: models.EventCheckOut, expected: models.StatusCheckedOut},
		{name: "check in returns asset to active", eventType: models.EventCheckIn, expected: models.StatusActive},
		{name: "repair marks asset under repair", eventType: models.EventRepair, expected: models.StatusRepair},
		{name: "unknown event rejected", eventType: "destroyed", wantErr: true},
		{name: "empty event rejected", eventType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := StatusForEvent(tt.eventType)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestFeedTypeForEvent(t *testing.T) {
	assert.Equal(t, "checked_out", FeedTypeForEvent(models.EventCheckOut))
	assert.Equal(t, "checked_in", FeedTypeForEvent(models.EventCheckIn))
	assert.Equal(t, "repair", FeedTypeForEvent(models.EventRepair))
}

func TestEventTypeForFeedFilter(t *testing.T) {
	tests := []struct {
		filter   string
		expected string
		wantErr  bool
	}{
		{filter: "checked_out", expected: models.EventCheckOut},
		{filter: "checked_in", expected: models.EventCheckIn},
		{filter: "check_out", expected: models.EventCheckOut},
		{filter: "check_in", expected: models.EventCheckIn},
		{filter: "repair", expected: models.EventRepair},
		{filter: "broken", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			eventType, err := EventTypeForFeedFilter(tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, eventType)
		})
	}
}
