package activity

import (
	"fmt"

	"github.com/Da-0ldSaint/Asm/pkg/models"
)

// StatusForEvent maps a ledger event type to the asset status it leaves
// behind.
func StatusForEvent(eventType string) (string, error) {
	switch eventType {
	case models.EventCheckOut:
		return models.StatusCheckedOut, nil
	case models.EventCheckIn:
		return models.StatusActive, nil
	case models.EventRepair:
		return models.StatusRepair, nil
	default:
		return "", fmt.Errorf("unknown activity event type %q", eventType)
	}
}

// FeedTypeForEvent maps a stored event type to the label rendered in the
// activity feed.
func FeedTypeForEvent(eventType string) string {
	switch eventType {
	case models.EventCheckOut:
		return "checked_out"
	case models.EventCheckIn:
		return "checked_in"
	default:
		return eventType
	}
}

// EventTypeForFeedFilter resolves a feed filter (rendered label or raw
// event type) back to the stored event type.
func EventTypeForFeedFilter(filter string) (string, error) {
	switch filter {
	case "checked_out", models.EventCheckOut:
		return models.EventCheckOut, nil
	case "checked_in", models.EventCheckIn:
		return models.EventCheckIn, nil
	case models.EventRepair:
		return models.EventRepair, nil
	default:
		return "", fmt.Errorf("unknown feed filter %q", filter)
	}
}
