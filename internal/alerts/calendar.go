package alerts

import (
	"github.com/Da-0ldSaint/Asm/pkg/models"
)

// Calendar colors per alert type, matching the dashboard palette.
var alertColors = map[string]string{
	models.AlertDue:       "#047481",
	models.AlertInsurance: "#d97706",
	models.AlertLease:     "#7c3aed",
}

// ToCalendarEvent projects an alert to its renderable calendar entry. A
// blank title falls back to "<type> alert".
func ToCalendarEvent(alert models.Alert) models.CalendarEvent {
	title := ""
	if alert.Title != nil {
		title = *alert.Title
	}
	if title == "" {
		title = alert.AlertType + " alert"
	}

	return models.CalendarEvent{
		Title:           title,
		Date:            alert.AlertDate,
		BackgroundColor: alertColors[alert.AlertType],
	}
}
