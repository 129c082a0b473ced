package insights

import (
	"fmt"

	"github.com/mechriz/zen-fit/models"
)

// ReferenceIssue describes one dangling id between the therapist's lists.
type ReferenceIssue struct {
	Kind    string `json:"kind"` // "appointment" or "note"
	ID      string `json:"id"`
	Message string `json:"message"`
}

// CheckReferences reports appointments and notes pointing at clients or
// appointments that are not in the given lists. Nothing is rejected; the
// stores accept dangling ids and this is only a report.
func CheckReferences(clients []models.Client, appts []models.Appointment, notes []models.SessionNote) []ReferenceIssue {
	clientIDs := make(map[string]struct{}, len(clients))
	for _, c := range clients {
		clientIDs[c.ID] = struct{}{}
	}
	apptIDs := make(map[string]struct{}, len(appts))
	for _, a := range appts {
		apptIDs[a.ID] = struct{}{}
	}

	issues := make([]ReferenceIssue, 0)
	for _, a := range appts {
		if _, ok := clientIDs[a.ClientID]; !ok {
			issues = append(issues, ReferenceIssue{
				Kind:    "appointment",
				ID:      a.ID,
				Message: fmt.Sprintf("unknown client %q", a.ClientID),
			})
		}
	}
	for _, n := range notes {
		if _, ok := apptIDs[n.AppointmentID]; !ok {
			issues = append(issues, ReferenceIssue{
				Kind:    "note",
				ID:      n.ID,
				Message: fmt.Sprintf("unknown appointment %q", n.AppointmentID),
			})
		}
		if _, ok := clientIDs[n.ClientID]; !ok {
			issues = append(issues, ReferenceIssue{
				Kind:    "note",
				ID:      n.ID,
				Message: fmt.Sprintf("unknown client %q", n.ClientID),
			})
		}
	}
	return issues
}
