package catalog

import (
	"slices"

	"github.com/mechriz/zen-fit/models"
)

var Specializations = []string{CategoryAll, "Anxiety", "Depression", "Stress", "Relationships", "Self-Esteem", "Sleep"}

// TherapistListings returns the therapist directory.
func TherapistListings() []models.TherapistListing {
	return []models.TherapistListing{
		{
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Specialization:  []string{"Anxiety", "Stress Management"},
			Bio:             "Licensed therapist with 8+ years helping young adults navigate anxiety and stress.",
			Avatar:          pexels("5452201"),
			Rating:          4.9,
			ReviewCount:     127,
			PricePerSession: 2000,
			NextAvailable:   "Today, 3:00 PM",
			Languages:       []string{"English", "Swahili"},
			Verified:        true,
		},
		{
			ID:              "2",
			Name:            "Michael Chen",
			Specialization:  []string{"Depression", "Self-Esteem"},
			Bio:             "Specialized in cognitive behavioral therapy for depression and building self-confidence.",
			Avatar:          pexels("5452293"),
			Rating:          4.8,
			ReviewCount:     89,
			PricePerSession: 1800,
			NextAvailable:   "Tomorrow, 10:00 AM",
			Languages:       []string{"English"},
			Verified:        true,
		},
		{
			ID:              "3",
			Name:            "Dr. Amina Hassan",
			Specialization:  []string{"Relationships", "Stress"},
			Bio:             "Expert in relationship counseling and stress management for Gen Z.",
			Avatar:          pexels("5452268"),
			Rating:          4.7,
			ReviewCount:     156,
			PricePerSession: 2200,
			NextAvailable:   "Today, 6:00 PM",
			Languages:       []string{"English", "Swahili", "Arabic"},
			Verified:        true,
		},
		{
			ID:              "4",
			Name:            "James Mwangi",
			Specialization:  []string{"Sleep", "Anxiety"},
			Bio:             "Sleep specialist helping young adults develop healthy sleep patterns and reduce anxiety.",
			Avatar:          pexels("5452224"),
			Rating:          4.6,
			ReviewCount:     73,
			PricePerSession: 1700,
			NextAvailable:   "Thursday, 2:00 PM",
			Languages:       []string{"English", "Swahili"},
			Verified:        true,
		},
	}
}

// FilterTherapists keeps listings whose specializations include area
// exactly. All keeps everything.
func FilterTherapists(list []models.TherapistListing, area string) []models.TherapistListing {
	out := make([]models.TherapistListing, 0, len(list))
	for _, t := range list {
		if area == CategoryAll || slices.Contains(t.Specialization, area) {
			out = append(out, t)
		}
	}
	return out
}

// SessionOfferings are the formats a therapy session can take.
func SessionOfferings() []models.SessionOffering {
	return []models.SessionOffering{
		{Type: models.SessionVideo, Title: "Video Session", Description: "Face-to-face therapy via secure video call", Duration: 50, Popular: true},
		{Type: models.SessionPhone, Title: "Phone Session", Description: "Audio-only therapy session", Duration: 50},
		{Type: models.SessionChat, Title: "Chat Session", Description: "Text-based therapy session", Duration: 60},
	}
}
