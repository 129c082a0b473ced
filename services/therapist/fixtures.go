package therapist

import (
	"time"

	"github.com/mechriz/zen-fit/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	t := day(year, month, d)
	return &t
}

// SarahJohnson is the profile attached to a successful portal login.
func SarahJohnson() models.Therapist {
	return models.Therapist{
		ID:              "1",
		Name:            "Dr. Sarah Johnson",
		Email:           PortalEmail,
		Specialization:  []string{"Anxiety", "Stress Management", "Depression"},
		Bio:             "Licensed therapist with 8+ years helping young adults navigate anxiety and stress.",
		Avatar:          "https://images.pexels.com/photos/5452201/pexels-photo-5452201.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:          4.9,
		ReviewCount:     127,
		PricePerSession: 2000,
		Availability:    []models.TimeSlot{},
		LicenseNumber:   "LT-2024-001",
		YearsExperience: 8,
		Education:       []string{"PhD Psychology - University of Nairobi", "MSc Clinical Psychology - Kenyatta University"},
		Languages:       []string{"English", "Swahili"},
		Verified:        true,
		JoinedAt:        day(2023, time.January, 15),
	}
}

func fixtureClients() []models.Client {
	return []models.Client{
		{
			ID:                "1",
			Name:              "Alex Johnson",
			Email:             "alex.johnson@email.com",
			Age:               20,
			Avatar:            "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=400",
			MentalHealthGoals: []string{"Anxiety Relief", "Stress Management"},
			JoinedAt:          day(2024, time.January, 15),
			LastSessionDate:   dayPtr(2024, time.December, 20),
			TotalSessions:     8,
			CurrentMoodScore:  7,
			EmergencyContact: &models.EmergencyContact{
				Name:         "Maria Johnson",
				Phone:        "+254712345678",
				Relationship: "Mother",
			},
		},
		{
			ID:                "2",
			Name:              "Sam Wilson",
			Email:             "sam.wilson@email.com",
			Age:               22,
			Avatar:            "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=400",
			MentalHealthGoals: []string{"Self-Confidence", "Better Sleep"},
			JoinedAt:          day(2024, time.February, 10),
			LastSessionDate:   dayPtr(2024, time.December, 18),
			TotalSessions:     5,
			CurrentMoodScore:  6,
			EmergencyContact: &models.EmergencyContact{
				Name:         "John Wilson",
				Phone:        "+254723456789",
				Relationship: "Father",
			},
		},
		{
			ID:                "3",
			Name:              "Maya Patel",
			Email:             "maya.patel@email.com",
			Age:               19,
			Avatar:            "https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=400",
			MentalHealthGoals: []string{"Mood Improvement", "Mindfulness"},
			JoinedAt:          day(2024, time.March, 5),
			LastSessionDate:   dayPtr(2024, time.December, 15),
			TotalSessions:     12,
			CurrentMoodScore:  8,
		},
	}
}

func fixtureAppointments() []models.Appointment {
	therapy := func(id, clientID, clientName, date, at string, status models.AppointmentStatus, session models.SessionType, notes string) models.Appointment {
		return models.Appointment{
			ID:            id,
			Type:          models.AppointmentTherapy,
			ProviderID:    "1",
			ProviderName:  "Dr. Sarah Johnson",
			ClientID:      clientID,
			ClientName:    clientName,
			Date:          date,
			Time:          at,
			Duration:      50,
			Status:        status,
			Price:         2000,
			Notes:         notes,
			SessionType:   session,
			PaymentStatus: models.PaymentPaid,
		}
	}
	return []models.Appointment{
		therapy("1", "1", "Alex Johnson", "2024-12-23", "10:00 AM", models.StatusScheduled, models.SessionVideo, "Follow-up on anxiety management techniques"),
		therapy("2", "2", "Sam Wilson", "2024-12-23", "2:00 PM", models.StatusScheduled, models.SessionVideo, ""),
		therapy("3", "3", "Maya Patel", "2024-12-24", "11:00 AM", models.StatusScheduled, models.SessionPhone, ""),
		therapy("4", "1", "Alex Johnson", "2024-12-20", "10:00 AM", models.StatusCompleted, models.SessionVideo, "Great progress on breathing exercises"),
	}
}

func fixtureNotes() []models.SessionNote {
	written := day(2024, time.December, 20)
	return []models.SessionNote{
		{
			ID:            "1",
			AppointmentID: "4",
			TherapistID:   "1",
			ClientID:      "1",
			Content:       "Client showed significant improvement in managing anxiety symptoms. Practiced deep breathing exercises and discussed coping strategies for stressful situations.",
			Goals:         []string{"Continue breathing exercises", "Practice mindfulness daily"},
			NextSteps:     []string{"Homework: 10-minute daily meditation", "Journal anxiety triggers"},
			CreatedAt:     written,
			UpdatedAt:     written,
		},
	}
}
