// Package catalog serves the static content of the consumer app: the
// workout library, the therapist directory and the session formats.
package catalog

import (
	"slices"
	"strings"

	"github.com/mechriz/zen-fit/models"
)

const CategoryAll = "All"

var WorkoutCategories = []string{CategoryAll, "Strength", "Cardio", "Yoga", "HIIT", "Flexibility"}

func pexels(id string) string {
	return "https://images.pexels.com/photos/" + id + "/pexels-photo-" + id + ".jpeg?auto=compress&cs=tinysrgb&w=400"
}

func intPtr(v int) *int { return &v }

// WorkoutPlans returns the workout library in display order.
func WorkoutPlans() []models.WorkoutPlan {
	return []models.WorkoutPlan{
		{
			ID:          "1",
			Title:       "Morning Energy Boost",
			Description: "Start your day with this energizing full-body workout",
			Duration:    20,
			Difficulty:  models.Beginner,
			Category:    "Cardio",
			Thumbnail:   pexels("416809"),
			Rating:      4.8,
			Completions: 1247,
			Exercises: []models.Exercise{
				{ID: "1-1", Name: "Jumping Jacks", Duration: 60, Instructions: "Keep a steady rhythm and land softly."},
				{ID: "1-2", Name: "High Knees", Duration: 45, Instructions: "Drive your knees to hip height."},
				{ID: "1-3", Name: "Bodyweight Squats", Duration: 60, Reps: intPtr(15), Sets: intPtr(3), Instructions: "Sit back into your heels, chest up."},
			},
		},
		{
			ID:          "2",
			Title:       "Strength Building Basics",
			Description: "Build foundational strength with bodyweight exercises",
			Duration:    30,
			Difficulty:  models.Intermediate,
			Category:    "Strength",
			Thumbnail:   pexels("1552108"),
			Rating:      4.9,
			Completions: 892,
			Exercises: []models.Exercise{
				{ID: "2-1", Name: "Push-ups", Duration: 90, Reps: intPtr(12), Sets: intPtr(3), Instructions: "Keep your body in a straight line."},
				{ID: "2-2", Name: "Lunges", Duration: 90, Reps: intPtr(10), Sets: intPtr(3), Instructions: "Alternate legs, front knee over ankle."},
				{ID: "2-3", Name: "Plank", Duration: 60, Instructions: "Brace your core and hold."},
			},
		},
		{
			ID:          "3",
			Title:       "Mindful Yoga Flow",
			Description: "Gentle yoga sequence for flexibility and mindfulness",
			Duration:    25,
			Difficulty:  models.Beginner,
			Category:    "Yoga",
			Thumbnail:   pexels("1472887"),
			Rating:      4.7,
			Completions: 2156,
		},
		{
			ID:          "4",
			Title:       "High-Intensity Fat Burn",
			Description: "Intense HIIT session for maximum calorie burn",
			Duration:    15,
			Difficulty:  models.Advanced,
			Category:    "HIIT",
			Thumbnail:   pexels("1431282"),
			Rating:      4.6,
			Completions: 756,
		},
		{
			ID:          "5",
			Title:       "Evening Stretch & Relax",
			Description: "Wind down with gentle stretches and relaxation",
			Duration:    15,
			Difficulty:  models.Beginner,
			Category:    "Flexibility",
			Thumbnail:   pexels("3822906"),
			Rating:      4.8,
			Completions: 1834,
		},
		{
			ID:          "6",
			Title:       "Core Power Training",
			Description: "Strengthen your core with targeted exercises",
			Duration:    20,
			Difficulty:  models.Intermediate,
			Category:    "Strength",
			Thumbnail:   pexels("1080696"),
			Rating:      4.5,
			Completions: 634,
		},
	}
}

// FilterWorkouts keeps plans in category (or any, for All) whose title or
// description contains query, ignoring case.
func FilterWorkouts(plans []models.WorkoutPlan, category, query string) []models.WorkoutPlan {
	q := strings.ToLower(query)
	out := make([]models.WorkoutPlan, 0, len(plans))
	for _, p := range plans {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Title), q) && !strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func FindWorkout(plans []models.WorkoutPlan, id string) (models.WorkoutPlan, bool) {
	i := slices.IndexFunc(plans, func(p models.WorkoutPlan) bool { return p.ID == id })
	if i < 0 {
		return models.WorkoutPlan{}, false
	}
	return plans[i], true
}
