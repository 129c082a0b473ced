package models

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

type Exercise struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Duration     int    `json:"duration"` // seconds
	Reps         *int   `json:"reps,omitempty"`
	Sets         *int   `json:"sets,omitempty"`
	Instructions string `json:"instructions"`
}

// WorkoutPlan is a guided workout from the library.
type WorkoutPlan struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    int        `json:"duration"` // minutes
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
	VideoURL    string     `json:"videoUrl"`
	Thumbnail   string     `json:"thumbnail"`
	Rating      float64    `json:"rating"`
	Completions int        `json:"completions"`
	Exercises   []Exercise `json:"exercises"`
}

// Achievement is a profile badge derived from progress.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}
