// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// MealLog records a single meal a user consumed.
type MealLog struct {
	ID         uint64
	UserID     uint64
	Name       string    // What was eaten, e.g. "grilled chicken salad".
	Calories   int       // Estimated calories.
	ProteinG   float64   // Protein in grams.
	CarbsG     float64   // Carbohydrates in grams.
	FatG       float64   // Fat in grams.
	ConsumedAt time.Time // When the meal was consumed; recent-history ordering key.
	CreatedAt  time.Time
}

// WorkoutLog records a single workout session.
type WorkoutLog struct {
	ID             uint64
	UserID         uint64
	Activity       string    // e.g. "running", "strength training".
	DurationMin    int       // Duration in minutes.
	CaloriesBurned int       // Estimated calories burned.
	PerformedAt    time.Time // When the workout happened; recent-history ordering key.
	CreatedAt      time.Time
}

// SuggestionKind distinguishes what an AI suggestion (and the feedback
// attached to it) was about.
type SuggestionKind string

const (
	SuggestionKindMeal    SuggestionKind = "meal"
	SuggestionKindWorkout SuggestionKind = "workout"
)

// Suggestion is a generated coaching suggestion, recorded after each
// successful completion so feedback has a concrete subject.
type Suggestion struct {
	ID        uint64
	UserID    uint64
	Kind      SuggestionKind
	Content   string // The generated suggestion text.
	Model     string // Which model produced it.
	CreatedAt time.Time
}

// Feedback is a user's rating of an AI suggestion. Recent feedback is fed
// back into subsequent suggestion prompts.
type Feedback struct {
	ID        uint64
	UserID    uint64
	Kind      SuggestionKind
	Rating    int    // 1..5
	Comment   string // Optional free-form comment.
	CreatedAt time.Time
}
