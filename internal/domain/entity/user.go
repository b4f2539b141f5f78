// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a unique account.
// It carries the canonical identity fields plus the login credential hash.
type User struct {
	ID           uint64         // Primary identifier for the user.
	Email        string         // The user's primary contact email, used as the login identifier.
	Name         string         // The user's display name.
	PasswordHash string         // bcrypt hash of the user's password. Never leaves the domain layer.
	Profile      *HealthProfile // The user's health profile. Nil until onboarding completes.
	CreatedAt    time.Time      // Timestamp of when this account was created.
	UpdatedAt    time.Time      // Timestamp of the last modification to this user's data.
}

// HealthProfile holds the health and fitness attributes the coaching
// features reason about. It is read as a fixed projection by the AI
// context assembly and edited through the profile endpoints.
type HealthProfile struct {
	UserID             uint64    // Foreign key linking this profile to its User.
	Age                int       // Age in years.
	HeightCm           float64   // Height in centimeters.
	WeightKg           float64   // Current weight in kilograms.
	Goal               string    // Free-form goal, e.g. "lose weight", "build muscle".
	ActivityLevel      string    // Self-reported activity level, e.g. "sedentary", "active".
	DietaryPreferences string    // Comma-separated dietary constraints, e.g. "vegetarian, no nuts".
	UpdatedAt          time.Time // Timestamp of the last modification to this profile.
}
