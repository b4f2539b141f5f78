// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// ContextHistoryLimit caps the bounded history lists inside an
// AIContextSnapshot. The cap keeps the downstream prompt payload small and
// the assembly latency bounded.
const ContextHistoryLimit = 5

// AIContextSnapshot is the bounded, ordered view of a user's recent history
// handed to the external AI collaborator as grounding context. It is
// assembled fresh per AI request, immutable once built, and discarded after
// the call completes.
type AIContextSnapshot struct {
	Profile        *HealthProfile
	RecentMeals    []*MealLog  // At most ContextHistoryLimit entries, newest first.
	RecentFeedback []*Feedback // At most ContextHistoryLimit entries, newest first.
}
