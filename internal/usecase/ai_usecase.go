// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vita/internal/domain/entity"
)

// SuggestInput defines the data for requesting an AI suggestion.
type SuggestInput struct {
	Kind entity.SuggestionKind
}

// SuggestOutput returns a generated suggestion.
type SuggestOutput struct {
	Kind       entity.SuggestionKind
	Suggestion string
	Model      string
}

// AIUsecase defines the interface for AI coaching operations.
type AIUsecase interface {
	// AssembleContext gathers the user's profile and recent history into a
	// consistent snapshot. Returns ErrProfileNotFound when the user has no
	// health profile.
	AssembleContext(ctx context.Context, userID uint64) (*entity.AIContextSnapshot, error)

	// Suggest assembles the context snapshot and asks the chat-completion
	// collaborator for a personalized meal or workout suggestion.
	Suggest(ctx context.Context, userID uint64, input SuggestInput) (*SuggestOutput, error)
}
