package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"vita/config"
	deliverycontext "vita/internal/delivery/context"
	"vita/internal/domain/entity"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/repository"
	"vita/internal/domain/service"
	"vita/internal/usecase"
)

// aiService implements the AIUsecase interface.
type aiService struct {
	profileRepo    repository.HealthProfileRepository
	mealRepo       repository.MealLogRepository
	feedbackRepo   repository.FeedbackRepository
	suggestionRepo repository.SuggestionRepository
	completion     service.ChatCompletionService
	maxTokens      int
	temperature    float64
	logger         *slog.Logger
}

// AIServiceParams holds dependencies for AIService, injected by Fx.
type AIServiceParams struct {
	fx.In

	ProfileRepo    repository.HealthProfileRepository
	MealRepo       repository.MealLogRepository
	FeedbackRepo   repository.FeedbackRepository
	SuggestionRepo repository.SuggestionRepository
	Completion     service.ChatCompletionService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAIService is the constructor for aiService.
func NewAIService(params AIServiceParams) usecase.AIUsecase {
	maxTokens := 0
	temperature := 0.0
	if params.Config != nil && params.Config.AI != nil {
		maxTokens = params.Config.AI.MaxTokens
		temperature = params.Config.AI.Temperature
	}

	return &aiService{
		profileRepo:    params.ProfileRepo,
		mealRepo:       params.MealRepo,
		feedbackRepo:   params.FeedbackRepo,
		suggestionRepo: params.SuggestionRepo,
		completion:     params.Completion,
		maxTokens:      maxTokens,
		temperature:    temperature,
		logger:         params.Logger,
	}
}

func (srv *aiService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AssembleContext gathers the user's profile and recent history with three
// concurrent reads joined before returning. Either all three succeed or the
// whole assembly fails; a partial snapshot is never produced.
func (srv *aiService) AssembleContext(ctx context.Context, userID uint64) (*entity.AIContextSnapshot, error) {
	var (
		profile  *entity.HealthProfile
		meals    []*entity.MealLog
		feedback []*entity.Feedback
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		found, err := srv.profileRepo.FindByUserID(gctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to load health profile")
		}
		profile = found

		return nil
	})

	g.Go(func() error {
		found, err := srv.mealRepo.ListRecentByUserID(gctx, userID, entity.ContextHistoryLimit)
		if err != nil {
			return errors.Wrap(err, "failed to load recent meals")
		}
		meals = found

		return nil
	})

	g.Go(func() error {
		found, err := srv.feedbackRepo.ListRecentByUserID(gctx, userID, entity.ContextHistoryLimit)
		if err != nil {
			return errors.Wrap(err, "failed to load recent feedback")
		}
		feedback = found

		return nil
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Warn("Context assembly failed", slog.Uint64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return &entity.AIContextSnapshot{
		Profile:        profile,
		RecentMeals:    meals,
		RecentFeedback: feedback,
	}, nil
}

// Suggest assembles the context snapshot and asks the chat-completion
// collaborator for a personalized suggestion.
func (srv *aiService) Suggest(ctx context.Context, userID uint64, input usecase.SuggestInput) (*usecase.SuggestOutput, error) {
	if input.Kind != entity.SuggestionKindMeal && input.Kind != entity.SuggestionKindWorkout {
		return nil, domainerrors.ErrValidationFailed.WithDetails("kind must be meal or workout")
	}

	snapshot, err := srv.AssembleContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp, err := srv.completion.Complete(ctx, service.ChatRequest{
		Messages: []service.ChatMessage{
			{Role: "system", Content: renderContextPrompt(snapshot)},
			{Role: "user", Content: renderSuggestionAsk(input.Kind)},
		},
		MaxTokens:   srv.maxTokens,
		Temperature: srv.temperature,
	})
	if err != nil {
		srv.log(ctx).Warn("Suggestion request failed", slog.Uint64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	suggestion := &entity.Suggestion{
		UserID:  userID,
		Kind:    input.Kind,
		Content: resp.Content,
		Model:   resp.Model,
	}
	if err := srv.suggestionRepo.Create(ctx, suggestion); err != nil {
		// A failed record write does not fail the request; the generated
		// suggestion still goes back to the user.
		srv.log(ctx).Error("Failed to record suggestion", slog.Uint64("userID", userID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Suggestion generated", slog.Uint64("userID", userID), slog.String("model", resp.Model))

	return &usecase.SuggestOutput{
		Kind:       input.Kind,
		Suggestion: resp.Content,
		Model:      resp.Model,
	}, nil
}

// renderContextPrompt flattens the snapshot into the system prompt given to
// the completion endpoint.
func renderContextPrompt(snapshot *entity.AIContextSnapshot) string {
	var b strings.Builder

	b.WriteString("You are a nutrition and fitness coach. The user's data follows.\n")

	p := snapshot.Profile
	fmt.Fprintf(&b, "Profile: age %d, height %.1f cm, weight %.1f kg, goal %q, activity level %q.\n",
		p.Age, p.HeightCm, p.WeightKg, p.Goal, p.ActivityLevel)
	if p.DietaryPreferences != "" {
		fmt.Fprintf(&b, "Dietary preferences: %s.\n", p.DietaryPreferences)
	}

	if len(snapshot.RecentMeals) > 0 {
		b.WriteString("Recent meals (newest first):\n")
		for _, meal := range snapshot.RecentMeals {
			fmt.Fprintf(&b, "- %s: %d kcal (protein %.0fg, carbs %.0fg, fat %.0fg)\n",
				meal.Name, meal.Calories, meal.ProteinG, meal.CarbsG, meal.FatG)
		}
	}

	if len(snapshot.RecentFeedback) > 0 {
		b.WriteString("Recent feedback on suggestions (newest first):\n")
		for _, fb := range snapshot.RecentFeedback {
			fmt.Fprintf(&b, "- %s suggestion rated %d/5", fb.Kind, fb.Rating)
			if fb.Comment != "" {
				fmt.Fprintf(&b, ": %s", fb.Comment)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderSuggestionAsk(kind entity.SuggestionKind) string {
	if kind == entity.SuggestionKindWorkout {
		return "Suggest one workout for today that fits my goal and recent history. Keep it concise."
	}

	return "Suggest one meal for today that fits my goal, preferences and recent history. Keep it concise."
}
