package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_gemini_client.go -package=mocks gimnasio/internal/service GeminiClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_routine_archive.go -package=mocks gimnasio/internal/service RoutineArchive
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_ai_service.go -package=mocks gimnasio/internal/service AIService

import (
	"context"

	"gimnasio/internal/contextutil"
	"gimnasio/internal/gemini"
)

// GeminiClient is the slice of gemini.Client the service layer needs.
type GeminiClient interface {
	// Generate sends payload and decodes the reply. err is set only for transport failures.
	Generate(ctx context.Context, payload gemini.Payload) (gemini.Outcome, error)
	// ModelTag is attached to every ChatResult.
	ModelTag() string
}

// RoutineArchive stores successful routine generations.
type RoutineArchive interface {
	Save(ctx context.Context, input RoutineInput) (Routine, error)
}

// WorkoutRoutineRequest holds the three routine parameters.
type WorkoutRoutineRequest struct {
	Goal     string
	Level    string
	Duration string
}

// AIService is the assistant facade used by the HTTP layer. Every method
// yields a result; provider failures are reported inside it.
type AIService interface {
	// Chat forwards message unchanged.
	Chat(ctx context.Context, message string) gemini.ChatResult
	// FitnessChat frames message with the fitness assistant context.
	FitnessChat(ctx context.Context, message string) gemini.ChatResult
	// WorkoutRoutine asks for a structured routine and archives it on success.
	WorkoutRoutine(ctx context.Context, req WorkoutRoutineRequest) gemini.ChatResult
	// TestConnection runs the connectivity probe.
	TestConnection(ctx context.Context) string
}

type aiService struct {
	client  GeminiClient
	archive RoutineArchive
}

// NewAIService creates an AIService. archive may be nil, in which case
// routines are not stored.
func NewAIService(client GeminiClient, archive RoutineArchive) AIService {
	return &aiService{
		client:  client,
		archive: archive,
	}
}

func (s *aiService) Chat(ctx context.Context, message string) gemini.ChatResult {
	outcome, err := s.client.Generate(ctx, gemini.BuildChatPayload(message))
	return gemini.Resolve(outcome, err, s.client.ModelTag())
}

func (s *aiService) FitnessChat(ctx context.Context, message string) gemini.ChatResult {
	outcome, err := s.client.Generate(ctx, gemini.BuildFitnessChatPayload(message))
	return gemini.Resolve(outcome, err, s.client.ModelTag())
}

func (s *aiService) WorkoutRoutine(ctx context.Context, req WorkoutRoutineRequest) gemini.ChatResult {
	logger := contextutil.LoggerFromContext(ctx)

	prompt := gemini.BuildWorkoutRoutinePrompt(req.Goal, req.Level, req.Duration)
	outcome, err := s.client.Generate(ctx, gemini.BuildChatPayload(prompt))
	result := gemini.Resolve(outcome, err, s.client.ModelTag())

	if err != nil || s.archive == nil {
		return result
	}
	if _, ok := outcome.(gemini.Success); !ok {
		return result
	}

	routine, archiveErr := s.archive.Save(ctx, RoutineInput{
		Goal:     req.Goal,
		Level:    req.Level,
		Duration: req.Duration,
		Content:  result.Text,
		Model:    result.ModelTag,
	})
	if archiveErr != nil {
		logger.ErrorContext(ctx, "failed to archive routine", "goal", req.Goal, "level", req.Level, "error", archiveErr)
		return result
	}

	logger.InfoContext(ctx, "routine archived", "routine_id", routine.ID, "sections", len(routine.Sections))
	return result
}

func (s *aiService) TestConnection(ctx context.Context) string {
	return gemini.Probe(ctx, s.client, s.client.ModelTag())
}
