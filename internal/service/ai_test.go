package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"gimnasio/internal/gemini"
	"gimnasio/internal/service"
	"gimnasio/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

const testModel = "gemini-2.5-flash"

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testContext returns a context for testing.
// The default logger is already set to discard in init().
func testContext() context.Context {
	return context.Background()
}

func newGeminiMock(ctrl *gomock.Controller) *mocks.MockGeminiClient {
	client := mocks.NewMockGeminiClient(ctrl)
	client.EXPECT().ModelTag().Return(testModel).AnyTimes()
	return client
}

func firstPartText(p gemini.Payload) string {
	if len(p.Contents) == 0 || len(p.Contents[0].Parts) == 0 {
		return ""
	}
	return p.Contents[0].Parts[0].Text
}

func TestAIService_Chat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		message   string
		mockSetup func(*mocks.MockGeminiClient)
		want      gemini.ChatResult
	}{
		{
			name:    "successful chat",
			message: "Hola",
			mockSetup: func(m *mocks.MockGeminiClient) {
				m.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p gemini.Payload) (gemini.Outcome, error) {
						if got := firstPartText(p); got != "Hola" {
							t.Errorf("Generate() prompt = %q, want Hola", got)
						}
						return gemini.Success{Text: "¡Hola!"}, nil
					})
			},
			want: gemini.ChatResult{Text: "¡Hola!", ModelTag: testModel},
		},
		{
			name:    "empty message is forwarded",
			message: "",
			mockSetup: func(m *mocks.MockGeminiClient) {
				m.EXPECT().
					Generate(gomock.Any(), gemini.BuildChatPayload("")).
					Return(gemini.Success{Text: "?"}, nil)
			},
			want: gemini.ChatResult{Text: "?", ModelTag: testModel},
		},
		{
			name:    "transport failure",
			message: "Hola",
			mockSetup: func(m *mocks.MockGeminiClient) {
				m.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			want: gemini.ChatResult{Text: "error calling provider: connection refused", ModelTag: testModel},
		},
		{
			name:    "blocked content",
			message: "Hola",
			mockSetup: func(m *mocks.MockGeminiClient) {
				m.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(gemini.Blocked{Reason: "SAFETY"}, nil)
			},
			want: gemini.ChatResult{Text: "content blocked: SAFETY. try a different prompt.", ModelTag: testModel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newGeminiMock(ctrl)
			tt.mockSetup(client)
			svc := service.NewAIService(client, nil)

			if got := svc.Chat(testContext(), tt.message); got != tt.want {
				t.Errorf("Chat() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAIService_FitnessChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := newGeminiMock(ctrl)
	client.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p gemini.Payload) (gemini.Outcome, error) {
			prompt := firstPartText(p)
			if !strings.HasPrefix(prompt, gemini.FitnessContext) {
				t.Errorf("FitnessChat() prompt missing context: %q", prompt)
			}
			if !strings.HasSuffix(prompt, "Pregunta: ¿Cuántas series?") {
				t.Errorf("FitnessChat() prompt = %q", prompt)
			}
			return gemini.Success{Text: "Tres."}, nil
		})

	svc := service.NewAIService(client, nil)
	got := svc.FitnessChat(testContext(), "¿Cuántas series?")
	if got.Text != "Tres." || got.ModelTag != testModel {
		t.Errorf("FitnessChat() = %+v", got)
	}
}

func TestAIService_WorkoutRoutine(t *testing.T) {
	req := service.WorkoutRoutineRequest{Goal: "fuerza", Level: "principiante", Duration: "45 minutos"}

	tests := []struct {
		name        string
		outcome     gemini.Outcome
		err         error
		archiveErr  error
		wantArchive bool
		wantText    string
	}{
		{
			name:        "success is archived",
			outcome:     gemini.Success{Text: "## Calentamiento"},
			wantArchive: true,
			wantText:    "## Calentamiento",
		},
		{
			name:        "archive failure does not change result",
			outcome:     gemini.Success{Text: "rutina"},
			archiveErr:  errors.New("disk full"),
			wantArchive: true,
			wantText:    "rutina",
		},
		{
			name:     "provider error is not archived",
			outcome:  gemini.ProviderError{Message: "quota"},
			wantText: "provider error: quota",
		},
		{
			name:     "transport failure is not archived",
			err:      errors.New("timeout"),
			wantText: "error calling provider: timeout",
		},
		{
			name:     "malformed is not archived",
			outcome:  gemini.Malformed{},
			wantText: "unable to obtain a model response: unrecognized structure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := newGeminiMock(ctrl)
			client.EXPECT().
				Generate(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, p gemini.Payload) (gemini.Outcome, error) {
					prompt := firstPartText(p)
					for _, want := range []string{"OBJETIVO: fuerza", "NIVEL: principiante", "DURACIÓN: 45 minutos"} {
						if !strings.Contains(prompt, want) {
							t.Errorf("WorkoutRoutine() prompt missing %q", want)
						}
					}
					return tt.outcome, tt.err
				})

			archive := mocks.NewMockRoutineArchive(ctrl)
			if tt.wantArchive {
				archive.EXPECT().
					Save(gomock.Any(), service.RoutineInput{
						Goal:     req.Goal,
						Level:    req.Level,
						Duration: req.Duration,
						Content:  tt.wantText,
						Model:    testModel,
					}).
					Return(service.Routine{ID: "id"}, tt.archiveErr)
			}

			svc := service.NewAIService(client, archive)
			got := svc.WorkoutRoutine(testContext(), req)
			if got.Text != tt.wantText {
				t.Errorf("WorkoutRoutine() text = %q, want %q", got.Text, tt.wantText)
			}
			if got.ModelTag != testModel {
				t.Errorf("WorkoutRoutine() model = %q", got.ModelTag)
			}
		})
	}
}

func TestAIService_TestConnection(t *testing.T) {
	tests := []struct {
		name    string
		outcome gemini.Outcome
		err     error
		want    string
	}{
		{
			name:    "healthy",
			outcome: gemini.Success{Text: "OK"},
			want:    gemini.ProbeSuccessMarker + "OK",
		},
		{
			name: "transport failure",
			err:  errors.New("dial tcp"),
			want: gemini.ProbeFallback,
		},
		{
			name:    "provider error",
			outcome: gemini.ProviderError{Message: "bad key"},
			want:    "provider error: bad key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := newGeminiMock(ctrl)
			client.EXPECT().
				Generate(gomock.Any(), gemini.BuildChatPayload(gemini.ProbePrompt)).
				Return(tt.outcome, tt.err)

			svc := service.NewAIService(client, nil)
			if got := svc.TestConnection(testContext()); got != tt.want {
				t.Errorf("TestConnection() = %q, want %q", got, tt.want)
			}
		})
	}
}
