package service

import (
	"context"
	"time"

	"gimnasio/internal/contextutil"
	"gimnasio/internal/gemini"
)

const maxLoggedBody = 512

// LoggingHooks reports Gemini calls through the request logger. Response
// bodies are only logged at debug level and truncated.
func LoggingHooks() gemini.Hooks {
	return gemini.Hooks{
		OnRequest: func(ctx context.Context, url string, payload gemini.Payload) {
			contextutil.LoggerFromContext(ctx).DebugContext(ctx, "sending gemini request",
				"url", url,
				"contents", len(payload.Contents),
			)
		},
		OnResponse: func(ctx context.Context, status int, body []byte, elapsed time.Duration, err error) {
			logger := contextutil.LoggerFromContext(ctx)
			if err != nil {
				logger.WarnContext(ctx, "gemini call failed",
					"status", status,
					"elapsed_ms", elapsed.Milliseconds(),
					"error", err,
				)
				return
			}
			logger.InfoContext(ctx, "gemini response received",
				"status", status,
				"elapsed_ms", elapsed.Milliseconds(),
				"bytes", len(body),
			)
			logger.DebugContext(ctx, "gemini response body", "body", truncate(string(body), maxLoggedBody))
		},
		OnOutcome: func(ctx context.Context, outcome gemini.Outcome) {
			logger := contextutil.LoggerFromContext(ctx)
			if outcome.Kind() == gemini.KindSuccess {
				logger.DebugContext(ctx, "gemini outcome", "kind", outcome.Kind())
				return
			}
			logger.WarnContext(ctx, "gemini returned no answer", "kind", outcome.Kind())
		},
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
