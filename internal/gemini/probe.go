package gemini

import (
	"context"
	"strings"
)

const (
	// ProbePrompt is the trivial prompt used to check connectivity.
	ProbePrompt = "Responde brevemente con 'OK' para confirmar que el servicio funciona correctamente."
	// ProbeSuccessMarker prefixes a healthy probe reply.
	ProbeSuccessMarker = "✅ "
	// ProbeFallback is returned when the call itself fails.
	ProbeFallback = "error connecting to provider"
)

var probeFailureMarkers = []string{"error", "blocked"}

// Generator sends a payload and decodes the reply.
type Generator interface {
	Generate(ctx context.Context, payload Payload) (Outcome, error)
}

// Probe runs ProbePrompt through gen. Replies that read as an error or a
// block are returned verbatim; anything else gets ProbeSuccessMarker.
func Probe(ctx context.Context, gen Generator, modelTag string) string {
	outcome, err := gen.Generate(ctx, BuildChatPayload(ProbePrompt))
	if err != nil {
		return ProbeFallback
	}
	text := Resolve(outcome, nil, modelTag).Text
	for _, marker := range probeFailureMarkers {
		if strings.Contains(text, marker) {
			return text
		}
	}
	return ProbeSuccessMarker + text
}
