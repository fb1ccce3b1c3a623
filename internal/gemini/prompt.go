package gemini

import "fmt"

// FitnessContext frames a user question for the fitness assistant persona.
const FitnessContext = "Eres un asistente especializado en gimnasio y fitness. " +
	"Proporciona respuestas útiles y profesionales sobre ejercicios, " +
	"rutinas, nutrición y salud deportiva. Responde en español."

const fitnessQuestionSeparator = "\n\nPregunta: "

// Section headings the workout routine prompt asks the model to produce.
const (
	SectionWarmUp          = "CALENTAMIENTO"
	SectionMainExercises   = "EJERCICIOS PRINCIPALES"
	SectionCoolDown        = "ENFRIAMIENTO"
	SectionRecommendations = "RECOMENDACIONES"
)

// Argument order: goal, level, duration, level, duration.
const workoutRoutineTemplate = `Eres un entrenador personal experto en fitness. Crea una rutina de ejercicios COMPLETA y DETALLADA para:

OBJETIVO: %[1]s
NIVEL: %[2]s
DURACIÓN: %[3]s

La rutina debe incluir:

1. ` + SectionWarmUp + ` (5-10 minutos):
   - Ejercicios específicos de calentamiento
   - Duración de cada ejercicio

2. ` + SectionMainExercises + `:
   - Nombre del ejercicio
   - Series y repeticiones
   - Descanso entre series
   - Técnica básica

3. ` + SectionCoolDown + ` (5 minutos):
   - Estiramientos específicos
   - Tiempo de cada estiramiento

4. ` + SectionRecommendations + `:
   - Frecuencia semanal
   - Progresión
   - Precauciones
   - Consejos de alimentación e hidratación

IMPORTANTE:
- Sé MUY específico y detallado
- Usa ejercicios apropiados para el nivel %[2]s
- Asegúrate de que la rutina ocupe exactamente %[3]s
- Incluye al menos 5-8 ejercicios principales
- Formatea la respuesta de manera clara y organizada

Responde SOLO con la rutina de ejercicios, sin introducciones largas.
`

// DefaultGenerationConfig returns the sampling parameters attached to every payload.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.9,
		MaxOutputTokens: 2048,
		TopP:            0.8,
		TopK:            40,
	}
}

// DefaultSafetySettings returns one setting per harm category, all blocking
// medium probability and above. A new slice is returned on every call.
func DefaultSafetySettings() []SafetySetting {
	categories := []HarmCategory{
		HarmCategoryHarassment,
		HarmCategoryHateSpeech,
		HarmCategorySexuallyExplicit,
		HarmCategoryDangerousContent,
	}
	settings := make([]SafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, SafetySetting{
			Category:  category,
			Threshold: BlockMediumAndAbove,
		})
	}
	return settings
}

// BuildChatPayload wraps message as the only part of a single content block.
// The message is passed through unchanged, empty or not.
func BuildChatPayload(message string) Payload {
	return Payload{
		Contents: []Content{
			{
				Parts: []Part{{Text: message}},
			},
		},
		GenerationConfig: DefaultGenerationConfig(),
		SafetySettings:   DefaultSafetySettings(),
	}
}

// BuildFitnessChatPayload prefixes message with the fitness assistant framing.
func BuildFitnessChatPayload(message string) Payload {
	return BuildChatPayload(FitnessContext + fitnessQuestionSeparator + message)
}

// BuildWorkoutRoutinePrompt renders the routine request for the given goal,
// level and session duration.
func BuildWorkoutRoutinePrompt(goal, level, duration string) string {
	return fmt.Sprintf(workoutRoutineTemplate, goal, level, duration)
}
