package gemini

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// ChatRequest is a single message sent to the model.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResult is the outcome of one call to the provider. It is produced for
// every call, including failed ones, in which case Text explains the failure.
type ChatResult struct {
	Text     string `json:"response"`
	ModelTag string `json:"model"`
}

// IsZero reports whether r carries neither text nor a model tag.
func (r ChatResult) IsZero() bool {
	return r.Text == "" && r.ModelTag == ""
}

// Payload is the generateContent request body.
type Payload struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
	SafetySettings   []SafetySetting  `json:"safetySettings"`
}

// Content is one conversation turn.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is a piece of a content block. Only text parts are sent.
type Part struct {
	Text string `json:"text"`
}

// GenerationConfig holds sampling parameters.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

// HarmCategory names a content-safety category.
type HarmCategory string

const (
	HarmCategoryHarassment       HarmCategory = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       HarmCategory = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit HarmCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent HarmCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

// HarmBlockThreshold is the probability at which content is blocked.
type HarmBlockThreshold string

// BlockMediumAndAbove is the threshold every request uses.
const BlockMediumAndAbove HarmBlockThreshold = "BLOCK_MEDIUM_AND_ABOVE"

// SafetySetting pairs a category with its threshold.
type SafetySetting struct {
	Category  HarmCategory       `json:"category"`
	Threshold HarmBlockThreshold `json:"threshold"`
}
