package gemini

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which response shape an Outcome was decoded from.
type Kind string

const (
	KindSuccess       Kind = "success"
	KindProviderError Kind = "provider_error"
	KindBlocked       Kind = "blocked"
	KindMalformed     Kind = "malformed"
	KindParseFailure  Kind = "parse_failure"
)

// Outcome is the decoded form of a generateContent response body.
// It is one of Success, ProviderError, Blocked, Malformed or ParseFailure.
type Outcome interface {
	Kind() Kind
	// Result renders the outcome as a ChatResult tagged with modelTag.
	Result(modelTag string) ChatResult
}

// Success carries the text of the first candidate.
type Success struct {
	Text string
}

// ProviderError carries the message of a top-level error object.
type ProviderError struct {
	Message string
}

// Blocked carries the prompt feedback block reason.
type Blocked struct {
	Reason string
}

// Malformed is returned when no known shape matched.
type Malformed struct{}

// ParseFailure is returned when the body is not a JSON object.
type ParseFailure struct {
	Err error
}

func (Success) Kind() Kind       { return KindSuccess }
func (ProviderError) Kind() Kind { return KindProviderError }
func (Blocked) Kind() Kind       { return KindBlocked }
func (Malformed) Kind() Kind     { return KindMalformed }
func (ParseFailure) Kind() Kind  { return KindParseFailure }

func (o Success) Result(modelTag string) ChatResult {
	return ChatResult{Text: o.Text, ModelTag: modelTag}
}

func (o ProviderError) Result(modelTag string) ChatResult {
	return ChatResult{Text: "provider error: " + o.Message, ModelTag: modelTag}
}

func (o Blocked) Result(modelTag string) ChatResult {
	return ChatResult{
		Text:     fmt.Sprintf("content blocked: %s. try a different prompt.", o.Reason),
		ModelTag: modelTag,
	}
}

func (Malformed) Result(modelTag string) ChatResult {
	return ChatResult{
		Text:     "unable to obtain a model response: unrecognized structure",
		ModelTag: modelTag,
	}
}

func (o ParseFailure) Result(modelTag string) ChatResult {
	return ChatResult{Text: "error processing response: " + o.Err.Error(), ModelTag: modelTag}
}

// envelope keeps each top-level field raw so a field of the wrong JSON type
// only disqualifies its own rule instead of failing the whole decode.
type envelope struct {
	Error          json.RawMessage `json:"error"`
	Candidates     json.RawMessage `json:"candidates"`
	PromptFeedback json.RawMessage `json:"promptFeedback"`
}

type errorBody struct {
	Message *string `json:"message"`
}

type candidateBody struct {
	Content *struct {
		Parts []json.RawMessage `json:"parts"`
	} `json:"content"`
}

type partBody struct {
	Text *string `json:"text"`
}

type promptFeedbackBody struct {
	BlockReason *string `json:"blockReason"`
}

// Decode classifies a raw response body. Rules are applied in order and the
// first match wins: error, first candidate text, block reason, malformed.
// A first candidate without text does not stop the search.
func Decode(body []byte) Outcome {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ParseFailure{Err: err}
	}

	var providerErr errorBody
	if decodeField(env.Error, &providerErr) && providerErr.Message != nil {
		return ProviderError{Message: *providerErr.Message}
	}

	var candidates []json.RawMessage
	if decodeField(env.Candidates, &candidates) && len(candidates) > 0 {
		var first candidateBody
		if decodeField(candidates[0], &first) {
			if text, ok := first.text(); ok {
				return Success{Text: text}
			}
		}
	}

	var feedback promptFeedbackBody
	if decodeField(env.PromptFeedback, &feedback) && feedback.BlockReason != nil {
		return Blocked{Reason: *feedback.BlockReason}
	}

	return Malformed{}
}

func (c candidateBody) text() (string, bool) {
	if c.Content == nil || len(c.Content.Parts) == 0 {
		return "", false
	}
	var part partBody
	if !decodeField(c.Content.Parts[0], &part) || part.Text == nil {
		return "", false
	}
	return *part.Text, true
}

func decodeField(raw json.RawMessage, v any) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}
