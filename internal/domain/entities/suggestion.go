package entities

import "encoding/json"

// ParsedSuggestion is the JSON object the model embeds in its text reply.
// Analysis is diagnostic data that is logged and never returned to callers.
type ParsedSuggestion struct {
	Recommendation string
	Analysis       json.RawMessage
}
