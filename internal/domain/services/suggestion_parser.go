package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/entities"
)

const (
	recommendationKey = "sugerencia_corte"
	analysisKey       = "analisis"
)

// ParseSuggestion pulls the JSON object out of the model's free text and
// returns its hairstyle recommendation. callerID is only used for logging.
func ParseSuggestion(rawText string, callerID string) (string, error) {
	suggestion, err := decodeSuggestion(rawText, callerID)
	if err != nil {
		return "", err
	}

	slog.Info("Suggestion analysis", "uid", callerID, "analysis", string(suggestion.Analysis))
	return suggestion.Recommendation, nil
}

func decodeSuggestion(rawText string, callerID string) (*entities.ParsedSuggestion, error) {
	span, ok := extractBracedSpan(rawText)
	if !ok {
		return nil, entities.NewAnalysisError(
			entities.KindMalformedSuggestionText,
			callerID,
			errors.New("text does not contain '{' or '}'"),
		)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &fields); err != nil {
		return nil, entities.NewAnalysisError(
			entities.KindInvalidSuggestionJSON,
			callerID,
			fmt.Errorf("failed to decode suggestion json: %w", err),
		)
	}
	if fields == nil {
		return nil, entities.NewAnalysisError(
			entities.KindInvalidSuggestionJSON,
			callerID,
			errors.New("suggestion json is not an object"),
		)
	}

	var recommendation string
	raw, found := fields[recommendationKey]
	if found {
		if err := json.Unmarshal(raw, &recommendation); err != nil {
			recommendation = ""
		}
	}
	if recommendation == "" {
		return nil, entities.NewAnalysisError(
			entities.KindMissingRecommendationField,
			callerID,
			fmt.Errorf("json does not contain a %q string", recommendationKey),
		)
	}

	return &entities.ParsedSuggestion{
		Recommendation: recommendation,
		Analysis:       fields[analysisKey],
	}, nil
}

// extractBracedSpan returns the text from the first '{' to the last '}',
// inclusive and trimmed. It only fails when one of the braces is missing.
// When the last '}' comes before the first '{' the text between them is
// returned instead, which never decodes to an object.
func extractBracedSpan(rawText string) (string, bool) {
	start := strings.Index(rawText, "{")
	end := strings.LastIndex(rawText, "}")
	if start == -1 || end == -1 {
		return "", false
	}
	if end < start {
		return strings.TrimSpace(rawText[end+1 : start]), true
	}
	return strings.TrimSpace(rawText[start : end+1]), true
}
