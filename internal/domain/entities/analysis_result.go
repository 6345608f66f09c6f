package entities

import "fmt"

// AnalysisResult is the only shape returned on success.
type AnalysisResult struct {
	suggestionText    string
	editedImageBase64 string
}

func NewAnalysisResult(suggestionText string, editedImageBase64 string) (*AnalysisResult, error) {
	if suggestionText == "" {
		return nil, fmt.Errorf("suggestion text is required")
	}
	if editedImageBase64 == "" {
		return nil, fmt.Errorf("edited image is required")
	}

	return &AnalysisResult{
		suggestionText:    suggestionText,
		editedImageBase64: editedImageBase64,
	}, nil
}

func (r *AnalysisResult) SuggestionText() string {
	return r.suggestionText
}

func (r *AnalysisResult) EditedImageBase64() string {
	return r.editedImageBase64
}
