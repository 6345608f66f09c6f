package valueobjects

import (
	"fmt"
	"strings"
	"time"
)

type SafetyThreshold string

const (
	BlockNone           SafetyThreshold = "BLOCK_NONE"
	BlockOnlyHigh       SafetyThreshold = "BLOCK_ONLY_HIGH"
	BlockMediumAndAbove SafetyThreshold = "BLOCK_MEDIUM_AND_ABOVE"
	BlockLowAndAbove    SafetyThreshold = "BLOCK_LOW_AND_ABOVE"
)

type HarmCategory string

const (
	HarmCategoryHarassment       HarmCategory = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       HarmCategory = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit HarmCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent HarmCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

// HarmCategories are the categories every gateway request configures.
var HarmCategories = []HarmCategory{
	HarmCategoryHarassment,
	HarmCategoryHateSpeech,
	HarmCategorySexuallyExplicit,
	HarmCategoryDangerousContent,
}

const (
	DefaultModel   = "gemini-2.5-flash-image-preview"
	DefaultTimeout = 120 * time.Second
)

// GenerationParameters is the process-wide model configuration, built once
// at startup and handed to the gateway adapters.
type GenerationParameters struct {
	model           string
	safetyThreshold SafetyThreshold
	timeout         time.Duration
}

func NewGenerationParameters(model string, threshold SafetyThreshold, timeout time.Duration) (*GenerationParameters, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	threshold = SafetyThreshold(strings.ToUpper(strings.TrimSpace(string(threshold))))
	switch threshold {
	case BlockNone, BlockOnlyHigh, BlockMediumAndAbove, BlockLowAndAbove:
	default:
		return nil, fmt.Errorf("unsupported safety threshold: %q", threshold)
	}

	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", timeout)
	}

	return &GenerationParameters{
		model:           model,
		safetyThreshold: threshold,
		timeout:         timeout,
	}, nil
}

func DefaultGenerationParameters() *GenerationParameters {
	params, _ := NewGenerationParameters(DefaultModel, BlockNone, DefaultTimeout)
	return params
}

func (p *GenerationParameters) Model() string {
	return p.model
}

func (p *GenerationParameters) SafetyThreshold() SafetyThreshold {
	return p.safetyThreshold
}

func (p *GenerationParameters) Timeout() time.Duration {
	return p.timeout
}
