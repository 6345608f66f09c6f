package valueobjects

import (
	"testing"
	"time"
)

func TestNewGenerationParameters(t *testing.T) {
	tests := []struct {
		name      string
		model     string
		threshold SafetyThreshold
		timeout   time.Duration
		want      SafetyThreshold
		wantErr   bool
	}{
		{
			name:      "valid parameters",
			model:     "gemini-2.5-flash-image-preview",
			threshold: BlockNone,
			timeout:   time.Minute,
			want:      BlockNone,
		},
		{
			name:      "threshold is normalized",
			model:     "gemini-2.5-flash-image-preview",
			threshold: " block_only_high ",
			timeout:   time.Minute,
			want:      BlockOnlyHigh,
		},
		{
			name:      "empty model",
			model:     "  ",
			threshold: BlockNone,
			timeout:   time.Minute,
			wantErr:   true,
		},
		{
			name:      "unknown threshold",
			model:     "gemini-2.5-flash-image-preview",
			threshold: "BLOCK_EVERYTHING",
			timeout:   time.Minute,
			wantErr:   true,
		},
		{
			name:      "zero timeout",
			model:     "gemini-2.5-flash-image-preview",
			threshold: BlockNone,
			timeout:   0,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := NewGenerationParameters(tt.model, tt.threshold, tt.timeout)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewGenerationParameters() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if params.SafetyThreshold() != tt.want {
				t.Errorf("SafetyThreshold() = %v, want %v", params.SafetyThreshold(), tt.want)
			}
		})
	}
}

func TestDefaultGenerationParameters(t *testing.T) {
	params := DefaultGenerationParameters()

	if params.Model() != DefaultModel {
		t.Errorf("Expected model %s, got %s", DefaultModel, params.Model())
	}
	if params.SafetyThreshold() != BlockNone {
		t.Errorf("Expected BLOCK_NONE, got %s", params.SafetyThreshold())
	}
	if params.Timeout() != DefaultTimeout {
		t.Errorf("Expected timeout %s, got %s", DefaultTimeout, params.Timeout())
	}
}
