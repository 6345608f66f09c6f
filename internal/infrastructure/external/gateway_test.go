package external

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/repositories"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/valueobjects"
)

type stubPools struct{}

func (stubPools) VertexAIPool() repositories.VertexAIClientPool { return failingVertexPool{} }
func (stubPools) GenAIPool() repositories.GenAIClientPool { return failingGenAIPool{} }
func (stubPools) ClientOptions(context.Context) ([]option.ClientOption, error) {
	return nil, nil
}
func (stubPools) Config() *repositories.AIClientConfig { return &repositories.AIClientConfig{} }
func (stubPools) Close() error { return nil }

func TestNewModelGateway(t *testing.T) {
	params := valueobjects.DefaultGenerationParameters()

	gemini, err := NewModelGateway("gemini", stubPools{}, params)
	require.NoError(t, err)
	assert.IsType(t, &GeminiAIService{}, gemini)

	vertex, err := NewModelGateway("vertex", stubPools{}, params)
	require.NoError(t, err)
	assert.IsType(t, &VertexAIService{}, vertex)

	_, err = NewModelGateway("openai", stubPools{}, params)
	assert.Error(t, err)
}
