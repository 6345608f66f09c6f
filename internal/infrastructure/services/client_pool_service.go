package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cloud.google.com/go/vertexai/genai" // VertexAI用
	"google.golang.org/api/option"
	genai_std "google.golang.org/genai" // 標準GenAI用

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/repositories"
)

// clientOptionsFunc resolves the Google API options lazily.
type clientOptionsFunc func(ctx context.Context) ([]option.ClientOption, error)

// VertexAI Client Pool実装
type vertexAIClientPool struct {
	config  *repositories.AIClientConfig
	options clientOptionsFunc
	client  *genai.Client
	mutex   sync.RWMutex
}

// 新しいVertexAIクライアントプールを作成
func newVertexAIClientPool(config *repositories.AIClientConfig, options clientOptionsFunc) repositories.VertexAIClientPool {
	return &vertexAIClientPool{
		config:  config,
		options: options,
	}
}

func (p *vertexAIClientPool) GetVertexAIClient(ctx context.Context) (*genai.Client, error) {
	p.mutex.RLock()
	if p.client != nil {
		defer p.mutex.RUnlock()
		return p.client, nil
	}
	p.mutex.RUnlock()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	// ダブルチェックロッキング
	if p.client != nil {
		return p.client, nil
	}

	if p.config.ProjectID == "" || p.config.Location == "" {
		return nil, errors.New("project id and location are required for Vertex AI")
	}

	opts, err := p.options(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve credentials: %w", err)
	}

	endpoint := fmt.Sprintf("%s-aiplatform.googleapis.com:443", p.config.Location)
	opts = append(opts, option.WithEndpoint(endpoint))

	client, err := genai.NewClient(ctx, p.config.ProjectID, p.config.Location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create VertexAI client: %w", err)
	}

	p.client = client
	return p.client, nil
}

func (p *vertexAIClientPool) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.client != nil {
		err := p.client.Close()
		p.client = nil
		return err
	}
	return nil
}

// GenAI Client Pool実装 (Gemini API backend)
type genAIClientPool struct {
	config *repositories.AIClientConfig
	client *genai_std.Client
	mutex  sync.RWMutex
}

// 新しいGenAIクライアントプールを作成
func newGenAIClientPool(config *repositories.AIClientConfig) repositories.GenAIClientPool {
	return &genAIClientPool{
		config: config,
	}
}

func (p *genAIClientPool) GetGenAIClient(ctx context.Context) (*genai_std.Client, error) {
	p.mutex.RLock()
	if p.client != nil {
		defer p.mutex.RUnlock()
		return p.client, nil
	}
	p.mutex.RUnlock()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	// ダブルチェックロッキング
	if p.client != nil {
		return p.client, nil
	}

	if p.config.GeminiAPIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai_std.NewClient(ctx, &genai_std.ClientConfig{
		APIKey:  p.config.GeminiAPIKey,
		Backend: genai_std.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	p.client = client
	return p.client, nil
}

func (p *genAIClientPool) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// GenAI Clientはリソースクリーンアップ不要
	p.client = nil
	return nil
}

// Client Pool Service実装
type clientPoolService struct {
	config       *repositories.AIClientConfig
	vertexAIPool repositories.VertexAIClientPool
	genAIPool    repositories.GenAIClientPool

	optionsOnce sync.Once
	options     []option.ClientOption
	optionsErr  error
}

// 新しいClient Pool Serviceを作成
func NewClientPoolService(config repositories.AIClientConfig) repositories.ClientPoolService {
	s := &clientPoolService{
		config: &config,
	}
	s.vertexAIPool = newVertexAIClientPool(s.config, s.ClientOptions)
	s.genAIPool = newGenAIClientPool(s.config)
	return s
}

func (s *clientPoolService) VertexAIPool() repositories.VertexAIClientPool {
	return s.vertexAIPool
}

func (s *clientPoolService) GenAIPool() repositories.GenAIClientPool {
	return s.genAIPool
}

// ClientOptions resolves credentials once. The first caller's context is
// used for the lookup.
func (s *clientPoolService) ClientOptions(ctx context.Context) ([]option.ClientOption, error) {
	s.optionsOnce.Do(func() {
		s.options, s.optionsErr = ResolveClientOptions(ctx, s.config.CredentialsFile)
	})
	return s.options, s.optionsErr
}

func (s *clientPoolService) Config() *repositories.AIClientConfig {
	return s.config
}

func (s *clientPoolService) Close() error {
	var errs []error

	if err := s.vertexAIPool.Close(); err != nil {
		errs = append(errs, fmt.Errorf("VertexAI pool close error: %w", err))
	}

	if err := s.genAIPool.Close(); err != nil {
		errs = append(errs, fmt.Errorf("GenAI pool close error: %w", err))
	}

	return errors.Join(errs...)
}
