package repositories

import (
	"context"

	"cloud.google.com/go/vertexai/genai" // VertexAI用
	"google.golang.org/api/option"
	genai_std "google.golang.org/genai" // 標準GenAI用
)

// AIクライアント共通設定
type AIClientConfig struct {
	ProjectID       string
	Location        string
	GeminiAPIKey    string
	CredentialsFile string
}

// VertexAI Client Pool Service
type VertexAIClientPool interface {
	GetVertexAIClient(ctx context.Context) (*genai.Client, error)

	Close() error
}

// GenAI Client Pool Service (Gemini API backend)
type GenAIClientPool interface {
	GetGenAIClient(ctx context.Context) (*genai_std.Client, error)

	Close() error
}

// Client Pool Service
// 全AIクライアントプールを統合管理するサービス
type ClientPoolService interface {
	VertexAIPool() VertexAIClientPool

	GenAIPool() GenAIClientPool

	// Google APIs (Vertex AI, Firebase) 用の認証オプション
	ClientOptions(ctx context.Context) ([]option.ClientOption, error)

	Config() *AIClientConfig

	Close() error
}
