package openai

import (
	"context"
	"errors"
	"time"

	"github.com/AVTech-ve/ecommerce-backend/internal/cfg"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/jitter"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

// EmbeddingService — клиент OpenAI-совместимого embedding-провайдера.
// Через BaseURL подключается любой совместимый бэкенд (openai, ollama,
// siliconflow и т.д.).
type EmbeddingService struct {
	client     *openai.Client
	model      string
	dimensions int
	maxRetries int
	logger     logger.Logger
}

func NewEmbeddingService(cfg *cfg.OpenAICfg, logger logger.Logger) *EmbeddingService {
	clientConfig := openai.DefaultConfig(cfg.ApiKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &EmbeddingService{
		client:     openai.NewClientWithConfig(clientConfig),
		model:      cfg.EmbeddingModel,
		dimensions: cfg.Dimensions,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// Embed векторизует один текст с retry-логикой и экспоненциальной задержкой.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	const (
		op         = "EmbeddingService.Embed"
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	if text == "" {
		return nil, e.Wrap(op, e.ErrEmptyEmbeddingText)
	}

	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		vector, err := s.embed(ctx, text)
		if err == nil {
			return vector, nil
		}
		lastErr = err

		if attempt == s.maxRetries-1 {
			break
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		s.logger.Warnf("embedding request failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, err)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	return nil, e.Wrap(op, errors.Join(e.ErrEmbeddingProvider, lastErr))
}

// Dimensions возвращает размерность векторов провайдера.
func (s *EmbeddingService) Dimensions() int {
	return s.dimensions
}

func (s *EmbeddingService) embed(ctx context.Context, text string) ([]float32, error) {
	req := openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      openai.EmbeddingModel(s.model),
		Dimensions: s.dimensions,
	}

	resp, err := s.client.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 {
		return nil, e.ErrVectorEmbeddingEmpty
	}

	return resp.Data[0].Embedding, nil
}
