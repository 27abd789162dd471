package agents

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/deepseek"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/ivolee/stockdash/config"
)

// ErrServiceUnavailable marks an outright completion-service failure
// (network, auth, timeout). It is the only failure allowed to
// short-circuit a whole query, and only when the Interpreter reports it.
var ErrServiceUnavailable = errors.New("completion service unavailable")

// Completer is the narrow seam over the text-completion service so tests
// can substitute a deterministic stub.
type Completer interface {
	Complete(ctx context.Context, messages []*schema.Message) (string, error)
}

// ChatCompleter adapts an eino chat model to the Completer seam.
type ChatCompleter struct {
	model model.BaseChatModel
}

// NewChatCompleter builds the configured chat model. OpenRouter speaks
// the OpenAI wire protocol, so the openai component covers both.
func NewChatCompleter(ctx context.Context, cfg *config.Config) (*ChatCompleter, error) {
	switch cfg.LLMProvider {
	case "deepseek":
		chatModel, err := deepseek.NewChatModel(ctx, &deepseek.ChatModelConfig{
			APIKey:    cfg.DeepSeekAPIKey,
			Model:     cfg.Model,
			MaxTokens: 2000,
		})
		if err != nil {
			return nil, fmt.Errorf("create deepseek model: %w", err)
		}
		return &ChatCompleter{model: chatModel}, nil
	default:
		maxTokens := 2000
		chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL:   cfg.BackendURL,
			APIKey:    cfg.OpenRouterAPIKey,
			Model:     cfg.Model,
			MaxTokens: &maxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("create openai model: %w", err)
		}
		return &ChatCompleter{model: chatModel}, nil
	}
}

// Complete sends one generation request and returns the reply text.
// Transport failures are wrapped as ErrServiceUnavailable.
func (cc *ChatCompleter) Complete(ctx context.Context, messages []*schema.Message) (string, error) {
	resp, err := cc.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	return resp.Content, nil
}
