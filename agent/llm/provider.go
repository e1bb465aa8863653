// Package llm holds the two LLM consumption modes: plain text completion
// (response formatting) and the delegated tool-calling agent.
package llm

import (
	"context"
	"fmt"
	"sync"
	"time"

	openaisdk "github.com/openai/openai-go"

	"github.com/jaxfield/assistant/agent/contract"
	"github.com/jaxfield/assistant/pkg/openrouter"
)

// probeCachePeriod bounds how often Available re-checks the endpoint.
const probeCachePeriod = 60 * time.Second

// Provider implements contract.Completer over an OpenAI-compatible endpoint.
type Provider struct {
	client *openaisdk.Client
	cfg    openrouter.Config

	mu       sync.Mutex
	probedAt time.Time
	probeOK  bool
}

var _ contract.Completer = (*Provider)(nil)

func NewProvider(cfg openrouter.Config) *Provider {
	return &Provider{
		client: openrouter.NewClient(cfg),
		cfg:    cfg,
	}
}

func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("%w: no API key configured", contract.ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	resp, err := p.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(p.cfg.Model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: completion: %v", contract.ErrModelInvoke, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", contract.ErrModelInvoke)
	}
	return resp.Choices[0].Message.Content, nil
}

// Available probes the endpoint with a short timeout and caches the verdict,
// so cold fallback paths do not pay a network round-trip per message.
func (p *Provider) Available(ctx context.Context) bool {
	if p.client == nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.probedAt.IsZero() && time.Since(p.probedAt) < probeCachePeriod {
		return p.probeOK
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.ProbeTimeout)
	defer cancel()
	_, err := p.client.Models.List(ctx)

	p.probedAt = time.Now()
	p.probeOK = err == nil
	return p.probeOK
}
