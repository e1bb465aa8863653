package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	"github.com/jaxfield/assistant/agent/contract"
	"github.com/jaxfield/assistant/agent/tool"
	"github.com/jaxfield/assistant/pkg/openrouter"
)

// Agent is the delegated tool-calling mode: the model plans tool calls
// against the full registry catalog, the calls execute locally, and a second
// generation renders the final answer.
type Agent struct {
	model    einomodel.ToolCallingChatModel
	registry *tool.Registry
	system   string
}

var _ contract.ToolAgent = (*Agent)(nil)

func NewAgent(ctx context.Context, cfg openrouter.Config, registry *tool.Registry, systemPrompt string) (*Agent, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, err
	}
	bound, err := chatModel.WithTools(registry.ToolInfos())
	if err != nil {
		return nil, fmt.Errorf("%w: bind tool catalog: %v", contract.ErrModelInvoke, err)
	}
	return &Agent{model: bound, registry: registry, system: systemPrompt}, nil
}

func (a *Agent) Answer(ctx context.Context, message string) (string, error) {
	msgs := []*schema.Message{
		schema.SystemMessage(a.system),
		schema.UserMessage(message),
	}

	planned, err := a.model.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("%w: planning: %v", contract.ErrModelInvoke, err)
	}
	if len(planned.ToolCalls) == 0 {
		if content := strings.TrimSpace(planned.Content); content != "" {
			return content, nil
		}
		return "", fmt.Errorf("%w: empty agent reply", contract.ErrModelInvoke)
	}

	msgs = append(msgs, planned)
	for _, call := range planned.ToolCalls {
		msgs = append(msgs, schema.ToolMessage(a.runToolCall(ctx, call), call.ID))
	}

	final, err := a.model.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("%w: finalize: %v", contract.ErrModelInvoke, err)
	}
	if content := strings.TrimSpace(final.Content); content != "" {
		return content, nil
	}
	return "", fmt.Errorf("%w: empty finalized reply", contract.ErrModelInvoke)
}

// runToolCall executes one planned call and renders its outcome as the JSON
// the model reads back. Failures become error payloads, never aborts: the
// model can still explain what went wrong.
func (a *Agent) runToolCall(ctx context.Context, call schema.ToolCall) string {
	name := contract.ToolName(strings.TrimSpace(call.Function.Name))
	args := contract.Args{}
	if raw := strings.TrimSpace(call.Function.Arguments); raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return fmt.Sprintf(`{"error":"invalid arguments: %s"}`, err)
		}
	}

	result, err := a.registry.Invoke(ctx, name, args)
	if err != nil {
		log.Warn().Err(err).Str("tool", string(name)).Msg("agent tool call failed")
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}

	var payload any = result.Data
	if result.Action != nil {
		payload = result.Action
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(encoded)
}
