// Package dispatch is the per-message state machine: insight pre-pass, then
// the delegated agent when reachable, then manual routing with template
// formatting. Every path ends in a readable reply; nothing propagates.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jaxfield/assistant/agent/contract"
	"github.com/jaxfield/assistant/agent/router"
	"github.com/jaxfield/assistant/agent/tool"
)

type Dispatcher struct {
	registry  *tool.Registry
	store     contract.RecordStore
	completer contract.Completer
	agent     contract.ToolAgent // nil when no agent is configured
	style     string
}

func New(registry *tool.Registry, store contract.RecordStore, completer contract.Completer, agent contract.ToolAgent, style string) *Dispatcher {
	return &Dispatcher{
		registry:  registry,
		store:     store,
		completer: completer,
		agent:     agent,
		style:     style,
	}
}

// ProcessMessage is the sole externally observable operation of the core.
func (d *Dispatcher) ProcessMessage(ctx context.Context, message string) contract.ChatReply {
	// Insight reports outrank everything, including the agent: "I talked to
	// Sam about store 1234" must never become a visit search.
	if name, ok := router.DetectInsight(message); ok {
		return d.logInsightByName(ctx, name, message)
	}

	if d.agent != nil && d.completer.Available(ctx) {
		answer, err := d.agent.Answer(ctx, message)
		if err == nil {
			return contract.ChatReply{Response: answer, Source: contract.SourceAgent}
		}
		log.Warn().Err(err).Msg("agent path failed, falling back to manual routing")
	}

	decision := router.Route(message)
	log.Info().Str("tool", string(decision.Tool)).Interface("args", decision.Args).Msg("manual route")

	desc, ok := d.registry.Lookup(decision.Tool)
	if !ok {
		return contract.ChatReply{
			Response: "Sorry, I couldn't process that request.",
			Source:   contract.SourceError,
		}
	}

	result, err := desc.Invoke(ctx, decision.Args)
	if err != nil {
		log.Error().Err(err).Str("tool", string(decision.Tool)).Msg("tool invocation failed")
		return contract.ChatReply{
			Response: fmt.Sprintf("Error retrieving data: %v", err),
			Source:   contract.SourceError,
		}
	}

	return d.format(ctx, message, decision.Tool, result)
}

func (d *Dispatcher) format(ctx context.Context, message string, name contract.ToolName, result contract.ToolResult) contract.ChatReply {
	var payload any = result.Data
	if result.Action != nil {
		payload = result.Action
	}

	if d.completer.Available(ctx) {
		text, err := d.formatWithLLM(ctx, message, payload)
		if err == nil {
			return contract.ChatReply{Response: text, Source: contract.SourceLLMFormatted}
		}
		log.Warn().Err(err).Msg("llm formatting failed, falling back to templates")
	}

	text, err := renderTemplate(name, result)
	if err == nil {
		return contract.ChatReply{Response: text, Source: contract.SourceTemplateFormatted}
	}
	log.Error().Err(err).Str("tool", string(name)).Msg("template formatting failed")

	raw, merr := json.MarshalIndent(payload, "", "  ")
	if merr != nil {
		raw = []byte(fmt.Sprintf("%v", payload))
	}
	return contract.ChatReply{Response: string(raw), Source: contract.SourceRawData}
}

func (d *Dispatcher) formatWithLLM(ctx context.Context, message string, payload any) (string, error) {
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	prompt := fmt.Sprintf(
		"%s\n\nUser's question: %s\n\nData from database:\n%s\n\nPlease provide a helpful response based on this data.",
		d.style, message, encoded,
	)
	return d.completer.Complete(ctx, prompt)
}
