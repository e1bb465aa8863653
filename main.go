package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jaxfield/assistant/agent/dispatch"
	"github.com/jaxfield/assistant/agent/llm"
	"github.com/jaxfield/assistant/agent/prompt"
	storex "github.com/jaxfield/assistant/agent/store"
	"github.com/jaxfield/assistant/agent/tool"
	configx "github.com/jaxfield/assistant/pkg/config"
	_ "github.com/jaxfield/assistant/pkg/logger/autoload"
	openrouterx "github.com/jaxfield/assistant/pkg/openrouter"
)

func main() {
	ctx := context.Background()

	dbCfg := configx.MustNew[storex.Config]("DB")
	records := storex.Open(*dbCfg)
	defer records.Close()

	registry := tool.New(records)
	prompts := prompt.Load()

	// The LLM layer is optional: with no key the assistant still answers
	// every message through manual routing and templates.
	var (
		provider  = llm.NewProvider(openrouterx.Config{})
		toolAgent *llm.Agent
	)
	if llmCfg, err := configx.New[openrouterx.Config]("OPENROUTER"); err != nil {
		log.Warn().Err(err).Msg("llm disabled, running on manual routing only")
	} else {
		provider = llm.NewProvider(*llmCfg)
		toolAgent, err = llm.NewAgent(ctx, *llmCfg, registry, prompts.System)
		if err != nil {
			log.Warn().Err(err).Msg("agent unavailable, queries fall back to manual routing")
			toolAgent = nil
		}
	}

	var dispatcher *dispatch.Dispatcher
	if toolAgent != nil {
		dispatcher = dispatch.New(registry, records, provider, toolAgent, prompts.Style)
	} else {
		dispatcher = dispatch.New(registry, records, provider, nil, prompts.Style)
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)
	fmt.Println("Ready. Type a message (Ctrl-D to quit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		reply := dispatcher.ProcessMessage(ctx, message)
		fmt.Printf("\n%s\n[%s]\n\n", reply.Response, reply.Source)
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("stdin read failed")
	}
}
