// main.go — answer engine CLI.
// One-shot with -message, or an interactive loop when no message is given.
//
// Examples:
//
//	go run ./cmd/app -message "what is NPU"
//	go run ./cmd/app -providers knowledge,wikipedia,duckduckgo -concurrent -message "what is a black hole"
//
//	export OPENAI_API_KEY=...
//	go run ./cmd/app -llm openai -model gpt-4o-mini -providers knowledge,wikipedia,llm -message "explain quicksort"
//
//	echo "summarize this: <long text>" | go run ./cmd/app -stdin
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	limbor "github.com/limbor-ai/limbor"
	"github.com/limbor-ai/limbor/src/helpers"
	"github.com/limbor-ai/limbor/src/models"
	"github.com/limbor-ai/limbor/src/source"
)

var (
	flagProviders  = flag.String("providers", "knowledge,wikipedia,duckduckgo", "Comma-separated provider chain: knowledge|wikipedia|duckduckgo|llm")
	flagLLM        = flag.String("llm", "", "LLM backend for the llm provider: openai|gemini|anthropic|ollama|dummy")
	flagModel      = flag.String("model", "gpt-4o-mini", "Model ID for the selected LLM backend")
	flagPrefix     = flag.String("prefix", "", "Optional prompt prefix for the LLM backend")
	flagMessage    = flag.String("message", "", "User message (ignored if -stdin is set)")
	flagStdin      = flag.Bool("stdin", false, "Read user message from STDIN")
	flagJSON       = flag.Bool("json", false, "Print JSON {response, providers}")
	flagSession    = flag.String("session", "default", "Session ID for conversation history")
	flagConcurrent = flag.Bool("concurrent", false, "Consult providers in parallel")
	flagFirstOnly  = flag.Bool("first-only", false, "Stop at the first provider that answers")
	flagMaxProv    = flag.Int("max-providers", 0, "Cap on providers consulted per query (0 = all)")
	flagProvTO     = flag.Duration("provider-timeout", 8*time.Second, "Per-provider lookup timeout")
	flagTimeout    = flag.Duration("timeout", 90*time.Second, "Overall request timeout")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	engine, err := buildEngine(context.Background())
	if err != nil {
		fail(err)
	}

	msg, err := getMessage(*flagMessage, *flagStdin, os.Stdin)
	if err != nil {
		fail(err)
	}

	session := limbor.NewSession(*flagSession, 0)

	if strings.TrimSpace(msg) != "" {
		ctx, cancel := context.WithTimeout(context.Background(), *flagTimeout)
		defer cancel()
		emit(engine.Respond(ctx, session, msg))
		return
	}

	runInteractive(engine, session)
}

func buildEngine(ctx context.Context) (*limbor.Engine, error) {
	var llmAgent models.Agent
	if *flagLLM != "" {
		agent, err := models.NewLLMProvider(ctx, strings.ToLower(*flagLLM), *flagModel, *flagPrefix)
		if err != nil {
			return nil, err
		}
		llmAgent = models.TryCreateCachedLLM(agent)
	}

	var providers []source.Provider
	for _, name := range helpers.ParseCSVList(*flagProviders) {
		switch strings.ToLower(name) {
		case "knowledge":
			providers = append(providers, source.NewKnowledge())
		case "wikipedia":
			providers = append(providers, source.NewWikipedia())
		case "duckduckgo", "web":
			providers = append(providers, source.NewDuckDuckGo())
		case "llm":
			if llmAgent == nil {
				return nil, errors.New("llm provider requested but -llm is not set")
			}
			providers = append(providers, source.NewLLM(llmAgent))
		default:
			return nil, fmt.Errorf("unknown provider: %s", name)
		}
	}

	return limbor.New(limbor.Options{
		Providers:          providers,
		MaxProviders:       *flagMaxProv,
		PerProviderTimeout: *flagProvTO,
		Concurrent:         *flagConcurrent,
		FirstMatchOnly:     *flagFirstOnly,
	})
}

func runInteractive(engine *limbor.Engine, session *limbor.Session) {
	fmt.Println("Ask me anything. Type 'exit' to quit.")
	fmt.Printf("Providers: %s\n\n", helpers.ProviderNames(engine.Providers()))

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), *flagTimeout)
		reply := engine.Respond(ctx, session, line)
		cancel()
		fmt.Println(reply)
		fmt.Println()
	}
}

func getMessage(message string, useStdin bool, stdin io.Reader) (string, error) {
	if !useStdin {
		return message, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func emit(response string) {
	if !*flagJSON {
		fmt.Println(response)
		return
	}
	out := map[string]string{
		"response":  response,
		"providers": *flagProviders,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
