package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/present"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/setup"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	query := flag.String("q", "", "search query")
	asJSON := flag.Bool("json", false, "print the Adaptive Card JSON instead of Markdown")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.WarnLevel)
	logger := log.Logger

	_ = godotenv.Load()

	ctx := context.Background()

	deps, err := setup.Wire(ctx, setup.LoadConfig(), &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}
	defer deps.Close()

	answer, err := deps.Dispatcher.Answer(ctx, *query)
	if err != nil {
		log.Fatal().Err(err).Msg("Search failed")
	}

	if *asJSON {
		out, err := json.MarshalIndent(present.RenderCard(answer.Document), "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to render card")
		}
		fmt.Println(string(out))
		return
	}

	fmt.Println(present.RenderMarkdown(answer.Document))
	fmt.Fprintf(os.Stderr, "\n(%d results, %s, %s)\n", len(answer.Outcome.Records), answer.Outcome.Provenance, answer.Outcome.Duration)
}
