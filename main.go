package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"catan/agent"
	"catan/engine"
	"catan/game"
	"catan/meta"
	"catan/record"
	"catan/render"
	"catan/stats"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	path := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := meta.Default()
	if *path != "" {
		var err error
		if cfg, err = meta.Load(*path); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var renderer game.Renderer = render.Nop{}
	if cfg.ObserverAddr != "" {
		hub := render.NewHub()
		go hub.Run(ctx)
		srv := &http.Server{Addr: cfg.ObserverAddr, Handler: hub}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("observer server stopped")
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Info().Msgf("observers can connect on ws://%s", cfg.ObserverAddr)
		renderer = hub
	}

	rng := game.NewRand(cfg.Seed)
	table := stats.NewTable(rng)
	wins := make([]int, cfg.Players)
	start := time.Now()
	for i := 0; i < cfg.Games && ctx.Err() == nil; i++ {
		winner, err := runGame(cfg, rng, table, renderer)
		if err != nil {
			log.Fatal().Err(err).Msgf("game %d could not start", i+1)
		}
		if winner != game.NoPlayer {
			wins[winner]++
		}
		table.Analyze(winner)
	}
	log.Info().Msgf("finished %d games in %s, wins per player: %v", cfg.Games, time.Since(start), wins)
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// runGame plays one game and returns its winner.
func runGame(cfg meta.Config, rng *rand.Rand, table *stats.Table, renderer game.Renderer) (int, error) {
	agents := make([]agent.Agent, cfg.Players)
	for i, kind := range cfg.Agents {
		a, err := agent.New(kind, rng, table)
		if err != nil {
			return game.NoPlayer, err
		}
		agents[i] = a
	}

	gameLog := record.NewLog(cfg.Players)
	sink := record.Tee{gameLog, record.NewZerolog(gameLog.Game, log.Logger)}
	e, err := engine.New(cfg, agents,
		engine.WithRand(rng),
		engine.WithRenderer(renderer),
		engine.WithSink(sink),
		engine.WithStatistics(table),
	)
	if err != nil {
		return game.NoPlayer, err
	}

	e.Run()
	end := gameLog.Ending
	log.Info().Str("game", gameLog.Game).Msgf("winner %d after %d rounds and %d actions", end.Winner, end.Rounds, len(gameLog.Actions()))
	return end.Winner, nil
}
