package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/match"
	"github.com/jonathan/resume-matcher/internal/ner"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// loadCLIConfig merges the optional config file with environment variables.
func loadCLIConfig() (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadVocabulary loads the configured CSV vocabulary, or the built-in
// fallback list when none is configured.
func loadVocabulary(cfg config.Config) (*vocabulary.Vocabulary, error) {
	if cfg.Vocabulary == "" {
		log.Debug().Msg("no vocabulary configured, using built-in fallback skills")
		return vocabulary.Fallback(), nil
	}
	return vocabulary.Load(cfg.Vocabulary)
}

// buildExtractor wires the entity recognizer used for field extraction.
func buildExtractor(vocab *vocabulary.Vocabulary) *extract.Extractor {
	return extract.New(ner.NewVocabularyRuler(ner.NewProseRecognizer(), vocab))
}

// buildEngine assembles the full scoring engine. The returned cleanup closes
// the embedding client.
func buildEngine(ctx context.Context, cfg config.Config) (*match.Engine, func(), error) {
	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return nil, nil, err
	}

	gemini, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedder (set GEMINI_API_KEY or api_key in config): %w", err)
	}
	cache := embedding.NewCache(gemini)

	// The vocabulary is static, so its vectors can be computed up front.
	// Warm failures are not fatal; the pairwise loop retries on demand.
	if err := cache.Warm(ctx, vocab.Skills()); err != nil {
		log.Warn().Err(err).Msg("failed to warm embedding cache")
	}

	engine := match.NewEngine(
		buildExtractor(vocab),
		similarity.NewEngine(cache, vocab),
		match.DefaultWeights(),
	)
	cleanup := func() { _ = gemini.Close() }
	return engine, cleanup, nil
}
