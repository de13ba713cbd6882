package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/newsgauge/veracity/internal/config"
	"github.com/newsgauge/veracity/internal/dataset"
	"github.com/newsgauge/veracity/internal/domain"
	"github.com/newsgauge/veracity/internal/model"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	// Setup logger
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "training failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)
	cfg := config.Load(ctx)

	records, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	m, err := model.Train(dataset.TrainingRecords(records), cfg.ModelConfig())
	if err != nil {
		return fmt.Errorf("training classifier: %w", err)
	}

	logger.InfoContext(ctx, "training completed",
		"records", len(records),
		"accuracy", m.Accuracy,
		"vocabulary_size", m.Vectorizer.VocabularySize(),
	)

	if path := cfg.Dataset.ArtifactPath; path != "" {
		if err := m.Save(path); err != nil {
			return fmt.Errorf("saving model artifact: %w", err)
		}
		logger.InfoContext(ctx, "model artifact written", "path", path)
	}

	return nil
}
