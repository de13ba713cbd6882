package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/newsgauge/veracity/internal/command"
	"github.com/newsgauge/veracity/internal/config"
	"github.com/newsgauge/veracity/internal/dataset"
	"github.com/newsgauge/veracity/internal/datasources/sqlite"
	"github.com/newsgauge/veracity/internal/domain"
	"github.com/newsgauge/veracity/internal/model"
	"github.com/newsgauge/veracity/internal/transport/web/router"
	"github.com/newsgauge/veracity/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	cfg := config.Load(ctx)

	repo, err := setupArticleRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up article repository: %w", err)
	}

	records, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	classifier, err := setupClassifier(ctx, cfg, records)
	if err != nil {
		return nil, fmt.Errorf("setting up classifier: %w", err)
	}

	guest, err := seedUsers(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("seeding users: %w", err)
	}

	if MustGetEnvAsBoolean(ctx, "SEED_ON_STARTUP") {
		if err := seedArticles(ctx, repo, records, guest.ID); err != nil {
			return nil, fmt.Errorf("seeding articles: %w", err)
		}
	}

	commands := router.Commands{
		ClassifyArticle: command.NewClassifyArticle(classifier, repo, repo),
		SubmitReport:    command.NewSubmitReport(repo),
		ResolveReport:   command.NewResolveReport(repo),
		RegisterUser:    command.NewRegisterUser(repo),
	}

	authMiddleware := setupAuthMiddleware(repo, guest)

	httpRouter, err := router.MakeRouter(
		repo,
		commands,
		classifier,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "RECENT_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupArticleRepository(ctx context.Context) (*sqlite.Repository, error) {
	db, err := sqlite.Connect(ctx, MustGetEnvAsString(ctx, "DB_PATH"))
	if err != nil {
		return nil, fmt.Errorf("connecting to SQLite: %w", err)
	}
	return sqlite.New(db), nil
}

// setupClassifier loads a previously trained model artifact when one is
// configured and readable, and trains from the dataset otherwise.
func setupClassifier(ctx context.Context, cfg config.Config, records []dataset.Record) (*model.Model, error) {
	logger := domain.LoggerFromContext(ctx)

	if path := cfg.Dataset.ArtifactPath; path != "" {
		m, err := model.Load(path)
		if err == nil {
			logger.InfoContext(ctx, "loaded trained model artifact",
				"path", path,
				"accuracy", m.Accuracy,
				"vocabulary_size", m.Vectorizer.VocabularySize(),
			)
			return m, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading model artifact: %w", err)
		}
	}

	m, err := model.Train(dataset.TrainingRecords(records), cfg.ModelConfig())
	if err != nil {
		return nil, fmt.Errorf("training classifier: %w", err)
	}

	logger.InfoContext(ctx, "trained classifier",
		"accuracy", m.Accuracy,
		"vocabulary_size", m.Vectorizer.VocabularySize(),
		"records", len(records),
	)

	if path := cfg.Dataset.ArtifactPath; path != "" {
		if err := m.Save(path); err != nil {
			return nil, fmt.Errorf("saving model artifact: %w", err)
		}
	}

	return m, nil
}

// seedUsers ensures the guest account exists and registers an admin account
// when ADMIN_USERNAME and ADMIN_SECRET are both set.
func seedUsers(ctx context.Context, repo *sqlite.Repository) (domain.User, error) {
	registerCmd := command.NewRegisterUser(repo)

	guestSecret := GetEnvAsStringDefault(ctx, "GUEST_SECRET", domain.GuestUsername)
	guestHash, err := command.HashSecret(guestSecret)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing guest secret: %w", err)
	}

	if _, err := repo.EnsureGuest(ctx, guestHash); err != nil {
		return domain.User{}, fmt.Errorf("ensuring guest user: %w", err)
	}

	guest, err := repo.UserByUsername(ctx, domain.GuestUsername)
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching guest user: %w", err)
	}

	adminUsername, adminSecret := os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_SECRET")
	if adminUsername != "" && adminSecret != "" {
		_, err := registerCmd.Execute(ctx, command.RegisterUserRequest{
			Username: adminUsername,
			Secret:   adminSecret,
			Role:     domain.RoleAdmin,
		})
		if err != nil && !errors.Is(err, domain.ErrDuplicateUsername) {
			return domain.User{}, fmt.Errorf("registering admin user: %w", err)
		}
	}

	return guest, nil
}

func seedArticles(ctx context.Context, repo *sqlite.Repository, records []dataset.Record, guestID int64) error {
	articles := make([]domain.Article, 0, len(records))
	for _, rec := range records {
		articles = append(articles, domain.Article{
			Title:      rec.Title,
			Content:    rec.Content,
			Label:      rec.Label,
			Confidence: rec.Confidence,
		})
	}

	if err := repo.ReplaceArticles(ctx, articles, guestID); err != nil {
		return fmt.Errorf("replacing articles: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "seeded articles from dataset", "count", len(articles))

	return nil
}

func setupAuthMiddleware(repo *sqlite.Repository, guest domain.User) func(http.Handler) http.Handler {
	authCmd := command.NewAuthenticateUser(repo)

	validators := []router.AuthValidator{
		router.NewBasicAuthValidator(authCmd),
	}

	return router.NewAuthMiddleware(validators, guest)
}
