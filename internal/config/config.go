package config

import (
	"context"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/newsgauge/veracity/internal/domain"
	"github.com/newsgauge/veracity/internal/model"
)

const (
	configPathEnv      = "VERACITY_CONFIG"
	datasetPathEnv     = "DATASET_PATH"
	modelArtifactEnv   = "MODEL_ARTIFACT_PATH"
	trainingAlphaEnv   = "TRAINING_ALPHA"
	trainingSeedEnv    = "TRAINING_SEED"
	defaultDatasetPath = "data/news.csv"
)

// Config holds training and dataset settings for the classifier.
type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset"`
	Training TrainingConfig `yaml:"training"`
}

// DatasetConfig describes where the labelled corpus and trained model live.
type DatasetConfig struct {
	Path         string `yaml:"path"`
	ArtifactPath string `yaml:"artifactPath"`
}

// TrainingConfig mirrors the classifier's training knobs.
type TrainingConfig struct {
	Alpha        float64 `yaml:"alpha"`
	TestFraction float64 `yaml:"testFraction"`
	Seed         uint64  `yaml:"seed"`
}

// ModelConfig converts the YAML settings into the trainer's config type.
func (c Config) ModelConfig() model.TrainingConfig {
	return model.TrainingConfig{
		Alpha:        c.Training.Alpha,
		TestFraction: c.Training.TestFraction,
		Seed:         c.Training.Seed,
	}
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load(ctx context.Context) Config {
	cfg := defaultConfig()
	logger := domain.LoggerFromContext(ctx)

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.WarnContext(ctx, "cannot read config file, falling back to defaults",
				"path", path, "error", err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				logger.WarnContext(ctx, "cannot parse config file, falling back to defaults",
					"path", path, "error", err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides(ctx)

	return cfg
}

func (c *Config) applyEnvOverrides(ctx context.Context) {
	logger := domain.LoggerFromContext(ctx)

	if v := os.Getenv(datasetPathEnv); v != "" {
		c.Dataset.Path = v
	}

	if v := os.Getenv(modelArtifactEnv); v != "" {
		c.Dataset.ArtifactPath = v
	}

	if v := os.Getenv(trainingAlphaEnv); v != "" {
		alpha, err := strconv.ParseFloat(v, 64)
		if err != nil {
			logger.WarnContext(ctx, "ignoring unparseable training alpha override", "value", v)
		} else {
			c.Training.Alpha = alpha
		}
	}

	if v := os.Getenv(trainingSeedEnv); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			logger.WarnContext(ctx, "ignoring unparseable training seed override", "value", v)
		} else {
			c.Training.Seed = seed
		}
	}
}

func mergeConfig(base, override Config) Config {
	if override.Dataset.Path != "" {
		base.Dataset.Path = override.Dataset.Path
	}
	if override.Dataset.ArtifactPath != "" {
		base.Dataset.ArtifactPath = override.Dataset.ArtifactPath
	}

	if override.Training.Alpha > 0 {
		base.Training.Alpha = override.Training.Alpha
	}
	if override.Training.TestFraction > 0 {
		base.Training.TestFraction = override.Training.TestFraction
	}
	if override.Training.Seed != 0 {
		base.Training.Seed = override.Training.Seed
	}

	return base
}

func defaultConfig() Config {
	trainDefaults := model.DefaultTrainingConfig()
	return Config{
		Dataset: DatasetConfig{Path: defaultDatasetPath},
		Training: TrainingConfig{
			Alpha:        trainDefaults.Alpha,
			TestFraction: trainDefaults.TestFraction,
			Seed:         trainDefaults.Seed,
		},
	}
}
