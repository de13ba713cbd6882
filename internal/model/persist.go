package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes the fitted model to path as a JSON artifact. Persisting is the
// caller's concern; Train itself never touches durable storage. Callers must
// serialize retraining runs against the same artifact path.
func (m *Model) Save(path string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding model artifact: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing model artifact: %w", err)
	}
	return nil
}

// Load reads a model artifact previously written by Save.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding model artifact: %w", err)
	}

	if m.Vectorizer == nil || m.Classifier == nil {
		return nil, fmt.Errorf("model artifact %s is incomplete", path)
	}
	return &m, nil
}
