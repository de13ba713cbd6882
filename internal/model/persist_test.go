package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsgauge/veracity/internal/domain"
)

func TestModel_SaveLoadRoundTrip(t *testing.T) {
	m, err := Train(trainingFixture(), DefaultTrainingConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, m.Accuracy, loaded.Accuracy)
	assert.Equal(t, m.Vectorizer.Vocabulary, loaded.Vectorizer.Vocabulary)
	assert.Equal(t, m.Classifier.Alpha, loaded.Classifier.Alpha)

	wantLabel, wantConfidence := m.PredictWithConfidence("aliens landed yesterday")
	gotLabel, gotConfidence := loaded.PredictWithConfidence("aliens landed yesterday")
	assert.Equal(t, wantLabel, gotLabel)
	assert.InDelta(t, wantConfidence, gotConfidence, 1e-12)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_IncompleteArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"accuracy": 0.9}`), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "incomplete")
}

func TestLoad_PredictsAfterReload(t *testing.T) {
	m, err := Train(trainingFixture(), DefaultTrainingConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.LabelReal, loaded.Predict("council approved the budget"))
}
