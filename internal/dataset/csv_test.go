package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsgauge/veracity/internal/domain"
)

func TestRead(t *testing.T) {
	cases := []struct {
		name        string
		csv         string
		want        []Record
		errContains string
	}{
		{
			name: "full_rows",
			csv: "title,content,label,confidence\n" +
				"Aliens Landed,They came at night,FAKE,0.97\n" +
				"Budget Approved,Council voted yes,REAL,0.85\n",
			want: []Record{
				{Title: "Aliens Landed", Content: "They came at night", Label: domain.LabelFake, Confidence: 0.97},
				{Title: "Budget Approved", Content: "Council voted yes", Label: domain.LabelReal, Confidence: 0.85},
			},
		},
		{
			name: "missing_confidence_column_defaults_to_zero",
			csv: "title,content,label\n" +
				"Aliens Landed,They came at night,FAKE\n",
			want: []Record{
				{Title: "Aliens Landed", Content: "They came at night", Label: domain.LabelFake, Confidence: 0.0},
			},
		},
		{
			name: "empty_confidence_value_defaults_to_zero",
			csv: "title,content,label,confidence\n" +
				"Aliens Landed,They came at night,FAKE,\n",
			want: []Record{
				{Title: "Aliens Landed", Content: "They came at night", Label: domain.LabelFake, Confidence: 0.0},
			},
		},
		{
			name: "columns_in_any_order",
			csv: "label,title,content\n" +
				"REAL,Budget Approved,Council voted yes\n",
			want: []Record{
				{Title: "Budget Approved", Content: "Council voted yes", Label: domain.LabelReal},
			},
		},
		{
			name:        "missing_required_column",
			csv:         "title,label\nAliens Landed,FAKE\n",
			errContains: `missing column "content"`,
		},
		{
			name: "unknown_label",
			csv: "title,content,label\n" +
				"Aliens Landed,They came at night,MAYBE\n",
			errContains: `line 2: unknown label "MAYBE"`,
		},
		{
			name: "bad_confidence",
			csv: "title,content,label,confidence\n" +
				"Aliens Landed,They came at night,FAKE,high\n",
			errContains: `line 2: bad confidence "high"`,
		},
		{
			name: "header_only",
			csv:  "title,content,label\n",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := Read(strings.NewReader(tc.csv))
			if tc.errContains != "" {
				assert.ErrorContains(t, err, tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, records)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.csv")
	data := "title,content,label\nAliens Landed,They came at night,FAKE\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Aliens Landed", records[0].Title)

	_, err = Load(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorContains(t, err, "opening dataset")
}

func TestTrainingRecords(t *testing.T) {
	records := []Record{
		{Title: "Aliens Landed", Content: "They came at night", Label: domain.LabelFake, Confidence: 0.97},
	}

	training := TrainingRecords(records)
	require.Len(t, training, 1)
	assert.Equal(t, "Aliens Landed", training[0].Title)
	assert.Equal(t, "They came at night", training[0].Content)
	assert.Equal(t, domain.LabelFake, training[0].Label)
}
