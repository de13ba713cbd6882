package domain

// Label is the binary classification outcome attached to an article.
type Label string

const (
	LabelFake Label = "FAKE"
	LabelReal Label = "REAL"
)

// Toggle flips FAKE to REAL and REAL to FAKE.
func (l Label) Toggle() Label {
	if l == LabelFake {
		return LabelReal
	}
	return LabelFake
}

// Valid reports whether l is one of the two known labels.
func (l Label) Valid() bool {
	return l == LabelFake || l == LabelReal
}

type Article struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// RankedArticle is an article annotated with its endorsement count,
// as returned by popularity queries.
type RankedArticle struct {
	Article
	Endorsements int64 `json:"endorsements"`
}
