package domain

// MinReportLength is the minimum length, in runes, of a report's content.
const MinReportLength = 20

// Report is a flag raised by a user disputing an article's label.
// ArticleTitle is populated on fetch for display; it is not stored
// with the report itself.
type Report struct {
	UserID       int64  `json:"user_id"`
	ArticleID    int64  `json:"article_id"`
	Content      string `json:"content"`
	ArticleTitle string `json:"article_title,omitempty"`
}

// ResolveAction is the terminal admin action closing a report.
type ResolveAction string

const (
	// ResolveToggle flips the article's label and deletes the report.
	ResolveToggle ResolveAction = "toggle"
	// ResolveDelete deletes the article, cascading every report and
	// endorsement that references it.
	ResolveDelete ResolveAction = "delete"
	// ResolveDismiss deletes only the report, leaving the article untouched.
	ResolveDismiss ResolveAction = "dismiss"
)

func (a ResolveAction) Valid() bool {
	switch a {
	case ResolveToggle, ResolveDelete, ResolveDismiss:
		return true
	}
	return false
}
