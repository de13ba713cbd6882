package command

import (
	"context"
	"fmt"

	"github.com/newsgauge/veracity/internal/datasources"
	"github.com/newsgauge/veracity/internal/domain"
)

// LabelPredictor is the fitted model surface the classify command needs.
type LabelPredictor interface {
	PredictWithConfidence(text string) (domain.Label, float64)
}

// ClassifyArticleRequest is the request for the ClassifyArticle command.
type ClassifyArticleRequest struct {
	User    domain.User
	Title   string
	Content string
}

// ClassifyArticleResult is the result of classifying and persisting an article.
type ClassifyArticleResult struct {
	ArticleID  int64
	Label      domain.Label
	Confidence float64
}

// ClassifyArticle runs the classification pipeline for one submission:
// predict a label for the combined headline+body, persist the article with
// the model's confidence, and endorse it for the submitting user (guest
// included) so popularity reflects distinct endorsing users.
type ClassifyArticle struct {
	Predictor LabelPredictor
	Articles  datasources.ArticleInserter
	Endorser  datasources.EndorsementAdder
}

// NewClassifyArticle creates a properly initialized ClassifyArticle command.
func NewClassifyArticle(
	predictor LabelPredictor,
	articles datasources.ArticleInserter,
	endorser datasources.EndorsementAdder,
) *ClassifyArticle {
	return &ClassifyArticle{
		Predictor: predictor,
		Articles:  articles,
		Endorser:  endorser,
	}
}

func (c *ClassifyArticle) Execute(ctx context.Context, req ClassifyArticleRequest) (ClassifyArticleResult, error) {
	if req.Title == "" || req.Content == "" {
		return ClassifyArticleResult{}, fmt.Errorf("%w: both a headline and content are required", domain.ErrValidation)
	}

	label, confidence := c.Predictor.PredictWithConfidence(req.Title + " " + req.Content)

	articleID, err := c.Articles.InsertArticle(ctx, req.Title, req.Content, label, confidence)
	if err != nil {
		return ClassifyArticleResult{}, fmt.Errorf("persisting classified article: %w", err)
	}

	if err := c.Endorser.AddEndorsement(ctx, req.User.ID, articleID); err != nil {
		return ClassifyArticleResult{}, fmt.Errorf("endorsing article for user: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "classified article",
		"article_id", articleID, "label", label, "confidence", confidence, "user_id", req.User.ID)

	return ClassifyArticleResult{
		ArticleID:  articleID,
		Label:      label,
		Confidence: confidence,
	}, nil
}
