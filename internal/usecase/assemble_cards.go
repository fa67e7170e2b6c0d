package usecase

import (
	"log/slog"

	"github.com/runoshun/issue-butler/internal/domain"
)

// CardAssembler turns fetch results into cards.
type CardAssembler struct {
	markdown domain.MarkdownRenderer
	logger   *slog.Logger
}

// NewCardAssembler creates a new CardAssembler.
func NewCardAssembler(markdown domain.MarkdownRenderer, logger *slog.Logger) *CardAssembler {
	return &CardAssembler{
		markdown: markdown,
		logger:   logger,
	}
}

// Assemble builds one card per resolved result, in result order.
// Unresolved results and results without an identifier are dropped and reported as failures.
// A body that fails to render yields a card with an empty body and a body failure.
func (a *CardAssembler) Assemble(team string, results []FetchResult) ([]domain.Card, []domain.Failure) {
	teamName := domain.TeamDisplayName(team)
	cards := make([]domain.Card, 0, len(results))
	var failures []domain.Failure

	for _, r := range results {
		if r.Err != nil {
			failures = append(failures, domain.Failure{Reference: r.Reference, Stage: domain.StageFetch, Err: r.Err})
			continue
		}
		if r.Issue == nil || r.Issue.ID == 0 {
			failures = append(failures, domain.Failure{Reference: r.Reference, Stage: domain.StageFetch, Err: domain.ErrEmptyIssue})
			continue
		}

		body, err := a.markdown.Render(r.Issue.Body)
		if err != nil {
			a.logger.Warn("render issue body", "ref", r.Reference.String(), "error", err)
			failures = append(failures, domain.Failure{Reference: r.Reference, Stage: domain.StageBody, Err: err})
			body = ""
		}

		cards = append(cards, domain.Card{
			ID:       r.Issue.ID,
			Number:   r.Issue.Number,
			Title:    r.Issue.Title,
			BodyHTML: body,
			Labels:   domain.StyleLabels(r.Issue.Labels),
			TeamName: teamName,
		})
	}

	return cards, failures
}
