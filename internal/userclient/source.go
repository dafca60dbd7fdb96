package userclient

import (
	"context"

	"qa-platform/internal/question"
)

// Source is the set of question operations the interactive client needs.
// HTTPClient serves them from the API, Mirror from a local copy of the
// source document; both report misses and bad input with the
// question.ErrNotFound and question.ErrInvalidArgument sentinels.
type Source interface {
	Questions(ctx context.Context) ([]question.Record, error)
	Question(ctx context.Context, id int) (question.Record, error)
	Search(ctx context.Context, keyword string) ([]question.Record, error)
	Filter(ctx context.Context, criteria question.Criteria) ([]question.Record, error)
	Random(ctx context.Context, count int) ([]question.Record, error)
	Categories(ctx context.Context) ([]string, error)
	Difficulties(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (question.Stats, error)
}

var (
	_ Source = (*HTTPClient)(nil)
	_ Source = (*Mirror)(nil)
)
