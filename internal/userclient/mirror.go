package userclient

import (
	"context"
	"net/http"
	"strings"

	"qa-platform/internal/dataset"
	"qa-platform/internal/question"
)

// Mirror answers every query from a locally loaded copy of the source
// document, using the same engine as the service.
type Mirror struct {
	bank *question.Bank
}

// NewMirror loads the source document from an http(s) URL or a file path.
func NewMirror(ctx context.Context, location string, httpClient *http.Client, opts ...dataset.Option) (*Mirror, error) {
	var (
		records []question.Record
		err     error
	)
	if isRemote(location) {
		records, err = dataset.Fetch(ctx, httpClient, location, opts...)
	} else {
		records, err = dataset.LoadFile(location, opts...)
	}
	if err != nil {
		return nil, err
	}
	return NewMirrorFromRecords(records), nil
}

func NewMirrorFromRecords(records []question.Record) *Mirror {
	return &Mirror{bank: question.NewBank(records)}
}

func (m *Mirror) Questions(context.Context) ([]question.Record, error) {
	return m.bank.GetAll(), nil
}

func (m *Mirror) Question(_ context.Context, id int) (question.Record, error) {
	return m.bank.GetByID(id)
}

func (m *Mirror) Search(_ context.Context, keyword string) ([]question.Record, error) {
	return m.bank.Search(keyword)
}

func (m *Mirror) Filter(_ context.Context, criteria question.Criteria) ([]question.Record, error) {
	return m.bank.Filter(criteria), nil
}

func (m *Mirror) Random(_ context.Context, count int) ([]question.Record, error) {
	return m.bank.RandomSample(count), nil
}

func (m *Mirror) Categories(context.Context) ([]string, error) {
	return m.bank.Categories(), nil
}

func (m *Mirror) Difficulties(context.Context) ([]string, error) {
	return m.bank.Difficulties(), nil
}

func (m *Mirror) Stats(context.Context) (question.Stats, error) {
	return m.bank.Stats(), nil
}

func isRemote(location string) bool {
	lower := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
