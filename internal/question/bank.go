package question

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync/atomic"
)

type entry struct {
	record Record
	// Lowercased question and answer text matched by Search.
	questionFolded string
	answerFolded   string
	views          atomic.Int64
}

func (e *entry) snapshot() Record {
	record := e.record
	record.ViewCount = e.views.Load()
	record.Keywords = make([]string, len(e.record.Keywords))
	copy(record.Keywords, e.record.Keywords)
	return record
}

// Bank is the in-memory query engine over a loaded question collection.
// The collection is fixed at construction; only per-record view counters
// change afterwards. A Bank is safe for concurrent use.
type Bank struct {
	entries      []*entry
	byID         map[int]*entry
	categories   []string
	difficulties []string
}

// NewBank takes ownership of a flat record list. Records keep the order in
// which they are passed; ids are expected to be unique.
func NewBank(records []Record) *Bank {
	b := &Bank{
		entries: make([]*entry, 0, len(records)),
		byID:    make(map[int]*entry, len(records)),
	}

	categorySet := make(map[string]struct{})
	difficultySet := make(map[string]struct{})

	for _, record := range records {
		if record.Keywords == nil {
			record.Keywords = []string{}
		}
		item := &entry{
			record:         record,
			questionFolded: strings.ToLower(record.Question),
			answerFolded:   strings.ToLower(record.Answer),
		}
		item.views.Store(record.ViewCount)
		item.record.ViewCount = 0

		b.entries = append(b.entries, item)
		b.byID[record.ID] = item
		categorySet[record.Category] = struct{}{}
		difficultySet[record.Difficulty] = struct{}{}
	}

	b.categories = make([]string, 0, len(categorySet))
	for category := range categorySet {
		b.categories = append(b.categories, category)
	}
	sort.Strings(b.categories)

	b.difficulties = make([]string, 0, len(difficultySet))
	for _, difficulty := range difficultyOrder {
		if _, ok := difficultySet[difficulty]; ok {
			b.difficulties = append(b.difficulties, difficulty)
			delete(difficultySet, difficulty)
		}
	}
	// Records built outside the loader may carry values outside the enum.
	extra := make([]string, 0, len(difficultySet))
	for difficulty := range difficultySet {
		extra = append(extra, difficulty)
	}
	sort.Strings(extra)
	b.difficulties = append(b.difficulties, extra...)

	return b
}

func (b *Bank) Len() int {
	return len(b.entries)
}

func (b *Bank) GetAll() []Record {
	out := make([]Record, 0, len(b.entries))
	for _, item := range b.entries {
		out = append(out, item.snapshot())
	}
	return out
}

// GetByID returns the record and counts the retrieval as a view.
func (b *Bank) GetByID(id int) (Record, error) {
	item, ok := b.byID[id]
	if !ok {
		return Record{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}

	record := item.snapshot()
	record.ViewCount = item.views.Add(1)
	return record, nil
}

func (b *Bank) Search(keyword string) ([]Record, error) {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil, fmt.Errorf("keyword is required: %w", ErrInvalidArgument)
	}

	out := make([]Record, 0)
	for _, item := range b.entries {
		if strings.Contains(item.questionFolded, needle) || strings.Contains(item.answerFolded, needle) {
			out = append(out, item.snapshot())
		}
	}
	return out, nil
}

func (b *Bank) Filter(criteria Criteria) []Record {
	if criteria.empty() {
		return b.GetAll()
	}

	out := make([]Record, 0)
	for _, item := range b.entries {
		if criteria.Category != "" && item.record.Category != criteria.Category {
			continue
		}
		if criteria.Difficulty != "" && item.record.Difficulty != criteria.Difficulty {
			continue
		}
		out = append(out, item.snapshot())
	}
	return out
}

// RandomSample draws min(count, Len()) distinct records in random order.
func (b *Bank) RandomSample(count int) []Record {
	if count <= 0 {
		return []Record{}
	}
	if count > len(b.entries) {
		count = len(b.entries)
	}

	indexes := make([]int, len(b.entries))
	for idx := range indexes {
		indexes[idx] = idx
	}

	// Partial Fisher-Yates: only the first count slots need to be settled.
	out := make([]Record, 0, count)
	for idx := 0; idx < count; idx++ {
		pick := idx + rand.IntN(len(indexes)-idx)
		indexes[idx], indexes[pick] = indexes[pick], indexes[idx]
		out = append(out, b.entries[indexes[idx]].snapshot())
	}
	return out
}

func (b *Bank) Categories() []string {
	return cloneStrings(b.categories)
}

func (b *Bank) Difficulties() []string {
	return cloneStrings(b.difficulties)
}

func cloneStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Stats is computed from the live counters on every call.
func (b *Bank) Stats() Stats {
	stats := Stats{
		TotalQuestions:  len(b.entries),
		TotalCategories: len(b.categories),
		Categories:      b.Categories(),
		Difficulties:    b.Difficulties(),
	}
	for _, item := range b.entries {
		stats.TotalViews += item.views.Load()
		if item.record.IsFavorite {
			stats.TotalFavorites++
		}
	}
	return stats
}
