package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"qa-platform/internal/question"
)

const threeGroupDocument = `[
	{"category": "History", "questions": [
		{"question": "H1", "answer": "a"},
		{"question": "H2", "answer": "b", "difficulty": "advanced"}
	]},
	{"category": "Science", "questions": [
		{"question": "S1", "answer": "a"},
		{"question": "S2", "answer": "b"},
		{"question": "S3", "answer": "c"},
		{"question": "S4", "answer": "d"},
		{"question": "S5", "answer": "e", "tone": "playful", "keywords": ["k1", "k2"]}
	]},
	{"category": "Art", "questions": [
		{"question": "A1", "answer": "a", "difficulty": "intermediate"}
	]}
]`

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return path
}

func TestLoadFileFlattensGroupsInOrder(t *testing.T) {
	path := writeDocument(t, "questions.json", threeGroupDocument)

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(records) != 8 {
		t.Fatalf("expected 8 records, got %d", len(records))
	}

	for idx, record := range records {
		if record.ID != idx+1 {
			t.Fatalf("record %d id = %d, want %d", idx, record.ID, idx+1)
		}
	}

	wantQuestions := []string{"H1", "H2", "S1", "S2", "S3", "S4", "S5", "A1"}
	for idx, want := range wantQuestions {
		if records[idx].Question != want {
			t.Fatalf("record %d question = %q, want %q", idx, records[idx].Question, want)
		}
	}

	if records[1].Category != "History" || records[7].Category != "Art" {
		t.Fatalf("category not inherited from group: %+v / %+v", records[1], records[7])
	}
	if records[6].Tone != "playful" || !reflect.DeepEqual(records[6].Keywords, []string{"k1", "k2"}) {
		t.Fatalf("explicit fields not kept: %+v", records[6])
	}

	stats := question.NewBank(records).Stats()
	if stats.TotalQuestions != 8 || stats.TotalCategories != 3 {
		t.Fatalf("stats = %+v, want 8 questions in 3 categories", stats)
	}
}

func TestFlattenAppliesDefaults(t *testing.T) {
	records, err := Parse([]byte(`[{"category":"History","questions":[{"question":"Q1","answer":"A1"}]}]`), FormatJSON)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	got := records[0]
	want := question.Record{
		ID:         1,
		Question:   "Q1",
		Answer:     "A1",
		Category:   "History",
		Difficulty: question.DifficultyBeginner,
		Tone:       question.DefaultTone,
		Keywords:   []string{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("record = %+v, want %+v", got, want)
	}
}

func TestFlattenCoercesUnrecognizedDifficulty(t *testing.T) {
	var warnings []string
	warn := func(msg string, keysAndValues ...interface{}) {
		warnings = append(warnings, msg)
	}

	records, err := Parse([]byte(`[{"category":"X","questions":[
		{"question":"q1","answer":"a","difficulty":"expert"},
		{"question":"q2","answer":"a","difficulty":"Intermediate"},
		{"question":"q3","answer":"a","difficulty":""}
	]}]`), FormatJSON, WithWarnFunc(warn))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	got := []string{records[0].Difficulty, records[1].Difficulty, records[2].Difficulty}
	want := []string{question.DifficultyBeginner, question.DifficultyIntermediate, question.DifficultyBeginner}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("difficulties = %v, want %v", got, want)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one coercion warning, got %v", warnings)
	}
}

func TestParseYAMLDocument(t *testing.T) {
	doc := `
- category: History
  questions:
    - question: Q1
      answer: A1
      difficulty: advanced
      keywords: [rome]
- category: Art
  questions: []
`
	records, err := Parse([]byte(doc), FormatYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Difficulty != question.DifficultyAdvanced || records[0].Keywords[0] != "rome" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestLoadFilePicksFormatFromExtension(t *testing.T) {
	path := writeDocument(t, "questions.yaml", "- category: History\n  questions:\n    - question: Q1\n      answer: A1\n")

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(records) != 1 || records[0].Category != "History" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		reason  string
	}{
		{name: "empty", content: "  ", reason: "empty"},
		{name: "malformed", content: `[{"category":`, reason: "parse json"},
		{name: "object at top level", content: `{"category":"X","questions":[]}`, reason: "array of category groups"},
		{name: "null document", content: `null`, reason: "array of category groups"},
		{name: "missing questions", content: `[{"category":"X"}]`, reason: "no questions array"},
		{name: "questions not an array", content: `[{"category":"X","questions":"nope"}]`, reason: "parse json"},
		{name: "missing category", content: `[{"questions":[]}]`, reason: "no category"},
		{name: "missing answer", content: `[{"category":"X","questions":[{"question":"Q"}]}]`, reason: "missing question or answer"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeDocument(t, "questions.json", tc.content)

			records, err := LoadFile(path)
			if records != nil {
				t.Fatalf("expected no records on failure, got %d", len(records))
			}

			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *LoadError, got %T (%v)", err, err)
			}
			if loadErr.Path != path {
				t.Fatalf("error path = %q, want %q", loadErr.Path, path)
			}
			if !strings.Contains(loadErr.Error(), tc.reason) {
				t.Fatalf("error %q does not mention %q", loadErr.Error(), tc.reason)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	_, err := LoadFile(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T (%v)", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestDecodeNilReader(t *testing.T) {
	var loadErr *LoadError
	if _, err := Decode(nil, FormatJSON); !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError for absent document, got %v", err)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"data/questions.json": FormatJSON,
		"data/questions.YAML": FormatYAML,
		"questions.yml":       FormatYAML,
		"questions":           FormatJSON,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Fatalf("FormatForPath(%q) = %v, want %v", path, got, want)
		}
	}
}
