package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"qa-platform/internal/question"
)

const DefaultPath = "data/questions.json"

// LoadError reports why a source document could not be turned into a dataset.
// It is fatal: no partial dataset is ever returned alongside it.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("load dataset")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

type Option func(*options)

type options struct {
	warn func(msg string, keysAndValues ...interface{})
}

// WithWarnFunc receives a warning for every value that was coerced during
// flattening, e.g. an unrecognized difficulty. The signature matches
// logger.Logger.Warn.
func WithWarnFunc(fn func(msg string, keysAndValues ...interface{})) Option {
	return func(o *options) {
		o.warn = fn
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FormatForPath picks the decoder from the file extension; JSON is the default.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads, decodes and flattens the source document at path.
func LoadFile(path string, opts ...Option) ([]question.Record, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "read source document", Err: err}
	}

	records, err := Parse(raw, FormatForPath(path), opts...)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) && loadErr.Path == "" {
			loadErr.Path = path
		}
		return nil, err
	}
	return records, nil
}

// Parse decodes raw document bytes and flattens them into records.
func Parse(raw []byte, format Format, opts ...Option) ([]question.Record, error) {
	doc, err := Decode(bytes.NewReader(raw), format)
	if err != nil {
		return nil, err
	}
	return Flatten(doc, opts...)
}

func Decode(r io.Reader, format Format) (Document, error) {
	if r == nil {
		return nil, &LoadError{Reason: "source document is absent"}
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Reason: "read source document", Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &LoadError{Reason: "source document is empty"}
	}

	var doc Document
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(raw, &doc)
	default:
		err = json.Unmarshal(raw, &doc)
	}
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			return nil, &LoadError{Reason: "top-level value must be an array of category groups", Err: err}
		}
		return nil, &LoadError{Reason: "parse " + format.String() + " document", Err: err}
	}
	if doc == nil {
		return nil, &LoadError{Reason: "top-level value must be an array of category groups"}
	}
	return doc, nil
}

// Flatten walks groups in order, and entries in order within each group,
// assigning ids from 1 and applying field defaults.
func Flatten(doc Document, opts ...Option) ([]question.Record, error) {
	o := buildOptions(opts)

	total := 0
	for groupIdx, group := range doc {
		if group.Questions == nil {
			return nil, &LoadError{Reason: fmt.Sprintf("group %d (%q) has no questions array", groupIdx, group.Category)}
		}
		if strings.TrimSpace(group.Category) == "" {
			return nil, &LoadError{Reason: fmt.Sprintf("group %d has no category", groupIdx)}
		}
		total += len(*group.Questions)
	}

	records := make([]question.Record, 0, total)
	nextID := 1
	for groupIdx, group := range doc {
		for entryIdx, raw := range *group.Questions {
			if strings.TrimSpace(raw.Question) == "" || strings.TrimSpace(raw.Answer) == "" {
				return nil, &LoadError{Reason: fmt.Sprintf("group %d (%q) entry %d is missing question or answer", groupIdx, group.Category, entryIdx)}
			}

			difficulty, recognized := question.NormalizeDifficulty(raw.Difficulty)
			if !recognized && o.warn != nil {
				o.warn("unrecognized difficulty coerced",
					"id", nextID,
					"category", group.Category,
					"difficulty", raw.Difficulty,
					"coerced_to", difficulty,
				)
			}

			keywords := make([]string, 0, len(raw.Keywords))
			keywords = append(keywords, raw.Keywords...)

			records = append(records, question.Record{
				ID:         nextID,
				Question:   raw.Question,
				Answer:     raw.Answer,
				Category:   group.Category,
				Difficulty: difficulty,
				Tone:       question.NormalizeTone(raw.Tone),
				Keywords:   keywords,
			})
			nextID++
		}
	}

	return records, nil
}
