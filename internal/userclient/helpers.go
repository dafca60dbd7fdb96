package userclient

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"qa-platform/internal/question"
)

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  help")
	fmt.Fprintln(out, "  all | reset")
	fmt.Fprintln(out, "  list")
	fmt.Fprintln(out, "  show <id>")
	fmt.Fprintln(out, "  search <keyword>")
	fmt.Fprintln(out, "  category <name>")
	fmt.Fprintln(out, "  difficulty <level>")
	fmt.Fprintln(out, "  filter [category=<name>] [difficulty=<level>]")
	fmt.Fprintln(out, "  random [count]")
	fmt.Fprintln(out, "  categories")
	fmt.Fprintln(out, "  difficulties")
	fmt.Fprintln(out, "  stats")
	fmt.Fprintln(out, "  exit")
}

func printRecords(out io.Writer, records []question.Record, pageSize int) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No questions found.")
		return
	}

	fmt.Fprintf(out, "%d question(s):\n", len(records))
	for idx, record := range records {
		if idx == pageSize {
			fmt.Fprintf(out, "... and %d more\n", len(records)-pageSize)
			return
		}
		fmt.Fprintf(out, "#%d [%s | %s] %s\n", record.ID, record.Category, record.Difficulty, record.Question)
	}
}

func printRecord(out io.Writer, record question.Record) {
	fmt.Fprintf(out, "#%d %s\n", record.ID, record.Question)
	fmt.Fprintf(out, "  answer:     %s\n", record.Answer)
	fmt.Fprintf(out, "  category:   %s\n", record.Category)
	fmt.Fprintf(out, "  difficulty: %s\n", record.Difficulty)
	fmt.Fprintf(out, "  tone:       %s\n", record.Tone)
	if len(record.Keywords) > 0 {
		fmt.Fprintf(out, "  keywords:   %s\n", strings.Join(record.Keywords, ", "))
	}
	fmt.Fprintf(out, "  views:      %d\n", record.ViewCount)
}

func printValues(out io.Writer, title string, values []string) {
	fmt.Fprintf(out, "%s (%d):\n", title, len(values))
	for _, value := range values {
		fmt.Fprintf(out, "  %s\n", value)
	}
}

func printStats(out io.Writer, stats question.Stats) {
	fmt.Fprintf(out, "questions:  %d\n", stats.TotalQuestions)
	fmt.Fprintf(out, "categories: %d\n", stats.TotalCategories)
	fmt.Fprintf(out, "levels:     %s\n", strings.Join(stats.Difficulties, ", "))
	fmt.Fprintf(out, "views:      %d\n", stats.TotalViews)
	fmt.Fprintf(out, "favorites:  %d\n", stats.TotalFavorites)
}

func splitCommand(line string) (string, string) {
	command, rest, _ := strings.Cut(line, " ")
	return strings.ToLower(command), strings.TrimSpace(rest)
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.New("usage: show <id>")
	}
	return id, nil
}

func parseCount(raw string, defaultValue int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, errors.New("count must be a positive integer")
	}
	return value, nil
}

// parseFilterArgs reads "category=<name> difficulty=<level>" in either order.
// Values may contain spaces; a value runs until the next key.
func parseFilterArgs(raw string) (question.Criteria, error) {
	var (
		criteria question.Criteria
		current  *string
		parts    []string
	)

	flush := func() {
		if current != nil {
			*current = strings.Join(parts, " ")
		}
		parts = parts[:0]
	}

	for _, field := range strings.Fields(raw) {
		key, value, hasKey := strings.Cut(field, "=")
		switch {
		case hasKey && strings.EqualFold(key, "category"):
			flush()
			current = &criteria.Category
		case hasKey && strings.EqualFold(key, "difficulty"):
			flush()
			current = &criteria.Difficulty
		default:
			if current == nil {
				return question.Criteria{}, errors.New("usage: filter [category=<name>] [difficulty=<level>]")
			}
			parts = append(parts, field)
			continue
		}
		if value != "" {
			parts = append(parts, value)
		}
	}
	flush()

	return criteria, nil
}

func describeClientError(err error, describe string) string {
	switch {
	case errors.Is(err, ErrServiceUnavailable):
		return fmt.Sprintf("question service unavailable at %s", describe)
	case errors.Is(err, question.ErrNotFound):
		return "question not found"
	case errors.Is(err, question.ErrInvalidArgument):
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr.Message
		}
		msg := err.Error()
		if idx := strings.LastIndex(msg, ": "+question.ErrInvalidArgument.Error()); idx > 0 {
			return msg[:idx]
		}
		return msg
	default:
		return err.Error()
	}
}
