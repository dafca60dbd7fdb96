package question

import "strings"

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"

	DefaultTone = "academic"
)

// difficultyOrder is the presentation order used by Difficulties and Stats.
var difficultyOrder = []string{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

type Record struct {
	ID         int      `json:"id"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Tone       string   `json:"tone"`
	Keywords   []string `json:"keywords"`
	ViewCount  int64    `json:"viewCount"`
	IsFavorite bool     `json:"isFavorite"`
}

type Criteria struct {
	Category   string
	Difficulty string
}

func (c Criteria) empty() bool {
	return c.Category == "" && c.Difficulty == ""
}

type Stats struct {
	TotalQuestions  int      `json:"totalQuestions"`
	TotalCategories int      `json:"totalCategories"`
	Categories      []string `json:"categories"`
	Difficulties    []string `json:"difficulties"`
	TotalViews      int64    `json:"totalViews"`
	TotalFavorites  int      `json:"totalFavorites"`
}

// NormalizeDifficulty maps a raw difficulty onto the closed set. The second
// return value is false when the input was present but not recognized and
// had to be coerced to beginner.
func NormalizeDifficulty(raw string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "":
		return DifficultyBeginner, true
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return value, true
	default:
		return DifficultyBeginner, false
	}
}

// NormalizeTone returns the tone with the academic default applied.
func NormalizeTone(raw string) string {
	tone := strings.TrimSpace(raw)
	if tone == "" {
		return DefaultTone
	}
	return tone
}
