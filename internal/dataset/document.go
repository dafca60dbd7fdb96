package dataset

// Document is the nested source layout: an ordered list of category groups.
type Document []Group

type Group struct {
	Category  string         `json:"category" yaml:"category"`
	Questions *[]RawQuestion `json:"questions" yaml:"questions"`
}

// RawQuestion mirrors one entry of the source document before defaults are applied.
type RawQuestion struct {
	Question   string   `json:"question" yaml:"question"`
	Answer     string   `json:"answer" yaml:"answer"`
	Difficulty string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Tone       string   `json:"tone,omitempty" yaml:"tone,omitempty"`
	Keywords   []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}
