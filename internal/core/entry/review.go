package entry

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Flag is a boolean that round-trips through the review files' loose YAML,
// where proofreaders write true, "true", false or "false" interchangeably.
// It always marshals back as a quoted string, matching the export format.
type Flag bool

// UnmarshalYAML accepts bool scalars and their string spellings.
func (f *Flag) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(strings.TrimSpace(value.Value)) {
	case "true", "yes":
		*f = true
	case "false", "no", "", "~", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag value %q", value.Value)
	}
	return nil
}

// MarshalYAML renders the flag as a double-quoted "true"/"false" scalar.
func (f Flag) MarshalYAML() (interface{}, error) {
	v := "false"
	if f {
		v = "true"
	}
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: v,
		Style: yaml.DoubleQuotedStyle,
	}, nil
}

// ReviewRecord is an Entry dressed for the proofreading workflow. Resolved and
// Comment exist only in the split review files and are never written into
// canonical storage; SurrogateKey carries the Key() hash assigned at split
// time so the backporter can match without the fragile identity tuple.
type ReviewRecord struct {
	Entry        `yaml:",inline"`
	SurrogateKey string `yaml:"key,omitempty"`
	Resolved     Flag   `yaml:"resolved"`
	Comment      string `yaml:"comment"`
}

// NewReviewRecord wraps an entry with freshly initialised review fields and
// its surrogate key.
func NewReviewRecord(e Entry) ReviewRecord {
	return ReviewRecord{
		Entry:        e,
		SurrogateKey: e.Key(),
		Resolved:     false,
		Comment:      "",
	}
}
