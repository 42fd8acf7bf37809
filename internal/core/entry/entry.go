// Package entry defines the lexicon record model shared by the generation,
// proofreading and backport stages.
package entry

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NotFound is the sentinel stored when no dhatu could be resolved for a form.
const NotFound = "Not Found"

// multiMarker is appended by the original extraction when several dhatus
// matched a form. A value still carrying it has not been edited by a reviewer.
const multiMarker = "(More than one)"

// Entry is one verb record of the lexicon. Kanda, Varga and Adhikaar are the
// human-readable section names used by the proofreading workflow; they are a
// separate addressing scheme from the integer text-number coordinate.
type Entry struct {
	Form       string   `yaml:"form,omitempty" json:"form,omitempty"`
	DhatuID    string   `yaml:"dhatu_id,omitempty" json:"dhatu_id,omitempty"`
	DhatuIDs   string   `yaml:"dhatu_ids,omitempty" json:"dhatu_ids,omitempty"`
	Gati       string   `yaml:"gati,omitempty" json:"gati,omitempty"`
	Kanda      string   `yaml:"kanda,omitempty" json:"kanda,omitempty"`
	Varga      string   `yaml:"varga,omitempty" json:"varga,omitempty"`
	Adhikaar   string   `yaml:"adhikaar,omitempty" json:"adhikaar,omitempty"`
	Artha      string   `yaml:"artha,omitempty" json:"artha,omitempty"`
	ShlokaNum  string   `yaml:"shloka_num,omitempty" json:"shloka_num,omitempty"`
	ShlokaText string   `yaml:"shloka_text,omitempty" json:"shloka_text,omitempty"`
	Synonyms   []string `yaml:"synonyms,omitempty" json:"synonyms,omitempty"`
}

// DhatuValue returns whichever of dhatu_id / dhatu_ids is populated. Review
// files use dhatu_ids for multi-candidate exports and dhatu_id elsewhere; the
// two never coexist on one record.
func (e Entry) DhatuValue() string {
	if e.DhatuIDs != "" {
		return e.DhatuIDs
	}
	return e.DhatuID
}

// Identity is the natural key of an entry. The dataset has no numeric IDs, so
// records are matched by these five fields.
type Identity struct {
	Form       string
	Kanda      string
	Varga      string
	Adhikaar   string
	ShlokaText string
}

// Identity returns the natural key of the entry.
func (e Entry) Identity() Identity {
	return Identity{
		Form:       e.Form,
		Kanda:      e.Kanda,
		Varga:      e.Varga,
		Adhikaar:   e.Adhikaar,
		ShlokaText: e.ShlokaText,
	}
}

// Key derives a stable surrogate key from the immutable identity fields.
// It is assigned when review files are produced and lets the backporter
// address an exact canonical record even when two shlokas share a verb form.
func (e Entry) Key() string {
	h := sha256.New()
	for _, part := range []string{e.Form, e.Kanda, e.Varga, e.Adhikaar, e.ShlokaText} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// IsPristine reports whether a dhatu value is still in its exported, unedited
// state: empty, the Not Found sentinel, the multi-candidate marker, or a
// comma-separated candidate list the reviewer has not narrowed down. Pristine
// values are never backported.
func IsPristine(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" || v == NotFound {
		return true
	}
	if strings.Contains(v, multiMarker) {
		return true
	}
	return strings.Contains(v, ",")
}

// CleanDhatuID strips the multi-candidate marker and surrounding space from a
// dhatu value before it is written into canonical storage.
func CleanDhatuID(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, multiMarker, ""))
}
