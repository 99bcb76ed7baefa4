// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// defaultCorporate are organization-form suffixes, sector terms and known
// industry names. Some ("labs", "global") also occur in academic names; the
// academic set vetoes those.
var defaultCorporate = []string{
	"pharmaceutical", "pharma", "biotech", "biotechnology", "inc.", "llc",
	"corp.", "corporation", "co.", "company", "gmbh", "s.a.", "ag",
	"laboratories", "labs",
	"r&d", "research and development", "global", "solutions",
	"therapeutics", "diagnostics", "medicines", "drug discovery",
	"pfizer", "novartis", "roche", "gilead", "amgen", "moderna", "biontech",
	"astrazeneca", "johnson & johnson", "merck", "eli lilly", "sanofi",
}

var defaultAcademic = []string{
	"university", "institute", "college", "school", "department",
	"faculty", "hospital", "medical center", "center for disease control",
	"public health", "federal agency", "nih", "cdc", "who", "fda", "ema",
}

// Ruleset is an immutable pair of ordered keyword sets. Keywords are stored
// case-folded; accessors return copies.
type Ruleset struct {
	corporate []string
	academic  []string
}

// NewRuleset builds a Ruleset from the given keywords. Keywords are trimmed
// and case-folded; blanks and repeats are dropped. At least one corporate
// keyword is required, otherwise nothing could ever classify as corporate.
func NewRuleset(corporate, academic []string) (Ruleset, error) {
	rs := Ruleset{
		corporate: normalize(corporate),
		academic:  normalize(academic),
	}
	if len(rs.corporate) == 0 {
		return Ruleset{}, fmt.Errorf("ruleset has no corporate keywords")
	}
	return rs, nil
}

// DefaultRuleset returns the built-in keyword sets.
func DefaultRuleset() Ruleset {
	rs, err := NewRuleset(defaultCorporate, defaultAcademic)
	if err != nil {
		panic(err)
	}
	return rs
}

// Corporate returns a copy of the corporate keywords in order.
func (r Ruleset) Corporate() []string {
	return append([]string(nil), r.corporate...)
}

// Academic returns a copy of the academic keywords in order.
func (r Ruleset) Academic() []string {
	return append([]string(nil), r.academic...)
}

// rulesetFile is the on-disk YAML form of a Ruleset.
type rulesetFile struct {
	Corporate []string `yaml:"corporate"`
	Academic  []string `yaml:"academic"`
}

// ParseRuleset decodes a YAML document of the form
//
//	corporate: [pharma, inc.]
//	academic: [university]
func ParseRuleset(data []byte) (Ruleset, error) {
	var f rulesetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Ruleset{}, fmt.Errorf("parsing ruleset: %w", err)
	}
	return NewRuleset(f.Corporate, f.Academic)
}

// LoadRuleset reads a YAML ruleset from path.
func LoadRuleset(path string) (Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, fmt.Errorf("reading ruleset: %w", err)
	}
	rs, err := ParseRuleset(data)
	if err != nil {
		return Ruleset{}, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// MarshalYAML renders the ruleset in the same form ParseRuleset reads.
func (r Ruleset) MarshalYAML() (any, error) {
	return rulesetFile{Corporate: r.Corporate(), Academic: r.Academic()}, nil
}

func normalize(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = fold(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}
