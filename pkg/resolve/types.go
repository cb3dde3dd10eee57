// Package resolve implements the layered conflict-resolution pipeline:
// pattern-rule, structural, and search-based strategies cascaded by a
// fixed-order orchestrator that records an audit trail of what it tried.
package resolve

import "fmt"

// Strategy names a resolution procedure.
type Strategy int

const (
	Convergent Strategy = iota
	PatternRule
	Structural
	SearchBased
)

func (s Strategy) String() string {
	switch s {
	case Convergent:
		return "Convergent"
	case PatternRule:
		return "PatternRule"
	case Structural:
		return "Structural"
	case SearchBased:
		return "SearchBased"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Language is the closed set of tags the structural resolver accepts.
type Language int

const (
	Unknown Language = iota
	Rust
	Go
	C
	Java
	Kotlin
	JavaScript
	TypeScript
	Python
	Toml
	Yaml
)

func (l Language) String() string {
	switch l {
	case Rust:
		return "Rust"
	case Go:
		return "Go"
	case C:
		return "C"
	case Java:
		return "Java"
	case Kotlin:
		return "Kotlin"
	case JavaScript:
		return "JavaScript"
	case TypeScript:
		return "TypeScript"
	case Python:
		return "Python"
	case Toml:
		return "Toml"
	case Yaml:
		return "Yaml"
	default:
		return "Unknown"
	}
}

// Resolution is an accepted candidate.
type Resolution struct {
	Content    string
	Strategy   Strategy
	Confidence float64
}

// Candidate is a proposed resolution text a strategy generated but that
// was not (or not yet) accepted as the final resolution.
type Candidate struct {
	Content    string
	Strategy   Strategy
	Confidence float64
}

// ConflictRecord is the per-region outcome of running the pipeline over
// one conflict's (base, left, right) triple.
type ConflictRecord struct {
	Base, Left, Right string
	Resolution        *Resolution
	Candidates        []Candidate
	StrategiesTried   []Strategy
}

// FileResolution is the whole-file outcome of resolve_file.
type FileResolution struct {
	MergedContent string
	Conflicts     []ConflictRecord
	AllResolved   bool
}

// PipelineConfig holds the confidence values and thresholds the
// strategies use. The zero value resolves to DefaultConfig.
type PipelineConfig struct {
	WhitespaceConfidence   float64
	PrefixSuffixConfidence float64
	ListUnionConfidence    float64
	StructuralConfidence   float64
	SearchMinConfidence    float64
	SearchMaxConfidence    float64
	SearchThreshold        float64
}

// DefaultConfig mirrors the confidence values named literally in the
// pattern/structural/search resolver contracts.
var DefaultConfig = PipelineConfig{
	WhitespaceConfidence:   0.9,
	PrefixSuffixConfidence: 0.7,
	ListUnionConfidence:    0.8,
	StructuralConfidence:   0.85,
	SearchMinConfidence:    0.3,
	SearchMaxConfidence:    0.7,
	SearchThreshold:        0.4,
}

// withDefaults fills in zero fields of cfg from DefaultConfig.
func withDefaults(cfg PipelineConfig) PipelineConfig {
	d := DefaultConfig
	if cfg.WhitespaceConfidence == 0 {
		cfg.WhitespaceConfidence = d.WhitespaceConfidence
	}
	if cfg.PrefixSuffixConfidence == 0 {
		cfg.PrefixSuffixConfidence = d.PrefixSuffixConfidence
	}
	if cfg.ListUnionConfidence == 0 {
		cfg.ListUnionConfidence = d.ListUnionConfidence
	}
	if cfg.StructuralConfidence == 0 {
		cfg.StructuralConfidence = d.StructuralConfidence
	}
	if cfg.SearchMinConfidence == 0 {
		cfg.SearchMinConfidence = d.SearchMinConfidence
	}
	if cfg.SearchMaxConfidence == 0 {
		cfg.SearchMaxConfidence = d.SearchMaxConfidence
	}
	if cfg.SearchThreshold == 0 {
		cfg.SearchThreshold = d.SearchThreshold
	}
	return cfg
}
