package resolve

import (
	"github.com/odvcencio/mergeengine/pkg/entity"
)

// languageExtractFilename maps a Language tag to a placeholder filename
// entity.Extract can use for grammar detection (the extractor dispatches
// purely on extension, never on content).
func languageExtractFilename(lang Language) string {
	switch lang {
	case Go:
		return "conflict.go"
	case Python:
		return "conflict.py"
	case JavaScript:
		return "conflict.js"
	case TypeScript:
		return "conflict.ts"
	case Rust:
		return "conflict.rs"
	case Java:
		return "conflict.java"
	case Kotlin:
		return "conflict.kt"
	case C:
		return "conflict.c"
	case Toml:
		return "conflict.toml"
	case Yaml:
		return "conflict.yaml"
	default:
		return ""
	}
}

// entityDisposition classifies one identity-matched entity across the
// three conflicting texts, the same stable/left/right/conflict shape
// the line-level diff3 core uses, applied to named subtrees instead of
// lines.
type entityDisposition int

const (
	entStable entityDisposition = iota
	entLeftChanged
	entRightChanged
	entConvergent
	entConflict
)

type matchedEntity struct {
	key         string
	disposition entityDisposition
	base, left, right *entity.Entity
}

// matchEntities performs three-way entity matching, grounded on the
// same identity-key/hash-comparison approach as a whole-repository
// entity diff, narrowed here to the three texts of a single conflict
// region.
func matchEntities(base, left, right *entity.EntityList) []matchedEntity {
	baseMap := entity.BuildEntityMap(base)
	leftMap := entity.BuildEntityMap(left)
	rightMap := entity.BuildEntityMap(right)

	seen := map[string]bool{}
	var keys []string
	addKeys := func(el *entity.EntityList) {
		for _, k := range entity.OrderedIdentityKeys(el) {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	addKeys(base)
	addKeys(left)
	addKeys(right)

	out := make([]matchedEntity, 0, len(keys))
	for _, k := range keys {
		b, l, r := baseMap[k], leftMap[k], rightMap[k]
		out = append(out, matchedEntity{
			key:         k,
			disposition: classifyEntity(b, l, r),
			base:        b, left: l, right: r,
		})
	}
	return out
}

func classifyEntity(base, left, right *entity.Entity) entityDisposition {
	inBase, inLeft, inRight := base != nil, left != nil, right != nil

	switch {
	case inBase && inLeft && inRight:
		leftChanged := left.BodyHash != base.BodyHash
		rightChanged := right.BodyHash != base.BodyHash
		switch {
		case !leftChanged && !rightChanged:
			return entStable
		case leftChanged && !rightChanged:
			return entLeftChanged
		case !leftChanged && rightChanged:
			return entRightChanged
		case left.BodyHash == right.BodyHash:
			return entConvergent
		default:
			return entConflict
		}
	case inBase && inLeft && !inRight:
		if left.BodyHash != base.BodyHash {
			return entConflict // delete vs modify
		}
		return entRightChanged // right's deletion wins cleanly
	case inBase && !inLeft && inRight:
		if right.BodyHash != base.BodyHash {
			return entConflict
		}
		return entLeftChanged
	case inBase && !inLeft && !inRight:
		return entConvergent // both deleted, in agreement
	case !inBase && inLeft && !inRight:
		return entLeftChanged // added only on the left
	case !inBase && !inLeft && inRight:
		return entRightChanged // added only on the right
	case !inBase && !inLeft && !inRight:
		return entStable // absent everywhere; nothing to merge
	default: // !inBase && inLeft && inRight
		if left.BodyHash == right.BodyHash {
			return entConvergent
		}
		return entConflict
	}
}

// resolveStructural is component E. It parses base/left/right under the
// given language and attempts a three-way tree merge over the resulting
// entity lists. Any parse failure, or any non-convergent/non-one-sided
// structural conflict, yields no resolution — the caller falls through
// to the next strategy.
func resolveStructural(base, left, right string, lang Language, cfg PipelineConfig) *Resolution {
	filename := languageExtractFilename(lang)
	if filename == "" {
		return nil
	}

	baseEl, err := entity.Extract(filename, []byte(base))
	if err != nil {
		return nil
	}
	leftEl, err := entity.Extract(filename, []byte(left))
	if err != nil {
		return nil
	}
	rightEl, err := entity.Extract(filename, []byte(right))
	if err != nil {
		return nil
	}

	matched := matchEntities(baseEl, leftEl, rightEl)

	var out []byte
	for _, m := range matched {
		switch m.disposition {
		case entStable:
			if m.base != nil {
				out = append(out, m.base.Body...)
			}
		case entLeftChanged:
			if m.left != nil {
				out = append(out, m.left.Body...)
			}
		case entRightChanged:
			if m.right != nil {
				out = append(out, m.right.Body...)
			}
		case entConvergent:
			if m.left != nil {
				out = append(out, m.left.Body...)
			}
		case entConflict:
			return nil // not every structural conflict was resolvable
		}
	}

	return &Resolution{Content: string(out), Strategy: Structural, Confidence: cfg.StructuralConfidence}
}
