package resolve

import (
	"regexp"
	"strings"
)

// patternRule is one deterministic heuristic. Rules are tried in fixed
// order by runPatternRules; the first to return a non-nil resolution
// wins. A rule must never mutate its inputs.
type patternRule func(base, left, right string, cfg PipelineConfig) *Resolution

// patternRules is the fixed order component D always tries.
var patternRules = []patternRule{
	ruleConvergent,
	ruleOneSidedNull,
	ruleWhitespaceOnly,
	rulePrefixSuffixExtension,
	ruleAdditiveListUnion,
}

// runPatternRules tries each rule in order, returning the first
// resolution produced (component D).
func runPatternRules(base, left, right string, cfg PipelineConfig) *Resolution {
	for _, rule := range patternRules {
		if r := rule(base, left, right, cfg); r != nil {
			return r
		}
	}
	return nil
}

func ruleConvergent(_, left, right string, _ PipelineConfig) *Resolution {
	if left == right {
		return &Resolution{Content: left, Strategy: Convergent, Confidence: 1.0}
	}
	return nil
}

func ruleOneSidedNull(base, left, right string, _ PipelineConfig) *Resolution {
	switch {
	case left == base:
		return &Resolution{Content: right, Strategy: PatternRule, Confidence: 1.0}
	case right == base:
		return &Resolution{Content: left, Strategy: PatternRule, Confidence: 1.0}
	}
	return nil
}

var horizontalWhitespaceRun = regexp.MustCompile(`[ \t]+`)

// normalizeWhitespace collapses runs of ASCII horizontal whitespace to a
// single space and strips trailing whitespace, line by line.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		l = horizontalWhitespaceRun.ReplaceAllString(l, " ")
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}

// whitespaceAnomalies counts trailing-space lines and double-space runs,
// used to pick the "cleaner" of two whitespace-equivalent originals.
func whitespaceAnomalies(s string) int {
	count := 0
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimRight(l, " \t") != l {
			count++
		}
		count += strings.Count(l, "  ")
	}
	return count
}

func ruleWhitespaceOnly(_, left, right string, cfg PipelineConfig) *Resolution {
	if left == right {
		return nil // already handled by ruleConvergent
	}
	if normalizeWhitespace(left) != normalizeWhitespace(right) {
		return nil
	}
	content := left
	if whitespaceAnomalies(right) < whitespaceAnomalies(left) {
		content = right
	}
	return &Resolution{Content: content, Strategy: PatternRule, Confidence: cfg.WhitespaceConfidence}
}

func rulePrefixSuffixExtension(base, left, right string, cfg PipelineConfig) *Resolution {
	extends := func(short, long string) bool {
		if short == long {
			return false
		}
		return strings.HasPrefix(long, short) || strings.HasSuffix(long, short)
	}
	startsFromBase := func(s string) bool {
		return strings.HasPrefix(s, base) || strings.HasSuffix(s, base) || base == ""
	}

	switch {
	case extends(left, right) && startsFromBase(right):
		return &Resolution{Content: right, Strategy: PatternRule, Confidence: cfg.PrefixSuffixConfidence}
	case extends(right, left) && startsFromBase(left):
		return &Resolution{Content: left, Strategy: PatternRule, Confidence: cfg.PrefixSuffixConfidence}
	}
	return nil
}

// listShape matches a line recognizable as a list entry: import/use/
// include directives, or a single-token block entry with an optional
// trailing comma or semicolon. The test is purely lexical, as the
// contract requires no parser.
var listShape = regexp.MustCompile(`^\s*(import\b|from\b|use\b|#include\b|require\b).*$|^\s*[\w./"'-]+[,;]?\s*$`)

// looksLikeList reports whether s has at least one non-blank line and
// every non-blank line matches listShape. Each line may match either
// alternative of listShape, so directive lines and bare entries can mix.
func looksLikeList(s string) bool {
	lines := strings.Split(s, "\n")
	seen := false
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if !listShape.MatchString(l) {
			return false
		}
		seen = true
	}
	return seen
}

func ruleAdditiveListUnion(_, left, right string, cfg PipelineConfig) *Resolution {
	if !looksLikeList(left) || !looksLikeList(right) {
		return nil
	}

	var ordered []string
	seen := map[string]bool{}
	appendUnique := func(lines []string) {
		for _, l := range lines {
			if strings.TrimSpace(l) == "" {
				continue
			}
			if !seen[l] {
				seen[l] = true
				ordered = append(ordered, l)
			}
		}
	}
	appendUnique(strings.Split(left, "\n"))
	appendUnique(strings.Split(right, "\n"))

	if len(ordered) == 0 {
		return nil
	}
	return &Resolution{
		Content:    strings.Join(ordered, "\n"),
		Strategy:   PatternRule,
		Confidence: cfg.ListUnionConfidence,
	}
}
