package resolve

import "testing"

func TestRuleConvergent(t *testing.T) {
	r := ruleConvergent("base", "same", "same", DefaultConfig)
	if r == nil || r.Content != "same" || r.Strategy != Convergent || r.Confidence != 1.0 {
		t.Fatalf("ruleConvergent = %+v", r)
	}
	if ruleConvergent("base", "a", "b", DefaultConfig) != nil {
		t.Fatal("expected no resolution when left != right")
	}
}

func TestRuleOneSidedNull(t *testing.T) {
	r := ruleOneSidedNull("base", "base", "changed", DefaultConfig)
	if r == nil || r.Content != "changed" || r.Strategy != PatternRule {
		t.Fatalf("left==base case: %+v", r)
	}
	r = ruleOneSidedNull("base", "changed", "base", DefaultConfig)
	if r == nil || r.Content != "changed" {
		t.Fatalf("right==base case: %+v", r)
	}
	if ruleOneSidedNull("base", "l", "r", DefaultConfig) != nil {
		t.Fatal("expected no resolution when neither side equals base")
	}
}

func TestRuleWhitespaceOnly(t *testing.T) {
	base := "int x=1;"
	left := "int x = 1;"
	right := "int  x = 1;"
	r := ruleWhitespaceOnly(base, left, right, DefaultConfig)
	if r == nil {
		t.Fatal("expected whitespace-only resolution")
	}
	if r.Content != left {
		t.Errorf("expected the cleaner original %q, got %q", left, r.Content)
	}
	if r.Confidence != DefaultConfig.WhitespaceConfidence {
		t.Errorf("confidence = %v, want %v", r.Confidence, DefaultConfig.WhitespaceConfidence)
	}
}

func TestRuleWhitespaceOnly_RejectsRealDifference(t *testing.T) {
	if ruleWhitespaceOnly("b", "lower", "trim", DefaultConfig) != nil {
		t.Fatal("expected no resolution for a true semantic difference")
	}
}

func TestRulePrefixSuffixExtension(t *testing.T) {
	base := "hello"
	left := "hello world"
	right := "hello"
	r := rulePrefixSuffixExtension(base, left, right, DefaultConfig)
	if r == nil || r.Content != left {
		t.Fatalf("got %+v, want content %q", r, left)
	}
}

func TestRuleAdditiveListUnion(t *testing.T) {
	base := "import a\nimport b"
	left := "import a\nimport b\nimport TextView"
	right := "import a\nimport b\nimport MediaSession"

	r := ruleAdditiveListUnion(base, left, right, DefaultConfig)
	if r == nil {
		t.Fatal("expected a list-union resolution")
	}
	if !contains(r.Content, "TextView") || !contains(r.Content, "MediaSession") {
		t.Errorf("merged = %q, want both additions", r.Content)
	}
}

func TestRunPatternRules_FixedOrderConvergentFirst(t *testing.T) {
	// Both convergent and one-sided-null could apply; convergent must win
	// since it is first in the fixed order.
	r := runPatternRules("base", "base", "base", DefaultConfig)
	if r == nil || r.Strategy != Convergent {
		t.Fatalf("got %+v, want Convergent", r)
	}
}

func TestRunPatternRules_NoMatchReturnsNil(t *testing.T) {
	if runPatternRules("base", "fn f(){ upper() }", "fn f(){ trim() }", DefaultConfig) != nil {
		t.Fatal("expected no pattern-rule resolution for a true replace conflict")
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
