package resolve

import "testing"

func TestResolveStructural_UnknownLanguageReturnsNil(t *testing.T) {
	if resolveStructural("a", "b", "c", Unknown, DefaultConfig) != nil {
		t.Fatal("expected no resolution for Unknown language")
	}
}

func TestResolveStructural_OneSidedFunctionChange(t *testing.T) {
	base := "package main\n\nfunc A() {}\n\nfunc B() {}\n"
	left := "package main\n\nfunc A() { println(\"left\") }\n\nfunc B() {}\n"
	right := base

	r := resolveStructural(base, left, right, Go, DefaultConfig)
	if r == nil {
		t.Fatal("expected a structural resolution for a one-sided change")
	}
	if r.Strategy != Structural {
		t.Errorf("strategy = %v, want Structural", r.Strategy)
	}
	if !contains(r.Content, "println(\"left\")") {
		t.Errorf("resolved content missing left's change: %q", r.Content)
	}
}

func TestResolveStructural_TrueConflictReturnsNil(t *testing.T) {
	base := "package main\n\nfunc F() { upper() }\n"
	left := "package main\n\nfunc F() { lower() }\n"
	right := "package main\n\nfunc F() { trim() }\n"

	if resolveStructural(base, left, right, Go, DefaultConfig) != nil {
		t.Fatal("expected no resolution when the same function diverges on both sides")
	}
}

func TestClassifyEntity(t *testing.T) {
	// nil/nil/nil should never be passed in practice, but classifyEntity
	// must not panic on any presence combination.
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("classifyEntity panicked: %v", r)
		}
	}()
	classifyEntity(nil, nil, nil)
}
