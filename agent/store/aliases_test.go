package store

import "testing"

func TestSearchVariantsAliasExpansion(t *testing.T) {
	t.Parallel()

	variants := searchVariants("meat")
	if len(variants) == 0 || variants[0] != "meat" {
		t.Fatalf("variants = %v, want the original term first", variants)
	}
	for _, want := range []string{"meats", "butcher", "protein"} {
		if !containsVariant(variants, want) {
			t.Fatalf("variants for meat = %v, missing %q", variants, want)
		}
	}
}

func TestSearchVariantsPluralFolding(t *testing.T) {
	t.Parallel()

	if got := searchVariants("categories"); !containsVariant(got, "category") {
		t.Fatalf("variants for categories = %v, missing singular", got)
	}
	if got := searchVariants("cooler"); !containsVariant(got, "coolers") {
		t.Fatalf("variants for cooler = %v, missing plural", got)
	}
}

func TestSearchVariantsNoDuplicates(t *testing.T) {
	t.Parallel()

	variants := searchVariants("fresh")
	seen := map[string]bool{}
	for _, v := range variants {
		if seen[v] {
			t.Fatalf("duplicate variant %q in %v", v, variants)
		}
		seen[v] = true
	}
	// "fresh" sits in both its own alias set and produce's.
	for _, want := range []string{"perishables", "produce", "deli"} {
		if !seen[want] {
			t.Fatalf("variants for fresh = %v, missing %q", variants, want)
		}
	}
}

func TestSearchVariantsEmptyTerm(t *testing.T) {
	t.Parallel()

	if got := searchVariants("   "); got != nil {
		t.Fatalf("variants for blank term = %v, want nil", got)
	}
}

func TestSearchVariantsUnknownTermPassesThrough(t *testing.T) {
	t.Parallel()

	variants := searchVariants("Zamboni")
	if !containsVariant(variants, "zamboni") {
		t.Fatalf("variants = %v, want lowered original term", variants)
	}
}

func containsVariant(variants []string, want string) bool {
	for _, v := range variants {
		if v == want {
			return true
		}
	}
	return false
}
