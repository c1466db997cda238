package main

import (
	"math/rand"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"President":                             "president",
		"Vice President of Internal Affairs":    "vice-president-of-internal-affairs",
		"International Student Affairs Officer": "international-student-affairs-officer",
		"  Odd -- Spacing  ":                    "odd-spacing",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	doc := generate(rng, 9, 3)

	if len(doc.Positions) != 9 {
		t.Fatalf("expected 9 positions, got %d", len(doc.Positions))
	}
	seen := make(map[string]bool)
	for _, p := range doc.Positions {
		if p.Slug == "" {
			t.Errorf("position %q has empty slug", p.Title)
		}
		if seen[p.Slug] {
			t.Errorf("duplicate slug %q", p.Slug)
		}
		seen[p.Slug] = true
		if len(p.Candidates) == 0 || len(p.Candidates) > 3 {
			t.Errorf("position %q has %d candidates", p.Title, len(p.Candidates))
		}
	}
}
