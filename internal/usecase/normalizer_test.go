package usecase

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases and trims",
			input: "  Ascorbic Acid  ",
			want:  "ascorbic acid",
		},
		{
			name:  "collapses internal whitespace",
			input: "citric    acid",
			want:  "citric acid",
		},
		{
			name:  "strips parenthetical annotation",
			input: "Vitamin C (95%)",
			want:  "vitamin c",
		},
		{
			name:  "strips parenthetical with explanation",
			input: "vitamin e (as d-alpha tocopherol)",
			want:  "vitamin e",
		},
		{
			name:  "strips everything after first comma",
			input: "salt, iodized",
			want:  "salt",
		},
		{
			name:  "strips everything after first semicolon",
			input: "paprika; color",
			want:  "paprika",
		},
		{
			name:  "strips d- stereoisomer prefix",
			input: "d-alpha tocopheryl acetate",
			want:  "alpha tocopheryl acetate",
		},
		{
			name:  "strips l- stereoisomer prefix",
			input: "L-Cysteine",
			want:  "cysteine",
		},
		{
			name:  "strips dl- stereoisomer prefix",
			input: "dl-Methionine",
			want:  "methionine",
		},
		{
			name:  "strips chained stereoisomer prefixes",
			input: "dl-l-Cysteine",
			want:  "cysteine",
		},
		{
			name:  "strips trailing percentage token",
			input: "beta carotene 10%",
			want:  "beta carotene",
		},
		{
			name:  "strips trailing percentage with decimal",
			input: "stevia extract 0.5%",
			want:  "stevia extract",
		},
		{
			name:  "empty input stays empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace-only input becomes empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Vitamin C (95%)",
		"d-alpha tocopheryl acetate 50%",
		"  Salt,  iodized ",
		"L-Cysteine",
		"dl-l-cysteine",
		"l-d-alpha tocopherol",
		"whey protein isolate",
		"",
		"95%",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	// Annotated and plain spellings of the same ingredient normalize
	// identically.
	if Normalize("Vitamin C (95%)") != Normalize("vitamin c") {
		t.Errorf("annotated and plain forms should normalize identically: %q vs %q",
			Normalize("Vitamin C (95%)"), Normalize("vitamin c"))
	}
}

func TestNormalizeAll(t *testing.T) {
	got := NormalizeAll([]string{"Salt", "  ", "Vitamin C (95%)", "(note)"})

	want := []string{"salt", "vitamin c"}
	if len(got) != len(want) {
		t.Fatalf("NormalizeAll returned %d entries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NormalizeAll[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
