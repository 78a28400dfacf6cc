package normalize

import (
	"context"
	"testing"
)

// Run tests using `encore test`, which compiles the Encore app and then
// runs `go test` with the same flags.

func TestNormalizeDefaults(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ideographic space and circled numbers",
			input:    "項目①と　項目②",
			expected: "項目(1)と 項目(2)",
		},
		{
			name:     "iteration marks",
			input:    "時々の人々",
			expected: "時時の人人",
		},
		{
			name:     "combined characters",
			input:    "㍿テスト",
			expected: "株式会社テスト",
		},
		{
			name:     "old kanji",
			input:    "舊字體",
			expected: "旧字体",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Normalize(ctx, &NormalizationRequest{Text: tt.input})
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if result.OutputText != tt.expected {
				t.Errorf("OutputText = %q, expected %q", result.OutputText, tt.expected)
			}
			if !result.Changed {
				t.Error("Changed should be true")
			}
			if result.Method != "recipe" {
				t.Errorf("Method = %q, expected \"recipe\"", result.Method)
			}
		})
	}
}

func TestNormalizeExplicitRecipe(t *testing.T) {
	ctx := context.Background()

	result, err := Normalize(ctx, &NormalizationRequest{
		Text:   "ＡＢＣ１２３",
		Recipe: &RecipeOptions{ToHalfwidth: true},
	})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if result.OutputText != "ABC123" {
		t.Errorf("OutputText = %q, expected %q", result.OutputText, "ABC123")
	}
}

func TestNormalizeValidation(t *testing.T) {
	ctx := context.Background()

	if _, err := Normalize(ctx, &NormalizationRequest{Text: "   "}); err == nil {
		t.Error("expected error for blank text")
	}

	_, err := Normalize(ctx, &NormalizationRequest{
		Text:   "テスト",
		Recipe: &RecipeOptions{ToFullwidth: true, ToHalfwidth: true},
	})
	if err == nil {
		t.Error("expected error for mutually exclusive recipe options")
	}
}

func TestNormalizeASCIIFallback(t *testing.T) {
	ctx := context.Background()

	result, err := Normalize(ctx, &NormalizationRequest{
		Text:          "Jürgen Groß",
		ASCIIFallback: true,
	})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if result.Method != "ascii_fallback" {
		t.Errorf("Method = %q, expected \"ascii_fallback\"", result.Method)
	}
	if result.OutputText != "Jurgen Gross" {
		t.Errorf("OutputText = %q, expected %q", result.OutputText, "Jurgen Gross")
	}
}
