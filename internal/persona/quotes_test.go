package persona

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"mood-mirror/internal/domain"
)

func TestLoadQuotesMissingFileUsesDefaults(t *testing.T) {
	quotes := LoadQuotes("/nonexistent/quotes.json", zap.NewNop())

	for _, e := range domain.Emotions {
		if len(quotes.For(e)) == 0 {
			t.Fatalf("expected default quotes for %s", e)
		}
	}
}

func TestLoadQuotesMalformedFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	quotes := LoadQuotes(path, zap.NewNop())
	if quotes.Total() != defaultQuotes.Total() {
		t.Fatalf("expected built-in defaults on malformed file")
	}
}

func TestLoadQuotesValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.json")
	content := `{"joy": ["one", "two", "three", "four"], "sadness": ["rain passes"]}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	quotes := LoadQuotes(path, zap.NewNop())

	joy := quotes.For(domain.EmotionJoy)
	if len(joy) != 4 || joy[0] != "one" {
		t.Fatalf("expected custom joy quotes in order, got %+v", joy)
	}
	// Las categorias que el archivo no trae se completan con defaults.
	if len(quotes.For(domain.EmotionAnger)) == 0 {
		t.Fatalf("expected anger backfilled from defaults")
	}
}

func TestQuotesForFallsBackToNeutral(t *testing.T) {
	quotes := Quotes{domain.EmotionNeutral: {"steady"}}
	if got := quotes.For(domain.EmotionJoy); len(got) != 1 || got[0] != "steady" {
		t.Fatalf("expected neutral fallback, got %+v", got)
	}
}
