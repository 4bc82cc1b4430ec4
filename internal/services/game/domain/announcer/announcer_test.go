package announcer

import (
	"strings"
	"testing"
)

func TestLineBaseLocale(t *testing.T) {
	got := Line("en-US", KeyVictory, 0)
	if !strings.Contains(got, "MISSION COMPLETE") {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestLineLocaleMatching(t *testing.T) {
	// Plain "pt" should resolve to the pt-BR catalog.
	got := Line("pt", KeyDraw, 0)
	if !strings.Contains(got, "EMPATE") {
		t.Fatalf("expected pt-BR line, got %q", got)
	}
}

func TestLineUnknownLocaleFallsBack(t *testing.T) {
	got := Line("zh-CN", KeyDefeat, 0)
	if !strings.Contains(got, "MISSION FAILED") {
		t.Fatalf("expected base locale fallback, got %q", got)
	}
}

func TestLineClampsVariant(t *testing.T) {
	if got := Line("en-US", KeyBoost, 99); got != Line("en-US", KeyBoost, 0) {
		t.Fatalf("expected clamp to first variant, got %q", got)
	}
}

func TestLineUnknownKey(t *testing.T) {
	if got := Line("en-US", "nope", 0); got != "" {
		t.Fatalf("expected empty line, got %q", got)
	}
}

func TestCatalogsCoverEveryKey(t *testing.T) {
	keys := []string{KeyGoalPlayer, KeyGoalAI, KeyBoost, KeyHazard, KeyLowTime, KeyVictory, KeyDefeat, KeyDraw}
	for locale, banks := range catalogs {
		for _, key := range keys {
			if len(banks[key]) == 0 {
				t.Fatalf("locale %s missing bank %s", locale, key)
			}
			if len(banks[key]) != VariantCount(key) {
				t.Fatalf("locale %s bank %s has %d variants, base has %d",
					locale, key, len(banks[key]), VariantCount(key))
			}
		}
	}
}
