package localize_test

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/navicore/pkg/navicore/localize"
)

func TestResolve_KnownMessageID(t *testing.T) {
	c := localize.NewCatalog(language.English)
	got := c.Resolve("cancelled", nil, language.English)
	if got != "Cancelled." {
		t.Fatalf("Resolve() = %q, want %q", got, "Cancelled.")
	}
}

func TestResolve_SubstitutesTemplateData(t *testing.T) {
	c := localize.NewCatalog(language.English)
	got := c.Resolve("route not in graph", map[string]any{"Route": "settings:42"}, language.English)
	if got != "That screen (settings:42) doesn't exist." {
		t.Fatalf("Resolve() = %q", got)
	}
}

func TestResolve_UnknownMessageIDFallsBackToGeneric(t *testing.T) {
	c := localize.NewCatalog(language.English)
	got := c.Resolve("some ad-hoc error text", nil, language.English)
	if got != "some ad-hoc error text" {
		t.Fatalf("Resolve() = %q, want the raw message text", got)
	}
}

func TestAddMessages_OverridesForALocale(t *testing.T) {
	c := localize.NewCatalog(language.English)
	if err := c.AddMessages(language.French, &i18n.Message{ID: "cancelled", Other: "Annulé."}); err != nil {
		t.Fatalf("AddMessages() error = %v", err)
	}

	got := c.Resolve("cancelled", nil, language.French, language.English)
	if got != "Annulé." {
		t.Fatalf("Resolve() = %q, want French translation", got)
	}
}
