package localize

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Catalog resolves a synthesized error message ID into the best-matching
// locale's text. The message ID doubles as the catalog key and, via the
// "generic" fallback message, as the text itself when no translation has
// been registered for it.
type Catalog struct {
	bundle *i18n.Bundle
}

// NewCatalog constructs a Catalog whose default language is defaultLang,
// pre-registered with the core's own synthesized-dialog message IDs.
func NewCatalog(defaultLang language.Tag) *Catalog {
	c := &Catalog{bundle: i18n.NewBundle(defaultLang)}
	c.bundle.AddMessages(defaultLang,
		&i18n.Message{ID: "route not in graph", Other: "That screen ({{.Route}}) doesn't exist."},
		&i18n.Message{ID: "route not in graph with suggestion", Other: "That screen ({{.Route}}) doesn't exist. Did you mean {{.Suggestion}}?"},
		&i18n.Message{ID: "transaction in progress", Other: "Another navigation is already in progress."},
		&i18n.Message{ID: "invalid state", Other: "Something went wrong; navigation state was reset."},
		&i18n.Message{ID: "validator error", Other: "This action could not be completed."},
		&i18n.Message{ID: "validator_timeout", Other: "This action took too long and was cancelled."},
		&i18n.Message{ID: "cancelled", Other: "Cancelled."},
		&i18n.Message{ID: "generic", Other: "{{.Message}}"},
	)
	return c
}

// AddMessages registers additional messages for tag — e.g. a fuller
// translation loaded from the embedding application's own TOML message
// files via go-i18n's unmarshal plumbing.
func (c *Catalog) AddMessages(tag language.Tag, messages ...*i18n.Message) error {
	return c.bundle.AddMessages(tag, messages...)
}

// Resolve renders messageID, substituting data, for the best match among
// prefs (first match wins, per golang.org/x/text/language's matching
// rules as applied by go-i18n's Localizer). If messageID has no
// registered translation, it falls back to the "generic" message with
// data["Message"] substituted verbatim — letting an unlocalized message
// still render as the raw text it was synthesized with.
func (c *Catalog) Resolve(messageID string, data map[string]any, prefs ...language.Tag) string {
	langs := make([]string, len(prefs))
	for i, p := range prefs {
		langs[i] = p.String()
	}
	localizer := i18n.NewLocalizer(c.bundle, langs...)

	if text, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: data}); err == nil {
		return text
	}

	if data == nil {
		data = map[string]any{"Message": messageID}
	} else if _, ok := data["Message"]; !ok {
		data["Message"] = messageID
	}
	if text, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "generic", TemplateData: data}); err == nil {
		return text
	}
	return messageID
}
