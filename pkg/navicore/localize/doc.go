// Package localize resolves the synthesized error-dialog text the
// choreographer's Invalid(message) path produces into the embedding
// application's configured locale, via nicksnyder/go-i18n/v2 message
// catalogs matched with golang.org/x/text/language.
package localize
