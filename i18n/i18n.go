// Package i18n holds the UI translations. English is the default language.
package i18n

import (
	"context"

	"golang.org/x/text/language"
)

const DefaultLang = "en"

var supported = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supported)

var messages = map[string]map[string]string{
	"en": {
		"app.title":        "BILL MANAGEMENT",
		"menu":             "Menu",
		"bill":             "Bill",
		"reset":            "Reset",
		"total":            "Total",
		"show_orders":      "Show Orders",
		"all_orders":       "All Orders",
		"item":             "Item",
		"qty":              "Qty",
		"price":            "Price",
		"line_total":       "Total",
		"total_amount":     "Total Amount:",
		"total_bill":       "Total Bill:",
		"date":             "Date:",
		"thanks":           "Thank you for visiting us!",
		"orders.none":      "No orders found in the database.",
		"storage_error":    "The order could not be saved. Please try again.",
		"history_error":    "Orders could not be loaded.",
		"required":         "Required",
		"must_be_positive": "Must be positive",
		"duplicate":        "Duplicate",
	},
	"fr": {
		"app.title":        "GESTION DES FACTURES",
		"menu":             "Menu",
		"bill":             "Facture",
		"reset":            "Effacer",
		"total":            "Total",
		"show_orders":      "Voir les commandes",
		"all_orders":       "Toutes les commandes",
		"item":             "Article",
		"qty":              "Qté",
		"price":            "Prix",
		"line_total":       "Total",
		"total_amount":     "Montant total :",
		"total_bill":       "Total facture :",
		"date":             "Date :",
		"thanks":           "Merci de votre visite !",
		"orders.none":      "Aucune commande dans la base de données.",
		"storage_error":    "La commande n'a pas pu être enregistrée. Réessayez.",
		"history_error":    "Impossible de charger les commandes.",
		"required":         "Requis",
		"must_be_positive": "Doit être positif",
		"duplicate":        "Doublon",
	},
}

// T translates code for lang, falling back to English, then to the code itself.
func T(lang, code string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := messages[DefaultLang][code]; ok {
		return s
	}
	return code
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := messages[lang]
	return ok
}

// DetectLanguage picks the best supported language from an Accept-Language header.
func DetectLanguage(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	base, _ := supported[idx].Base()
	return base.String()
}

type langKey struct{}

// WithLang stores the chosen language in ctx.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

// LangFromContext returns the language stored by WithLang or DefaultLang.
func LangFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(langKey{}).(string); ok && v != "" {
		return v
	}
	return DefaultLang
}
