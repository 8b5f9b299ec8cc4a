package utils

import "strings"

type categoryRule struct {
	keywords []string
	category string
}

// Ordered, first match wins. Earlier rules take precedence when a label
// matches several keyword sets (e.g. "bar del museo" is a BAR).
var categoryRules = []categoryRule{
	{[]string{"transfer", "arrivo", "partenza", "aeroporto", "stazione"}, "TRANSFER"},
	{[]string{"ristorante", "trattoria", "osteria", "pizzer", "pranzo", "cena"}, "RISTORANTE"},
	{[]string{"bar", "caff", "aperitivo", "pasticceria", "gelateria"}, "BAR"},
	{[]string{"museo", "galleria", "pinacoteca", "mostra"}, "MUSEO"},
	{[]string{"chiesa", "duomo", "cattedrale", "basilica", "santuario"}, "CHIESA"},
	{[]string{"parco", "giardino", "villa", "orto botanico"}, "PARCO"},
	{[]string{"mercato", "shopping", "bottega"}, "SHOPPING"},
	{[]string{"teatro", "concerto", "opera"}, "SPETTACOLO"},
	{[]string{"belvedere", "panorama", "terrazza"}, "PANORAMA"},
}

// ClassifyCategory maps a free-text label to a short category via the
// keyword table above. ok is false when nothing matches.
func ClassifyCategory(label string) (category string, ok bool) {
	lower := strings.ToLower(label)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category, true
			}
		}
	}
	return "", false
}
