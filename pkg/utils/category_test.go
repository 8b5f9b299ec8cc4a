package utils

import "testing"

func TestClassifyCategory(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Museo Egizio", "MUSEO"},
		{"Trattoria da Mario", "RISTORANTE"},
		{"Duomo di Milano", "CHIESA"},
		{"Giardino di Boboli", "PARCO"},
		{"Arrivo e Trasferimento in Hotel", "TRANSFER"},
		{"Mercato di Porta Palazzo", "SHOPPING"},
		{"Terrazza panoramica", "PANORAMA"},
	}
	for _, c := range cases {
		got, ok := ClassifyCategory(c.label)
		if !ok || got != c.want {
			t.Errorf("ClassifyCategory(%q) = %q, %v; want %q", c.label, got, ok, c.want)
		}
	}
}

func TestClassifyCategory_FirstMatchWins(t *testing.T) {
	// "bar" is matched before "museo" by rule order.
	got, ok := ClassifyCategory("Bar del Museo")
	if !ok || got != "BAR" {
		t.Fatalf("ClassifyCategory = %q, %v; want BAR by rule order", got, ok)
	}
}

func TestClassifyCategory_CaseInsensitive(t *testing.T) {
	got, ok := ClassifyCategory("PIZZERIA NAPOLETANA")
	if !ok || got != "RISTORANTE" {
		t.Fatalf("ClassifyCategory = %q, %v", got, ok)
	}
}

func TestClassifyCategory_NoMatch(t *testing.T) {
	if got, ok := ClassifyCategory("qualcosa di sconosciuto"); ok {
		t.Fatalf("unexpected match: %q", got)
	}
}
