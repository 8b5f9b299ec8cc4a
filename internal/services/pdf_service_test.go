package services

import (
	"bytes"
	"fmt"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"itinera/internal/models/response_models"
)

func newTestPdfService() *PdfService {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &PdfService{
		logger: zap.NewNop(),
		now:    func() time.Time { return fixed },
	}
}

func makeItinerary(days, activitiesPerDay int) *response_models.Itinerary {
	it := &response_models.Itinerary{
		Destination: "Roma",
		StartDate:   "2025-06-01",
		TotalDays:   days,
	}
	for d := 1; d <= days; d++ {
		day := response_models.DayPlan{
			DayNumber:    d,
			Theme:        fmt.Sprintf("Tema del giorno %d", d),
			DailyContext: "Un po' di contesto storico sulla zona visitata oggi.",
		}
		for a := 0; a < activitiesPerDay; a++ {
			act := response_models.Activity{
				Time:              fmt.Sprintf("%02d:00", 9+2*a),
				Title:             fmt.Sprintf("Tappa %d del giorno %d", a+1, d),
				Description:       "Una descrizione abbastanza lunga della tappa, con dettagli sul luogo, consigli pratici e qualche curiosità per il visitatore.",
				Type:              response_models.ActivityVisit,
				Subtype:           "Museo",
				LocationName:      "Centro storico",
				Coordinates:       response_models.Coordinates{Latitude: 41.9, Longitude: 12.49},
				EstimatedDuration: "1.5 ore",
				Rating:            "4.7",
				Reviews:           "2000+",
				Price:             "€15",
			}
			if a > 0 {
				act.DistanceFromPrevious = "800m"
				act.TravelTime = "10 min a piedi"
				act.TransportCost = "Gratis"
			}
			day.Activities = append(day.Activities, act)
		}
		day.OptionalActivities = []response_models.Activity{
			{
				Title:             "Alternativa serale",
				Description:       "Un locale con vista per chiudere la giornata.",
				Type:              response_models.ActivityFood,
				Subtype:           "Bar Panoramico",
				LocationName:      "Terrazza",
				Coordinates:       response_models.Coordinates{Latitude: 41.89, Longitude: 12.48},
				EstimatedDuration: "1 ora",
				Price:             "€10-15",
			},
		}
		it.Days = append(it.Days, day)
	}
	return it
}

func TestRender_PageCountAndIndex(t *testing.T) {
	svc := newTestPdfService()
	it := makeItinerary(5, 4)

	res, err := svc.render(it, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !bytes.HasPrefix(res.data, []byte("%PDF-")) {
		t.Fatal("output does not look like a PDF")
	}
	if res.pageCount < 6 {
		t.Fatalf("pageCount = %d, want >= 6 (cover + 5 content pages)", res.pageCount)
	}
	if res.coverPages < 1 {
		t.Fatalf("coverPages = %d, want >= 1", res.coverPages)
	}
	if len(res.dayPages) != 5 {
		t.Fatalf("index rows = %d, want 5", len(res.dayPages))
	}

	prevPage := 0
	for i, entry := range res.dayPages {
		if entry.DayNumber != i+1 {
			t.Errorf("row %d day number = %d, want %d", i, entry.DayNumber, i+1)
		}
		if entry.Page <= res.coverPages {
			t.Errorf("day %d target page %d overlaps the cover", entry.DayNumber, entry.Page)
		}
		if entry.Page > res.pageCount {
			t.Errorf("day %d target page %d beyond page count %d", entry.DayNumber, entry.Page, res.pageCount)
		}
		if entry.Page < prevPage {
			t.Errorf("day %d target page %d before previous day", entry.DayNumber, entry.Page)
		}
		prevPage = entry.Page
	}

	// Re-measure the content with a fresh cover-less layout: every index
	// target must be exactly the measured page shifted by the cover.
	created := svc.now()
	check := svc.newLayout(it, resolveOptions(nil), created.Format("02/01/2006"), created)
	measured := check.renderContent(it)
	if len(measured) != len(res.dayPages) {
		t.Fatalf("measured %d days, index has %d", len(measured), len(res.dayPages))
	}
	for i, entry := range res.dayPages {
		if want := measured[i].Page + res.coverPages; entry.Page != want {
			t.Errorf("day %d target page = %d, want %d (measured %d + cover %d)",
				entry.DayNumber, entry.Page, want, measured[i].Page, res.coverPages)
		}
	}
}

func TestRender_AccentedAndCurrencyText(t *testing.T) {
	svc := newTestPdfService()
	it := makeItinerary(2, 3)
	it.Destination = "Città del Vaticano"
	for d := range it.Days {
		it.Days[d].Theme = "Perché è così: caffè, è già perfetto"
		it.Days[d].DailyContext = "Un quartiere più autentico, fondato nell'età più remota della città, è oggi un'attività vivace piena di caffè all'aperto e così via."
		for a := range it.Days[d].Activities {
			it.Days[d].Activities[a].Title = "Università più antica"
			it.Days[d].Activities[a].Description = "È un'esperienza unica: più di così non si può, tra caffè, società e qualità. Perché venire qui? Perché è già di per sé un'attrazione."
			it.Days[d].Activities[a].Price = "€25-40 a persona"
			it.Days[d].Activities[a].TransportCost = "€1.50"
		}
	}

	res, err := svc.render(it, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(res.data, []byte("%PDF-")) {
		t.Fatal("output does not look like a PDF")
	}
	if res.filename != "Itinerario-Città_del_Vaticano.pdf" {
		t.Fatalf("filename = %q", res.filename)
	}
}

func TestRender_Idempotent(t *testing.T) {
	svc := newTestPdfService()
	it := makeItinerary(3, 3)

	first, err := svc.render(it, nil)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := svc.render(it, nil)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	if first.pageCount != second.pageCount {
		t.Fatalf("page counts differ: %d vs %d", first.pageCount, second.pageCount)
	}
	if !reflect.DeepEqual(first.dayPages, second.dayPages) {
		t.Fatalf("day pages differ: %v vs %v", first.dayPages, second.dayPages)
	}
}

func TestRender_SkipsEmptyDays(t *testing.T) {
	svc := newTestPdfService()
	it := makeItinerary(3, 2)
	it.Days[1].Activities = nil

	res, err := svc.render(it, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(res.dayPages) != 2 {
		t.Fatalf("index rows = %d, want 2 (empty day skipped)", len(res.dayPages))
	}
	if res.dayPages[0].DayNumber != 1 || res.dayPages[1].DayNumber != 3 {
		t.Fatalf("unexpected day numbers in index: %v", res.dayPages)
	}
}

func TestRender_BadLogoIsNotFatal(t *testing.T) {
	svc := newTestPdfService()
	it := makeItinerary(1, 2)

	res, err := svc.render(it, &PdfOptions{Logo: []byte("definitely not an image")})
	if err != nil {
		t.Fatalf("render with corrupt logo: %v", err)
	}
	if len(res.data) == 0 {
		t.Fatal("empty document")
	}
}

func TestRender_CustomOptions(t *testing.T) {
	svc := newTestPdfService()
	it := makeItinerary(2, 2)

	res, err := svc.render(it, &PdfOptions{
		PrimaryColor:   "#1e3a8a",
		SecondaryColor: "#b91c1c",
		Font:           "times",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(res.dayPages) != 2 {
		t.Fatalf("index rows = %d, want 2", len(res.dayPages))
	}
}

func TestBuildLogisticsLine_SuppressesLegFieldsAtIndexZero(t *testing.T) {
	act := response_models.Activity{
		EstimatedDuration:    "1 ora",
		DistanceFromPrevious: "3km",
		TravelTime:           "20 min metro",
		TransportCost:        "€1.50",
	}

	first := BuildLogisticsLine(act, 0)
	if first != "DURATA: 1 ora" {
		t.Fatalf("index 0 line = %q, leg fields must be suppressed", first)
	}

	later := BuildLogisticsLine(act, 1)
	for _, want := range []string{"DURATA: 1 ora", "DIST: 3km", "VIAGGIO: 20 min metro", "COSTO TRASP: €1.50"} {
		if !contains(later, want) {
			t.Errorf("index 1 line %q missing %q", later, want)
		}
	}
}

func TestBuildLogisticsLine_OmitsEmptyLegFields(t *testing.T) {
	act := response_models.Activity{EstimatedDuration: "45 min", TravelTime: "5 min"}

	line := BuildLogisticsLine(act, 2)
	if line != "DURATA: 45 min  |  VIAGGIO: 5 min" {
		t.Fatalf("line = %q", line)
	}
}

func TestActivityLabel(t *testing.T) {
	cases := []struct {
		act  response_models.Activity
		want string
	}{
		{response_models.Activity{Subtype: "Bar Panoramico"}, "BAR PANORAMICO"},
		{response_models.Activity{Type: response_models.ActivityFood}, "RISTORANTE"},
		{response_models.Activity{Type: response_models.ActivityVisit}, "VISITA"},
		{response_models.Activity{Type: response_models.ActivityTransit}, "VISITA"},
	}
	for _, c := range cases {
		if got := activityLabel(c.act); got != c.want {
			t.Errorf("activityLabel(%+v) = %q, want %q", c.act, got, c.want)
		}
	}
}

func TestPdfFilename(t *testing.T) {
	cases := map[string]string{
		"Roma":            "Itinerario-Roma.pdf",
		"New York City":   "Itinerario-New_York_City.pdf",
		"  Canary\tIsles": "Itinerario-Canary_Isles.pdf",
		"":                "Itinerario-Viaggio.pdf",
	}
	for dest, want := range cases {
		if got := pdfFilename(dest); got != want {
			t.Errorf("pdfFilename(%q) = %q, want %q", dest, got, want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	fallback := rgb{1, 2, 3}

	if got := parseHexColor("#0f766e", fallback); got != (rgb{15, 118, 110}) {
		t.Errorf("parseHexColor(#0f766e) = %+v", got)
	}
	if got := parseHexColor("f59e0b", fallback); got != (rgb{245, 158, 11}) {
		t.Errorf("parseHexColor(f59e0b) = %+v", got)
	}
	if got := parseHexColor("nope", fallback); got != fallback {
		t.Errorf("invalid input should fall back, got %+v", got)
	}
	if got := parseHexColor("", fallback); got != fallback {
		t.Errorf("empty input should fall back, got %+v", got)
	}
}

func contains(s, sub string) bool {
	return bytes.Contains([]byte(s), []byte(sub))
}
