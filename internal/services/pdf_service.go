package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	gofpdf "github.com/lvillar/gofpdf"
	"go.uber.org/zap"

	"itinera/internal/models/response_models"
	"itinera/pkg/utils"
)

const productName = "ItineraPDF"

// Layout metrics, all in mm on an A4 portrait page. Block heights are
// conservative budgets used by the greedy page-break check, not measured
// text heights.
const (
	pageMarginX  = 15.0
	contentTopY  = 35.0
	bottomGuard  = 20.0
	dayHeaderH   = 60.0
	activityH    = 100.0
	optionalSecH = 65.0
	optionalItmH = 50.0
	tocRowH      = 12.0
	logoWidth    = 35.0
)

// PdfOptions is rendering configuration, not part of the itinerary.
type PdfOptions struct {
	PrimaryColor   string // hex, e.g. "#0f766e"
	SecondaryColor string // hex, e.g. "#f59e0b"
	Font           string // helvetica | times | courier
	Logo           []byte // optional PNG/JPEG cover logo
}

type PdfServiceInterface interface {
	// CreatePDF renders the itinerary into a paginated document and
	// returns the bytes plus the suggested download filename.
	CreatePDF(itinerary *response_models.Itinerary, options *PdfOptions) ([]byte, string, error)
}

type PdfService struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewPdfService(logger *zap.Logger) PdfServiceInterface {
	return &PdfService{logger: logger, now: time.Now}
}

type rgb struct{ r, g, b int }

type resolvedOptions struct {
	primary    rgb
	secondary  rgb
	fontFamily string
	logo       []byte
}

func resolveOptions(options *PdfOptions) resolvedOptions {
	o := resolvedOptions{
		primary:    rgb{15, 118, 110},  // #0f766e
		secondary:  rgb{245, 158, 11},  // #f59e0b
		fontFamily: "Helvetica",
	}
	if options == nil {
		return o
	}
	o.primary = parseHexColor(options.PrimaryColor, o.primary)
	o.secondary = parseHexColor(options.SecondaryColor, o.secondary)
	switch strings.ToLower(options.Font) {
	case "times", "classic-serif":
		o.fontFamily = "Times"
	case "courier", "monospace":
		o.fontFamily = "Courier"
	}
	o.logo = options.Logo
	return o
}

func parseHexColor(s string, fallback rgb) rgb {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}
	var c rgb
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.r, &c.g, &c.b); err != nil {
		return fallback
	}
	return c
}

// dayPage records which page a day's header block landed on.
type dayPage struct {
	DayNumber int
	Theme     string
	Page      int
}

type renderResult struct {
	data       []byte
	filename   string
	dayPages   []dayPage // final targets, cover offset applied
	coverPages int
	pageCount  int
}

func (s *PdfService) CreatePDF(itinerary *response_models.Itinerary, options *PdfOptions) ([]byte, string, error) {
	res, err := s.render(itinerary, options)
	if err != nil {
		s.logger.Error("pdf render failed",
			zap.String("destination", itinerary.Destination),
			zap.Error(err))
		return nil, "", err
	}
	return res.data, res.filename, nil
}

// render runs the two-pass layout: first a probe document measures where
// each day starts without any cover in front, then the final document
// renders the cover and index followed by identical content pages, with
// every index target shifted by the cover page count.
func (s *PdfService) render(it *response_models.Itinerary, options *PdfOptions) (*renderResult, error) {
	o := resolveOptions(options)
	created := s.now()
	genDate := created.Format("02/01/2006")

	probe := s.newLayout(it, o, genDate, created)
	measured := probe.renderContent(it)
	if err := probe.pdf.Error(); err != nil {
		return nil, err
	}

	l := s.newLayout(it, o, genDate, created)
	final, coverPages := l.renderCover(it, measured, genDate)
	l.renderContent(it)

	if err := l.pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := l.pdf.Output(&buf); err != nil {
		return nil, err
	}

	return &renderResult{
		data:       buf.Bytes(),
		filename:   pdfFilename(it.Destination),
		dayPages:   final,
		coverPages: coverPages,
		pageCount:  l.pdf.PageCount(),
	}, nil
}

func pdfFilename(destination string) string {
	name := strings.Join(strings.Fields(destination), "_")
	if name == "" {
		name = "Viaggio"
	}
	return "Itinerario-" + name + ".pdf"
}

// pdfLayout is the content-pass state machine: a cursor that only moves
// forward, reset to the top margin on every new page.
type pdfLayout struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	logger   *zap.Logger
	o        resolvedOptions
	y        float64
	pageW    float64
	pageH    float64
	contentW float64
}

func (s *PdfService) newLayout(it *response_models.Itinerary, o resolvedOptions, genDate string, created time.Time) *pdfLayout {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerario "+it.Destination, true)
	pdf.SetAuthor(productName, true)
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	pdf.SetMargins(pageMarginX, contentTopY, pageMarginX)
	pdf.SetAutoPageBreak(false, bottomGuard)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	destination := it.Destination

	pdf.SetHeaderFunc(func() {
		pdf.SetDrawColor(226, 232, 240)
		pdf.SetLineWidth(0.5)
		pdf.Line(10, 22, pageW-10, 22)
		pdf.SetFont(o.fontFamily, "B", 10)
		pdf.SetTextColor(o.primary.r, o.primary.g, o.primary.b)
		pdf.Text(pageMarginX, 16, productName)
		pdf.SetFont(o.fontFamily, "", 9)
		pdf.SetTextColor(148, 163, 184)
		meta := tr(genDate + " | " + destination)
		pdf.Text(pageW-pageMarginX-pdf.GetStringWidth(meta), 16, meta)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetFont(o.fontFamily, "", 9)
		pdf.SetTextColor(148, 163, 184)
		pdf.SetY(-16)
		pdf.CellFormat(0, 10, fmt.Sprintf("Pagina %d di {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	return &pdfLayout{
		pdf:      pdf,
		tr:       tr,
		logger:   s.logger,
		o:        o,
		pageW:    pageW,
		pageH:    pageH,
		contentW: pageW - 2*pageMarginX,
	}
}

func (l *pdfLayout) newPage() {
	l.pdf.AddPage()
	l.y = contentTopY
}

// ensure starts a new page when the remaining space cannot fit a block of
// the given budget. Blocks are never split across pages.
func (l *pdfLayout) ensure(h float64) {
	if l.y+h > l.pageH-bottomGuard {
		l.newPage()
	}
}

// writeLines draws pre-split lines starting at the cursor and returns the
// vertical space consumed (lineH per line).
func (l *pdfLayout) writeLines(x float64, lines []string, lineH float64) float64 {
	for i, line := range lines {
		l.pdf.Text(x, l.y+float64(i)*lineH, line)
	}
	return float64(len(lines)) * lineH
}

// splitText wraps translated text into lines that fit w. SplitLines works
// on code-page bytes; SplitText would reinterpret the translated bytes as
// UTF-8 and blow up on anything non-ASCII.
func (l *pdfLayout) splitText(txt string, w float64) []string {
	raw := l.pdf.SplitLines([]byte(l.tr(txt)), w)
	if len(raw) == 0 {
		return []string{""}
	}
	lines := make([]string, len(raw))
	for i, b := range raw {
		lines[i] = string(b)
	}
	return lines
}

// renderContent emits every day in order and reports the page each day's
// header landed on, relative to the start of the content.
func (l *pdfLayout) renderContent(it *response_models.Itinerary) []dayPage {
	pdf := l.pdf
	l.newPage()

	pdf.SetFont(l.o.fontFamily, "B", 22)
	pdf.SetTextColor(l.o.primary.r, l.o.primary.g, l.o.primary.b)
	pdf.Text(pageMarginX, l.y, l.tr(it.Destination))
	l.y += 15

	var pages []dayPage
	for _, day := range it.Days {
		if len(day.Activities) == 0 {
			continue
		}
		l.ensure(dayHeaderH)

		pages = append(pages, dayPage{
			DayNumber: day.DayNumber,
			Theme:     day.Theme,
			Page:      pdf.PageNo(),
		})

		l.renderDayHeader(day)
		for i, act := range day.Activities {
			l.renderActivity(act, i)
		}
		l.renderOptionalActivities(day.OptionalActivities)
		l.y += 15
	}
	return pages
}

func (l *pdfLayout) renderDayHeader(day response_models.DayPlan) {
	pdf := l.pdf

	pdf.SetFillColor(248, 250, 252)
	pdf.SetDrawColor(226, 232, 240)
	pdf.Rect(10, l.y-7, l.pageW-20, 18, "FD")

	pdf.SetFont(l.o.fontFamily, "B", 15)
	pdf.SetTextColor(l.o.primary.r, l.o.primary.g, l.o.primary.b)
	title := fmt.Sprintf("Giorno %d: %s", day.DayNumber, day.Theme)
	lines := l.splitText(title, l.contentW-10)
	for i, line := range lines {
		pdf.Text(pageMarginX+2, l.y+2+float64(i)*8, line)
	}
	l.y += float64(len(lines))*8 + 12

	if day.DailyContext != "" {
		pdf.SetFont(l.o.fontFamily, "I", 10.5)
		pdf.SetTextColor(71, 85, 105)
		ctxLines := l.splitText(day.DailyContext, l.contentW-15)
		l.y += l.writeLines(pageMarginX+15, ctxLines, 8) + 14
	} else {
		l.y += 10
	}
}

func (l *pdfLayout) renderActivity(act response_models.Activity, index int) {
	pdf := l.pdf
	l.ensure(activityH)

	pdf.SetFont(l.o.fontFamily, "B", 13)
	pdf.SetTextColor(15, 23, 42)
	header := fmt.Sprintf("%s - [%s] %s", act.Time, activityLabel(act), act.Title)
	headerLines := l.splitText(header, l.contentW)
	l.y += l.writeLines(pageMarginX, headerLines, 8) + 6

	if act.Rating != "" {
		pdf.SetFont(l.o.fontFamily, "B", 10)
		pdf.SetTextColor(l.o.secondary.r, l.o.secondary.g, l.o.secondary.b)
		rating := "VOTO: " + act.Rating
		if act.Reviews != "" {
			rating += " (" + act.Reviews + ")"
		}
		pdf.Text(pageMarginX+5, l.y, l.tr(rating))
		l.y += 6
	}

	if act.Price != "" {
		pdf.SetFont(l.o.fontFamily, "B", 10)
		pdf.SetTextColor(l.o.primary.r, l.o.primary.g, l.o.primary.b)
		pdf.Text(pageMarginX+5, l.y, l.tr("PREZZO: "+act.Price))
		l.y += 6
	}

	pdf.SetFont(l.o.fontFamily, "", 9.5)
	pdf.SetTextColor(100, 116, 139)
	metaLines := l.splitText(BuildLogisticsLine(act, index), l.contentW-5)
	l.y += l.writeLines(pageMarginX+5, metaLines, 6) + 8

	pdf.SetFont(l.o.fontFamily, "", 11)
	pdf.SetTextColor(51, 65, 85)
	descLines := l.splitText(act.Description, l.contentW-20)
	l.y += l.writeLines(pageMarginX+20, descLines, 9) + 6

	pdf.SetFont(l.o.fontFamily, "B", 10)
	pdf.SetTextColor(l.o.secondary.r, l.o.secondary.g, l.o.secondary.b)
	linkText := "Vedi su Google Maps >>"
	pdf.Text(pageMarginX+20, l.y, linkText)
	pdf.LinkString(pageMarginX+20, l.y-4, pdf.GetStringWidth(linkText), 5,
		utils.MapsSearchURL(act.Coordinates.Latitude, act.Coordinates.Longitude))
	l.y += 22
}

func (l *pdfLayout) renderOptionalActivities(optional []response_models.Activity) {
	if len(optional) == 0 {
		return
	}
	pdf := l.pdf
	l.ensure(optionalSecH)

	l.y += 4
	pdf.SetDrawColor(203, 213, 225)
	pdf.SetDashPattern([]float64{2, 2}, 0)
	pdf.Line(pageMarginX, l.y, l.pageW-pageMarginX, l.y)
	pdf.SetDashPattern([]float64{}, 0)
	l.y += 12

	pdf.SetFont(l.o.fontFamily, "BI", 12)
	pdf.SetTextColor(l.o.secondary.r, l.o.secondary.g, l.o.secondary.b)
	pdf.Text(pageMarginX, l.y, "Alternative & Consigli:")
	l.y += 10

	for _, opt := range optional {
		l.ensure(optionalItmH)

		subtype := opt.Subtype
		if subtype == "" {
			subtype = "Extra"
		}

		pdf.SetFont(l.o.fontFamily, "B", 11)
		pdf.SetTextColor(15, 23, 42)
		title := fmt.Sprintf("- [%s] %s", strings.ToUpper(subtype), opt.Title)
		titleLines := l.splitText(title, l.contentW)
		l.y += l.writeLines(pageMarginX, titleLines, 7) + 2

		pdf.SetFont(l.o.fontFamily, "", 10)
		pdf.SetTextColor(100, 116, 139)
		meta := "TIPO: " + subtype
		if opt.Price != "" {
			meta += " | COSTO: " + opt.Price
		}
		pdf.Text(pageMarginX+6, l.y, l.tr(meta))
		l.y += 7

		pdf.SetFont(l.o.fontFamily, "", 10.5)
		pdf.SetTextColor(71, 85, 105)
		descLines := l.splitText(opt.Description, l.contentW-18)
		l.y += l.writeLines(pageMarginX+18, descLines, 8) + 14
	}
}

// renderCover draws the cover/index in front of the content and returns
// the index rows with final (cover-adjusted) target pages, plus the number
// of cover pages consumed.
func (l *pdfLayout) renderCover(it *response_models.Itinerary, measured []dayPage, genDate string) ([]dayPage, int) {
	pdf := l.pdf
	l.newPage()

	if len(l.o.logo) > 0 {
		l.drawLogo(l.o.logo)
	}

	pdf.SetFont(l.o.fontFamily, "B", 28)
	pdf.SetTextColor(l.o.primary.r, l.o.primary.g, l.o.primary.b)
	pdf.Text(pageMarginX, l.y, "Itinerario di Viaggio")
	l.y += 12

	pdf.SetFont(l.o.fontFamily, "B", 22)
	pdf.SetTextColor(51, 65, 85)
	destLines := l.splitText(it.Destination, l.contentW)
	l.y += l.writeLines(pageMarginX, destLines, 10) + 10

	pdf.SetFont(l.o.fontFamily, "", 12)
	pdf.SetTextColor(100, 116, 139)
	pdf.Text(pageMarginX, l.y, l.tr(fmt.Sprintf("%d Giorni | Creato il %s", it.TotalDays, genDate)))
	l.y += 25

	pdf.SetDrawColor(l.o.primary.r, l.o.primary.g, l.o.primary.b)
	pdf.SetLineWidth(0.8)
	pdf.Line(pageMarginX, l.y-6, pageMarginX+30, l.y-6)

	pdf.SetFont(l.o.fontFamily, "B", 18)
	pdf.SetTextColor(l.o.primary.r, l.o.primary.g, l.o.primary.b)
	pdf.Text(pageMarginX, l.y, "INDICE")
	l.y += 15

	// The content pagination is identical in both passes, so the final
	// page of each day is its measured page plus however many pages the
	// cover and index occupy. Simulate the row loop to know that count
	// before emitting targets.
	coverPages := 1
	yy := l.y
	for range measured {
		if yy > l.pageH-30 {
			coverPages++
			yy = 30
		}
		yy += tocRowH
	}

	final := make([]dayPage, 0, len(measured))
	for _, entry := range measured {
		if l.y > l.pageH-30 {
			pdf.AddPage()
			l.y = 30
		}

		target := entry.Page + coverPages
		final = append(final, dayPage{DayNumber: entry.DayNumber, Theme: entry.Theme, Page: target})

		pdf.SetFont(l.o.fontFamily, "B", 12)
		pdf.SetTextColor(15, 23, 42)
		pdf.Text(pageMarginX, l.y, fmt.Sprintf("Giorno %d", entry.DayNumber))

		pdf.SetFont(l.o.fontFamily, "", 12)
		pdf.SetTextColor(71, 85, 105)
		theme := l.splitText(": "+entry.Theme, l.contentW-45)[0]
		pdf.Text(pageMarginX+25, l.y, theme)

		pdf.SetFont(l.o.fontFamily, "B", 12)
		pdf.SetTextColor(l.o.secondary.r, l.o.secondary.g, l.o.secondary.b)
		pageLabel := fmt.Sprintf("%d", target)
		pdf.Text(l.pageW-pageMarginX-pdf.GetStringWidth(pageLabel), l.y, pageLabel)

		link := pdf.AddLink()
		pdf.SetLink(link, 0, target)
		pdf.Link(pageMarginX, l.y-5, l.contentW, 8, link)

		pdf.SetDrawColor(226, 232, 240)
		pdf.SetLineWidth(0.2)
		pdf.Line(pageMarginX+25, l.y+2, l.pageW-pageMarginX-10, l.y+2)

		l.y += tocRowH
	}

	return final, coverPages
}

// drawLogo embeds the cover logo scaled to a fixed width. An unreadable
// image is logged and skipped, never fatal.
func (l *pdfLayout) drawLogo(logo []byte) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(logo))
	if err != nil || cfg.Width <= 0 {
		l.logger.Warn("cover logo unreadable, skipping", zap.Error(err))
		return
	}

	var imgType string
	switch format {
	case "png":
		imgType = "PNG"
	case "jpeg":
		imgType = "JPG"
	default:
		l.logger.Warn("cover logo format unsupported, skipping", zap.String("format", format))
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imgType}
	info := l.pdf.RegisterImageOptionsReader("cover-logo", opts, bytes.NewReader(logo))
	if l.pdf.Err() {
		l.logger.Warn("cover logo rejected by pdf engine, skipping", zap.Error(l.pdf.Error()))
		l.pdf.ClearError()
		return
	}

	imgH := info.Height() * logoWidth / info.Width()
	l.pdf.ImageOptions("cover-logo", l.pageW-pageMarginX-logoWidth, 15, logoWidth, imgH, false, opts, 0, "")
}

// activityLabel picks the bracketed category for an activity header: the
// model-provided subtype when present, otherwise a label derived from the
// activity type.
func activityLabel(act response_models.Activity) string {
	if act.Subtype != "" {
		return strings.ToUpper(act.Subtype)
	}
	if act.Type == response_models.ActivityFood {
		return "RISTORANTE"
	}
	return "VISITA"
}

// BuildLogisticsLine joins the logistics fields for one activity. The
// distance/travel/cost fields describe the leg from the previous stop, so
// they are suppressed for the first activity of a day even when present.
func BuildLogisticsLine(act response_models.Activity, index int) string {
	parts := []string{"DURATA: " + act.EstimatedDuration}
	if index > 0 {
		if act.DistanceFromPrevious != "" {
			parts = append(parts, "DIST: "+act.DistanceFromPrevious)
		}
		if act.TravelTime != "" {
			parts = append(parts, "VIAGGIO: "+act.TravelTime)
		}
		if act.TransportCost != "" {
			parts = append(parts, "COSTO TRASP: "+act.TransportCost)
		}
	}
	return strings.Join(parts, "  |  ")
}
