// Package pdf genera la versión imprimible de una factura de proyecto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app  │  N° Factura + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROYECTO: código, nombre, cliente                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Tipo | Estado de pago | Importe                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con la referencia de la factura                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	mentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/Proyectos-api/internal/application/workflow"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

var _ workflow.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var paymentLabels = map[entity.PaymentStatus]string{
	entity.PaymentPending: "PENDIENTE DE PAGO",
	entity.PaymentPaid:    "PAGADA",
}

const defaultFamily = "helvetica"

// UnicodeFont archivos TTF que se incrustan en el PDF. Helvetica no cubre
// árabe; sin Regular se usa helvetica igualmente.
type UnicodeFont struct {
	Family  string
	Regular string
	Bold    string // opcional, si falta se reutiliza Regular
}

// MarotoPDFGenerator implementa workflow.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	issuer string
	family string
	fonts  []*mentity.CustomFont
}

// NewMarotoPDFGenerator construye el generador. issuer aparece en la cabecera.
// Las fuentes se leen una sola vez aquí.
func NewMarotoPDFGenerator(issuer string, font UnicodeFont) (*MarotoPDFGenerator, error) {
	g := &MarotoPDFGenerator{issuer: nonEmpty(issuer, "Proyectos"), family: defaultFamily}
	if font.Regular == "" {
		return g, nil
	}

	family := nonEmpty(font.Family, "unicode")
	fonts, err := repository.New().
		AddUTF8Font(family, fontstyle.Normal, font.Regular).
		AddUTF8Font(family, fontstyle.Bold, nonEmpty(font.Bold, font.Regular)).
		Load()
	if err != nil {
		return nil, fmt.Errorf("pdf: cargar fuente %s: %w", family, err)
	}
	g.family = family
	g.fonts = fonts
	return g, nil
}

// Family familia de letra con la que se escribe el documento.
func (g *MarotoPDFGenerator) Family() string {
	return g.family
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, invoice *entity.Invoice, project *entity.Project) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithCustomFonts(g.fonts).
		WithDefaultFont(&props.Font{Family: g.family, Size: 9}).
		WithTitle("Factura "+project.ProjectCode, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(projectRow(project))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailHeaderRow(), detailRow(invoice))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoPDFGenerator) headerRow(invoice *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.issuer, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(shortRef(invoice.ID), props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
			text.New("Fecha: "+invoice.CreatedAt.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func projectRow(project *entity.Project) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("PROYECTO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(project.ProjectCode+"  ·  "+project.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Cliente: "+nonEmpty(project.ClientName, "—"), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func detailHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2}))
	}
	return row.New(8).Add(
		h("Tipo", 4, align.Left),
		h("Estado de pago", 4, align.Center),
		h("Importe", 4, align.Right),
	)
}

func detailRow(invoice *entity.Invoice) core.Row {
	return row.New(8).Add(
		col.New(4).Add(text.New(nonEmpty(invoice.InvoiceType, "—"), props.Text{Size: 9, Top: 1})),
		col.New(4).Add(text.New(nonEmpty(paymentLabels[invoice.PaymentStatus], string(invoice.PaymentStatus)), props.Text{Size: 9, Align: align.Center, Top: 1})),
		col.New(4).Add(text.New("$"+formatMoney(invoice.Amount.StringFixed(2)), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1})),
	)
}

func footerRow(invoice *entity.Invoice) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr("invoice:"+invoice.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Referencia interna: "+invoice.ID, props.Text{Size: 7, Top: 4, Left: 3, Color: colorGray}),
			text.New("Proyecto: "+invoice.ProjectID, props.Text{Size: 7, Top: 9, Left: 3, Color: colorGray}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortRef(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return "N° " + strings.ToUpper(id)
}

// formatMoney inserta puntos de miles en la parte entera y coma decimal.
// Ej: "25000.50" → "25.000,50", "1000000" → "1.000.000"
func formatMoney(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if hasFrac {
		buf = append(buf, ',')
		buf = append(buf, frac...)
	}
	return string(buf)
}
