// Package pdf implementa la generación del kardex en PDF: la ficha de un
// item con su saldo de apertura, los movimientos del período con saldo
// acumulado y el saldo de cierre.
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/almacen-ledger/internal/application/inventory"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ inventory.KardexPDFGenerator = (*KardexPDFGenerator)(nil)

// KardexPDFGenerator implementa inventory.KardexPDFGenerator usando Maroto v2.
type KardexPDFGenerator struct{}

// NewKardexPDFGenerator construye el generador.
func NewKardexPDFGenerator() *KardexPDFGenerator { return &KardexPDFGenerator{} }

// GenerateKardexPDF genera el PDF y devuelve sus bytes.
func (g *KardexPDFGenerator) GenerateKardexPDF(
	_ context.Context,
	item *entity.Item,
	history *inventory.PeriodHistory,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de "+item.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(item, history))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(openingRow(history))
	m.AddRows(tableHeaderRow())
	for _, r := range tableEntryRows(history.Entries) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(closingRow(history))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del item (izq) y unidad/categoría (der).
func headerRow(item *entity.Item, history *inventory.PeriodHistory) core.Row {
	detail := item.Unit
	if item.Category != "" {
		if detail != "" {
			detail += "   |   "
		}
		detail += item.Category
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("KARDEX DE MOVIMIENTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(item.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New(detail, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Movimientos: %d", len(history.Entries)), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// openingRow: saldo de apertura del período.
func openingRow(history *inventory.PeriodHistory) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Saldo de apertura: "+strconv.FormatInt(history.OpeningBalance, 10), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Tipo", 1, align.Center),
		h("Cant.", 2, align.Right),
		h("Responsable", 3, align.Left),
		h("Saldo", 3, align.Right),
	)
}

// tableEntryRows: una fila por movimiento, con el saldo acumulado.
func tableEntryRows(entries []inventory.PeriodEntry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		tipo := "Entrada"
		if e.Movement.Type == entity.MovementTypeOUT {
			tipo = "Salida"
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				e.Movement.Date.Format("02/01/2006 15:04"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				tipo,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				strconv.FormatInt(e.Movement.Quantity, 10),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				e.Movement.Responsible,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				strconv.FormatInt(e.Balance, 10),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// closingRow: saldo de cierre del período.
func closingRow(history *inventory.PeriodHistory) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Saldo de cierre: "+strconv.FormatInt(history.ClosingBalance, 10), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
		),
	)
}
