package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	brandBlue = &props.Color{Red: 0, Green: 81, Blue: 135}
	mutedGray = &props.Color{Red: 110, Green: 110, Blue: 110}
)

// GenerateQuotePDF renders the priced materials of a quote as an A4 PDF.
func GenerateQuotePDF(data QuoteExport) ([]byte, error) {
	if len(data.Lines) == 0 {
		return nil, ErrNoPricedMaterials
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   mutedGray,
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteTableHeader(m)
	for i, l := range data.Lines {
		addQuoteRow(m, i, l)
	}
	addQuoteTotal(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addQuoteHeader(m core.Maroto, data QuoteExport) {
	title := "Materials quote"
	if data.CompanyName != "" {
		title = data.CompanyName + " - " + title
	}
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: brandBlue,
				}),
			),
		),
	)

	small := props.Text{Size: 9, Color: mutedGray}
	right := small
	right.Align = align.Right
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("Reference: "+data.Reference, small)),
			col.New(6).Add(text.New("Date: "+data.GeneratedAt.Format("02 Jan 2006 15:04"), right)),
		),
		row.New(6).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Building area: %s m²", FormatQuantity(data.BuildingArea)), small)),
		),
		row.New(4),
	)
}

func addQuoteTableHeader(m core.Maroto) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerLeft := headerText
	headerLeft.Align = align.Left
	cell := &props.Cell{BackgroundColor: brandBlue}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(cell),
			col.New(4).Add(text.New("Material", headerLeft)).WithStyle(cell),
			col.New(2).Add(text.New("Quantity", headerText)).WithStyle(cell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(cell),
			col.New(2).Add(text.New("Unit price", headerText)).WithStyle(cell),
			col.New(2).Add(text.New("Subtotal", headerText)).WithStyle(cell),
		),
	)
}

func addQuoteRow(m core.Maroto, i int, l QuoteLine) {
	base := props.Text{Size: 8, Align: align.Center}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right

	r := row.New(7).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), base)),
		col.New(4).Add(text.New(l.Name, left)),
		col.New(2).Add(text.New(FormatQuantity(l.Quantity), right)),
		col.New(1).Add(text.New(l.Unit, base)),
		col.New(2).Add(text.New(FormatMoney(l.UnitPrice), right)),
		col.New(2).Add(text.New(FormatMoney(l.Subtotal), right)),
	)
	// Zebra striping.
	if i%2 == 1 {
		r = r.WithStyle(&props.Cell{BackgroundColor: &props.Color{Red: 244, Green: 246, Blue: 248}})
	}
	m.AddRows(r)
}

func addQuoteTotal(m core.Maroto, data QuoteExport) {
	bold := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
	cell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	m.AddRows(
		row.New(6),
		row.New(9).Add(
			col.New(10).Add(text.New("Estimated total", bold)).WithStyle(cell),
			col.New(2).Add(text.New(FormatMoney(data.Total), bold)).WithStyle(cell),
		),
		row.New(6),
		row.New(6).Add(
			col.New(12).Add(text.New(
				"Quantities are estimated from the building area and may vary on site.",
				props.Text{Size: 7, Color: mutedGray},
			)),
		),
	)
}
