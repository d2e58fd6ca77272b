package templates

import (
	"github.com/a-h/templ"

	"consher/services"
)

// EstimatorRow is one material card of the estimator.
type EstimatorRow struct {
	Index     int
	Name      string
	Unit      string
	Quantity  float64
	UnitPrice string
	Subtotal  float64
}

// EstimatorData drives the materials estimator.
type EstimatorData struct {
	BuildingArea string
	Rows         []EstimatorRow
	Total        float64
	PricedCount  int
}

func EstimatorPage(data EstimatorData, header HeaderData) templ.Component {
	header.ActiveNav = "calculator"
	return Layout("Materials calculator", header, component(func(h *htmlWriter) {
		h.raw(`<h1>Materials calculator</h1>`)
		h.rawf(`<p class="muted">Quantities are scaled from a %s m² reference house.</p>`,
			esc(services.FormatQuantity(services.ReferenceArea)))
		h.component(EstimatorContent(data))
	}))
}

// EstimatorContent is the form and results block. HTMX recalculations swap
// it as a whole.
func EstimatorContent(data EstimatorData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form id="estimator" method="post" action="/admin/calculator" hx-post="/admin/calculator" hx-trigger="change" hx-target="#estimator" hx-swap="outerHTML">`)
		h.rawf(`<label>Building area (m²) <input type="text" inputmode="decimal" name="building_area" value="%s"></label>`,
			esc(data.BuildingArea))

		h.raw(`<div class="grid">`)
		for _, r := range data.Rows {
			h.raw(`<div class="card">`)
			h.rawf(`<h3>%s</h3>`, esc(r.Name))
			h.rawf(`<p>Quantity: <strong>%s</strong> %s</p>`, esc(services.FormatQuantity(r.Quantity)), esc(r.Unit))
			h.rawf(`<label>Unit price <input type="text" inputmode="decimal" name="price_%d" value="%s"></label>`,
				r.Index, esc(r.UnitPrice))
			h.rawf(`<p>Subtotal: <strong>%s</strong></p>`, esc(services.FormatMoney(r.Subtotal)))
			h.raw(`</div>`)
		}
		h.raw(`</div>`)

		h.rawf(`<p class="total" style="font-size:22px">Total: %s</p>`, esc(services.FormatMoney(data.Total)))

		h.raw(`<p><button type="submit">Recalculate</button> `)
		h.raw(`<button type="submit" formaction="/admin/calculator/export/txt">Download quote (.txt)</button> `)
		h.raw(`<button type="submit" formaction="/admin/calculator/export/excel">Excel</button> `)
		h.raw(`<button type="submit" formaction="/admin/calculator/export/pdf">PDF</button></p>`)
		if data.PricedCount == 0 {
			h.raw(`<p class="muted">Enter at least one unit price to export a quote.</p>`)
		}
		h.raw(`</form>`)
	})
}
