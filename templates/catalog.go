package templates

import (
	"fmt"

	"github.com/a-h/templ"

	"consher/services"
)

// HomeData drives the public home page.
type HomeData struct {
	Sections []services.CatalogSection
}

// HouseDetailData drives the public house page.
type HouseDetailData struct {
	House   services.House
	MapsURL string
}

func HomePage(data HomeData, header HeaderData) templ.Component {
	header.ActiveNav = "catalog"
	return Layout("Houses", header, component(func(h *htmlWriter) {
		h.raw(`<section class="hero"><h1>Your next home, built by us</h1>`)
		h.raw(`<p class="muted">Browse the houses we have in presale, available today and already delivered.</p>`)
		if header.WhatsAppURL != "" {
			h.rawf(`<p><a href="%s" target="_blank" rel="noopener">Talk to us on WhatsApp</a></p>`, safeURL(header.WhatsAppURL))
		}
		h.raw(`</section>`)

		for _, section := range data.Sections {
			h.rawf(`<section id="%s"><h2>%s</h2>`, esc(section.Status), esc(section.Title))
			if len(section.Houses) == 0 {
				h.rawf(`<p class="muted">%s</p>`, esc(section.EmptyText))
			} else {
				h.raw(`<div class="grid">`)
				for _, house := range section.Houses {
					houseCard(h, house)
				}
				h.raw(`</div>`)
			}
			h.raw(`</section>`)
		}

		h.raw(`<section id="process"><h2>Our construction process</h2><div class="grid">`)
		for _, step := range buildSteps {
			h.rawf(`<div class="card"><img src="%s" alt="%s" loading="lazy"><h3>%s</h3><p class="muted">%s</p></div>`,
				esc(step.image), esc(step.title), esc(step.title), esc(step.description))
		}
		h.raw(`</div></section>`)
	}))
}

type buildStep struct {
	title, description, image string
}

var buildSteps = []buildStep{
	{"Footings", "A solid base that spreads the weight of the structure.", "/static/images/footings.svg"},
	{"Foundation", "The structural element tying the base to the building.", "/static/images/foundation.svg"},
	{"Concrete pour", "Concrete is poured to form the structural elements.", "/static/images/pour.svg"},
	{"Walls and structure", "Walls and structural supports go up.", "/static/images/structure.svg"},
}

func houseCard(h *htmlWriter, house services.House) {
	h.rawf(`<a class="card" href="/houses/%s">`, esc(house.ID))
	if cover := house.CoverImage(); cover != "" {
		h.rawf(`<img src="%s" alt="%s" loading="lazy">`, safeURL(cover), esc(house.Title))
	}
	h.rawf(`<h3>%s</h3>`, esc(house.Title))
	h.rawf(`<p class="muted">%s</p>`, esc(house.Address))
	statusBadge(h, house.Status, services.HouseStatusLabel(house.Status))
	h.rawf(`<p class="total">%s</p>`, esc(services.PriceLabel(house)))
	h.raw(`</a>`)
}

func statusBadge(h *htmlWriter, status, label string) {
	h.rawf(`<span class="badge %s">%s</span>`, esc(status), esc(label))
}

func HouseDetailPage(data HouseDetailData, header HeaderData) templ.Component {
	house := data.House
	header.ActiveNav = "catalog"
	return Layout(house.Title, header, component(func(h *htmlWriter) {
		h.raw(`<p><a href="/">&larr; All houses</a></p>`)
		h.rawf(`<h1>%s</h1>`, esc(house.Title))
		statusBadge(h, house.Status, services.HouseStatusLabel(house.Status))
		h.rawf(`<p class="total" style="font-size:24px">%s</p>`, esc(services.PriceLabel(house)))

		if len(house.Images) > 0 {
			h.raw(`<div class="grid gallery">`)
			for i, img := range house.Images {
				h.rawf(`<img src="%s" alt="%s photo %d">`, safeURL(img), esc(house.Title), i+1)
			}
			h.raw(`</div>`)
		}

		h.raw(`<div class="card"><h2>Details</h2><table>`)
		facts := [][2]string{
			{"Address", house.Address},
			{"Bedrooms", fmt.Sprintf("%d", house.Bedrooms)},
			{"Bathrooms", fmt.Sprintf("%d", house.Bathrooms)},
			{"Built area", services.FormatQuantity(house.Area) + " m²"},
			{"Land size", services.FormatQuantity(house.LandSize) + " m²"},
		}
		for _, f := range facts {
			h.rawf(`<tr><th>%s</th><td>%s</td></tr>`, esc(f[0]), esc(f[1]))
		}
		h.raw(`</table>`)
		if house.Description != "" {
			h.rawf(`<p style="white-space:pre-line">%s</p>`, esc(house.Description))
		}
		h.raw(`</div>`)

		if data.MapsURL != "" {
			h.rawf(`<p><a href="%s" target="_blank" rel="noopener">View on Google Maps</a>`, safeURL(data.MapsURL))
			h.rawf(` · <a href="/houses/%s/location.geojson">GeoJSON</a></p>`, esc(house.ID))
		}

		if header.WhatsAppURL != "" && house.Status != services.HouseStatusSold {
			h.rawf(`<p><a href="%s" target="_blank" rel="noopener">Ask about this house on WhatsApp</a></p>`, safeURL(header.WhatsAppURL))
		}
	}))
}
