package templates

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"consher/services"
)

// DashboardData drives the back-office house list.
type DashboardData struct {
	Houses     []services.House
	Search     string
	Page       int
	TotalPages int
	TotalItems int
}

// HouseFormData drives the create/edit house form. Numeric fields are kept
// as typed so a rejected form comes back unchanged.
type HouseFormData struct {
	ID          string
	IsEdit      bool
	Title       string
	Description string
	Address     string
	Price       string
	Status      string
	Bedrooms    string
	Bathrooms   string
	Area        string
	LandSize    string
	Images      []string
	NewImages   string
	Lat         string
	Lng         string
	Errors      map[string]string
}

func AdminDashboardPage(data DashboardData, header HeaderData) templ.Component {
	header.ActiveNav = "houses"
	return Layout("Houses", header, component(func(h *htmlWriter) {
		h.raw(`<div style="display:flex;justify-content:space-between;align-items:center">`)
		h.rawf(`<h1>Houses <span class="muted">(%d)</span></h1>`, data.TotalItems)
		h.raw(`<a href="/admin/houses/new">+ New house</a></div>`)

		h.raw(`<form method="get" action="/admin">`)
		h.rawf(`<input type="search" name="search" value="%s" placeholder="Search by title or address">`, esc(data.Search))
		h.raw(`<button type="submit">Search</button></form>`)

		if len(data.Houses) == 0 {
			h.raw(`<p class="muted">No houses yet.</p>`)
			return
		}

		h.raw(`<table><thead><tr><th>Title</th><th>Address</th><th>Status</th><th class="num">Price</th><th></th></tr></thead><tbody>`)
		for _, house := range data.Houses {
			h.rawf(`<tr id="house-%s">`, esc(house.ID))
			h.rawf(`<td><a href="/houses/%s">%s</a></td>`, esc(house.ID), esc(house.Title))
			h.rawf(`<td>%s</td><td>`, esc(house.Address))
			statusBadge(h, house.Status, services.HouseStatusLabel(house.Status))
			h.rawf(`</td><td class="num">%s</td>`, esc(services.FormatMXN(house.Price)))
			h.rawf(`<td><a href="/admin/houses/%s/edit">Edit</a> `, esc(house.ID))
			h.rawf(`<button hx-delete="/admin/houses/%s" hx-confirm="Delete %s? This cannot be undone.">Delete</button></td>`,
				esc(house.ID), esc(house.Title))
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table>`)

		pagination(h, "/admin", data.Search, data.Page, data.TotalPages)
	}))
}

func pagination(h *htmlWriter, base, search string, page, totalPages int) {
	if totalPages <= 1 {
		return
	}
	link := func(p int) string {
		q := url.Values{}
		q.Set("page", strconv.Itoa(p))
		if search != "" {
			q.Set("search", search)
		}
		return base + "?" + q.Encode()
	}
	h.raw(`<nav class="pagination">`)
	if page > 1 {
		h.rawf(`<a href="%s">&larr; Previous</a> `, esc(link(page-1)))
	}
	h.rawf(`<span>Page %d of %d</span>`, page, totalPages)
	if page < totalPages {
		h.rawf(` <a href="%s">Next &rarr;</a>`, esc(link(page+1)))
	}
	h.raw(`</nav>`)
}

func HouseFormPage(data HouseFormData, header HeaderData) templ.Component {
	header.ActiveNav = "houses"
	title := "New house"
	action := "/admin/houses"
	if data.IsEdit {
		title = "Edit house"
		action = "/admin/houses/" + data.ID + "/save"
	}
	return Layout(title, header, component(func(h *htmlWriter) {
		h.raw(`<p><a href="/admin">&larr; Houses</a></p>`)
		h.rawf(`<h1>%s</h1>`, esc(title))
		h.rawf(`<form class="card" method="post" action="%s">`, esc(action))

		textInput(h, "Title", "title", data.Title, data.Errors)
		h.raw(`<label>Description<br><textarea name="description" rows="5" cols="60">`)
		h.text(data.Description)
		h.raw(`</textarea></label>`)
		fieldError(h, data.Errors, "description")
		textInput(h, "Address", "address", data.Address, data.Errors)
		textInput(h, "Price (MXN)", "price", data.Price, data.Errors)

		h.raw(`<label>Status<br><select name="status">`)
		for _, s := range services.HouseStatusOptions {
			h.rawf(`<option value="%s"%s>%s</option>`, esc(s), selected(s == data.Status), esc(services.HouseStatusLabel(s)))
		}
		h.raw(`</select></label>`)
		fieldError(h, data.Errors, "status")

		textInput(h, "Bedrooms", "bedrooms", data.Bedrooms, data.Errors)
		textInput(h, "Bathrooms", "bathrooms", data.Bathrooms, data.Errors)
		textInput(h, "Built area (m²)", "area", data.Area, data.Errors)
		textInput(h, "Land size (m²)", "land_size", data.LandSize, data.Errors)
		textInput(h, "Latitude", "lat", data.Lat, data.Errors)
		textInput(h, "Longitude", "lng", data.Lng, data.Errors)

		h.raw(`<label>Add image URLs (one per line)<br><textarea name="new_images" rows="3" cols="60">`)
		h.text(data.NewImages)
		h.raw(`</textarea></label>`)
		fieldError(h, data.Errors, "images")

		h.raw(`<p><button type="submit">Save</button></p></form>`)

		if data.IsEdit {
			h.component(HouseImagesPartial(data.ID, data.Images))
		}
	}))
}

// HouseImagesPartial is the reorderable image list on the edit page. It is
// swapped in place after every move or remove.
func HouseImagesPartial(houseID string, images []string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section id="house-images" class="card"><h2>Images</h2>`)
		if len(images) == 0 {
			h.raw(`<p class="muted">This house has no images yet.</p></section>`)
			return
		}
		base := "/admin/houses/" + esc(houseID) + "/images"
		h.raw(`<ol>`)
		for i, img := range images {
			h.raw(`<li>`)
			h.rawf(`<img src="%s" alt="image %d" style="height:60px;vertical-align:middle"> `, safeURL(img), i+1)
			if i > 0 {
				imageAction(h, base+"/move", fmt.Sprintf(`{"from":"%d","to":"%d"}`, i, i-1), "Up")
			}
			if i < len(images)-1 {
				imageAction(h, base+"/move", fmt.Sprintf(`{"from":"%d","to":"%d"}`, i, i+1), "Down")
			}
			imageAction(h, base+"/remove", fmt.Sprintf(`{"index":"%d"}`, i), "Remove")
			h.raw(`</li>`)
		}
		h.raw(`</ol></section>`)
	})
}

func imageAction(h *htmlWriter, path, vals, label string) {
	h.rawf(`<button hx-post="%s" hx-vals='%s' hx-target="#house-images" hx-swap="outerHTML">%s</button> `,
		path, vals, esc(label))
}

func textInput(h *htmlWriter, label, name, value string, errors map[string]string) {
	h.rawf(`<label>%s<br><input type="text" name="%s" value="%s"></label>`, esc(label), esc(name), esc(value))
	fieldError(h, errors, name)
	h.raw(`<br>`)
}
