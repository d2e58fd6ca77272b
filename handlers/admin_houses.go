package handlers

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/services"
	"consher/templates"
)

const (
	housesPageSize = 12
	defaultPage    = 1
)

// HandleAdminDashboard lists houses for the back office, newest first,
// optionally filtered by a title/address search.
func HandleAdminDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		page := defaultPage
		if p, err := strconv.Atoi(e.Request.URL.Query().Get("page")); err == nil && p > 0 {
			page = p
		}
		search := strings.TrimSpace(e.Request.URL.Query().Get("search"))

		var where []dbx.Expression
		filter := "id != ''"
		params := map[string]any{}
		if search != "" {
			filter = "(title ~ {:search} || address ~ {:search})"
			params["search"] = search
			where = append(where, dbx.Or(dbx.Like("title", search), dbx.Like("address", search)))
		}

		totalCount, err := app.CountRecords("houses", where...)
		if err != nil {
			log.Printf("admin_houses: could not count houses: %v", err)
			totalCount = 0
		}

		totalPages := int(math.Ceil(float64(totalCount) / float64(housesPageSize)))
		if totalPages < 1 {
			totalPages = 1
		}
		if page > totalPages {
			page = totalPages
		}

		offset := (page - 1) * housesPageSize
		records, err := app.FindRecordsByFilter("houses", filter, "-created", housesPageSize, offset, params)
		if err != nil {
			log.Printf("admin_houses: could not query houses: %v", err)
			records = nil
		}

		data := templates.DashboardData{
			Houses:     housesFromRecords(records),
			Search:     search,
			Page:       page,
			TotalPages: totalPages,
			TotalItems: int(totalCount),
		}
		component := templates.AdminDashboardPage(data, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleHouseNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.HouseFormData{
			Status: services.HouseStatusAvailable,
			Errors: map[string]string{},
		}
		component := templates.HouseFormPage(data, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleHouseEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		houseID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("houses", houseID)
		if err != nil {
			log.Printf("admin_houses: could not find house %s: %v", houseID, err)
			return e.String(http.StatusNotFound, "House not found")
		}

		h := houseFromRecord(rec)
		data := templates.HouseFormData{
			ID:          h.ID,
			IsEdit:      true,
			Title:       h.Title,
			Description: h.Description,
			Address:     h.Address,
			Price:       formatFormNumber(h.Price),
			Status:      h.Status,
			Bedrooms:    strconv.Itoa(h.Bedrooms),
			Bathrooms:   strconv.Itoa(h.Bathrooms),
			Area:        formatFormNumber(h.Area),
			LandSize:    formatFormNumber(h.LandSize),
			Images:      h.Images,
			Errors:      map[string]string{},
		}
		if h.HasLocation {
			data.Lat = strconv.FormatFloat(h.Lat, 'f', -1, 64)
			data.Lng = strconv.FormatFloat(h.Lng, 'f', -1, 64)
		}
		component := templates.HouseFormPage(data, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleHouseCreate saves a new house from the admin form.
func HandleHouseCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return saveHouse(app, e, nil)
	}
}

// HandleHouseUpdate saves the admin form over an existing house. Images
// already on the house keep their order; new URLs are appended.
func HandleHouseUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		houseID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("houses", houseID)
		if err != nil {
			log.Printf("admin_houses: could not find house %s: %v", houseID, err)
			return ErrorToast(e, http.StatusNotFound, "House not found")
		}
		return saveHouse(app, e, rec)
	}
}

func saveHouse(app *pocketbase.PocketBase, e *core.RequestEvent, rec *core.Record) error {
	if err := e.Request.ParseForm(); err != nil {
		return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
	}

	form := houseFormFromRequest(e.Request)
	var existing []string
	if rec != nil {
		form.ID = rec.Id
		form.IsEdit = true
		existing = houseFromRecord(rec).Images
	}
	images := appendImages(existing, services.ParseImageURLs(form.NewImages))

	input, errs := houseInputFromForm(form, images)
	for field, msg := range services.Validate(input) {
		if _, taken := errs[field]; !taken {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		form.Images = existing
		form.Errors = errs
		SetToast(e, "warning", "Please fix the errors below")
		component := templates.HouseFormPage(form, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}

	if rec == nil {
		col, err := app.FindCollectionByNameOrId("houses")
		if err != nil {
			log.Printf("admin_houses: could not find houses collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		rec = core.NewRecord(col)
	}

	rec.Set("title", input.Title)
	rec.Set("description", input.Description)
	rec.Set("address", input.Address)
	rec.Set("price", input.Price)
	rec.Set("status", input.Status)
	rec.Set("bedrooms", input.Bedrooms)
	rec.Set("bathrooms", input.Bathrooms)
	rec.Set("area", input.Area)
	rec.Set("land_size", input.LandSize)
	rec.Set("images", images)
	if input.Lat != nil && input.Lng != nil {
		rec.Set("has_location", true)
		rec.Set("lat", *input.Lat)
		rec.Set("lng", *input.Lng)
	} else {
		rec.Set("has_location", false)
		rec.Set("lat", 0)
		rec.Set("lng", 0)
	}

	if err := app.Save(rec); err != nil {
		log.Printf("admin_houses: could not save house: %v", err)
		return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}

	SetToast(e, "success", "House saved")
	return redirectTo(e, "/admin")
}

func houseFormFromRequest(r *http.Request) templates.HouseFormData {
	return templates.HouseFormData{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Address:     strings.TrimSpace(r.FormValue("address")),
		Price:       strings.TrimSpace(r.FormValue("price")),
		Status:      strings.TrimSpace(r.FormValue("status")),
		Bedrooms:    strings.TrimSpace(r.FormValue("bedrooms")),
		Bathrooms:   strings.TrimSpace(r.FormValue("bathrooms")),
		Area:        strings.TrimSpace(r.FormValue("area")),
		LandSize:    strings.TrimSpace(r.FormValue("land_size")),
		NewImages:   r.FormValue("new_images"),
		Lat:         strings.TrimSpace(r.FormValue("lat")),
		Lng:         strings.TrimSpace(r.FormValue("lng")),
	}
}

// houseInputFromForm converts the raw form into a HouseInput. Coordinates
// are the only fields whose parse errors are reported here; the rest is left
// to the validator.
func houseInputFromForm(form templates.HouseFormData, images []string) (services.HouseInput, map[string]string) {
	errs := map[string]string{}
	input := services.HouseInput{
		Title:       form.Title,
		Description: form.Description,
		Address:     form.Address,
		Price:       services.ParseNumber(form.Price),
		Status:      form.Status,
		Bedrooms:    services.ParseCount(form.Bedrooms),
		Bathrooms:   services.ParseCount(form.Bathrooms),
		Area:        services.ParseNumber(form.Area),
		LandSize:    services.ParseNumber(form.LandSize),
		Images:      images,
	}

	lat, latErr := parseOptionalFloat(form.Lat)
	lng, lngErr := parseOptionalFloat(form.Lng)
	switch {
	case latErr != nil:
		errs["lat"] = "lat must be a number"
	case lngErr != nil:
		errs["lng"] = "lng must be a number"
	case (lat == nil) != (lng == nil):
		errs["lat"] = "Enter both latitude and longitude, or neither"
	default:
		input.Lat, input.Lng = lat, lng
	}
	return input, errs
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func appendImages(existing, added []string) []string {
	out := make([]string, 0, len(existing)+len(added))
	seen := make(map[string]bool, len(existing)+len(added))
	for _, img := range append(append([]string{}, existing...), added...) {
		if !seen[img] {
			seen[img] = true
			out = append(out, img)
		}
	}
	return out
}

func formatFormNumber(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// HandleHouseImageMove moves one image of a house and re-renders the list.
func HandleHouseImageMove(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return updateHouseImages(app, e, func(images []string) []string {
			from, errFrom := strconv.Atoi(e.Request.FormValue("from"))
			to, errTo := strconv.Atoi(e.Request.FormValue("to"))
			if errFrom != nil || errTo != nil {
				return images
			}
			return services.MoveImage(images, from, to)
		})
	}
}

// HandleHouseImageRemove drops one image of a house and re-renders the list.
func HandleHouseImageRemove(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return updateHouseImages(app, e, func(images []string) []string {
			index, err := strconv.Atoi(e.Request.FormValue("index"))
			if err != nil {
				return images
			}
			return services.RemoveImage(images, index)
		})
	}
}

func updateHouseImages(app *pocketbase.PocketBase, e *core.RequestEvent, change func([]string) []string) error {
	if err := e.Request.ParseForm(); err != nil {
		return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
	}

	houseID := e.Request.PathValue("id")
	rec, err := app.FindRecordById("houses", houseID)
	if err != nil {
		log.Printf("admin_houses: could not find house %s: %v", houseID, err)
		return ErrorToast(e, http.StatusNotFound, "House not found")
	}

	images := change(houseFromRecord(rec).Images)
	rec.Set("images", images)
	if err := app.Save(rec); err != nil {
		log.Printf("admin_houses: could not save images of house %s: %v", houseID, err)
		return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}

	component := templates.HouseImagesPartial(rec.Id, images)
	return component.Render(e.Request.Context(), e.Response)
}

func HandleHouseDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		houseID := e.Request.PathValue("id")
		if houseID == "" {
			return e.String(http.StatusBadRequest, "Missing house ID")
		}

		rec, err := app.FindRecordById("houses", houseID)
		if err != nil {
			log.Printf("admin_houses: could not find house %s: %v", houseID, err)
			return e.String(http.StatusNotFound, "House not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("admin_houses: failed to delete house %s: %v", houseID, err)
			return e.String(http.StatusInternalServerError, "Failed to delete house")
		}

		log.Printf("admin_houses: deleted house %s", houseID)
		SetToast(e, "success", "House deleted")
		return redirectTo(e, "/admin")
	}
}
