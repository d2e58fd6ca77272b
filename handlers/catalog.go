package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/metrics"
	"consher/services"
	"consher/templates"
)

// HandleHome renders the public catalog grouped by status, newest first.
func HandleHome(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("houses", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("catalog: could not load houses: %v", err)
			records = nil
		}

		data := templates.HomeData{
			Sections: services.GroupByStatus(housesFromRecords(records)),
		}
		component := templates.HomePage(data, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleHouseDetail(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		houseID := e.Request.PathValue("id")
		if houseID == "" {
			return e.String(http.StatusBadRequest, "Missing house ID")
		}

		rec, err := app.FindRecordById("houses", houseID)
		if err != nil {
			return e.String(http.StatusNotFound, "House not found")
		}
		metrics.HouseViews.Inc()

		house := houseFromRecord(rec)
		data := templates.HouseDetailData{House: house}
		if house.HasLocation {
			data.MapsURL = services.MapsURL(house.Lat, house.Lng)
		}

		component := templates.HouseDetailPage(data, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleHouseLocation serves the house position as a GeoJSON Feature.
func HandleHouseLocation(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		houseID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("houses", houseID)
		if err != nil {
			return e.String(http.StatusNotFound, "House not found")
		}

		feature, err := services.LocationFeature(houseFromRecord(rec))
		if err != nil {
			return e.String(http.StatusNotFound, "House has no location")
		}

		body, err := feature.MarshalJSON()
		if err != nil {
			log.Printf("catalog: could not encode location of house %s: %v", houseID, err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		return e.Blob(http.StatusOK, "application/geo+json", body)
	}
}
