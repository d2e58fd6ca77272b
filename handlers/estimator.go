package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/metrics"
	"consher/services"
	"consher/templates"
)

const emptyQuoteMessage = "Enter at least one unit price before exporting the quote."

// now is swapped in tests for a fixed clock.
var now = time.Now

// sessionFromForm rebuilds the estimator state from the submitted form:
// building_area plus one price_<i> field per material.
func sessionFromForm(r *http.Request) services.EstimationSession {
	s := services.NewEstimationSession().
		WithBuildingArea(services.ParseNumber(r.FormValue("building_area")))
	for i := range s.Entries {
		s = s.WithUnitPrice(i, services.ParseNumber(r.FormValue(fmt.Sprintf("price_%d", i))))
	}
	return s
}

func estimatorData(s services.EstimationSession) templates.EstimatorData {
	data := templates.EstimatorData{
		BuildingArea: formatFormNumber(s.BuildingArea),
		Rows:         make([]templates.EstimatorRow, len(s.Entries)),
		Total:        s.Total(),
		PricedCount:  len(s.PricedLines()),
	}
	for i, entry := range s.Entries {
		data.Rows[i] = templates.EstimatorRow{
			Index:     i,
			Name:      entry.Name,
			Unit:      entry.Unit,
			Quantity:  services.EstimatedQuantity(entry.MaterialSpec, s.BuildingArea),
			UnitPrice: formatFormNumber(entry.UnitPrice),
			Subtotal:  services.MaterialSubtotal(entry, s.BuildingArea),
		}
	}
	return data
}

func HandleEstimatorPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := estimatorData(services.NewEstimationSession())
		component := templates.EstimatorPage(data, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleEstimatorRecalculate re-renders the estimator for the submitted
// values. HTMX requests get only the form block.
func HandleEstimatorRecalculate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		data := estimatorData(sessionFromForm(e.Request))
		if isHTMX(e) {
			return templates.EstimatorContent(data).Render(e.Request.Context(), e.Response)
		}
		return templates.EstimatorPage(data, GetHeaderData(e.Request)).Render(e.Request.Context(), e.Response)
	}
}

// rejectEmptyQuote answers an export request that has nothing priced.
// Regular form posts get the estimator back so the values are not lost.
func rejectEmptyQuote(e *core.RequestEvent, s services.EstimationSession) error {
	metrics.QuoteExportsRejected.Inc()
	if isHTMX(e) {
		return ErrorToast(e, http.StatusUnprocessableEntity, emptyQuoteMessage)
	}
	SetToast(e, "error", emptyQuoteMessage)
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	e.Response.WriteHeader(http.StatusUnprocessableEntity)
	return templates.EstimatorPage(estimatorData(s), GetHeaderData(e.Request)).Render(e.Request.Context(), e.Response)
}

func quoteFilename(at time.Time, ext string) string {
	return fmt.Sprintf("quote_%s.%s", at.Format("20060102-1504"), ext)
}

func sendDownload(e *core.RequestEvent, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.Header().Set("Content-Length", strconv.Itoa(len(body)))
	_, err := e.Response.Write(body)
	return err
}

// quoteExport wraps the shared parse/reject/send flow of the three quote
// downloads; render produces the file for the session.
func quoteExport(format, contentType, ext string, render func(s services.EstimationSession, header templates.HeaderData, at time.Time) ([]byte, error)) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		s := sessionFromForm(e.Request)
		at := now()

		body, err := render(s, GetHeaderData(e.Request), at)
		if errors.Is(err, services.ErrNoPricedMaterials) {
			return rejectEmptyQuote(e, s)
		}
		if err != nil {
			log.Printf("estimator: failed to generate %s quote: %v", format, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate the quote")
		}

		metrics.QuotesExported.WithLabelValues(format).Inc()
		return sendDownload(e, contentType, quoteFilename(at, ext), body)
	}
}

func HandleQuoteExportText(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return quoteExport("txt", "text/plain; charset=utf-8", "txt",
		func(s services.EstimationSession, _ templates.HeaderData, at time.Time) ([]byte, error) {
			text, err := s.Quote(at)
			return []byte(text), err
		})
}

func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return quoteExport("xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx",
		func(s services.EstimationSession, header templates.HeaderData, at time.Time) ([]byte, error) {
			data, err := services.NewQuoteExport(s, header.AppName, at)
			if err != nil {
				return nil, err
			}
			return services.GenerateQuoteExcel(data)
		})
}

func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return quoteExport("pdf", "application/pdf", "pdf",
		func(s services.EstimationSession, header templates.HeaderData, at time.Time) ([]byte, error) {
			data, err := services.NewQuoteExport(s, header.AppName, at)
			if err != nil {
				return nil, err
			}
			return services.GenerateQuotePDF(data)
		})
}
