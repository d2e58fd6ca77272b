package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/services"
	"consher/templates"
)

func normalizeTab(tab string) string {
	switch tab {
	case templates.TabPayroll, templates.TabMaterials:
		return tab
	default:
		return templates.TabExpenses
	}
}

// buildProjectDetailData loads a project with its ledger and totals.
func buildProjectDetailData(app *pocketbase.PocketBase, record *core.Record, tab string) templates.ProjectDetailData {
	expenses, payroll, materials := projectLedger(app, record.Id)
	return templates.ProjectDetailData{
		ID:             record.Id,
		Name:           record.GetString("name"),
		Address:        record.GetString("address"),
		Status:         record.GetString("status"),
		StartDate:      formatDate(record, "start_date"),
		ExpectedProfit: record.GetFloat("expected_profit"),
		Tab:            normalizeTab(tab),
		Expenses:       expenses,
		Payroll:        payroll,
		Materials:      materials,
		Totals:         services.CalcProjectTotals(expenses, payroll, materials, record.GetFloat("estimated_budget")),
	}
}

func HandleProjectView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		record, err := app.FindRecordById("projects", projectID)
		if err != nil {
			log.Printf("project_view: could not find project %s: %v", projectID, err)
			return e.String(http.StatusNotFound, "Project not found")
		}

		data := buildProjectDetailData(app, record, e.Request.URL.Query().Get("tab"))
		component := templates.ProjectDetailPage(data, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleProjectStatus moves a project between in progress, finished and
// paused.
func HandleProjectStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		projectID := e.Request.PathValue("id")
		record, err := app.FindRecordById("projects", projectID)
		if err != nil {
			log.Printf("project_status: could not find project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusNotFound, "Project not found")
		}

		status := e.Request.FormValue("status")
		valid := false
		for _, s := range services.ProjectStatusOptions {
			if status == s {
				valid = true
				break
			}
		}
		if !valid {
			return ErrorToast(e, http.StatusBadRequest, "Unknown project status")
		}

		record.Set("status", status)
		if err := app.Save(record); err != nil {
			log.Printf("project_status: could not save project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Status changed to "+services.ProjectStatusLabel(status))
		return redirectTo(e, "/admin/projects/"+projectID)
	}
}
