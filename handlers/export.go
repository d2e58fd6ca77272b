package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/services"
)

// buildProjectExport fetches a project and its ledger for the workbook.
func buildProjectExport(app *pocketbase.PocketBase, projectID string) (services.ProjectExport, error) {
	record, err := app.FindRecordById("projects", projectID)
	if err != nil {
		return services.ProjectExport{}, fmt.Errorf("project not found: %w", err)
	}

	expenses, payroll, materials := projectLedger(app, projectID)
	return services.ProjectExport{
		Name:      record.GetString("name"),
		Address:   record.GetString("address"),
		Status:    record.GetString("status"),
		StartDate: formatDate(record, "start_date"),
		Expenses:  expenses,
		Payroll:   payroll,
		Materials: materials,
		Totals:    services.CalcProjectTotals(expenses, payroll, materials, record.GetFloat("estimated_budget")),
	}, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	return strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-", `"`, "").Replace(s)
}

// HandleProjectExportExcel returns a handler that downloads the project
// expenses as an Excel workbook.
func HandleProjectExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		data, err := buildProjectExport(app, projectID)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusNotFound, "Project not found")
		}

		xlsxBytes, err := services.GenerateProjectExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Expenses_%s_%s.xlsx", sanitizeFilename(data.Name), time.Now().Format("20060102"))
		return sendDownload(e, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, xlsxBytes)
	}
}
