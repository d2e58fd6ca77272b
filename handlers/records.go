package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/services"
)

func houseFromRecord(rec *core.Record) services.House {
	var images []string
	if err := rec.UnmarshalJSONField("images", &images); err != nil {
		log.Printf("records: house %s has unreadable images: %v", rec.Id, err)
	}
	return services.House{
		ID:          rec.Id,
		Title:       rec.GetString("title"),
		Description: rec.GetString("description"),
		Address:     rec.GetString("address"),
		Price:       rec.GetFloat("price"),
		Status:      rec.GetString("status"),
		Bedrooms:    rec.GetInt("bedrooms"),
		Bathrooms:   rec.GetInt("bathrooms"),
		Area:        rec.GetFloat("area"),
		LandSize:    rec.GetFloat("land_size"),
		Images:      images,
		Lat:         rec.GetFloat("lat"),
		Lng:         rec.GetFloat("lng"),
		HasLocation: rec.GetBool("has_location"),
	}
}

func housesFromRecords(records []*core.Record) []services.House {
	houses := make([]services.House, 0, len(records))
	for _, rec := range records {
		houses = append(houses, houseFromRecord(rec))
	}
	return houses
}

// projectLedger loads the three expense lists of a project, oldest first.
func projectLedger(app *pocketbase.PocketBase, projectID string) ([]services.Expense, []services.PayrollEntry, []services.MaterialPurchase) {
	params := map[string]any{"projectId": projectID}

	expenseRecs, err := app.FindRecordsByFilter("project_expenses", "project = {:projectId}", "created", 0, 0, params)
	if err != nil {
		log.Printf("records: could not load expenses for project %s: %v", projectID, err)
	}
	expenses := make([]services.Expense, 0, len(expenseRecs))
	for _, r := range expenseRecs {
		expenses = append(expenses, services.Expense{
			ID:          r.Id,
			Description: r.GetString("description"),
			Amount:      r.GetFloat("amount"),
			Date:        r.GetDateTime("date").Time(),
		})
	}

	payrollRecs, err := app.FindRecordsByFilter("project_payroll", "project = {:projectId}", "created", 0, 0, params)
	if err != nil {
		log.Printf("records: could not load payroll for project %s: %v", projectID, err)
	}
	payroll := make([]services.PayrollEntry, 0, len(payrollRecs))
	for _, r := range payrollRecs {
		payroll = append(payroll, services.PayrollEntry{
			ID:      r.Id,
			Week:    r.GetString("week"),
			Worker:  r.GetString("worker"),
			Salary:  r.GetFloat("salary"),
			Payment: r.GetFloat("payment"),
			Notes:   r.GetString("notes"),
		})
	}

	materialRecs, err := app.FindRecordsByFilter("project_materials", "project = {:projectId}", "created", 0, 0, params)
	if err != nil {
		log.Printf("records: could not load materials for project %s: %v", projectID, err)
	}
	materials := make([]services.MaterialPurchase, 0, len(materialRecs))
	for _, r := range materialRecs {
		materials = append(materials, services.MaterialPurchase{
			ID:       r.Id,
			Material: r.GetString("material"),
			Quantity: r.GetFloat("quantity"),
			Price:    r.GetFloat("price"),
			Unit:     r.GetString("unit"),
			Details:  r.GetString("details"),
		})
	}

	return expenses, payroll, materials
}

func formatDate(rec *core.Record, field string) string {
	dt := rec.GetDateTime(field)
	if dt.IsZero() {
		return ""
	}
	return dt.Time().Format("2006-01-02")
}
