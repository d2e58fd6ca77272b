package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/services"
	"consher/templates"
)

func HandleProjectList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildProjectListData(app)
		if err != nil {
			log.Printf("project_list: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		data.Form.Errors = map[string]string{}
		component := templates.ProjectListPage(data, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// buildProjectListData loads every project, newest first, with its spending
// so far.
func buildProjectListData(app *pocketbase.PocketBase) (templates.ProjectListData, error) {
	records, err := app.FindRecordsByFilter("projects", "id != ''", "-created", 0, 0, nil)
	if err != nil {
		return templates.ProjectListData{}, err
	}

	cards := make([]templates.ProjectCard, 0, len(records))
	for _, rec := range records {
		expenses, payroll, materials := projectLedger(app, rec.Id)
		totals := services.CalcProjectTotals(expenses, payroll, materials, rec.GetFloat("estimated_budget"))
		cards = append(cards, templates.ProjectCard{
			ID:        rec.Id,
			Name:      rec.GetString("name"),
			Address:   rec.GetString("address"),
			Status:    rec.GetString("status"),
			StartDate: formatDate(rec, "start_date"),
			Budget:    totals.Budget,
			Spent:     totals.Spent,
		})
	}
	return templates.ProjectListData{Projects: cards}, nil
}
