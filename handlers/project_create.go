package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/services"
	"consher/templates"
)

func HandleProjectSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		form := templates.ProjectFormData{
			Name:            strings.TrimSpace(e.Request.FormValue("name")),
			Address:         strings.TrimSpace(e.Request.FormValue("address")),
			StartDate:       strings.TrimSpace(e.Request.FormValue("start_date")),
			EstimatedBudget: strings.TrimSpace(e.Request.FormValue("estimated_budget")),
			ExpectedProfit:  strings.TrimSpace(e.Request.FormValue("expected_profit")),
		}
		input := services.ProjectInput{
			Name:            form.Name,
			Address:         form.Address,
			StartDate:       form.StartDate,
			EstimatedBudget: services.ParseNumber(form.EstimatedBudget),
			ExpectedProfit:  services.ParseNumber(form.ExpectedProfit),
		}

		errors := services.Validate(input)
		if errors == nil {
			errors = make(map[string]string)
		}
		if input.Name != "" {
			existing, _ := app.FindRecordsByFilter(
				"projects",
				"name = {:name}",
				"", 1, 0,
				map[string]any{"name": input.Name},
			)
			if len(existing) > 0 {
				errors["name"] = "A project with this name already exists"
			}
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data, err := buildProjectListData(app)
			if err != nil {
				log.Printf("project_create: %v", err)
			}
			form.Errors = errors
			data.Form = form
			component := templates.ProjectListPage(data, GetHeaderData(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		projectsCol, err := app.FindCollectionByNameOrId("projects")
		if err != nil {
			log.Printf("project_create: could not find projects collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(projectsCol)
		record.Set("name", input.Name)
		record.Set("address", input.Address)
		if input.StartDate != "" {
			record.Set("start_date", input.StartDate+" 00:00:00.000Z")
		}
		record.Set("estimated_budget", input.EstimatedBudget)
		record.Set("expected_profit", input.ExpectedProfit)
		record.Set("status", services.ProjectStatusInProgress)

		if err := app.Save(record); err != nil {
			log.Printf("project_create: could not save project: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Project created successfully")
		return redirectTo(e, "/admin/projects/"+record.Id)
	}
}
