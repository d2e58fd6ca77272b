package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/metrics"
	"consher/services"
	"consher/templates"
)

// ledgerKind describes one of the three per-project ledgers: its collection,
// the form fields it accepts and how they map onto a validated input.
type ledgerKind struct {
	collection string
	fields     []string
	// parse validates the form and returns the record values to store.
	parse func(values map[string]string) (map[string]any, map[string]string)
}

var ledgerKinds = map[string]ledgerKind{
	templates.TabExpenses: {
		collection: "project_expenses",
		fields:     []string{"description", "amount", "date"},
		parse: func(v map[string]string) (map[string]any, map[string]string) {
			in := services.ExpenseInput{
				Description: v["description"],
				Amount:      services.ParseNumber(v["amount"]),
				Date:        v["date"],
			}
			if errs := services.Validate(in); errs != nil {
				return nil, errs
			}
			out := map[string]any{"description": in.Description, "amount": in.Amount}
			if in.Date != "" {
				out["date"] = in.Date + " 00:00:00.000Z"
			}
			return out, nil
		},
	},
	templates.TabPayroll: {
		collection: "project_payroll",
		fields:     []string{"week", "worker", "salary", "payment", "notes"},
		parse: func(v map[string]string) (map[string]any, map[string]string) {
			in := services.PayrollInput{
				Week:    v["week"],
				Worker:  v["worker"],
				Salary:  services.ParseNumber(v["salary"]),
				Payment: services.ParseNumber(v["payment"]),
				Notes:   v["notes"],
			}
			if errs := services.Validate(in); errs != nil {
				return nil, errs
			}
			return map[string]any{
				"week": in.Week, "worker": in.Worker, "salary": in.Salary,
				"payment": in.Payment, "notes": in.Notes,
			}, nil
		},
	},
	templates.TabMaterials: {
		collection: "project_materials",
		fields:     []string{"material", "quantity", "unit", "price", "details"},
		parse: func(v map[string]string) (map[string]any, map[string]string) {
			in := services.MaterialPurchaseInput{
				Material: v["material"],
				Quantity: services.ParseNumber(v["quantity"]),
				Price:    services.ParseNumber(v["price"]),
				Unit:     v["unit"],
				Details:  v["details"],
			}
			if errs := services.Validate(in); errs != nil {
				return nil, errs
			}
			return map[string]any{
				"material": in.Material, "quantity": in.Quantity, "price": in.Price,
				"unit": in.Unit, "details": in.Details,
			}, nil
		},
	},
}

// HandleProjectEntryAdd adds an expense, payroll entry or material purchase
// to a project. kind is one of the detail page tabs.
func HandleProjectEntryAdd(app *pocketbase.PocketBase, kind string) func(*core.RequestEvent) error {
	ledger, ok := ledgerKinds[kind]
	if !ok {
		panic("handlers: unknown ledger kind " + kind)
	}

	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		projectID := e.Request.PathValue("id")
		project, err := app.FindRecordById("projects", projectID)
		if err != nil {
			log.Printf("project_entries: could not find project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusNotFound, "Project not found")
		}

		values := make(map[string]string, len(ledger.fields))
		for _, f := range ledger.fields {
			values[f] = strings.TrimSpace(e.Request.FormValue(f))
		}

		fields, errs := ledger.parse(values)
		if errs != nil {
			SetToast(e, "warning", "Please fix the errors below")
			data := buildProjectDetailData(app, project, kind)
			data.Form = templates.EntryFormData{Values: values, Errors: errs}
			component := templates.ProjectDetailPage(data, GetHeaderData(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId(ledger.collection)
		if err != nil {
			log.Printf("project_entries: could not find %s collection: %v", ledger.collection, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("project", project.Id)
		for k, v := range fields {
			record.Set(k, v)
		}
		if err := app.Save(record); err != nil {
			log.Printf("project_entries: could not save %s entry for project %s: %v", kind, projectID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		metrics.ProjectEntries.WithLabelValues(kind).Inc()
		SetToast(e, "success", "Entry added")
		return redirectTo(e, "/admin/projects/"+project.Id+"?tab="+kind)
	}
}
