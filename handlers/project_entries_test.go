package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"consher/metrics"
	"consher/templates"
	"consher/testhelpers"
)

func TestHandleProjectEntryAdd_Valid(t *testing.T) {
	tests := []struct {
		kind       string
		collection string
		form       url.Values
	}{
		{templates.TabExpenses, "project_expenses",
			url.Values{"description": {"Permits"}, "amount": {"1,200"}, "date": {"2026-03-01"}}},
		{templates.TabPayroll, "project_payroll",
			url.Values{"week": {"Week 3"}, "worker": {"Juan"}, "salary": {"2500"}, "payment": {"2000"}}},
		{templates.TabMaterials, "project_materials",
			url.Values{"material": {"Cement"}, "quantity": {"10"}, "unit": {"bag"}, "price": {"3000"}}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			project := testhelpers.CreateTestProject(t, app, "Lote 4", 0)
			handler := HandleProjectEntryAdd(app, tt.kind)
			before := testutil.ToFloat64(metrics.ProjectEntries.WithLabelValues(tt.kind))

			req := newFormRequest(http.MethodPost, "/admin/projects/"+project.Id+"/"+tt.kind, tt.form, false)
			req.SetPathValue("id", project.Id)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := handler(e); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			wantLocation := "/admin/projects/" + project.Id + "?tab=" + tt.kind
			if rec.Code != http.StatusFound || rec.Header().Get("Location") != wantLocation {
				t.Errorf("expected 302 to %s, got %d %q", wantLocation, rec.Code, rec.Header().Get("Location"))
			}

			records, err := app.FindRecordsByFilter(tt.collection, "project = {:id}", "", 0, 0,
				map[string]any{"id": project.Id})
			if err != nil || len(records) != 1 {
				t.Fatalf("expected 1 %s record, got %d (%v)", tt.collection, len(records), err)
			}
			if got := testutil.ToFloat64(metrics.ProjectEntries.WithLabelValues(tt.kind)); got != before+1 {
				t.Errorf("entries counter = %v, want %v", got, before+1)
			}
		})
	}
}

func TestHandleProjectEntryAdd_StoresParsedAmount(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	project := testhelpers.CreateTestProject(t, app, "Lote 4", 0)
	handler := HandleProjectEntryAdd(app, templates.TabExpenses)

	req := newFormRequest(http.MethodPost, "/admin/projects/"+project.Id+"/expenses",
		url.Values{"description": {"Permits"}, "amount": {"$ 1,200.50"}}, true)
	req.SetPathValue("id", project.Id)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	records, _ := app.FindRecordsByFilter("project_expenses", "project = {:id}", "", 1, 0,
		map[string]any{"id": project.Id})
	if len(records) != 1 || records[0].GetFloat("amount") != 1200.5 {
		t.Fatalf("expected one expense of 1200.5, got %v", records)
	}
}

func TestHandleProjectEntryAdd_ValidationErrors(t *testing.T) {
	tests := []struct {
		kind string
		form url.Values
	}{
		{templates.TabExpenses, url.Values{"description": {"Permits"}, "amount": {"0"}}},
		{templates.TabExpenses, url.Values{"description": {""}, "amount": {"10"}}},
		{templates.TabPayroll, url.Values{"worker": {""}, "payment": {"100"}}},
		{templates.TabMaterials, url.Values{"material": {""}}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			project := testhelpers.CreateTestProject(t, app, "Lote 4", 0)
			handler := HandleProjectEntryAdd(app, tt.kind)

			req := newFormRequest(http.MethodPost, "/admin/projects/"+project.Id+"/"+tt.kind, tt.form, true)
			req.SetPathValue("id", project.Id)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := handler(e); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Header().Get("HX-Redirect") != "" {
				t.Error("expected no HX-Redirect for invalid entry")
			}
			testhelpers.AssertHTMLContains(t, rec.Body.String(), `class="field-error"`, "Lote 4")
		})
	}
}

func TestHandleProjectEntryAdd_ProjectNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleProjectEntryAdd(app, templates.TabExpenses)

	req := newFormRequest(http.MethodPost, "/admin/projects/nonexistent/expenses",
		url.Values{"description": {"X"}, "amount": {"1"}}, true)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestHandleProjectEntryAdd_UnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown ledger kind")
		}
	}()
	HandleProjectEntryAdd(nil, "invoices")
}
