package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"consher/testhelpers"
)

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"Lote 4":          "Lote-4",
		`a/b\c:d"e`:       "a-b-c-de",
		"Casa Jacarandas": "Casa-Jacarandas",
	}
	for in, want := range tests {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHandleProjectExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	project := testhelpers.CreateTestProject(t, app, "Lote 4", 5000)
	testhelpers.CreateTestExpense(t, app, project.Id, "Permits", 1000)
	testhelpers.CreateTestPayroll(t, app, project.Id, "Juan", 2500, 2000)
	handler := HandleProjectExportExcel(app)

	req := httptest.NewRequest(http.MethodGet, "/admin/projects/"+project.Id+"/export/excel", nil)
	req.SetPathValue("id", project.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `filename="Expenses_Lote-4_`) || !strings.HasSuffix(cd, `.xlsx"`) {
		t.Errorf("Content-Disposition = %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not valid Excel: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Expenses", "A2"); v != "Permits" {
		t.Errorf("Expenses A2 = %q", v)
	}
	if v, _ := f.GetCellValue("Payroll", "B2"); v != "Juan" {
		t.Errorf("Payroll B2 = %q", v)
	}
	// Total spent row on the summary sheet.
	if v, _ := f.GetCellValue("Summary", "B9"); v != "3000" {
		t.Errorf("Summary total spent = %q, want 3000", v)
	}
}

func TestHandleProjectExportExcel_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleProjectExportExcel(app)

	req := httptest.NewRequest(http.MethodGet, "/admin/projects/nonexistent/export/excel", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
