// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/collections"
)

// TestPassword is the password given to users made by CreateTestUser.
const TestPassword = "secret1234"

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// HouseOpts overrides the defaults used by CreateTestHouse.
type HouseOpts struct {
	Status   string
	Price    float64
	Images   []string
	Lat, Lng *float64
}

// CreateTestHouse creates a house record with the given title and returns it.
// Without opts the house is available, priced at 1,500,000 and has no images
// or location.
func CreateTestHouse(t *testing.T, app *pocketbase.PocketBase, title string, opts ...HouseOpts) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("houses")
	if err != nil {
		t.Fatalf("failed to find houses collection: %v", err)
	}

	o := HouseOpts{Status: "available", Price: 1500000}
	if len(opts) > 0 {
		if opts[0].Status != "" {
			o.Status = opts[0].Status
		}
		if opts[0].Price > 0 {
			o.Price = opts[0].Price
		}
		o.Images = opts[0].Images
		o.Lat, o.Lng = opts[0].Lat, opts[0].Lng
	}
	if o.Images == nil {
		o.Images = []string{}
	}

	record := core.NewRecord(col)
	record.Set("title", title)
	record.Set("description", "Test house")
	record.Set("address", "Calle Prueba 1, Pachuca")
	record.Set("price", o.Price)
	record.Set("status", o.Status)
	record.Set("bedrooms", 3)
	record.Set("bathrooms", 2)
	record.Set("area", 120)
	record.Set("land_size", 140)
	record.Set("images", o.Images)
	if o.Lat != nil && o.Lng != nil {
		record.Set("has_location", true)
		record.Set("lat", *o.Lat)
		record.Set("lng", *o.Lng)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test house: %v", err)
	}

	return record
}

// CreateTestProject creates a project record with the given name and budget.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, name string, budget float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		t.Fatalf("failed to find projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("address", "Av. Obra 10")
	record.Set("estimated_budget", budget)
	record.Set("status", "in_progress")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}

	return record
}

// CreateTestExpense adds a general expense to a project.
func CreateTestExpense(t *testing.T, app *pocketbase.PocketBase, projectID, description string, amount float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("project_expenses")
	if err != nil {
		t.Fatalf("failed to find project_expenses collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project", projectID)
	record.Set("description", description)
	record.Set("amount", amount)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test expense: %v", err)
	}

	return record
}

// CreateTestPayroll adds a payroll entry to a project.
func CreateTestPayroll(t *testing.T, app *pocketbase.PocketBase, projectID, worker string, salary, payment float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("project_payroll")
	if err != nil {
		t.Fatalf("failed to find project_payroll collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project", projectID)
	record.Set("week", "Week 1")
	record.Set("worker", worker)
	record.Set("salary", salary)
	record.Set("payment", payment)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test payroll entry: %v", err)
	}

	return record
}

// CreateTestMaterialPurchase adds a material purchase to a project.
func CreateTestMaterialPurchase(t *testing.T, app *pocketbase.PocketBase, projectID, material string, quantity, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("project_materials")
	if err != nil {
		t.Fatalf("failed to find project_materials collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project", projectID)
	record.Set("material", material)
	record.Set("quantity", quantity)
	record.Set("price", price)
	record.Set("unit", "piece")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test material purchase: %v", err)
	}

	return record
}

// CreateTestUser creates a verified user in the users auth collection with
// TestPassword as password.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, email string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("failed to find users collection: %v", err)
	}

	record := core.NewRecord(col)
	record.SetEmail(email)
	record.SetPassword(TestPassword)
	record.SetVerified(true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}

	return record
}

// AuthToken returns a fresh auth token for the given user record.
func AuthToken(t *testing.T, user *core.Record) string {
	t.Helper()

	token, err := user.NewAuthToken()
	if err != nil {
		t.Fatalf("failed to create auth token: %v", err)
	}
	return token
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
