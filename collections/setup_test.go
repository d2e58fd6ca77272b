package collections_test

import (
	"testing"

	"consher/collections"
	"consher/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"users",
	"houses",
	"projects",
	"project_expenses",
	"project_payroll",
	"project_materials",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	collections.Setup(app)

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_UsersIsAuthCollection(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("users collection: %v", err)
	}
	if !col.IsAuth() {
		t.Errorf("users collection type = %q, want auth", col.Type)
	}
}

func TestSetup_HousesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("houses")

	fields := []string{
		"title", "description", "address", "price", "status", "bedrooms", "bathrooms",
		"area", "land_size", "images", "has_location", "lat", "lng", "created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("houses: missing field %q", f)
		}
	}

	if col.ListRule == nil || *col.ListRule != "" {
		t.Errorf("houses: ListRule should be public (empty string), got %v", col.ListRule)
	}
	if col.ViewRule == nil || *col.ViewRule != "" {
		t.Errorf("houses: ViewRule should be public (empty string), got %v", col.ViewRule)
	}
	if col.CreateRule != nil {
		t.Errorf("houses: CreateRule should stay superuser-only, got %q", *col.CreateRule)
	}

	status, ok := col.Fields.GetByName("status").(*core.SelectField)
	if !ok {
		t.Fatalf("houses.status is not a select field")
	}
	want := []string{"presale", "available", "sold"}
	if len(status.Values) != len(want) {
		t.Fatalf("houses.status values = %v, want %v", status.Values, want)
	}
	for i := range want {
		if status.Values[i] != want[i] {
			t.Errorf("houses.status values[%d] = %q, want %q", i, status.Values[i], want[i])
		}
	}
}

func TestSetup_LedgerRelationsCascade(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	projects, _ := app.FindCollectionByNameOrId("projects")

	for _, name := range []string{"project_expenses", "project_payroll", "project_materials"} {
		t.Run(name, func(t *testing.T) {
			col, _ := app.FindCollectionByNameOrId(name)
			rel, ok := col.Fields.GetByName("project").(*core.RelationField)
			if !ok {
				t.Fatalf("%s.project is not a relation field", name)
			}
			if rel.CollectionId != projects.Id {
				t.Errorf("%s.project points to %q, want %q", name, rel.CollectionId, projects.Id)
			}
			if !rel.CascadeDelete {
				t.Errorf("%s.project should cascade delete", name)
			}
		})
	}
}

func TestSetup_ProjectNameUnique(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProject(t, app, "Lote 7", 0)

	col, _ := app.FindCollectionByNameOrId("projects")
	dup := core.NewRecord(col)
	dup.Set("name", "Lote 7")
	dup.Set("status", "in_progress")
	if err := app.Save(dup); err == nil {
		t.Error("expected saving a duplicate project name to fail")
	}
}
