package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

// Setup programmatically creates/ensures the users, houses, projects and
// project ledger collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureAuthCollection(app, "users")

	ensureCollection(app, "houses", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "title", Required: true, Max: 200})
		c.Fields.Add(&core.TextField{Name: "description", Max: 5000})
		c.Fields.Add(&core.TextField{Name: "address", Required: true, Max: 300})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true, Min: types.Pointer(0.0)})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"presale", "available", "sold"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "bedrooms", OnlyInt: true, Min: types.Pointer(0.0)})
		c.Fields.Add(&core.NumberField{Name: "bathrooms", OnlyInt: true, Min: types.Pointer(0.0)})
		c.Fields.Add(&core.NumberField{Name: "area", Min: types.Pointer(0.0)})
		c.Fields.Add(&core.NumberField{Name: "land_size", Min: types.Pointer(0.0)})
		c.Fields.Add(&core.JSONField{Name: "images"})
		c.Fields.Add(&core.BoolField{Name: "has_location"})
		c.Fields.Add(&core.NumberField{Name: "lat", Min: types.Pointer(-90.0), Max: types.Pointer(90.0)})
		c.Fields.Add(&core.NumberField{Name: "lng", Min: types.Pointer(-180.0), Max: types.Pointer(180.0)})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		// The catalog is public through the records API; writes stay with
		// superusers and the admin screens.
		c.ListRule = types.Pointer("")
		c.ViewRule = types.Pointer("")
	})

	projects := ensureCollection(app, "projects", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true, Max: 200})
		c.Fields.Add(&core.TextField{Name: "address", Max: 300})
		c.Fields.Add(&core.DateField{Name: "start_date"})
		c.Fields.Add(&core.NumberField{Name: "estimated_budget", Min: types.Pointer(0.0)})
		c.Fields.Add(&core.NumberField{Name: "expected_profit", Min: types.Pointer(0.0)})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"in_progress", "finished", "paused"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_projects_name", true, "name", "")
	})

	projectRelation := func() *core.RelationField {
		return &core.RelationField{
			Name:          "project",
			Required:      true,
			CollectionId:  projects.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		}
	}

	ensureCollection(app, "project_expenses", func(c *core.Collection) {
		c.Fields.Add(projectRelation())
		c.Fields.Add(&core.TextField{Name: "description", Required: true, Max: 300})
		c.Fields.Add(&core.NumberField{Name: "amount", Min: types.Pointer(0.0)})
		c.Fields.Add(&core.DateField{Name: "date"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "project_payroll", func(c *core.Collection) {
		c.Fields.Add(projectRelation())
		c.Fields.Add(&core.TextField{Name: "week", Max: 50})
		c.Fields.Add(&core.TextField{Name: "worker", Required: true, Max: 200})
		c.Fields.Add(&core.NumberField{Name: "salary", Min: types.Pointer(0.0)})
		c.Fields.Add(&core.NumberField{Name: "payment", Min: types.Pointer(0.0)})
		c.Fields.Add(&core.TextField{Name: "notes", Max: 500})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "project_materials", func(c *core.Collection) {
		c.Fields.Add(projectRelation())
		c.Fields.Add(&core.TextField{Name: "material", Required: true, Max: 200})
		c.Fields.Add(&core.NumberField{Name: "quantity", Min: types.Pointer(0.0)})
		c.Fields.Add(&core.NumberField{Name: "price", Min: types.Pointer(0.0)})
		c.Fields.Add(&core.TextField{Name: "unit", Max: 50})
		c.Fields.Add(&core.TextField{Name: "details", Max: 500})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}

// ensureAuthCollection makes sure an auth collection exists. Fresh PocketBase
// data dirs already ship a "users" collection; this only covers older ones.
func ensureAuthCollection(app *pocketbase.PocketBase, name string) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewAuthCollection(name)
	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create auth collection %q: %v", name, err)
	}

	fmt.Printf("Created auth collection %q (id=%s)\n", name, collection.Id)
	return collection
}
