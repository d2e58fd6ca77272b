package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type houseDef struct {
	title       string
	description string
	address     string
	price       float64
	status      string
	bedrooms    int
	bathrooms   int
	area        float64
	landSize    float64
	images      []string
	lat, lng    float64
}

type expenseDef struct {
	description string
	amount      float64
	date        string
}

type payrollDef struct {
	week    string
	worker  string
	salary  float64
	payment float64
	notes   string
}

type materialDef struct {
	material string
	quantity float64
	price    float64
	unit     string
	details  string
}

var seedHouses = []houseDef{
	{
		title:       "Casa Jacarandas",
		description: "Two-storey house with a front garden and covered parking for two cars.",
		address:     "Calle Jacarandas 14, Pachuca, Hidalgo",
		price:       1850000,
		status:      "presale",
		bedrooms:    3,
		bathrooms:   2,
		area:        145,
		landSize:    160,
		images:      []string{"https://images.example.com/consher/jacarandas-front.jpg"},
		lat:         20.1011,
		lng:         -98.7591,
	},
	{
		title:       "Casa Los Pinos",
		description: "Single-storey house close to schools and the main avenue.",
		address:     "Av. Los Pinos 221, Mineral de la Reforma, Hidalgo",
		price:       1420000,
		status:      "available",
		bedrooms:    2,
		bathrooms:   1,
		area:        98,
		landSize:    120,
		images: []string{
			"https://images.example.com/consher/pinos-front.jpg",
			"https://images.example.com/consher/pinos-kitchen.jpg",
		},
		lat: 20.0703,
		lng: -98.7215,
	},
	{
		title:       "Casa Encinos",
		description: "Corner house with a rooftop terrace.",
		address:     "Privada Encinos 8, Pachuca, Hidalgo",
		price:       2100000,
		status:      "sold",
		bedrooms:    3,
		bathrooms:   3,
		area:        190,
		landSize:    200,
	},
}

// Seed inserts sample houses and a sample project with ledger entries. It
// returns early when the houses collection already has records.
func Seed(app *pocketbase.PocketBase) error {
	housesCol, err := app.FindCollectionByNameOrId("houses")
	if err != nil {
		return fmt.Errorf("seed: could not find houses collection: %w", err)
	}
	existing, err := app.FindAllRecords(housesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query houses: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: houses collection is empty – inserting seed data …")

	for _, d := range seedHouses {
		r := core.NewRecord(housesCol)
		r.Set("title", d.title)
		r.Set("description", d.description)
		r.Set("address", d.address)
		r.Set("price", d.price)
		r.Set("status", d.status)
		r.Set("bedrooms", d.bedrooms)
		r.Set("bathrooms", d.bathrooms)
		r.Set("area", d.area)
		r.Set("land_size", d.landSize)
		images := d.images
		if images == nil {
			images = []string{}
		}
		r.Set("images", images)
		if d.lat != 0 || d.lng != 0 {
			r.Set("has_location", true)
			r.Set("lat", d.lat)
			r.Set("lng", d.lng)
		}
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save house %q: %w", d.title, err)
		}
	}

	if err := seedProject(app); err != nil {
		return err
	}

	log.Println("seed: done")
	return nil
}

func seedProject(app *pocketbase.PocketBase) error {
	projectsCol, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		return fmt.Errorf("seed: could not find projects collection: %w", err)
	}
	expensesCol, err := app.FindCollectionByNameOrId("project_expenses")
	if err != nil {
		return fmt.Errorf("seed: could not find project_expenses collection: %w", err)
	}
	payrollCol, err := app.FindCollectionByNameOrId("project_payroll")
	if err != nil {
		return fmt.Errorf("seed: could not find project_payroll collection: %w", err)
	}
	materialsCol, err := app.FindCollectionByNameOrId("project_materials")
	if err != nil {
		return fmt.Errorf("seed: could not find project_materials collection: %w", err)
	}

	p := core.NewRecord(projectsCol)
	p.Set("name", "Fraccionamiento Jacarandas - Lote 4")
	p.Set("address", "Calle Jacarandas 14, Pachuca, Hidalgo")
	p.Set("start_date", "2026-03-02 00:00:00.000Z")
	p.Set("estimated_budget", 950000)
	p.Set("expected_profit", 300000)
	p.Set("status", "in_progress")
	if err := app.Save(p); err != nil {
		return fmt.Errorf("seed: save project: %w", err)
	}

	expenses := []expenseDef{
		{"Construction permit", 18500, "2026-03-02 00:00:00.000Z"},
		{"Water connection", 6200, "2026-03-10 00:00:00.000Z"},
	}
	for _, d := range expenses {
		r := core.NewRecord(expensesCol)
		r.Set("project", p.Id)
		r.Set("description", d.description)
		r.Set("amount", d.amount)
		r.Set("date", d.date)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save expense %q: %w", d.description, err)
		}
	}

	payroll := []payrollDef{
		{"Week 1", "Juan Pérez", 3500, 3500, "Foundation"},
		{"Week 1", "Luis Hernández", 3000, 2500, "Advance pending"},
	}
	for _, d := range payroll {
		r := core.NewRecord(payrollCol)
		r.Set("project", p.Id)
		r.Set("week", d.week)
		r.Set("worker", d.worker)
		r.Set("salary", d.salary)
		r.Set("payment", d.payment)
		r.Set("notes", d.notes)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save payroll entry %q: %w", d.worker, err)
		}
	}

	materials := []materialDef{
		{"Cement (50 kg bag)", 120, 26400, "bag", "Cemex gray"},
		{"Rebar 3/8\"", 80, 14800, "piece", ""},
	}
	for _, d := range materials {
		r := core.NewRecord(materialsCol)
		r.Set("project", p.Id)
		r.Set("material", d.material)
		r.Set("quantity", d.quantity)
		r.Set("price", d.price)
		r.Set("unit", d.unit)
		r.Set("details", d.details)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save material %q: %w", d.material, err)
		}
	}
	return nil
}

// SeedAdmin creates the first back-office user when email and password are
// both set and the users collection is still empty.
func SeedAdmin(app *pocketbase.PocketBase, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	usersCol, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		return fmt.Errorf("seed: could not find users collection: %w", err)
	}
	total, err := app.CountRecords(usersCol)
	if err != nil {
		return fmt.Errorf("seed: could not count users: %w", err)
	}
	if total > 0 {
		return nil
	}

	u := core.NewRecord(usersCol)
	u.SetEmail(email)
	u.SetPassword(password)
	u.SetVerified(true)
	if err := app.Save(u); err != nil {
		return fmt.Errorf("seed: save admin user: %w", err)
	}
	log.Printf("seed: created admin user %s", email)
	return nil
}
