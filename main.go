package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"consher/collections"
	"consher/config"
	"consher/handlers"
	"consher/templates"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if cfg.Seed.Enabled {
			if err := collections.Seed(app); err != nil {
				log.Printf("Warning: seed data failed: %v", err)
			}
		}
		if err := collections.SeedAdmin(app, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Printf("Warning: admin seed failed: %v", err)
		}
		app.Logger().Info("config loaded",
			"app", cfg.App.Name,
			"env", cfg.App.Env,
			"metrics", cfg.Metrics.Enabled,
			"seed", cfg.Seed.Enabled,
		)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		if cfg.Metrics.Enabled {
			se.Router.GET("/metrics", handlers.HandleMetrics(app))
		}

		// Current user and header data for every page
		se.Router.BindFunc(handlers.SiteMiddleware(app, cfg))

		// ── Public catalog ───────────────────────────────────────
		se.Router.GET("/{$}", handlers.HandleHome(app))
		se.Router.GET("/houses/{id}/location.geojson", handlers.HandleHouseLocation(app))
		se.Router.GET("/houses/{id}", handlers.HandleHouseDetail(app))

		// ── Auth ─────────────────────────────────────────────────
		se.Router.GET("/login", handlers.HandleLoginPage(app))
		se.Router.POST("/login", handlers.HandleLogin(app))
		se.Router.POST("/logout", handlers.HandleLogout(app))

		admin := se.Router.Group("/admin")
		admin.BindFunc(handlers.RequireAdmin(app))

		// ── Houses ───────────────────────────────────────────────
		admin.GET("", handlers.HandleAdminDashboard(app))
		admin.GET("/houses/new", handlers.HandleHouseNew(app))
		admin.POST("/houses", handlers.HandleHouseCreate(app))
		admin.GET("/houses/{id}/edit", handlers.HandleHouseEdit(app))
		admin.POST("/houses/{id}/save", handlers.HandleHouseUpdate(app))
		admin.POST("/houses/{id}/images/move", handlers.HandleHouseImageMove(app))
		admin.POST("/houses/{id}/images/remove", handlers.HandleHouseImageRemove(app))
		admin.DELETE("/houses/{id}", handlers.HandleHouseDelete(app))

		// ── Projects ─────────────────────────────────────────────
		admin.GET("/projects", handlers.HandleProjectList(app))
		admin.POST("/projects", handlers.HandleProjectSave(app))
		admin.GET("/projects/{id}/export/excel", handlers.HandleProjectExportExcel(app))
		admin.POST("/projects/{id}/status", handlers.HandleProjectStatus(app))
		for _, kind := range []string{templates.TabExpenses, templates.TabPayroll, templates.TabMaterials} {
			admin.POST("/projects/{id}/"+kind, handlers.HandleProjectEntryAdd(app, kind))
		}
		admin.GET("/projects/{id}", handlers.HandleProjectView(app))
		admin.DELETE("/projects/{id}", handlers.HandleProjectDelete(app))

		// ── Materials calculator ─────────────────────────────────
		admin.GET("/calculator", handlers.HandleEstimatorPage(app))
		admin.POST("/calculator", handlers.HandleEstimatorRecalculate(app))
		admin.POST("/calculator/export/txt", handlers.HandleQuoteExportText(app))
		admin.POST("/calculator/export/excel", handlers.HandleQuoteExportExcel(app))
		admin.POST("/calculator/export/pdf", handlers.HandleQuoteExportPDF(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
