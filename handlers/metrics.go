package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/metrics"
)

// HandleMetrics serves the Prometheus registry to signed-in users. Scrapers
// get a 401 instead of the login redirect.
func HandleMetrics(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	serve := metrics.Handler()
	return func(e *core.RequestEvent) error {
		if GetCurrentUser(e.Request) == nil && userFromCookie(app, e.Request) == nil {
			return e.String(http.StatusUnauthorized, "Sign in to read metrics")
		}
		serve.ServeHTTP(e.Response, e.Request)
		return nil
	}
}
