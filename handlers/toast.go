package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

const flashCookieName = "flash_toast"

// SetToast sets the HX-Trigger response header to show a toast notification
// on the client via HTMX. An existing HX-Trigger JSON object is kept and the
// toast is merged into it. A short-lived flash cookie carries the same toast
// across regular (non-HTMX) redirects and downloads.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	payload := map[string]string{"message": message, "type": toastType}

	trigger := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &trigger); err != nil {
			log.Printf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
			trigger = map[string]any{}
		}
	}
	trigger["showToast"] = payload

	data, err := json.Marshal(trigger)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))

	cookieVal, err := json.Marshal(payload)
	if err != nil {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(string(cookieVal)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // read by the page script
		SameSite: http.SameSiteLaxMode,
	})
}

// ErrorToast sets an error toast and prevents HTMX from swapping the error text into the DOM.
// It sets HX-Reswap: none so the response body is ignored by HTMX, while the HX-Trigger
// header still fires the toast event.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}

func isHTMX(e *core.RequestEvent) bool {
	return e.Request.Header.Get("HX-Request") == "true"
}

// redirectTo sends HTMX requests an HX-Redirect and everything else a 302.
func redirectTo(e *core.RequestEvent, location string) error {
	if isHTMX(e) {
		e.Response.Header().Set("HX-Redirect", location)
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusFound, location)
}
