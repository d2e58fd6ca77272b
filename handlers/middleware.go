package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/config"
	"consher/templates"
)

type contextKey string

const CurrentUserKey contextKey = "currentUser"
const HeaderDataKey contextKey = "headerData"

// GetCurrentUser returns the signed-in back-office user, or nil.
func GetCurrentUser(r *http.Request) *core.Record {
	if val, ok := r.Context().Value(CurrentUserKey).(*core.Record); ok {
		return val
	}
	return nil
}

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// SiteMiddleware resolves the auth cookie (if any) and stores the current
// user plus the HeaderData built from cfg in the request context. It never
// rejects a request; RequireAdmin does that for the back office.
func SiteMiddleware(app *pocketbase.PocketBase, cfg config.Config) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		user := userFromCookie(app, e.Request)

		header := templates.HeaderData{
			AppName:      cfg.App.Name,
			ContactEmail: cfg.Contact.Email,
			ContactPhone: cfg.Contact.Phone,
			WhatsAppURL:  cfg.WhatsAppURL(),
		}
		if user != nil {
			header.UserEmail = user.Email()
		}

		ctx := context.WithValue(e.Request.Context(), HeaderDataKey, header)
		if user != nil {
			ctx = context.WithValue(ctx, CurrentUserKey, user)
		}
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// RequireAdmin lets the request through only when a user is signed in.
// Anonymous visitors are sent to the login page.
func RequireAdmin(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		user := GetCurrentUser(e.Request)
		if user == nil {
			// Without SiteMiddleware in front, resolve the cookie here.
			user = userFromCookie(app, e.Request)
			if user != nil {
				ctx := context.WithValue(e.Request.Context(), CurrentUserKey, user)
				e.Request = e.Request.WithContext(ctx)
			}
		}
		if user == nil {
			return redirectTo(e, "/login")
		}
		return e.Next()
	}
}
