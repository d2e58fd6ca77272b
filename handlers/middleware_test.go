package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"consher/config"
	"consher/templates"
	"consher/testhelpers"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.App.Name = "ConsHer"
	cfg.Contact.Email = "contacto@example.com"
	cfg.Contact.WhatsApp = "+52 55 1234 5678"
	return cfg
}

func TestGetHeaderData_FromContext(t *testing.T) {
	expected := templates.HeaderData{AppName: "ConsHer", UserEmail: "a@b.com"}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), HeaderDataKey, expected)
	req = req.WithContext(ctx)

	got := GetHeaderData(req)
	if got != expected {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}

func TestGetHeaderData_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetHeaderData(req); got.SignedIn() {
		t.Error("expected anonymous header data")
	}
}

func TestGetCurrentUser_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if GetCurrentUser(req) != nil {
		t.Error("expected nil user")
	}
}

func TestSiteMiddleware_Anonymous(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	mw := SiteMiddleware(app, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := mw(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	header := GetHeaderData(e.Request)
	if header.AppName != "ConsHer" || header.ContactEmail != "contacto@example.com" {
		t.Errorf("unexpected header data: %+v", header)
	}
	if header.WhatsAppURL != "https://wa.me/525512345678" {
		t.Errorf("WhatsAppURL = %q", header.WhatsAppURL)
	}
	if header.SignedIn() || GetCurrentUser(e.Request) != nil {
		t.Error("expected no signed-in user")
	}
}

func TestSiteMiddleware_ValidCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "admin@example.com")
	mw := SiteMiddleware(app, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: testhelpers.AuthToken(t, user)})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := mw(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	got := GetCurrentUser(e.Request)
	if got == nil || got.Id != user.Id {
		t.Fatalf("expected user %s in context, got %v", user.Id, got)
	}
	if GetHeaderData(e.Request).UserEmail != "admin@example.com" {
		t.Errorf("UserEmail = %q", GetHeaderData(e.Request).UserEmail)
	}
}

func TestSiteMiddleware_InvalidCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	mw := SiteMiddleware(app, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := mw(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if GetCurrentUser(e.Request) != nil {
		t.Error("expected invalid token to be ignored")
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		signedIn bool
		htmx     bool
	}{
		{"anonymous page load", false, false},
		{"anonymous htmx request", false, true},
		{"signed in", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			mw := RequireAdmin(app)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.htmx {
				req.Header.Set("HX-Request", "true")
			}
			if tt.signedIn {
				user := testhelpers.CreateTestUser(t, app, "admin@example.com")
				req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: testhelpers.AuthToken(t, user)})
			}
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := mw(e); err != nil {
				t.Fatalf("middleware returned error: %v", err)
			}

			switch {
			case tt.signedIn:
				if GetCurrentUser(e.Request) == nil {
					t.Error("expected user in context")
				}
				if rec.Header().Get("Location") != "" || rec.Header().Get("HX-Redirect") != "" {
					t.Error("signed-in request was redirected")
				}
			case tt.htmx:
				testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/login")
			default:
				if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
					t.Errorf("expected 302 to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
				}
			}
		})
	}
}
