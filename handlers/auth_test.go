package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"consher/testhelpers"
)

func TestHandleLoginPage_RendersForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLoginPage(app)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `name="email"`, `name="password"`)
}

func TestHandleLoginPage_SignedInRedirects(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "admin@example.com")
	handler := HandleLoginPage(app)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: testhelpers.AuthToken(t, user)})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin" {
		t.Errorf("expected 302 to /admin, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestHandleLogin(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		htmx       bool
		wantStatus int
		wantCookie bool
		wantBody   string
	}{
		{"valid credentials", "admin@example.com", testhelpers.TestPassword, true, http.StatusOK, true, ""},
		{"valid credentials without htmx", "admin@example.com", testhelpers.TestPassword, false, http.StatusFound, true, ""},
		{"wrong password", "admin@example.com", "wrongpass99", true, http.StatusUnauthorized, false, invalidCredentials},
		{"unknown email", "nobody@example.com", testhelpers.TestPassword, true, http.StatusUnauthorized, false, invalidCredentials},
		{"invalid email", "not-an-email", testhelpers.TestPassword, true, http.StatusOK, false, "field-error"},
		{"short password", "admin@example.com", "abc", true, http.StatusOK, false, "field-error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			testhelpers.CreateTestUser(t, app, "admin@example.com")
			handler := HandleLogin(app)

			form := url.Values{}
			form.Set("email", tt.email)
			form.Set("password", tt.password)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, newFormRequest(http.MethodPost, "/login", form, tt.htmx), rec)

			if err := handler(e); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			cookie := findCookie(rec, AuthCookieName)
			if tt.wantCookie {
				if cookie == nil || cookie.Value == "" {
					t.Fatal("expected auth cookie to be set")
				}
				if !cookie.HttpOnly {
					t.Error("auth cookie must be HttpOnly")
				}
				if user, err := app.FindAuthRecordByToken(cookie.Value, core.TokenTypeAuth); err != nil || user.Email() != tt.email {
					t.Errorf("cookie does not hold a valid token for %s: %v", tt.email, err)
				}
				if tt.htmx {
					testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/admin")
				} else if rec.Header().Get("Location") != "/admin" {
					t.Errorf("expected Location /admin, got %q", rec.Header().Get("Location"))
				}
				return
			}

			if cookie != nil {
				t.Error("auth cookie set on failed login")
			}
			if rec.Header().Get("HX-Redirect") != "" {
				t.Error("expected no HX-Redirect on failed login")
			}
			testhelpers.AssertHTMLContains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandleLogout_ClearsCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleLogout(app)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	cookie := findCookie(rec, AuthCookieName)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Errorf("expected expired auth cookie, got %+v", cookie)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/login")
}
