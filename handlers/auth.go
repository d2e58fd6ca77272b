package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"consher/services"
	"consher/templates"
)

// AuthCookieName holds the PocketBase auth token of the signed-in user.
const AuthCookieName = "pb_auth"

const invalidCredentials = "Incorrect email or password"

func userFromCookie(app *pocketbase.PocketBase, r *http.Request) *core.Record {
	cookie, err := r.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	user, err := app.FindAuthRecordByToken(cookie.Value, core.TokenTypeAuth)
	if err != nil {
		return nil
	}
	return user
}

func setAuthCookie(e *core.RequestEvent, token string, maxAge int) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   e.Request.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func HandleLoginPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if GetCurrentUser(e.Request) != nil || userFromCookie(app, e.Request) != nil {
			return e.Redirect(http.StatusFound, "/admin")
		}
		component := templates.LoginPage(templates.LoginData{}, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleLogin(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		input := services.LoginInput{
			Email:    strings.TrimSpace(e.Request.FormValue("email")),
			Password: e.Request.FormValue("password"),
		}

		render := func(status int, data templates.LoginData) error {
			data.Email = input.Email
			e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
			e.Response.WriteHeader(status)
			return templates.LoginPage(data, GetHeaderData(e.Request)).Render(e.Request.Context(), e.Response)
		}

		if errs := services.Validate(input); errs != nil {
			SetToast(e, "warning", "Please fix the errors below")
			return render(http.StatusOK, templates.LoginData{Errors: errs})
		}

		user, err := app.FindAuthRecordByEmail("users", input.Email)
		if err != nil || !user.ValidatePassword(input.Password) {
			return render(http.StatusUnauthorized, templates.LoginData{Error: invalidCredentials})
		}

		token, err := user.NewAuthToken()
		if err != nil {
			log.Printf("auth: could not issue token for %s: %v", user.Id, err)
			return render(http.StatusInternalServerError, templates.LoginData{Error: "Something went wrong. Please try again."})
		}

		setAuthCookie(e, token, int(user.Collection().AuthToken.Duration))
		SetToast(e, "success", "Welcome back")
		return redirectTo(e, "/admin")
	}
}

func HandleLogout(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		setAuthCookie(e, "", -1)
		return redirectTo(e, "/login")
	}
}
