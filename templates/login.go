package templates

import "github.com/a-h/templ"

// LoginData drives the sign-in page.
type LoginData struct {
	Email  string
	Error  string
	Errors map[string]string
}

func LoginPage(data LoginData, header HeaderData) templ.Component {
	header.ActiveNav = "login"
	return Layout("Sign in", header, component(func(h *htmlWriter) {
		h.raw(`<div class="card" style="max-width:420px;margin:40px auto">`)
		h.raw(`<h1>Sign in</h1>`)
		if data.Error != "" {
			h.rawf(`<p class="field-error" role="alert">%s</p>`, esc(data.Error))
		}
		h.raw(`<form method="post" action="/login">`)
		h.rawf(`<label>Email<br><input type="email" name="email" value="%s" required autofocus></label>`, esc(data.Email))
		fieldError(h, data.Errors, "email")
		h.raw(`<br><label>Password<br><input type="password" name="password" required minlength="8"></label>`)
		fieldError(h, data.Errors, "password")
		h.raw(`<br><button type="submit">Sign in</button></form></div>`)
	}))
}
