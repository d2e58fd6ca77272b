// Package templates holds the HTML screens of the site and the back office.
// Every screen is a templ.Component so handlers render them the same way
// whether the request is a full page load or an HTMX partial.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first write error so component
// bodies can be written straight through without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes s HTML-escaped.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// rawf formats into the output. Callers escape user data with esc first.
func (h *htmlWriter) rawf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// component wraps a body writer into a templ.Component.
func component(body func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		body(h)
		return h.err
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// safeURL drops javascript: and other unsafe schemes before escaping.
func safeURL(s string) string {
	return templ.EscapeString(string(templ.URL(s)))
}

// fieldError writes the inline validation message for a form field.
func fieldError(h *htmlWriter, errors map[string]string, field string) {
	if msg, ok := errors[field]; ok && msg != "" {
		h.rawf(`<p class="field-error">%s</p>`, esc(msg))
	}
}

func selected(ok bool) string {
	if ok {
		return " selected"
	}
	return ""
}
