package templates

import (
	"github.com/a-h/templ"
)

// HeaderData is shared by every page: branding, contact details and, for
// back-office pages, the signed-in user.
type HeaderData struct {
	AppName      string
	ContactEmail string
	ContactPhone string
	WhatsAppURL  string
	UserEmail    string
	ActiveNav    string
}

// SignedIn reports whether a back-office user is attached to the request.
func (h HeaderData) SignedIn() bool {
	return h.UserEmail != ""
}

const stylesheet = `
body{font-family:system-ui,sans-serif;margin:0;color:#1f2933;background:#f7f8fa}
a{color:#005187}
header.site{display:flex;justify-content:space-between;align-items:center;padding:12px 24px;background:#005187;color:#fff}
header.site a{color:#fff;text-decoration:none;margin-left:16px}
main{max-width:1100px;margin:0 auto;padding:24px}
footer{padding:24px;text-align:center;color:#6b7280;font-size:14px}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(240px,1fr));gap:16px}
.card{background:#fff;border-radius:8px;box-shadow:0 1px 3px rgba(0,0,0,.1);padding:16px}
.card img{width:100%;height:160px;object-fit:cover;border-radius:6px}
.badge{display:inline-block;padding:2px 8px;border-radius:9999px;font-size:12px;background:#e5e7eb}
.badge.sold,.badge.finished{background:#fee2e2;color:#991b1b}
.badge.presale,.badge.paused{background:#fef3c7;color:#92400e}
.badge.available,.badge.in_progress{background:#d1fae5;color:#065f46}
table{width:100%;border-collapse:collapse;background:#fff}
th,td{padding:8px;border-bottom:1px solid #e5e7eb;text-align:left}
td.num,th.num{text-align:right}
.field-error{color:#b91c1c;font-size:13px;margin:4px 0 0}
.muted{color:#6b7280}
.tabs a{margin-right:12px}
.tabs a.active{font-weight:bold}
.total{font-weight:bold}
.over-budget{color:#b91c1c}
#toast{position:fixed;right:16px;bottom:16px;padding:12px 16px;border-radius:6px;color:#fff;display:none}
#toast.success{background:#059669}#toast.error{background:#b91c1c}#toast.warning{background:#d97706}
`

const toastScript = `
function showToast(d){var t=document.getElementById('toast');if(!t||!d)return;t.textContent=d.message;t.className=d.type||'success';t.style.display='block';setTimeout(function(){t.style.display='none'},4000)}
document.body.addEventListener('showToast',function(e){showToast(e.detail)});
(function(){var m=document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);if(!m)return;document.cookie='flash_toast=; Max-Age=0; path=/';try{showToast(JSON.parse(decodeURIComponent(m[1].replace(/\+/g,' '))))}catch(e){}})();
`

// Layout wraps body in the page chrome.
func Layout(title string, header HeaderData, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		appName := header.AppName
		if appName == "" {
			appName = "ConsHer"
		}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.rawf(`<title>%s | %s</title>`, esc(title), esc(appName))
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		h.raw(`<style>` + stylesheet + `</style></head><body>`)

		h.raw(`<header class="site">`)
		h.rawf(`<a href="/"><strong>%s</strong></a><nav>`, esc(appName))
		if header.SignedIn() {
			navLink(h, header, "houses", "/admin", "Houses")
			navLink(h, header, "projects", "/admin/projects", "Projects")
			navLink(h, header, "calculator", "/admin/calculator", "Calculator")
			h.rawf(`<span class="muted" style="margin-left:16px">%s</span>`, esc(header.UserEmail))
			h.raw(`<form method="post" action="/logout" style="display:inline"><button type="submit">Sign out</button></form>`)
		} else {
			navLink(h, header, "catalog", "/", "Houses")
			navLink(h, header, "login", "/login", "Sign in")
		}
		h.raw(`</nav></header>`)

		h.raw(`<main>`)
		h.component(body)
		h.raw(`</main>`)

		h.raw(`<footer>`)
		h.text(appName)
		if header.ContactEmail != "" {
			h.rawf(` · <a href="mailto:%s">%s</a>`, esc(header.ContactEmail), esc(header.ContactEmail))
		}
		if header.ContactPhone != "" {
			h.rawf(` · %s`, esc(header.ContactPhone))
		}
		h.raw(`</footer>`)

		h.raw(`<div id="toast"></div><script>` + toastScript + `</script></body></html>`)
	})
}

func navLink(h *htmlWriter, header HeaderData, key, href, label string) {
	class := ""
	if header.ActiveNav == key {
		class = ` class="active"`
	}
	h.rawf(`<a href="%s"%s>%s</a>`, esc(href), class, esc(label))
}
