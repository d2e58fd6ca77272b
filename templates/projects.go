package templates

import (
	"github.com/a-h/templ"

	"consher/services"
)

// ProjectCard is one project on the projects list.
type ProjectCard struct {
	ID        string
	Name      string
	Address   string
	Status    string
	StartDate string
	Budget    float64
	Spent     float64
}

// ProjectFormData is the new project form.
type ProjectFormData struct {
	Name            string
	Address         string
	StartDate       string
	EstimatedBudget string
	ExpectedProfit  string
	Errors          map[string]string
}

type ProjectListData struct {
	Projects []ProjectCard
	Form     ProjectFormData
}

// Project detail tabs.
const (
	TabExpenses  = "expenses"
	TabPayroll   = "payroll"
	TabMaterials = "materials"
)

var projectTabs = [][2]string{
	{TabExpenses, "General expenses"},
	{TabPayroll, "Payroll"},
	{TabMaterials, "Materials"},
}

// EntryFormData holds the values and errors of a rejected add-entry form.
type EntryFormData struct {
	Values map[string]string
	Errors map[string]string
}

func (f EntryFormData) value(name string) string {
	return f.Values[name]
}

type ProjectDetailData struct {
	ID             string
	Name           string
	Address        string
	Status         string
	StartDate      string
	ExpectedProfit float64
	Tab            string
	Expenses       []services.Expense
	Payroll        []services.PayrollEntry
	Materials      []services.MaterialPurchase
	Totals         services.ProjectTotals
	Form           EntryFormData
}

func ProjectListPage(data ProjectListData, header HeaderData) templ.Component {
	header.ActiveNav = "projects"
	return Layout("Projects", header, component(func(h *htmlWriter) {
		h.raw(`<h1>Projects</h1>`)
		if len(data.Projects) == 0 {
			h.raw(`<p class="muted">No projects yet. Create the first one below.</p>`)
		} else {
			h.raw(`<div class="grid">`)
			for _, p := range data.Projects {
				h.rawf(`<a class="card" href="/admin/projects/%s">`, esc(p.ID))
				h.rawf(`<h3>%s</h3>`, esc(p.Name))
				statusBadge(h, p.Status, services.ProjectStatusLabel(p.Status))
				if p.Address != "" {
					h.rawf(`<p class="muted">%s</p>`, esc(p.Address))
				}
				if p.StartDate != "" {
					h.rawf(`<p>Started %s</p>`, esc(p.StartDate))
				}
				h.rawf(`<p>Spent %s of %s</p>`, esc(services.FormatMoney(p.Spent)), esc(services.FormatMoney(p.Budget)))
				h.raw(`</a>`)
			}
			h.raw(`</div>`)
		}

		f := data.Form
		h.raw(`<h2>New project</h2><form class="card" method="post" action="/admin/projects">`)
		textInput(h, "Name", "name", f.Name, f.Errors)
		textInput(h, "Address", "address", f.Address, f.Errors)
		h.rawf(`<label>Start date<br><input type="date" name="start_date" value="%s"></label>`, esc(f.StartDate))
		fieldError(h, f.Errors, "start_date")
		h.raw(`<br>`)
		textInput(h, "Estimated budget", "estimated_budget", f.EstimatedBudget, f.Errors)
		textInput(h, "Expected profit", "expected_profit", f.ExpectedProfit, f.Errors)
		h.raw(`<button type="submit">Create project</button></form>`)
	}))
}

func ProjectDetailPage(data ProjectDetailData, header HeaderData) templ.Component {
	header.ActiveNav = "projects"
	return Layout(data.Name, header, component(func(h *htmlWriter) {
		h.raw(`<p><a href="/admin/projects">&larr; Projects</a></p>`)
		h.rawf(`<h1>%s</h1>`, esc(data.Name))
		statusBadge(h, data.Status, services.ProjectStatusLabel(data.Status))
		h.rawf(`<form method="post" action="/admin/projects/%s/status" style="display:inline"> <select name="status">`, esc(data.ID))
		for _, s := range services.ProjectStatusOptions {
			h.rawf(`<option value="%s"%s>%s</option>`, esc(s), selected(s == data.Status), esc(services.ProjectStatusLabel(s)))
		}
		h.raw(`</select> <button type="submit">Change status</button></form>`)
		if data.Address != "" {
			h.rawf(`<p class="muted">%s</p>`, esc(data.Address))
		}
		if data.StartDate != "" {
			h.rawf(`<p>Start date: %s</p>`, esc(data.StartDate))
		}

		summary(h, data)

		h.rawf(`<p><a href="/admin/projects/%s/export/excel">Export to Excel</a> `, esc(data.ID))
		h.rawf(`<button hx-delete="/admin/projects/%s" hx-confirm="Delete %s and all of its entries?">Delete project</button></p>`,
			esc(data.ID), esc(data.Name))

		h.raw(`<nav class="tabs">`)
		for _, tab := range projectTabs {
			class := ""
			if tab[0] == data.Tab {
				class = ` class="active"`
			}
			h.rawf(`<a href="/admin/projects/%s?tab=%s"%s>%s</a>`, esc(data.ID), tab[0], class, esc(tab[1]))
		}
		h.raw(`</nav>`)

		switch data.Tab {
		case TabPayroll:
			payrollTab(h, data)
		case TabMaterials:
			materialsTab(h, data)
		default:
			expensesTab(h, data)
		}
	}))
}

func summary(h *htmlWriter, data ProjectDetailData) {
	t := data.Totals
	h.raw(`<table class="card"><tbody>`)
	rows := [][2]string{
		{"General expenses", services.FormatMoney(t.Expenses)},
		{"Payroll", services.FormatMoney(t.Payroll)},
		{"Materials", services.FormatMoney(t.Materials)},
		{"Total spent", services.FormatMoney(t.Spent)},
		{"Estimated budget", services.FormatMoney(t.Budget)},
		{"Expected profit", services.FormatMoney(data.ExpectedProfit)},
	}
	for _, r := range rows {
		h.rawf(`<tr><th>%s</th><td class="num">%s</td></tr>`, esc(r[0]), esc(r[1]))
	}
	class := ""
	if t.OverBudget {
		class = ` class="over-budget"`
	}
	h.rawf(`<tr%s><th>Remaining budget</th><td class="num">%s</td></tr>`, class, esc(services.FormatMoney(t.Remaining)))
	h.raw(`</tbody></table>`)
}

func entryFormOpen(h *htmlWriter, projectID, kind string) {
	h.rawf(`<form class="card" method="post" action="/admin/projects/%s/%s">`, esc(projectID), kind)
}

func expensesTab(h *htmlWriter, data ProjectDetailData) {
	h.raw(`<table><thead><tr><th>Description</th><th>Date</th><th class="num">Amount</th></tr></thead><tbody>`)
	if len(data.Expenses) == 0 {
		h.raw(`<tr><td colspan="3" class="muted">No expenses yet.</td></tr>`)
	}
	for _, e := range data.Expenses {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.Format("2006-01-02")
		}
		h.rawf(`<tr><td>%s</td><td>%s</td><td class="num">%s</td></tr>`,
			esc(e.Description), esc(date), esc(services.FormatMoney(e.Amount)))
	}
	h.rawf(`</tbody><tfoot><tr class="total"><td colspan="2">Total</td><td class="num">%s</td></tr></tfoot></table>`,
		esc(services.FormatMoney(data.Totals.Expenses)))

	f := data.Form
	entryFormOpen(h, data.ID, TabExpenses)
	textInput(h, "Description", "description", f.value("description"), f.Errors)
	textInput(h, "Amount", "amount", f.value("amount"), f.Errors)
	h.rawf(`<label>Date<br><input type="date" name="date" value="%s"></label>`, esc(f.value("date")))
	fieldError(h, f.Errors, "date")
	h.raw(`<br><button type="submit">Add expense</button></form>`)
}

func payrollTab(h *htmlWriter, data ProjectDetailData) {
	h.raw(`<table><thead><tr><th>Week</th><th>Worker</th><th class="num">Salary</th><th class="num">Payment</th><th>Notes</th></tr></thead><tbody>`)
	if len(data.Payroll) == 0 {
		h.raw(`<tr><td colspan="5" class="muted">No payroll entries yet.</td></tr>`)
	}
	for _, p := range data.Payroll {
		h.rawf(`<tr><td>%s</td><td>%s</td><td class="num">%s</td><td class="num">%s</td><td>%s</td></tr>`,
			esc(p.Week), esc(p.Worker), esc(services.FormatMoney(p.Salary)), esc(services.FormatMoney(p.Payment)), esc(p.Notes))
	}
	h.rawf(`</tbody><tfoot><tr class="total"><td colspan="3">Total paid</td><td class="num">%s</td><td></td></tr></tfoot></table>`,
		esc(services.FormatMoney(data.Totals.Payroll)))

	f := data.Form
	entryFormOpen(h, data.ID, TabPayroll)
	textInput(h, "Week", "week", f.value("week"), f.Errors)
	textInput(h, "Worker", "worker", f.value("worker"), f.Errors)
	textInput(h, "Salary", "salary", f.value("salary"), f.Errors)
	textInput(h, "Payment", "payment", f.value("payment"), f.Errors)
	textInput(h, "Notes", "notes", f.value("notes"), f.Errors)
	h.raw(`<button type="submit">Add payroll entry</button></form>`)
}

func materialsTab(h *htmlWriter, data ProjectDetailData) {
	h.raw(`<table><thead><tr><th>Material</th><th class="num">Quantity</th><th>Unit</th><th class="num">Price</th><th>Details</th></tr></thead><tbody>`)
	if len(data.Materials) == 0 {
		h.raw(`<tr><td colspan="5" class="muted">No materials yet.</td></tr>`)
	}
	for _, m := range data.Materials {
		h.rawf(`<tr><td>%s</td><td class="num">%s</td><td>%s</td><td class="num">%s</td><td>%s</td></tr>`,
			esc(m.Material), esc(services.FormatQuantity(m.Quantity)), esc(m.Unit), esc(services.FormatMoney(m.Price)), esc(m.Details))
	}
	h.rawf(`</tbody><tfoot><tr class="total"><td colspan="3">Total</td><td class="num">%s</td><td></td></tr></tfoot></table>`,
		esc(services.FormatMoney(data.Totals.Materials)))

	f := data.Form
	entryFormOpen(h, data.ID, TabMaterials)
	textInput(h, "Material", "material", f.value("material"), f.Errors)
	textInput(h, "Quantity", "quantity", f.value("quantity"), f.Errors)
	textInput(h, "Unit", "unit", f.value("unit"), f.Errors)
	textInput(h, "Price", "price", f.value("price"), f.Errors)
	textInput(h, "Details", "details", f.value("details"), f.Errors)
	h.raw(`<button type="submit">Add material</button></form>`)
}
