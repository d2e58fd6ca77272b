package services

import "time"

// Project status values stored in the projects collection.
const (
	ProjectStatusInProgress = "in_progress"
	ProjectStatusFinished   = "finished"
	ProjectStatusPaused     = "paused"
)

var ProjectStatusOptions = []string{ProjectStatusInProgress, ProjectStatusFinished, ProjectStatusPaused}

var projectStatusLabels = map[string]string{
	ProjectStatusInProgress: "In progress",
	ProjectStatusFinished:   "Finished",
	ProjectStatusPaused:     "Paused",
}

func ProjectStatusLabel(status string) string {
	if label, ok := projectStatusLabels[status]; ok {
		return label
	}
	return status
}

// Expense is a general project expense.
type Expense struct {
	ID          string
	Description string
	Amount      float64
	Date        time.Time
}

// PayrollEntry is one weekly payment to a worker.
type PayrollEntry struct {
	ID      string
	Week    string
	Worker  string
	Salary  float64
	Payment float64
	Notes   string
}

// MaterialPurchase is a material bought for a project. Price is the amount
// paid for the whole line.
type MaterialPurchase struct {
	ID       string
	Material string
	Quantity float64
	Price    float64
	Unit     string
	Details  string
}

// ProjectTotals aggregates the three expense categories of a project.
type ProjectTotals struct {
	Expenses  float64
	Payroll   float64
	Materials float64
	Spent     float64
	Budget    float64
	Remaining float64
	// OverBudget is only set when a budget was entered.
	OverBudget bool
}

func SumExpenses(items []Expense) float64 {
	var sum float64
	for _, e := range items {
		sum += sanitizeAmount(e.Amount)
	}
	return sum
}

// SumPayroll adds up what was actually paid, not the agreed salary.
func SumPayroll(items []PayrollEntry) float64 {
	var sum float64
	for _, p := range items {
		sum += sanitizeAmount(p.Payment)
	}
	return sum
}

func SumMaterials(items []MaterialPurchase) float64 {
	var sum float64
	for _, m := range items {
		sum += sanitizeAmount(m.Price)
	}
	return sum
}

func CalcProjectTotals(expenses []Expense, payroll []PayrollEntry, materials []MaterialPurchase, budget float64) ProjectTotals {
	t := ProjectTotals{
		Expenses:  SumExpenses(expenses),
		Payroll:   SumPayroll(payroll),
		Materials: SumMaterials(materials),
		Budget:    sanitizeAmount(budget),
	}
	t.Spent = t.Expenses + t.Payroll + t.Materials
	t.Remaining = t.Budget - t.Spent
	t.OverBudget = t.Budget > 0 && t.Spent > t.Budget
	return t
}
