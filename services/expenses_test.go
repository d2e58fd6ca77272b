package services

import "testing"

func TestCalcProjectTotals(t *testing.T) {
	expenses := []Expense{{Amount: 1000}, {Amount: 500}}
	payroll := []PayrollEntry{{Salary: 2500, Payment: 2000}}
	materials := []MaterialPurchase{{Quantity: 10, Price: 300}}

	tests := []struct {
		name           string
		budget         float64
		wantRemaining  float64
		wantOverBudget bool
	}{
		{"within budget", 5000, 1200, false},
		{"over budget", 3000, -800, true},
		{"exactly on budget", 3800, 0, false},
		{"no budget entered", 0, -3800, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcProjectTotals(expenses, payroll, materials, tt.budget)
			if got.Expenses != 1500 || got.Payroll != 2000 || got.Materials != 300 {
				t.Errorf("category totals = %v/%v/%v", got.Expenses, got.Payroll, got.Materials)
			}
			if got.Spent != 3800 {
				t.Errorf("Spent = %v, want 3800", got.Spent)
			}
			if got.Remaining != tt.wantRemaining {
				t.Errorf("Remaining = %v, want %v", got.Remaining, tt.wantRemaining)
			}
			if got.OverBudget != tt.wantOverBudget {
				t.Errorf("OverBudget = %v, want %v", got.OverBudget, tt.wantOverBudget)
			}
		})
	}
}

func TestCalcProjectTotals_IgnoresInvalidAmounts(t *testing.T) {
	got := CalcProjectTotals(
		[]Expense{{Amount: -100}, {Amount: 50}},
		[]PayrollEntry{{Payment: -1}},
		nil,
		-10,
	)
	if got.Spent != 50 || got.Budget != 0 {
		t.Errorf("Spent = %v, Budget = %v", got.Spent, got.Budget)
	}
}

func TestProjectStatusLabel(t *testing.T) {
	if ProjectStatusLabel(ProjectStatusInProgress) != "In progress" {
		t.Errorf("label = %q", ProjectStatusLabel(ProjectStatusInProgress))
	}
	if ProjectStatusLabel("other") != "other" {
		t.Error("unknown status should be shown as is")
	}
}
