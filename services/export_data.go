package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuoteExport holds everything the Excel and PDF quote exporters need.
type QuoteExport struct {
	Reference    string
	CompanyName  string
	GeneratedAt  time.Time
	BuildingArea float64
	Lines        []QuoteLine
	Total        float64
}

// NewQuoteExport builds the export data for a session. It fails with
// ErrNoPricedMaterials when nothing has been priced.
func NewQuoteExport(s EstimationSession, companyName string, at time.Time) (QuoteExport, error) {
	lines := s.PricedLines()
	if len(lines) == 0 {
		return QuoteExport{}, ErrNoPricedMaterials
	}
	return QuoteExport{
		Reference:    NewQuoteReference(at),
		CompanyName:  companyName,
		GeneratedAt:  at,
		BuildingArea: s.BuildingArea,
		Lines:        lines,
		Total:        QuoteTotal(lines),
	}, nil
}

// NewQuoteReference returns a reference like Q-20261019-1a2b3c4d.
func NewQuoteReference(at time.Time) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "Q-" + at.Format("20060102") + "-" + id[:8]
}

// ProjectExport holds a project and its three expense lists.
type ProjectExport struct {
	Name      string
	Address   string
	Status    string
	StartDate string
	Expenses  []Expense
	Payroll   []PayrollEntry
	Materials []MaterialPurchase
	Totals    ProjectTotals
}
