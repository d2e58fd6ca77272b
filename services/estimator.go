// Package services holds the domain calculations (materials estimator, project
// expense totals, catalog helpers) and the Excel/PDF exporters.
package services

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// ReferenceArea is the building area (m²) the bill of quantities was
// calibrated against.
const ReferenceArea = 190.0

// ErrNoPricedMaterials is returned when a quote is requested but no material
// has a unit price yet.
var ErrNoPricedMaterials = errors.New("no priced materials to quote")

// MaterialSpec is one row of the bill of quantities.
type MaterialSpec struct {
	Name              string
	Unit              string
	ReferenceQuantity float64 // quantity per ReferenceArea
}

// MaterialEntry is a MaterialSpec paired with the unit price the user entered.
type MaterialEntry struct {
	MaterialSpec
	UnitPrice float64
}

var billOfQuantities = []MaterialSpec{
	{Name: "Bricks", Unit: "piece", ReferenceQuantity: 14500},
	{Name: "Blocks (poured)", Unit: "piece", ReferenceQuantity: 1200},
	{Name: "Cement (50 kg bag)", Unit: "bag", ReferenceQuantity: 200},
	{Name: `Rebar 3/4"`, Unit: "piece", ReferenceQuantity: 12},
	{Name: `Rebar 1/2"`, Unit: "piece", ReferenceQuantity: 10},
	{Name: `Rebar 3/8"`, Unit: "piece", ReferenceQuantity: 80},
	{Name: `Armex 3/8"`, Unit: "piece", ReferenceQuantity: 120},
	{Name: "Plaster (40 kg bag)", Unit: "bag", ReferenceQuantity: 263},
	{Name: "Concrete pour", Unit: "m³", ReferenceQuantity: 25},
	{Name: "Gravel", Unit: "m²", ReferenceQuantity: 12},
	{Name: "Sand", Unit: "m²", ReferenceQuantity: 54},
	{Name: "Interior paint", Unit: "bucket", ReferenceQuantity: 3},
	{Name: "Exterior paint", Unit: "bucket", ReferenceQuantity: 1.25},
}

// BillOfQuantities returns a copy of the reference table in display order.
func BillOfQuantities() []MaterialSpec {
	out := make([]MaterialSpec, len(billOfQuantities))
	copy(out, billOfQuantities)
	return out
}

func EstimatedQuantity(m MaterialSpec, buildingArea float64) float64 {
	if !isPositive(buildingArea) {
		return 0
	}
	return clampFinite((buildingArea / ReferenceArea) * m.ReferenceQuantity)
}

// SetUnitPrice returns a copy of entries with the price at index replaced.
// The input slice is left untouched. An out-of-range index yields an
// unchanged copy.
func SetUnitPrice(entries []MaterialEntry, index int, value float64) []MaterialEntry {
	out := make([]MaterialEntry, len(entries))
	copy(out, entries)
	if index < 0 || index >= len(out) {
		return out
	}
	out[index].UnitPrice = sanitizeAmount(value)
	return out
}

// MaterialSubtotal is quantity times unit price. An unpriced entry is 0
// whatever its quantity.
func MaterialSubtotal(e MaterialEntry, buildingArea float64) float64 {
	price := sanitizeAmount(e.UnitPrice)
	if price == 0 {
		return 0
	}
	return clampFinite(EstimatedQuantity(e.MaterialSpec, buildingArea) * price)
}

func GrandTotal(entries []MaterialEntry, buildingArea float64) float64 {
	var sum float64
	for _, e := range entries {
		sum = clampFinite(sum + MaterialSubtotal(e, buildingArea))
	}
	return sum
}

// QuoteLine is a priced material as it appears on an exported quote.
type QuoteLine struct {
	Name      string
	Unit      string
	Quantity  float64
	UnitPrice float64
	Subtotal  float64
}

// PricedLines filters entries down to the ones with a unit price and computes
// their quantities and subtotals. Unpriced materials are left out.
func PricedLines(entries []MaterialEntry, buildingArea float64) []QuoteLine {
	var lines []QuoteLine
	for _, e := range entries {
		if sanitizeAmount(e.UnitPrice) <= 0 {
			continue
		}
		lines = append(lines, QuoteLine{
			Name:      e.Name,
			Unit:      e.Unit,
			Quantity:  EstimatedQuantity(e.MaterialSpec, buildingArea),
			UnitPrice: e.UnitPrice,
			Subtotal:  MaterialSubtotal(e, buildingArea),
		})
	}
	return lines
}

// QuoteTotal sums the cent-rounded subtotals of the given lines, so the total
// always matches the subtotals printed above it.
func QuoteTotal(lines []QuoteLine) float64 {
	var sum float64
	for _, l := range lines {
		sum = clampFinite(sum + roundCents(l.Subtotal))
	}
	return roundCents(sum)
}

// BuildQuoteText renders the plain-text quote for download. It returns
// ErrNoPricedMaterials instead of an empty quote.
func BuildQuoteText(entries []MaterialEntry, buildingArea float64, timestamp time.Time) (string, error) {
	lines := PricedLines(entries, buildingArea)
	if len(lines) == 0 {
		return "", ErrNoPricedMaterials
	}

	var b strings.Builder
	b.WriteString("MATERIALS QUOTE\n")
	fmt.Fprintf(&b, "Date: %s\n", timestamp.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Building area: %.2f m²\n\n", sanitizeAmount(buildingArea))
	for _, l := range lines {
		fmt.Fprintf(&b, "%s: %.2f %s x $%.2f = $%.2f\n",
			l.Name, l.Quantity, l.Unit, l.UnitPrice, roundCents(l.Subtotal))
	}
	fmt.Fprintf(&b, "Total: $%.2f\n", QuoteTotal(lines))
	return b.String(), nil
}

// EstimationSession is the state of one estimator screen. Every change
// returns a new value.
type EstimationSession struct {
	BuildingArea float64
	Entries      []MaterialEntry
}

func NewEstimationSession() EstimationSession {
	specs := BillOfQuantities()
	entries := make([]MaterialEntry, len(specs))
	for i, s := range specs {
		entries[i] = MaterialEntry{MaterialSpec: s}
	}
	return EstimationSession{Entries: entries}
}

func (s EstimationSession) WithBuildingArea(area float64) EstimationSession {
	return EstimationSession{
		BuildingArea: sanitizeAmount(area),
		Entries:      slices.Clone(s.Entries),
	}
}

func (s EstimationSession) WithUnitPrice(index int, price float64) EstimationSession {
	return EstimationSession{
		BuildingArea: s.BuildingArea,
		Entries:      SetUnitPrice(s.Entries, index, price),
	}
}

func (s EstimationSession) Total() float64 {
	return GrandTotal(s.Entries, s.BuildingArea)
}

func (s EstimationSession) Quote(timestamp time.Time) (string, error) {
	return BuildQuoteText(s.Entries, s.BuildingArea, timestamp)
}

func (s EstimationSession) PricedLines() []QuoteLine {
	return PricedLines(s.Entries, s.BuildingArea)
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// sanitizeAmount maps negative, NaN and infinite values to 0.
func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// clampFinite is where estimator arithmetic stays finite: NaN becomes 0 and
// an overflow saturates at ±math.MaxFloat64. Prices have no upper bound, so
// huge areas and prices must still produce printable totals.
func clampFinite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

// roundCents rounds to 2 decimals. Values beyond 2^52 have no fractional
// part left and are returned as is, so v*100 cannot overflow.
func roundCents(v float64) float64 {
	v = clampFinite(v)
	if math.Abs(v) >= 1<<52 {
		return v
	}
	return math.Round(v*100) / 100
}
