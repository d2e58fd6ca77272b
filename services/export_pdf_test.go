package services

import (
	"errors"
	"testing"
)

func TestGenerateQuotePDF(t *testing.T) {
	result, err := GenerateQuotePDF(testQuote(t))
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateQuotePDF_ManyLines(t *testing.T) {
	s := NewEstimationSession().WithBuildingArea(250)
	for i := range s.Entries {
		s = s.WithUnitPrice(i, float64(i+1)*10)
	}
	q := testQuote(t)
	q.Lines = s.PricedLines()
	q.Total = QuoteTotal(q.Lines)

	result, err := GenerateQuotePDF(q)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header")
	}
}

func TestGenerateQuotePDF_NoLines(t *testing.T) {
	_, err := GenerateQuotePDF(QuoteExport{})
	if !errors.Is(err, ErrNoPricedMaterials) {
		t.Errorf("expected ErrNoPricedMaterials, got %v", err)
	}
}
