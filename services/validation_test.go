package services

import "testing"

func validHouse() HouseInput {
	return HouseInput{
		Title:    "Casa Encinos",
		Address:  "Av. Encinos 12",
		Price:    1500000,
		Status:   HouseStatusAvailable,
		Bedrooms: 3,
		Images:   []string{"https://img.example.com/1.jpg"},
	}
}

func TestValidate_House(t *testing.T) {
	badLat := 91.0
	tests := []struct {
		name      string
		mutate    func(*HouseInput)
		wantField string
	}{
		{"valid", func(*HouseInput) {}, ""},
		{"missing title", func(h *HouseInput) { h.Title = "" }, "title"},
		{"missing address", func(h *HouseInput) { h.Address = "" }, "address"},
		{"zero price", func(h *HouseInput) { h.Price = 0 }, "price"},
		{"unknown status", func(h *HouseInput) { h.Status = "rented" }, "status"},
		{"bad image url", func(h *HouseInput) { h.Images = append(h.Images, "not a url") }, "images"},
		{"latitude out of range", func(h *HouseInput) { h.Lat = &badLat }, "lat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validHouse()
			tt.mutate(&in)
			errs := Validate(in)
			if tt.wantField == "" {
				if errs != nil {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if errs[tt.wantField] == "" {
				t.Errorf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidate_Login(t *testing.T) {
	if errs := Validate(LoginInput{Email: "admin@example.com", Password: "secret1234"}); errs != nil {
		t.Errorf("expected valid login, got %v", errs)
	}
	errs := Validate(LoginInput{Email: "nope", Password: "short"})
	if errs["email"] == "" || errs["password"] == "" {
		t.Errorf("expected email and password errors, got %v", errs)
	}
}

func TestValidate_LedgerEntries(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantField string
	}{
		{"valid expense", ExpenseInput{Description: "Permits", Amount: 100, Date: "2026-03-01"}, ""},
		{"expense without amount", ExpenseInput{Description: "Permits"}, "amount"},
		{"expense with bad date", ExpenseInput{Description: "Permits", Amount: 1, Date: "2026-13-01"}, "date"},
		{"payroll without worker", PayrollInput{Payment: 100}, "worker"},
		{"material without name", MaterialPurchaseInput{Quantity: 1}, "material"},
		{"project without name", ProjectInput{}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.input)
			if tt.wantField == "" {
				if errs != nil {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if errs[tt.wantField] == "" {
				t.Errorf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}
