package services

import (
	"net/url"
	"strings"
)

// House status values stored in the houses collection.
const (
	HouseStatusPresale   = "presale"
	HouseStatusAvailable = "available"
	HouseStatusSold      = "sold"
)

// HouseStatusOptions lists the statuses in catalog order.
var HouseStatusOptions = []string{HouseStatusPresale, HouseStatusAvailable, HouseStatusSold}

var houseStatusLabels = map[string]string{
	HouseStatusPresale:   "Presale",
	HouseStatusAvailable: "Available",
	HouseStatusSold:      "Sold",
}

func IsValidHouseStatus(status string) bool {
	_, ok := houseStatusLabels[status]
	return ok
}

func HouseStatusLabel(status string) string {
	if label, ok := houseStatusLabels[status]; ok {
		return label
	}
	return status
}

// House is the catalog view of a houses record.
type House struct {
	ID          string
	Title       string
	Description string
	Address     string
	Price       float64
	Status      string
	Bedrooms    int
	Bathrooms   int
	Area        float64
	LandSize    float64
	Images      []string
	Lat         float64
	Lng         float64
	HasLocation bool
}

// CoverImage returns the first image URL, or "" when the house has none.
func (h House) CoverImage() string {
	if len(h.Images) == 0 {
		return ""
	}
	return h.Images[0]
}

// PriceLabel shows SOLD instead of a price once a house is sold.
func PriceLabel(h House) string {
	if h.Status == HouseStatusSold {
		return "SOLD"
	}
	return FormatMXN(h.Price)
}

// CatalogSection is one status group on the public home page.
type CatalogSection struct {
	Status    string
	Title     string
	EmptyText string
	Houses    []House
}

var catalogSectionTexts = map[string][2]string{
	HouseStatusPresale:   {"Houses in presale", "No presale houses right now."},
	HouseStatusAvailable: {"Available houses", "No houses available right now."},
	HouseStatusSold:      {"Sold houses", "No houses have been sold yet."},
}

// GroupByStatus splits houses into the presale, available and sold sections,
// keeping the input order inside each section. Houses with an unknown status
// are not listed.
func GroupByStatus(houses []House) []CatalogSection {
	sections := make([]CatalogSection, len(HouseStatusOptions))
	index := make(map[string]int, len(HouseStatusOptions))
	for i, status := range HouseStatusOptions {
		texts := catalogSectionTexts[status]
		sections[i] = CatalogSection{Status: status, Title: texts[0], EmptyText: texts[1]}
		index[status] = i
	}
	for _, h := range houses {
		if !IsValidHouseStatus(h.Status) {
			continue
		}
		i := index[h.Status]
		sections[i].Houses = append(sections[i].Houses, h)
	}
	return sections
}

// ParseImageURLs reads the admin image field: one URL per line or separated
// by commas. Blank entries, duplicates and anything that is not an absolute
// http(s) URL are dropped.
func ParseImageURLs(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
	seen := make(map[string]bool, len(fields))
	var out []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || seen[f] {
			continue
		}
		u, err := url.Parse(f)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// MoveImage returns a copy of images with the image at from moved to index
// to. Out-of-range positions return an unchanged copy.
func MoveImage(images []string, from, to int) []string {
	out := make([]string, len(images))
	copy(out, images)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]string{moved}, out[to:]...)...)
	return out
}

// RemoveImage returns a copy of images without the image at index.
func RemoveImage(images []string, index int) []string {
	out := make([]string, 0, len(images))
	for i, img := range images {
		if i != index {
			out = append(out, img)
		}
	}
	return out
}
