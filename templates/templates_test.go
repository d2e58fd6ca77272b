package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"consher/services"
)

func renderString(t *testing.T, body func(*bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := body(&buf); err != nil {
		t.Fatalf("render error: %v", err)
	}
	return buf.String()
}

func TestLayout_EscapesUserText(t *testing.T) {
	header := HeaderData{AppName: "ConsHer", UserEmail: `<b>x</b>@consher.mx`}
	html := renderString(t, func(b *bytes.Buffer) error {
		return LoginPage(LoginData{Email: `"><script>`}, header).Render(context.Background(), b)
	})

	if strings.Contains(html, `"><script>`) {
		t.Errorf("login email was not escaped: %s", html)
	}
	if !strings.Contains(html, "&lt;b&gt;x&lt;/b&gt;@consher.mx") {
		t.Errorf("user email was not escaped in header")
	}
	if !strings.Contains(html, "Sign in | ConsHer") {
		t.Errorf("missing page title")
	}
}

func TestLayout_NavDependsOnSignIn(t *testing.T) {
	tests := []struct {
		name    string
		header  HeaderData
		want    string
		notWant string
	}{
		{"public", HeaderData{}, `href="/login"`, `href="/admin/calculator"`},
		{"signed in", HeaderData{UserEmail: "admin@consher.mx"}, `href="/admin/calculator"`, `href="/login"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderString(t, func(b *bytes.Buffer) error {
				return HomePage(HomeData{}, tt.header).Render(context.Background(), b)
			})
			if !strings.Contains(html, tt.want) {
				t.Errorf("expected %q in output", tt.want)
			}
			if strings.Contains(html, tt.notWant) {
				t.Errorf("did not expect %q in output", tt.notWant)
			}
		})
	}
}

func TestHouseImagesPartial_ActionsPerPosition(t *testing.T) {
	images := []string{"https://img.example.com/a.jpg", "https://img.example.com/b.jpg"}
	html := renderString(t, func(b *bytes.Buffer) error {
		return HouseImagesPartial("h1", images).Render(context.Background(), b)
	})

	if strings.Count(html, ">Remove<") != 2 {
		t.Errorf("expected one remove button per image")
	}
	if strings.Count(html, ">Up<") != 1 || strings.Count(html, ">Down<") != 1 {
		t.Errorf("expected a single up and a single down button")
	}
	if !strings.Contains(html, `id="house-images"`) {
		t.Errorf("partial must keep its swap target id")
	}
}

func TestSafeURL_DropsJavascript(t *testing.T) {
	html := renderString(t, func(b *bytes.Buffer) error {
		house := services.House{ID: "h1", Title: "T", Status: "available", Images: []string{"javascript:alert(1)"}}
		return HouseDetailPage(HouseDetailData{House: house}, HeaderData{}).Render(context.Background(), b)
	})
	if strings.Contains(html, "javascript:alert") {
		t.Errorf("unsafe image URL was rendered")
	}
}

func TestEstimatorContent_ShowsExportHintWhenNothingPriced(t *testing.T) {
	data := EstimatorData{
		BuildingArea: "95",
		Rows:         []EstimatorRow{{Index: 0, Name: "Bricks", Unit: "piece", Quantity: 7250}},
	}
	html := renderString(t, func(b *bytes.Buffer) error {
		return EstimatorContent(data).Render(context.Background(), b)
	})
	for _, want := range []string{`name="price_0"`, "7,250.00", "Enter at least one unit price", `value="95"`} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in estimator output", want)
		}
	}
}
