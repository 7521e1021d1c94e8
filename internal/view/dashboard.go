package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/yourorg/qoz-dashboard/catalog"
	"github.com/yourorg/qoz-dashboard/internal/search"
)

//go:embed templates/*.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.New("dashboard.html").ParseFS(templateFS, "templates/dashboard.html"))

type StatCard struct {
	Label string
	Value string
	Class string
}

type Card struct {
	ID          string
	Title       string
	Address     string
	Description string
	Source      string
	Price       string
	Acreage     string
	Zoning      string
	Distance    string
	TractID     string
	Eligible    bool
}

type Marker struct {
	ID       string
	Left     string
	Top      string
	Eligible bool
	Tooltip  string
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Slider is one range input of the filter panel.
type Slider struct {
	Name  string
	Label string
	Min   string
	Max   string
	Step  string
	Value string
}

type Dashboard struct {
	SessionID     string
	Action        string
	SearchTerm    string
	ShowFilters   bool
	QOZOnly       bool
	EligibleLabel string
	Stats         []StatCard
	Sliders       []Slider
	ZoningOptions []Option
	Cards         []Card
	Markers       []Marker
	Reference     string
	Empty         bool
}

// New builds the page model for one session from the engine output. zoning is
// the full catalog's tag list, independent of the current criteria.
func New(sessionID string, c search.Criteria, showFilters bool, res search.Result, zoning []string) Dashboard {
	st := res.Stats
	d := Dashboard{
		SessionID:     sessionID,
		Action:        "/s/" + sessionID,
		SearchTerm:    c.SearchTerm,
		ShowFilters:   showFilters,
		QOZOnly:       c.QOZOnly,
		EligibleLabel: fmt.Sprintf("%d of %d", st.QOZEligible, st.Total),
		Reference:     catalog.ReferencePoint,
		Empty:         len(res.Properties) == 0,
		Stats: []StatCard{
			{Label: "Total Listings", Value: strconv.Itoa(st.Total), Class: "blue"},
			{Label: "QOZ Eligible", Value: strconv.Itoa(st.QOZEligible), Class: "emerald"},
			{Label: "Avg Price", Value: Millions(st.AvgPrice, 1), Class: "violet"},
			{Label: "Total Acreage", Value: fmt.Sprintf("%.1f", st.TotalAcreage), Class: "orange"},
		},
		Sliders: []Slider{
			{
				Name:  "price_max",
				Label: fmt.Sprintf("Price Range: %s - %s", Millions(float64(c.PriceRange.Min), 1), Millions(float64(c.PriceRange.Max), 1)),
				Min:   "0",
				Max:   strconv.FormatInt(search.PriceCeiling, 10),
				Step:  strconv.FormatInt(search.PriceStep, 10),
				Value: strconv.FormatInt(c.PriceRange.Max, 10),
			},
			{
				Name:  "acreage_max",
				Label: fmt.Sprintf("Acreage: %s - %s acres", Number(c.AcreageRange.Min), Number(c.AcreageRange.Max)),
				Min:   "0",
				Max:   Number(search.AcreageCeiling),
				Step:  Number(search.AcreageStep),
				Value: Number(c.AcreageRange.Max),
			},
			{
				Name:  "max_distance",
				Label: fmt.Sprintf("Max Distance: %s miles", Number(c.MaxDistance)),
				Min:   "0",
				Max:   Number(search.DistanceCeiling),
				Step:  Number(search.DistanceStep),
				Value: Number(c.MaxDistance),
			},
		},
	}
	for _, tag := range zoning {
		d.ZoningOptions = append(d.ZoningOptions, Option{Value: tag, Label: ZoningLabel(tag), Selected: tag == c.Zoning})
	}
	for _, p := range res.Properties {
		d.Cards = append(d.Cards, Card{
			ID:          p.ID,
			Title:       p.Title,
			Address:     p.Address,
			Description: p.Description,
			Source:      p.Source,
			Price:       Millions(float64(p.Price), 2),
			Acreage:     Number(p.Acreage) + " ac",
			Zoning:      p.Zoning,
			Distance:    Number(p.Distance) + " mi",
			TractID:     p.TractID,
			Eligible:    p.QOZEligible,
		})
		d.Markers = append(d.Markers, MarkerFor(p))
	}
	return d
}

// MarkerFor places p at its stored map coordinates.
func MarkerFor(p catalog.Property) Marker {
	return Marker{
		ID:       p.ID,
		Left:     Percent(p.Coordinates.X),
		Top:      Percent(p.Coordinates.Y),
		Eligible: p.QOZEligible,
		Tooltip:  fmt.Sprintf("%s · %s · %s ac", p.Title, Millions(float64(p.Price), 1), Number(p.Acreage)),
	}
}

func Render(w io.Writer, d Dashboard) error {
	return dashboardTmpl.Execute(w, d)
}
