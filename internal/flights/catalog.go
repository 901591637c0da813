package flights

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"

	"github.com/GateFare/GateFare/internal/domain"
)

// Airport is one autocomplete match.
type Airport struct {
	Code    string `json:"code"`
	City    string `json:"city"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Catalog is the mock flight-data provider the funnel falls back to when no
// live provider is configured. Offers are generated deterministically from the
// query so repeated searches show stable results.
type Catalog struct {
	airports []Airport
}

func NewCatalog() *Catalog {
	return &Catalog{airports: airports}
}

var airports = []Airport{
	{Code: "NYC", City: "New York", Name: "All NYC Airports", Country: "United States"},
	{Code: "LAX", City: "Los Angeles", Name: "Los Angeles International", Country: "United States"},
	{Code: "SFO", City: "San Francisco", Name: "San Francisco International", Country: "United States"},
	{Code: "CHI", City: "Chicago", Name: "All Chicago Airports", Country: "United States"},
	{Code: "MIA", City: "Miami", Name: "Miami International", Country: "United States"},
	{Code: "DAL", City: "Dallas", Name: "Dallas Love Field", Country: "United States"},
	{Code: "HOU", City: "Houston", Name: "William P. Hobby", Country: "United States"},
	{Code: "ATL", City: "Atlanta", Name: "Hartsfield-Jackson", Country: "United States"},
	{Code: "BOS", City: "Boston", Name: "Logan International", Country: "United States"},
	{Code: "SEA", City: "Seattle", Name: "Seattle-Tacoma International", Country: "United States"},
	{Code: "DEN", City: "Denver", Name: "Denver International", Country: "United States"},
	{Code: "PHX", City: "Phoenix", Name: "Sky Harbor International", Country: "United States"},
	{Code: "LVS", City: "Las Vegas", Name: "Harry Reid International", Country: "United States"},
	{Code: "ORL", City: "Orlando", Name: "Orlando International", Country: "United States"},
	{Code: "LON", City: "London", Name: "All London Airports", Country: "United Kingdom"},
	{Code: "PAR", City: "Paris", Name: "Charles de Gaulle", Country: "France"},
	{Code: "FRA", City: "Frankfurt", Name: "Frankfurt am Main", Country: "Germany"},
	{Code: "DXB", City: "Dubai", Name: "Dubai International", Country: "United Arab Emirates"},
	{Code: "TYO", City: "Tokyo", Name: "All Tokyo Airports", Country: "Japan"},
	{Code: "SYD", City: "Sydney", Name: "Kingsford Smith", Country: "Australia"},
}

var carriers = []struct {
	Name   string
	Prefix string
}{
	{"American Airlines", "AA"},
	{"Delta Air Lines", "DL"},
	{"United Airlines", "UA"},
	{"JetBlue Airways", "B6"},
	{"Alaska Airlines", "AS"},
}

// SearchAirports matches code, city or airport name, case-insensitively.
// Queries shorter than two characters return nothing, and at most ten matches
// come back.
func (c *Catalog) SearchAirports(query string) []Airport {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < 2 {
		return []Airport{}
	}

	matches := lo.Filter(c.airports, func(a Airport, _ int) bool {
		return strings.Contains(strings.ToLower(a.Code), query) ||
			strings.Contains(strings.ToLower(a.City), query) ||
			strings.Contains(strings.ToLower(a.Name), query)
	})
	return lo.Subset(matches, 0, 10)
}

// Search returns mock offers for a route and date. The same query always
// produces the same offers; prices and schedules are seeded from the query.
func (c *Catalog) Search(from, to, date string) []domain.Itinerary {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	seed := fnv.New64a()
	seed.Write([]byte(from + "|" + to + "|" + date))
	r := rand.New(rand.NewPCG(seed.Sum64(), seed.Sum64()))

	offers := make([]domain.Itinerary, 0, 4)
	for i := 0; i < 4; i++ {
		carrier := carriers[r.IntN(len(carriers))]
		departHour := 6 + i*4 + r.IntN(2)
		durationH := 2 + r.IntN(8)
		durationM := 5 * r.IntN(12)
		arriveHour := (departHour + durationH) % 24

		offers = append(offers, domain.Itinerary{
			Airline:      carrier.Name,
			FlightNumber: fmt.Sprintf("%s %d", carrier.Prefix, 100+r.IntN(8900)),
			Departure: domain.Endpoint{
				City: c.cityFor(from),
				Code: from,
				Time: fmt.Sprintf("%02d:%02d", departHour, 5*r.IntN(12)),
			},
			Arrival: domain.Endpoint{
				City: c.cityFor(to),
				Code: to,
				Time: fmt.Sprintf("%02d:%02d", arriveHour, 5*r.IntN(12)),
			},
			Duration:  fmt.Sprintf("%dh %02dm", durationH, durationM),
			BasePrice: float64(120 + r.IntN(580)),
		})
	}
	return offers
}

func (c *Catalog) cityFor(code string) string {
	a, ok := lo.Find(c.airports, func(a Airport) bool { return a.Code == code })
	if !ok {
		return code
	}
	return a.City
}
