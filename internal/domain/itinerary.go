package domain

// Endpoint is one end of a flight leg.
type Endpoint struct {
	City string `json:"city"`
	Code string `json:"code"`
	Time string `json:"time"`
}

// Itinerary is a single directional flight offer as returned by the search
// provider. Read-only to the booking flow; the base price is per passenger.
type Itinerary struct {
	Airline      string   `json:"airline"`
	FlightNumber string   `json:"flightNumber"`
	Departure    Endpoint `json:"departure"`
	Arrival      Endpoint `json:"arrival"`
	Duration     string   `json:"duration"`
	BasePrice    float64  `json:"price"`
}
