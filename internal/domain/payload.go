package domain

import "github.com/cockroachdb/errors"

// The notification endpoint accepts two request kinds. Each variant carries
// its own required fields instead of one permissive shape.
type RequestType string

const (
	RequestTypeEnquiry RequestType = "enquiry"
	RequestTypeBooking RequestType = "booking"
)

// FlightDetails is the flattened itinerary snapshot embedded in a booking
// payload. TotalPrice is the computed quote at submission time.
type FlightDetails struct {
	Airline       string         `json:"airline"`
	FlightNumber  string         `json:"flightNumber"`
	From          string         `json:"from"`
	FromCode      string         `json:"fromCode"`
	DepartureTime string         `json:"departureTime"`
	To            string         `json:"to"`
	ToCode        string         `json:"toCode"`
	ArrivalTime   string         `json:"arrivalTime"`
	Date          string         `json:"date"`
	Duration      string         `json:"duration"`
	BasePrice     float64        `json:"basePrice"`
	TotalPrice    int            `json:"totalPrice"`
	ReturnFlight  *FlightDetails `json:"returnFlight,omitempty"`
}

// BookingRequest is the frozen draft handed to the submission collaborator.
type BookingRequest struct {
	Type             RequestType     `json:"type"`
	BookingReference string          `json:"bookingReference"`
	FlightDetails    FlightDetails   `json:"flightDetails"`
	Passengers       []Passenger     `json:"passengers"`
	Seats            SeatSelection   `json:"seats"`
	Addons           AddonsSelection `json:"addons"`
	Payment          PaymentDetails  `json:"payment"`
	Token            string          `json:"token"`
}

// EnquiryRequest is the simple contact variant: no draft, no pricing.
type EnquiryRequest struct {
	Type           RequestType `json:"type"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone,omitempty"`
	Message        string      `json:"message,omitempty"`
	From           string      `json:"from,omitempty"`
	To             string      `json:"to,omitempty"`
	Date           string      `json:"date,omitempty"`
	PassengerCount int         `json:"passengerCount,omitempty"`
	Token          string      `json:"token"`
}

func (r EnquiryRequest) Validate() error {
	if r.Name == "" || r.Email == "" {
		return errors.Mark(errors.New("name and email are required"), ErrValidation)
	}
	if r.Token == "" {
		return errors.Mark(errors.New("please complete the security check"), ErrSecurityCheck)
	}
	return nil
}
