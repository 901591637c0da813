package domain

type Baggage string

const (
	BaggageNone Baggage = "none"
	BaggageAdd  Baggage = "add"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Passenger holds the details collected for one traveler. Only passenger 0's
// email and phone are treated as the booking contact.
type Passenger struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	CountryCode    string  `json:"countryCode"`
	Passport       string  `json:"passport,omitempty"`
	Gender         Gender  `json:"gender,omitempty"`
	DOBDay         string  `json:"dobDay"`
	DOBMonth       string  `json:"dobMonth"`
	DOBYear        string  `json:"dobYear"`
	Baggage        Baggage `json:"baggage"`
	TicketExchange bool    `json:"ticketExchange"`
	SMSUpdates     bool    `json:"smsUpdates"`
}

// NewPassenger returns the defaults a freshly opened wizard shows.
func NewPassenger() Passenger {
	return Passenger{
		CountryCode: "+1",
		Gender:      GenderMale,
		Baggage:     BaggageNone,
	}
}

// SeatSelection is the outcome of the seat step. SeatNumber is nil until the
// traveler picks one.
type SeatSelection struct {
	SeatNumber *string `json:"seatNumber"`
	Price      float64 `json:"price"`
}

type Cancellation string

const (
	CancellationNone      Cancellation = "none"
	CancellationFlexible  Cancellation = "flexible"
	CancellationAnyReason Cancellation = "any_reason"
)

type AddonsSelection struct {
	FlexibleTicket bool         `json:"flexibleTicket"`
	Cancellation   Cancellation `json:"cancellation"`
	PremiumService bool         `json:"premiumService"`
}

// PaymentDetails is collected and forwarded as-is. Nothing here is charged or
// vaulted; only field presence gates progression.
type PaymentDetails struct {
	CardNumber   string `json:"cardNumber"`
	CardName     string `json:"cardName"`
	ExpiryMonth  string `json:"expiryMonth"`
	ExpiryYear   string `json:"expiryYear"`
	CVV          string `json:"cvv"`
	Country      string `json:"country"`
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zipCode,omitempty"`
}
