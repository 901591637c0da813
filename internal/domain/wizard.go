package domain

import (
	"context"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Step is the wizard's position in the booking flow.
type Step int

const (
	StepPassenger Step = iota + 1
	StepSeats
	StepAddons
	StepReview
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepPassenger:
		return "passenger"
	case StepSeats:
		return "seats"
	case StepAddons:
		return "addons"
	case StepReview:
		return "review"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

// Status tracks the submission lifecycle. Success is terminal; Failed is
// terminal for the attempt but the draft survives, so a retry re-enters
// Submitting without re-entering data.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// Submitter delivers a frozen booking payload to the notification
// collaborator. Implementations must honor ctx cancellation.
type Submitter interface {
	SubmitBooking(ctx context.Context, req BookingRequest) error
}

// Wizard owns one booking attempt: the draft, the step position and the
// submission outcome. It is not safe for concurrent use; each attempt gets its
// own instance with every input supplied at construction.
type Wizard struct {
	itinerary  Itinerary
	returnItin *Itinerary
	travelDate string

	passengers []Passenger
	seats      SeatSelection
	addons     AddonsSelection
	payment    PaymentDetails
	coupon     CouponState

	step      Step
	status    Status
	token     string
	reference string
}

// NewWizard starts a booking attempt for a fixed passenger count. The count
// cannot change afterwards; the passenger list is sized once here.
func NewWizard(it Itinerary, returnItin *Itinerary, travelDate string, passengerCount int) (*Wizard, error) {
	if passengerCount < 1 {
		return nil, errors.Mark(errors.Newf("passenger count must be at least 1, got %d", passengerCount), ErrValidation)
	}
	return &Wizard{
		itinerary:  it,
		returnItin: returnItin,
		travelDate: travelDate,
		passengers: lo.Times(passengerCount, func(int) Passenger { return NewPassenger() }),
		addons:     AddonsSelection{Cancellation: CancellationNone},
		step:       StepPassenger,
		status:     StatusInProgress,
	}, nil
}

func (w *Wizard) Step() Step              { return w.step }
func (w *Wizard) Status() Status          { return w.status }
func (w *Wizard) Reference() string       { return w.reference }
func (w *Wizard) Token() string           { return w.token }
func (w *Wizard) Itinerary() Itinerary    { return w.itinerary }
func (w *Wizard) TravelDate() string      { return w.travelDate }
func (w *Wizard) Seats() SeatSelection    { return w.seats }
func (w *Wizard) Addons() AddonsSelection { return w.addons }
func (w *Wizard) Payment() PaymentDetails { return w.payment }
func (w *Wizard) Coupon() CouponState     { return w.coupon }

func (w *Wizard) ReturnItinerary() *Itinerary {
	if w.returnItin == nil {
		return nil
	}
	ret := *w.returnItin
	return &ret
}

func (w *Wizard) Passengers() []Passenger {
	return slices.Clone(w.passengers)
}

// editable reports whether the draft may still be mutated. A failed attempt
// stays editable so the user can revise and resubmit.
func (w *Wizard) editable() bool {
	return w.status == StatusInProgress || w.status == StatusFailed
}

func (w *Wizard) guardEditable() error {
	if !w.editable() {
		return errors.Mark(errors.Newf("booking is %s", w.status), ErrCompleted)
	}
	return nil
}

func (w *Wizard) UpdatePassenger(i int, p Passenger) error {
	if err := w.guardEditable(); err != nil {
		return err
	}
	if i < 0 || i >= len(w.passengers) {
		return errors.Mark(errors.Newf("passenger index %d out of range", i), ErrValidation)
	}
	w.passengers[i] = p
	return nil
}

func (w *Wizard) SetSeats(s SeatSelection) error {
	if err := w.guardEditable(); err != nil {
		return err
	}
	if s.Price < 0 {
		return errors.Mark(errors.Newf("seat price must not be negative, got %v", s.Price), ErrValidation)
	}
	w.seats = s
	return nil
}

func (w *Wizard) SetAddons(a AddonsSelection) error {
	if err := w.guardEditable(); err != nil {
		return err
	}
	switch a.Cancellation {
	case CancellationNone, CancellationFlexible, CancellationAnyReason:
	default:
		return errors.Mark(errors.Newf("unknown cancellation option %q", a.Cancellation), ErrValidation)
	}
	w.addons = a
	return nil
}

func (w *Wizard) SetPayment(p PaymentDetails) error {
	if err := w.guardEditable(); err != nil {
		return err
	}
	w.payment = p
	return nil
}

// SetToken records the challenge-response token. The wizard only cares that
// one is present before submission; verifying it is the endpoint's job.
func (w *Wizard) SetToken(token string) {
	w.token = token
}

func (w *Wizard) ApplyCoupon(code string) error {
	if err := w.guardEditable(); err != nil {
		return err
	}
	return w.coupon.Apply(code, w.itinerary)
}

func (w *Wizard) RemoveCoupon() {
	w.coupon.Remove()
}

// Next advances one step. Leaving the passenger step requires a first and last
// name for everyone and an email for the booking contact. The payment step has
// no forward transition; Submit is the only way out.
func (w *Wizard) Next() error {
	if err := w.guardEditable(); err != nil {
		return err
	}
	switch w.step {
	case StepPassenger:
		if err := w.validatePassengers(); err != nil {
			return err
		}
	case StepPayment:
		return errors.Mark(errors.New("already at the final step"), ErrValidation)
	}
	w.step++
	return nil
}

// Back never validates and never clears data, so earlier steps can be revised
// without losing later input.
func (w *Wizard) Back() {
	if w.step > StepPassenger && w.editable() {
		w.step--
	}
}

func (w *Wizard) validatePassengers() error {
	ok := lo.EveryBy(w.passengers, func(p Passenger) bool {
		return p.FirstName != "" && p.LastName != ""
	})
	if !ok || w.passengers[0].Email == "" {
		return errors.Mark(errors.New("please fill in all required fields for all passengers"), ErrValidation)
	}
	return nil
}

func (w *Wizard) validatePayment() error {
	p := w.payment
	if p.CardNumber == "" || p.ExpiryMonth == "" || p.ExpiryYear == "" || p.CVV == "" || p.Country == "" {
		return errors.Mark(errors.New("please complete all payment fields"), ErrValidation)
	}
	return nil
}

// Quote recomputes the total from the current draft. It is never cached, so
// the displayed and submitted totals cannot drift.
func (w *Wizard) Quote() int {
	return Quote(w.itinerary, w.passengers, w.seats, w.addons, w.coupon)
}

func (w *Wizard) Breakdown() Breakdown {
	return QuoteBreakdown(w.itinerary, w.passengers, w.seats, w.addons, w.coupon)
}

// Submit freezes the draft and hands it to the submitter. The reference is
// assigned on the first attempt and reused on retries, so an ambiguous failure
// followed by a retry reaches the endpoint under the same reference. If ctx is
// already cancelled when the call returns, the outcome is discarded and the
// wizard is left as-is.
func (w *Wizard) Submit(ctx context.Context, submitter Submitter) error {
	switch w.status {
	case StatusSuccess, StatusSubmitting:
		return errors.Mark(errors.Newf("booking is %s", w.status), ErrCompleted)
	}
	if w.step != StepPayment {
		return errors.Mark(errors.Newf("cannot submit from the %s step", w.step), ErrValidation)
	}
	if err := w.validatePayment(); err != nil {
		return err
	}
	if w.token == "" {
		return errors.Mark(errors.New("please complete the security check"), ErrSecurityCheck)
	}

	if w.reference == "" {
		w.reference = NewBookingReference(time.Now())
	}
	w.status = StatusSubmitting

	err := submitter.SubmitBooking(ctx, w.Payload())
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		w.status = StatusFailed
		return errors.Mark(errors.Wrap(err, "submit booking"), ErrSubmissionFailed)
	}
	w.status = StatusSuccess
	return nil
}

// Payload snapshots the draft into the outbound booking variant.
func (w *Wizard) Payload() BookingRequest {
	fd := w.flightDetails(w.itinerary)
	fd.TotalPrice = w.Quote()
	if w.returnItin != nil {
		rf := w.flightDetails(*w.returnItin)
		fd.ReturnFlight = &rf
	}

	return BookingRequest{
		Type:             RequestTypeBooking,
		BookingReference: w.reference,
		FlightDetails:    fd,
		Passengers:       slices.Clone(w.passengers),
		Seats:            w.seats,
		Addons:           w.addons,
		Payment:          w.payment,
		Token:            w.token,
	}
}

func (w *Wizard) flightDetails(it Itinerary) FlightDetails {
	date := w.travelDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return FlightDetails{
		Airline:       it.Airline,
		FlightNumber:  it.FlightNumber,
		From:          it.Departure.City,
		FromCode:      it.Departure.Code,
		DepartureTime: it.Departure.Time,
		To:            it.Arrival.City,
		ToCode:        it.Arrival.Code,
		ArrivalTime:   it.Arrival.Time,
		Date:          date,
		Duration:      it.Duration,
		BasePrice:     it.BasePrice,
	}
}
