package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GateFare/GateFare/internal/config"
	"github.com/GateFare/GateFare/internal/domain"
	"github.com/GateFare/GateFare/internal/enquiry"
	"github.com/GateFare/GateFare/internal/flights"
	"github.com/GateFare/GateFare/internal/idempotency"
	"github.com/GateFare/GateFare/internal/observability"
	"github.com/GateFare/GateFare/internal/session"
)

type Handlers struct {
	cfg      *config.Config
	sessions *session.Store
	catalog  *flights.Catalog
	enquiry  *enquiry.Client
	idemp    *idempotency.Store
	logger   observability.Logger
}

func NewHandlers(cfg *config.Config, sessions *session.Store, catalog *flights.Catalog, enquiryClient *enquiry.Client, idemp *idempotency.Store, logger observability.Logger) *Handlers {
	return &Handlers{
		cfg:      cfg,
		sessions: sessions,
		catalog:  catalog,
		enquiry:  enquiryClient,
		idemp:    idemp,
		logger:   logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respond(w, http.StatusNotFound, errorResponse{Error: "booking session not found"})
	case errors.Is(err, domain.ErrValidation):
		respond(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCouponRejected):
		respond(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSecurityCheck):
		respond(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCompleted):
		respond(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSubmissionFailed):
		respond(w, http.StatusBadGateway, errorResponse{Error: "Failed to submit booking. Please try again."})
	default:
		respond(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// bookingView is the wizard state the client renders. Raw payment details are
// never echoed back, only whether the step is complete.
type bookingView struct {
	BookingID       string                 `json:"bookingId"`
	Step            int                    `json:"step"`
	StepName        string                 `json:"stepName"`
	Status          domain.Status          `json:"status"`
	Passengers      []domain.Passenger     `json:"passengers"`
	Seats           domain.SeatSelection   `json:"seats"`
	Addons          domain.AddonsSelection `json:"addons"`
	PaymentComplete bool                   `json:"paymentComplete"`
	Coupon          domain.CouponState     `json:"coupon"`
	TokenPresent    bool                   `json:"tokenPresent"`
	Reference       string                 `json:"bookingReference,omitempty"`
	Domestic        bool                   `json:"domestic"`
	Total           int                    `json:"total"`
	Breakdown       domain.Breakdown       `json:"breakdown"`
}

func viewOf(id uuid.UUID, w *domain.Wizard) bookingView {
	p := w.Payment()
	paymentComplete := p.CardNumber != "" && p.ExpiryMonth != "" && p.ExpiryYear != "" && p.CVV != "" && p.Country != ""

	return bookingView{
		BookingID:       id.String(),
		Step:            int(w.Step()),
		StepName:        w.Step().String(),
		Status:          w.Status(),
		Passengers:      w.Passengers(),
		Seats:           w.Seats(),
		Addons:          w.Addons(),
		PaymentComplete: paymentComplete,
		Coupon:          w.Coupon(),
		TokenPresent:    w.Token() != "",
		Reference:       w.Reference(),
		Domestic:        domain.IsDomestic(w.Itinerary()),
		Total:           w.Quote(),
		Breakdown:       w.Breakdown(),
	}
}

type startBookingRequest struct {
	Flight         domain.Itinerary  `json:"flight"`
	ReturnFlight   *domain.Itinerary `json:"returnFlight,omitempty"`
	PassengerCount int               `json:"passengerCount"`
	Date           string            `json:"date,omitempty"`
}

func (h *Handlers) StartBooking(w http.ResponseWriter, r *http.Request) {
	var req startBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	wizard, err := domain.NewWizard(req.Flight, req.ReturnFlight, req.Date, req.PassengerCount)
	if err != nil {
		respondError(w, err)
		return
	}

	sess := h.sessions.Create(wizard)
	h.logger.WithField("booking_id", sess.ID.String()).Info("booking session started")
	respond(w, http.StatusCreated, viewOf(sess.ID, wizard))
}

// withSession resolves the session from the URL and runs fn under its lock,
// responding with the refreshed wizard view on success.
func (h *Handlers) withSession(w http.ResponseWriter, r *http.Request, fn func(*domain.Wizard) error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	sess, err := h.sessions.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}

	var view bookingView
	err = sess.Do(func(wiz *domain.Wizard) error {
		if err := fn(wiz); err != nil {
			return err
		}
		view = viewOf(sess.ID, wiz)
		return nil
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, view)
}

func (h *Handlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(*domain.Wizard) error { return nil })
}

// AbandonBooking drops the draft without notifying anyone. Abandonment is also
// what the TTL sweep does eventually; this just does it on request.
func (h *Handlers) AbandonBooking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}
	if _, err := h.sessions.Get(id); err != nil {
		respondError(w, err)
		return
	}

	h.sessions.Delete(id)
	h.logger.WithField("booking_id", id.String()).Info("booking session abandoned")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) UpdatePassenger(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respond(w, http.StatusBadRequest, errorResponse{Error: "invalid passenger index"})
		return
	}

	var p domain.Passenger
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	h.withSession(w, r, func(wiz *domain.Wizard) error {
		return wiz.UpdatePassenger(index, p)
	})
}

func (h *Handlers) UpdateSeats(w http.ResponseWriter, r *http.Request) {
	var s domain.SeatSelection
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		respond(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	h.withSession(w, r, func(wiz *domain.Wizard) error {
		return wiz.SetSeats(s)
	})
}

func (h *Handlers) UpdateAddons(w http.ResponseWriter, r *http.Request) {
	var a domain.AddonsSelection
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respond(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	h.withSession(w, r, func(wiz *domain.Wizard) error {
		return wiz.SetAddons(a)
	})
}

func (h *Handlers) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var p domain.PaymentDetails
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	h.withSession(w, r, func(wiz *domain.Wizard) error {
		return wiz.SetPayment(p)
	})
}

func (h *Handlers) Next(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(wiz *domain.Wizard) error {
		return wiz.Next()
	})
}

func (h *Handlers) Back(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(wiz *domain.Wizard) error {
		wiz.Back()
		return nil
	})
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

func (h *Handlers) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req applyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	h.withSession(w, r, func(wiz *domain.Wizard) error {
		if err := wiz.ApplyCoupon(req.Code); err != nil {
			observability.CouponRejections.WithLabelValues(couponLabel(req.Code)).Inc()
			return err
		}
		return nil
	})
}

// couponLabel keeps arbitrary user input out of the metric label set.
func couponLabel(code string) string {
	switch code {
	case domain.CouponDomestic, domain.CouponInternational:
		return code
	case "":
		return "empty"
	default:
		return "other"
	}
}

func (h *Handlers) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(wiz *domain.Wizard) error {
		wiz.RemoveCoupon()
		return nil
	})
}

type setTokenRequest struct {
	Token string `json:"token"`
}

func (h *Handlers) SetToken(w http.ResponseWriter, r *http.Request) {
	var req setTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		respond(w, http.StatusBadRequest, errorResponse{Error: "token is required"})
		return
	}

	h.withSession(w, r, func(wiz *domain.Wizard) error {
		wiz.SetToken(req.Token)
		return nil
	})
}

func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get("Idempotency-Key")
	if cached, ok := h.idemp.Get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(cached.Status)
		w.Write(cached.Body)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}
	sess, err := h.sessions.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}

	var view bookingView
	err = sess.Do(func(wiz *domain.Wizard) error {
		if err := wiz.Submit(r.Context(), h.enquiry); err != nil {
			return err
		}
		view = viewOf(sess.ID, wiz)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionFailed) {
			observability.SubmissionsTotal.WithLabelValues("failed").Inc()
			h.logger.WithError(err).WithField("booking_id", id.String()).Error("booking submission failed")
		}
		respondError(w, err)
		return
	}

	observability.SubmissionsTotal.WithLabelValues("success").Inc()
	h.logger.WithField("booking_id", id.String()).WithField("reference", view.Reference).Info("booking submitted")

	// Only successful outcomes are replayable; a failed attempt should hit the
	// endpoint again on retry.
	body, _ := json.Marshal(view)
	h.idemp.Set(key, idempotency.Response{Status: http.StatusOK, Body: body})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handlers) CreateEnquiry(w http.ResponseWriter, r *http.Request) {
	var req domain.EnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	req.Type = domain.RequestTypeEnquiry

	if err := req.Validate(); err != nil {
		respondError(w, err)
		return
	}

	if err := h.enquiry.SubmitEnquiry(r.Context(), req); err != nil {
		respondError(w, errors.Mark(err, domain.ErrSubmissionFailed))
		return
	}
	respond(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *Handlers) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to, date := q.Get("from"), q.Get("to"), q.Get("date")
	if from == "" || to == "" || date == "" {
		respond(w, http.StatusBadRequest, errorResponse{Error: "missing required parameters: from, to, date"})
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"flights": h.catalog.Search(from, to, date),
	})
}

func (h *Handlers) SearchAirports(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]any{
		"airports": h.catalog.SearchAirports(r.URL.Query().Get("query")),
	})
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *Handlers) Readyz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}
