package session_test

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GateFare/GateFare/internal/domain"
	"github.com/GateFare/GateFare/internal/observability"
	"github.com/GateFare/GateFare/internal/session"
)

func newWizard(t *testing.T) *domain.Wizard {
	t.Helper()
	w, err := domain.NewWizard(domain.Itinerary{
		Airline:   "Delta Air Lines",
		Departure: domain.Endpoint{City: "New York", Code: "NYC"},
		Arrival:   domain.Endpoint{City: "Boston", Code: "BOS"},
		BasePrice: 120,
	}, nil, "2026-09-14", 1)
	require.NoError(t, err)
	return w
}

func TestStore_CreateAndGet(t *testing.T) {
	st := session.NewStore(time.Hour, observability.NewLogger())

	sess := st.Create(newWizard(t))
	require.NotEqual(t, uuid.Nil, sess.ID)

	got, err := st.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, st.Len())
}

func TestStore_GetUnknownID(t *testing.T) {
	st := session.NewStore(time.Hour, observability.NewLogger())

	_, err := st.Get(uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStore_Delete(t *testing.T) {
	st := session.NewStore(time.Hour, observability.NewLogger())
	sess := st.Create(newWizard(t))

	st.Delete(sess.ID)
	_, err := st.Get(sess.ID)
	require.Error(t, err)
	assert.Equal(t, 0, st.Len())
}

func TestStore_DoSerializesAccess(t *testing.T) {
	st := session.NewStore(time.Hour, observability.NewLogger())
	sess := st.Create(newWizard(t))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = sess.Do(func(w *domain.Wizard) error {
			p := w.Passengers()[0]
			p.FirstName = "Ada"
			return w.UpdatePassenger(0, p)
		})
	}()
	<-done

	err := sess.Do(func(w *domain.Wizard) error {
		assert.Equal(t, "Ada", w.Passengers()[0].FirstName)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_SweepExpiresIdleSessions(t *testing.T) {
	st := session.NewStore(10*time.Millisecond, observability.NewLogger())
	old := st.Create(newWizard(t))

	time.Sleep(30 * time.Millisecond)
	fresh := st.Create(newWizard(t))

	// Drive one sweep tick's worth of work directly via Get-refresh semantics:
	// the fresh session was just touched, the old one was not.
	st.ExpireNow(time.Now())

	_, err := st.Get(old.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = st.Get(fresh.ID)
	assert.NoError(t, err)
}
