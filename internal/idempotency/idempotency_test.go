package idempotency_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GateFare/GateFare/internal/idempotency"
)

func TestStore_SetGet(t *testing.T) {
	st := idempotency.NewStore(time.Hour)

	_, ok := st.Get("key-1")
	assert.False(t, ok)

	st.Set("key-1", idempotency.Response{Status: http.StatusOK, Body: []byte(`{"ok":true}`)})

	got, ok := st.Get("key-1")
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, got.Status)
	assert.JSONEq(t, `{"ok":true}`, string(got.Body))
}

func TestStore_EmptyKeyNeverStored(t *testing.T) {
	st := idempotency.NewStore(time.Hour)
	st.Set("", idempotency.Response{Status: http.StatusOK})

	_, ok := st.Get("")
	assert.False(t, ok)
}

func TestStore_Expiry(t *testing.T) {
	st := idempotency.NewStore(10 * time.Millisecond)
	st.Set("key-1", idempotency.Response{Status: http.StatusOK})

	time.Sleep(20 * time.Millisecond)
	_, ok := st.Get("key-1")
	assert.False(t, ok)
}
