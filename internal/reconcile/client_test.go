package reconcile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawfinder/internal/domain"
)

func sampleOrder() domain.Order {
	return domain.NewOrder(
		"ord-1",
		domain.Buyer{Name: "Asha", Address: "12 Lake Road"},
		[]domain.OrderItem{{Name: "Golden Retriever", Qty: 1, Price: 200000}},
		domain.PaymentCOD, "", "",
		time.Now(),
	)
}

func TestPushSuccess(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/order", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]any{"order_id": "srv-9", "order": map[string]any{}})
	}))
	defer srv.Close()

	out := New(srv.URL, srv.Client(), nil).Push(context.Background(), sampleOrder())

	require.True(t, out.OK)
	assert.Equal(t, "srv-9", out.Response.OrderID)
	assert.Equal(t, "cod", received["payment_method"])
	user := received["user"].(map[string]any)
	assert.Equal(t, "Asha", user["name"])
	_, hasEmail := user["email"]
	assert.False(t, hasEmail, "optional empty fields are omitted from the wire body")
}

func TestPushNon2xxIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "db down"})
	}))
	defer srv.Close()

	out := New(srv.URL, srv.Client(), nil).Push(context.Background(), sampleOrder())

	assert.False(t, out.OK)
	assert.Equal(t, "ord-1", out.LocalOrder.ID)
	assert.ErrorContains(t, out.Err, "db down")
}

func TestPushUnreachableIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listening anymore

	out := New(srv.URL, nil, nil).Push(context.Background(), sampleOrder())

	assert.False(t, out.OK)
	assert.Equal(t, "ord-1", out.LocalOrder.ID)
	assert.Error(t, out.Err)
}
