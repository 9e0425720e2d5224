package fcm_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"trix/internal/adapters/out/fcm"
	"trix/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_SendsDeviceToken(t *testing.T) {
	var got map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "key=test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	gateway := fcm.NewGateway(srv.URL, "test-key")

	err := gateway.Send(t.Context(), ports.Notification{
		Token: "device-token-1",
		Title: "New shipment available",
		Body:  "Dubai to Abu Dhabi, 120 kg",
		Data:  map[string]string{"shipmentId": "abc"},
	})
	require.NoError(t, err)

	assert.Equal(t, "device-token-1", got["to"])
	notification, ok := got["notification"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "New shipment available", notification["title"])
	data, ok := got["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "abc", data["shipmentId"])
}

func TestGateway_CustomerHandleBecomesTopic(t *testing.T) {
	var got map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	gateway := fcm.NewGateway(srv.URL, "test-key")

	err := gateway.Send(t.Context(), ports.Notification{
		Token: "customer-3f1d0a52-8a62-4f5a-9d42-111111111111",
		Title: "Driver assigned",
	})
	require.NoError(t, err)

	assert.Equal(t, "/topics/customer-3f1d0a52-8a62-4f5a-9d42-111111111111", got["to"])
}

func TestGateway_EmptyTokenFailsWithoutNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	gateway := fcm.NewGateway(srv.URL, "test-key")

	err := gateway.Send(t.Context(), ports.Notification{Title: "x"})
	require.ErrorIs(t, err, ports.ErrNoRecipientHandle)
	assert.False(t, called)
}

func TestGateway_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	gateway := fcm.NewGateway(srv.URL, "bad-key")

	err := gateway.Send(t.Context(), ports.Notification{Token: "device-token-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
