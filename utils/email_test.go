package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResendClient(serverURL string) *ResendClient {
	return &ResendClient{
		APIKey:  "re_test_key",
		BaseURL: serverURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestResendClientSend(t *testing.T) {
	t.Run("returns the provider message id", func(t *testing.T) {
		var received resendRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/emails", r.URL.Path)
			assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"id": "msg_abc123"})
		}))
		defer server.Close()

		client := newTestResendClient(server.URL)
		id, err := client.Send("DhowLine <bookings@dhowline.ae>", "aisha@example.com", "Your cruise", "<p>hi</p>")

		require.NoError(t, err)
		assert.Equal(t, "msg_abc123", id)
		assert.Equal(t, []string{"aisha@example.com"}, received.To)
		assert.Equal(t, "Your cruise", received.Subject)
	})

	t.Run("propagates the provider error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid `to` address"})
		}))
		defer server.Close()

		client := newTestResendClient(server.URL)
		_, err := client.Send("DhowLine <bookings@dhowline.ae>", "not-an-email", "Subject", "<p>hi</p>")

		require.Error(t, err)
		var providerErr *ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, "resend", providerErr.Provider)
		assert.Equal(t, "invalid `to` address", providerErr.Message)
	})

	t.Run("missing API key fails without a request", func(t *testing.T) {
		client := &ResendClient{BaseURL: "http://127.0.0.1:0", Client: http.DefaultClient}
		_, err := client.Send("a@b.c", "d@e.f", "s", "b")

		require.Error(t, err)
		var providerErr *ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, "API key not configured", providerErr.Message)
	})
}
