package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRemoteSource_GetRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/convert-rate", r.URL.Path)
			assert.Equal(t, "USD", r.URL.Query().Get("from"))
			assert.Equal(t, "EUR", r.URL.Query().Get("to"))
			assert.Equal(t, "1", r.URL.Query().Get("amount"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"rate": 0.9134}`))
		}))
		defer srv.Close()

		src := NewRemoteSource(srv.URL, 5)
		rate, fetchedAt, err := src.GetRate(context.Background(), "USD", "EUR")

		assert.NoError(t, err)
		assert.True(t, rate.Equal(decimal.RequireFromString("0.9134")), "got %s", rate)
		assert.False(t, fetchedAt.IsZero())
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		}))
		defer srv.Close()

		src := NewRemoteSource(srv.URL, 5)
		_, _, err := src.GetRate(context.Background(), "USD", "EUR")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("malformed payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		src := NewRemoteSource(srv.URL, 5)
		_, _, err := src.GetRate(context.Background(), "USD", "EUR")
		assert.Error(t, err)
	})

	t.Run("non-positive rate", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rate": 0}`))
		}))
		defer srv.Close()

		src := NewRemoteSource(srv.URL, 5)
		_, _, err := src.GetRate(context.Background(), "USD", "EUR")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "non-positive rate")
	})

	t.Run("unexpected shape falls out as error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result": 0.92}`))
		}))
		defer srv.Close()

		src := NewRemoteSource(srv.URL, 5)
		_, _, err := src.GetRate(context.Background(), "USD", "EUR")
		assert.Error(t, err)
	})
}
