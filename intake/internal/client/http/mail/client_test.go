package mailclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
)

func TestClientSend(t *testing.T) {
	t.Parallel()

	msg := model.MailMessage{
		ServiceID:  "service_1",
		TemplateID: "template_1",
		Params:     map[string]string{"name": "Jo", "company": "N/A"},
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		var got sendRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte("OK"))
		}))
		t.Cleanup(srv.Close)

		c := NewClient(srv.URL+"/", "public_key", srv.Client())
		require.NoError(t, c.Send(context.Background(), msg))

		assert.Equal(t, sendRequest{
			ServiceID:      "service_1",
			TemplateID:     "template_1",
			UserID:         "public_key",
			TemplateParams: msg.Params,
		}, got)
	})

	t.Run("relay rejects", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "The user ID is invalid", http.StatusBadRequest)
		}))
		t.Cleanup(srv.Close)

		err := NewClient(srv.URL, "bad", srv.Client()).Send(context.Background(), msg)
		require.ErrorIs(t, err, model.ErrMailDelivery)
		assert.Contains(t, err.Error(), "The user ID is invalid")
	})

	t.Run("relay unreachable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		err := NewClient(url, "key", nil).Send(context.Background(), msg)
		require.ErrorIs(t, err, model.ErrMailDelivery)
	})
}
