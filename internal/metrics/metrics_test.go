package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.ObserveNotification("room", OutcomeSent, 0.2)
	m.ObserveNotification("user", OutcomeLogged, 0.01)
	m.ObserveHTTPRequestDuration("/rooms/:room/notification", http.MethodPost, "204", 0.3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `hipchat_notifications_total{kind="room",outcome="sent"} 1`)
	require.Contains(t, string(body), `hipchat_notifications_total{kind="user",outcome="logged"} 1`)
	require.Contains(t, string(body), `http_request_duration_seconds_count{handler="/rooms/:room/notification",method="POST",status="204"} 1`)
}

func TestNewMetricsIsolated(t *testing.T) {
	require.NotPanics(t, func() {
		_ = NewMetrics()
		_ = NewMetrics()
	})
}
