package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hipchat_notify/internal/hipchat"
	"hipchat_notify/internal/http/dto"
	"hipchat_notify/internal/http/resp"
	"hipchat_notify/internal/metrics"
	"hipchat_notify/internal/service/notify"
)

type senderMock struct {
	mock.Mock
}

func (m *senderMock) NotifyRoom(ctx context.Context, room, message string, opts ...hipchat.Option) (hipchat.Result, error) {
	args := m.Called(ctx, room, message, opts)
	return args.Get(0).(hipchat.Result), args.Error(1)
}

func (m *senderMock) NotifyUser(ctx context.Context, user, message string, opts ...hipchat.Option) (hipchat.Result, error) {
	args := m.Called(ctx, user, message, opts)
	return args.Get(0).(hipchat.Result), args.Error(1)
}

func setupRouter(t *testing.T, sender notify.Sender) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := notify.NewService(sender, metrics.NewMetrics(), zap.NewNop())
	handler := NewHandler(svc, zap.NewNop())

	router := gin.New()
	router.POST("/rooms/:room/notification", handler.NotifyRoom)
	router.POST("/users/:user/message", handler.NotifyUser)
	return router
}

func performJSONRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var respBody dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &respBody))
	return respBody
}

func TestNotifyRoomController(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		sender := &senderMock{}
		router := setupRouter(t, sender)

		req := httptest.NewRequest(http.MethodPost, "/rooms/ops/notification", bytes.NewBufferString("{bad"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, resp.CodeBadRequest, decodeError(t, rec).Code)
		sender.AssertNotCalled(t, "NotifyRoom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing message", func(t *testing.T) {
		sender := &senderMock{}
		router := setupRouter(t, sender)

		rec := performJSONRequest(t, router, http.MethodPost, "/rooms/ops/notification", map[string]any{
			"color": "red",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, resp.CodeBadRequest, decodeError(t, rec).Code)
		sender.AssertNotCalled(t, "NotifyRoom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid color", func(t *testing.T) {
		sender := &senderMock{}
		router := setupRouter(t, sender)

		rec := performJSONRequest(t, router, http.MethodPost, "/rooms/ops/notification", map[string]any{
			"message": "hello",
			"color":   "black",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		sender.AssertNotCalled(t, "NotifyRoom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid format", func(t *testing.T) {
		sender := &senderMock{}
		router := setupRouter(t, sender)

		rec := performJSONRequest(t, router, http.MethodPost, "/rooms/ops/notification", map[string]any{
			"message":        "hello",
			"message_format": "png",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		sender.AssertNotCalled(t, "NotifyRoom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("sent", func(t *testing.T) {
		sender := &senderMock{}
		sender.On("NotifyRoom", mock.Anything, "Customer Service", "This is a message", mock.Anything).
			Return(hipchat.Result{Sent: true, StatusCode: http.StatusNoContent}, nil).Once()
		router := setupRouter(t, sender)

		rec := performJSONRequest(t, router, http.MethodPost, "/rooms/Customer%20Service/notification", map[string]any{
			"message": "This is a message",
			"color":   "grey",
			"notify":  true,
		})

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "sent", rec.Header().Get(DeliveryHeader))
		sender.AssertExpectations(t)
	})

	t.Run("logged", func(t *testing.T) {
		sender := &senderMock{}
		sender.On("NotifyRoom", mock.Anything, "ops", "hello", mock.Anything).
			Return(hipchat.Result{}, nil).Once()
		router := setupRouter(t, sender)

		rec := performJSONRequest(t, router, http.MethodPost, "/rooms/ops/notification", map[string]any{
			"message": "hello",
		})

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "logged", rec.Header().Get(DeliveryHeader))
		sender.AssertExpectations(t)
	})

	t.Run("provider error", func(t *testing.T) {
		sender := &senderMock{}
		sender.On("NotifyRoom", mock.Anything, "ops", "hello", mock.Anything).
			Return(hipchat.Result{StatusCode: http.StatusNotFound}, &hipchat.APIError{StatusCode: http.StatusNotFound, Message: "Room not found"}).Once()
		router := setupRouter(t, sender)

		rec := performJSONRequest(t, router, http.MethodPost, "/rooms/ops/notification", map[string]any{
			"message": "hello",
		})

		require.Equal(t, http.StatusBadGateway, rec.Code)
		body := decodeError(t, rec)
		require.Equal(t, resp.CodeProviderError, body.Code)
		require.Equal(t, "Room not found", body.Message)
		require.Equal(t, http.StatusNotFound, body.ProviderStatus)
		sender.AssertExpectations(t)
	})

	t.Run("transport error", func(t *testing.T) {
		sender := &senderMock{}
		sender.On("NotifyRoom", mock.Anything, "ops", "hello", mock.Anything).
			Return(hipchat.Result{}, errors.New("connection refused")).Once()
		router := setupRouter(t, sender)

		rec := performJSONRequest(t, router, http.MethodPost, "/rooms/ops/notification", map[string]any{
			"message": "hello",
		})

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, resp.CodeInternalError, decodeError(t, rec).Code)
		sender.AssertExpectations(t)
	})
}

func TestNotifyUserController(t *testing.T) {
	sender := &senderMock{}
	sender.On("NotifyUser", mock.Anything, "hugo", "Hello, Hugo", mock.Anything).
		Return(hipchat.Result{Sent: true, StatusCode: http.StatusNoContent}, nil).Once()
	router := setupRouter(t, sender)

	rec := performJSONRequest(t, router, http.MethodPost, "/users/hugo/message", map[string]any{
		"message":        "Hello, Hugo",
		"message_format": "text",
	})

	require.Equal(t, http.StatusNoContent, rec.Code)
	sender.AssertExpectations(t)
	sender.AssertNotCalled(t, "NotifyRoom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
