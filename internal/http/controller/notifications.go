package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hipchat_notify/internal/domain"
	"hipchat_notify/internal/hipchat"
	"hipchat_notify/internal/http/dto"
	"hipchat_notify/internal/http/resp"
	"hipchat_notify/internal/model"
	"hipchat_notify/internal/service/notify"
)

const DeliveryHeader = "X-HipChat-Delivery"

type Handler struct {
	svc *notify.Service
	log *zap.Logger
}

func NewHandler(svc *notify.Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, log: logger}
}

func (h *Handler) NotifyRoom(c *gin.Context) {
	h.notify(c, domain.KindRoom, c.Param("room"))
}

func (h *Handler) NotifyUser(c *gin.Context) {
	h.notify(c, domain.KindUser, c.Param("user"))
}

func (h *Handler) notify(c *gin.Context, kind domain.Kind, target string) {
	var req dto.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "invalid json"})
		return
	}
	if target == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: string(kind) + " and message are required"})
		return
	}
	color, err := domain.ParseColor(req.Color)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "color must be one of: yellow, green, red, purple, gray, random"})
		return
	}
	format, err := domain.ParseFormat(req.MessageFormat)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "message_format must be one of: html, text"})
		return
	}

	res, err := h.svc.Send(c.Request.Context(), model.Notification{
		Target:  target,
		Kind:    kind,
		Message: req.Message,
		Format:  format,
		Color:   color,
		Notify:  req.Notify,
		Label:   req.From,
	})
	if err != nil {
		if notify.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: err.Error()})
			return
		}
		var apiErr *hipchat.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{
				Code:           resp.CodeProviderError,
				Message:        apiErr.Message,
				ProviderStatus: apiErr.StatusCode,
			})
			return
		}
		h.log.Error("notify failed",
			zap.String("kind", string(kind)),
			zap.String("target", target),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to send notification"})
		return
	}

	if res.Sent {
		c.Header(DeliveryHeader, "sent")
	} else {
		c.Header(DeliveryHeader, "logged")
	}
	c.Status(http.StatusNoContent)
}
