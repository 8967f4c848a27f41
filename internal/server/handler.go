// Package server は認可エンジンのHTTPフロントエンドを提供する。
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/acct"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/authz"
	"github.com/melbas/premiumconnect-admin-portal-sub002/internal/nasattr"
)

// Handler はHTTP APIハンドラー。
type Handler struct {
	authorizer authz.Authorizer
	processor  *acct.Processor
}

// NewHandler は新しいHandlerを生成する。
func NewHandler(a authz.Authorizer, p *acct.Processor) *Handler {
	return &Handler{authorizer: a, processor: p}
}

// authorizeRequest はPOST /api/v1/authorize のリクエストボディを表す。
type authorizeRequest struct {
	IdentityClaim   string `json:"identity_claim" binding:"required"`
	MACAddress      string `json:"mac_address" binding:"required"`
	NasAddress      string `json:"nas_address" binding:"required"`
	NasPortID       string `json:"nas_port_id"`
	SessionID       string `json:"session_id" binding:"required"`
	AttachmentPoint string `json:"attachment_point"`
	NetworkName     string `json:"network_name"`
	NasVendor       string `json:"nas_vendor"`
}

// authorizeResponse はPOST /api/v1/authorize のレスポンスボディを表す。
type authorizeResponse struct {
	Decision     string              `json:"decision"`
	Directives   *nasattr.Directives `json:"directives,omitempty"`
	Attributes   map[string]any      `json:"attributes,omitempty"`
	ReplyMessage string              `json:"reply_message"`
	RejectReason string              `json:"reject_reason,omitempty"`
}

// HandleAuthorize はPOST /api/v1/authorize のハンドラー。
func (h *Handler) HandleAuthorize(c *gin.Context) {
	traceID, _ := c.Get(TraceIDKey)

	var req authorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, BadRequest("invalid request body"))
		return
	}

	decision := h.authorizer.Authorize(c.Request.Context(), &authz.Request{
		TraceID:         fmt.Sprint(traceID),
		IdentityClaim:   req.IdentityClaim,
		MACAddress:      req.MACAddress,
		NasAddress:      req.NasAddress,
		NasPortID:       req.NasPortID,
		SessionID:       req.SessionID,
		AttachmentPoint: req.AttachmentPoint,
		NetworkName:     req.NetworkName,
		NasVendor:       req.NasVendor,
	})

	resp := authorizeResponse{
		ReplyMessage: decision.ReplyMessage,
	}
	if decision.Accept {
		resp.Decision = "accept"
		resp.Directives = decision.Directives
		resp.Attributes = decision.Attributes
	} else {
		resp.Decision = "reject"
		resp.RejectReason = string(decision.Reason)
	}

	c.JSON(http.StatusOK, resp)
}

// accountingRequest はPOST /api/v1/accounting のリクエストボディを表す。
type accountingRequest struct {
	SessionID  string `json:"session_id" binding:"required"`
	Status     string `json:"status" binding:"required"` // "interim" or "stop"
	AddMB      int64  `json:"add_mb"`
	AddMinutes int64  `json:"add_minutes"`
}

// HandleAccounting はPOST /api/v1/accounting のハンドラー。
// 外部アカウンティングフィードが消費量を逐次通知する。
func (h *Handler) HandleAccounting(c *gin.Context) {
	traceID, _ := c.Get(TraceIDKey)

	var req accountingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, BadRequest("invalid request body"))
		return
	}
	if req.AddMB < 0 || req.AddMinutes < 0 {
		c.JSON(http.StatusBadRequest, BadRequest("usage values must not be negative"))
		return
	}

	var err error
	switch req.Status {
	case "interim":
		err = h.processor.ProcessInterim(c.Request.Context(), req.SessionID, req.AddMB, req.AddMinutes, fmt.Sprint(traceID))
	case "stop":
		err = h.processor.ProcessStop(c.Request.Context(), req.SessionID, req.AddMB, req.AddMinutes, fmt.Sprint(traceID))
	default:
		c.JSON(http.StatusBadRequest, BadRequest("status must be interim or stop"))
		return
	}

	if err != nil {
		if errors.Is(err, acct.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, NotFound("session not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, InternalServerError("accounting update failed"))
		return
	}

	c.Status(http.StatusNoContent)
}

// healthResponse はヘルスチェックレスポンスを表す。
type healthResponse struct {
	Status string `json:"status"`
}

// HandleHealth はGET /health のハンドラー。
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
