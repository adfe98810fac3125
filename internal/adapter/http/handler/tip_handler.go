package handler

import (
	"tipcloud/internal/adapter/http/dto"
	"tipcloud/internal/core/domain"
	"tipcloud/internal/core/ports"
	"tipcloud/pkg/apperror"
	"tipcloud/pkg/response"

	"github.com/gin-gonic/gin"
)

// TipHandler handles tip submission.
type TipHandler struct {
	tipSvc ports.TipService
}

// NewTipHandler creates a new TipHandler.
func NewTipHandler(tipSvc ports.TipService) *TipHandler {
	return &TipHandler{tipSvc: tipSvc}
}

// Send handles POST /api/v1/tips.
//
// Wallet outcomes, including cancellation and provider failures, are 200
// with succeeded=false; only bad input, an unknown DJ or a tip already in
// flight are errors.
func (h *TipHandler) Send(c *gin.Context) {
	var req dto.SendTipRequest
	if err := dto.BindJSON(c, &req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.tipSvc.Send(c.Request.Context(), ports.SendTipRequest{
		DJID:       req.DJID,
		AmountSats: req.AmountSats,
		Memo:       req.Memo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Options handles GET /api/v1/tips/options.
func (h *TipHandler) Options(c *gin.Context) {
	response.OK(c, dto.TipOptionsResponse{
		Presets: domain.PresetTipAmounts,
		Default: domain.DefaultTipAmount,
		MaxMemo: domain.MaxMemoBytes,
	})
}
