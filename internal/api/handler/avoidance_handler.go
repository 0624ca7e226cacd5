package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/jothamO/prism-app-sub003/internal/api/service"
)

// AvoidanceHandler handles HTTP requests for avoidance risk checks
type AvoidanceHandler struct {
	avoidanceService service.AvoidanceService
	logger           *slog.Logger
}

// NewAvoidanceHandler creates a new avoidance handler
func NewAvoidanceHandler(logger *slog.Logger, avoidanceService service.AvoidanceService) *AvoidanceHandler {
	return &AvoidanceHandler{
		avoidanceService: avoidanceService,
		logger:           logger,
	}
}

// Check evaluates transactions for avoidance risk. The body carries either a
// batch ("transactions" array, answered with results plus summary) or a single
// item ("transaction" object, answered with the bare check).
func (h *AvoidanceHandler) Check(c *gin.Context) {
	idParam := c.Param("id")
	accountHolderID, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid account holder ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid account holder ID")
		return
	}

	var req AvoidanceCheckRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err == nil {
		items := make([]service.AvoidanceCheckItem, 0, len(req.Transactions))
		for _, p := range req.Transactions {
			items = append(items, p.toItem())
		}

		outcome, err := h.avoidanceService.CheckTransactions(c.Request.Context(), accountHolderID, items)
		if err != nil {
			h.logger.Error("Failed to check transactions", "account_holder_id", accountHolderID, "error", err)
			RespondInternalError(c)
			return
		}

		RespondOK(c, outcome)
		return
	}

	var single AvoidanceCheckPayload
	if err := c.ShouldBindBodyWith(&single, binding.JSON); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	outcome, err := h.avoidanceService.CheckTransactions(c.Request.Context(), accountHolderID, []service.AvoidanceCheckItem{single.toItem()})
	if err != nil {
		h.logger.Error("Failed to check transaction", "account_holder_id", accountHolderID, "error", err)
		RespondInternalError(c)
		return
	}

	if len(outcome.Rejected) > 0 {
		RespondBadRequest(c, "Invalid transaction: "+outcome.Rejected[0].Reason)
		return
	}

	RespondOK(c, outcome.Results[0])
}
