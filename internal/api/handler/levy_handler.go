package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jothamO/prism-app-sub003/internal/api/service"
	"github.com/jothamO/prism-app-sub003/internal/domain/transaction"
)

// LevyHandler handles HTTP requests for levy reconciliation operations
type LevyHandler struct {
	levyService service.LevyService
	logger      *slog.Logger
}

// NewLevyHandler creates a new levy handler
func NewLevyHandler(logger *slog.Logger, levyService service.LevyService) *LevyHandler {
	return &LevyHandler{
		levyService: levyService,
		logger:      logger,
	}
}

// Scan reconciles a transaction batch for one account holder
func (h *LevyHandler) Scan(c *gin.Context) {
	accountHolderID, ok := h.accountHolderID(c)
	if !ok {
		return
	}

	var req LevyScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	txns := make([]transaction.Transaction, 0, len(req.Transactions))
	for _, p := range req.Transactions {
		txns = append(txns, p.toDomain())
	}

	result, err := h.levyService.ScanTransactions(c.Request.Context(), accountHolderID, txns)
	if err != nil {
		h.logger.Error("Failed to scan transactions", "account_holder_id", accountHolderID, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, result)
}

// GetCharges retrieves paginated stored charges for one account holder
func (h *LevyHandler) GetCharges(c *gin.Context) {
	accountHolderID, ok := h.accountHolderID(c)
	if !ok {
		return
	}

	var pagination PaginationParams
	if err := c.ShouldBindQuery(&pagination); err != nil {
		h.logger.Error("Invalid pagination parameters", "error", err)
		RespondBadRequest(c, "Invalid pagination parameters")
		return
	}

	charges, total, err := h.levyService.GetChargesByAccountHolderID(
		c.Request.Context(),
		accountHolderID,
		pagination.Page,
		pagination.PerPage,
	)
	if err != nil {
		h.logger.Error("Failed to get levy charges", "account_holder_id", accountHolderID, "error", err)
		RespondInternalError(c)
		return
	}

	RespondWithPaginatedData(c, http.StatusOK, charges, pagination.Page, pagination.PerPage, int(total))
}

// accountHolderID parses the path parameter, responding 400 on failure
func (h *LevyHandler) accountHolderID(c *gin.Context) (uuid.UUID, bool) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid account holder ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid account holder ID")
		return uuid.Nil, false
	}
	return id, true
}
