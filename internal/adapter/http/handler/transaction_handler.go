package handler

import (
	"transaction-monitoring-api/internal/adapter/http/dto"
	"transaction-monitoring-api/internal/core/domain"
	"transaction-monitoring-api/internal/core/ports"
	"transaction-monitoring-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction lookup, filtering and metrics endpoints.
type TransactionHandler struct {
	txSvc ports.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txSvc ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{txSvc: txSvc}
}

// List handles GET /transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	var pq dto.PageQuery
	if !bindQuery(c, &pq) {
		return
	}
	h.respondPage(c, func() (*domain.Page, error) {
		return h.txSvc.ListTransactions(c.Request.Context(), pq.PageRequest())
	})
}

// GetByID handles GET /transactions/:id.
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	t, err := h.txSvc.GetTransactionByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewTransactionResponse(t))
}

// Delete handles DELETE /transactions/:id.
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.txSvc.DeleteTransaction(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// FilterByRegion handles GET /transactions/filter/region.
func (h *TransactionHandler) FilterByRegion(c *gin.Context) {
	var pq dto.PageQuery
	var rq dto.RegionQuery
	if !bindQuery(c, &pq, &rq) {
		return
	}
	h.respondPage(c, func() (*domain.Page, error) {
		return h.txSvc.GetTransactionsByRegion(c.Request.Context(), rq.Domain(), pq.PageRequest())
	})
}

// FilterByAmount handles GET /transactions/filter/amount.
func (h *TransactionHandler) FilterByAmount(c *gin.Context) {
	var pq dto.PageQuery
	var aq dto.AmountQuery
	if !bindQuery(c, &pq, &aq) {
		return
	}
	h.respondPage(c, func() (*domain.Page, error) {
		return h.txSvc.GetTransactionsByAmountRange(c.Request.Context(), aq.Range(), pq.PageRequest())
	})
}

// FilterCombined handles GET /transactions/filter/combined.
func (h *TransactionHandler) FilterCombined(c *gin.Context) {
	var pq dto.PageQuery
	var rq dto.RegionQuery
	var aq dto.AmountQuery
	if !bindQuery(c, &pq, &rq, &aq) {
		return
	}
	h.respondPage(c, func() (*domain.Page, error) {
		return h.txSvc.GetTransactionsByRegionAndAmountRange(c.Request.Context(), rq.Domain(), aq.Range(), pq.PageRequest())
	})
}

// Fraudulent handles GET /transactions/fraudulent.
func (h *TransactionHandler) Fraudulent(c *gin.Context) {
	var pq dto.PageQuery
	if !bindQuery(c, &pq) {
		return
	}
	h.respondPage(c, func() (*domain.Page, error) {
		return h.txSvc.GetFraudulentTransactions(c.Request.Context(), pq.PageRequest())
	})
}

// Errors handles GET /transactions/errors.
func (h *TransactionHandler) Errors(c *gin.Context) {
	var pq dto.PageQuery
	if !bindQuery(c, &pq) {
		return
	}
	h.respondPage(c, func() (*domain.Page, error) {
		return h.txSvc.GetErrorTransactions(c.Request.Context(), pq.PageRequest())
	})
}

// Metrics handles GET /transactions/metrics.
func (h *TransactionHandler) Metrics(c *gin.Context) {
	var mq dto.MetricsQuery
	if !bindQuery(c, &mq) {
		return
	}
	start, end := mq.Window()

	m, err := h.txSvc.GetTransactionMetrics(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewMetricsResponse(m))
}

func (h *TransactionHandler) respondPage(c *gin.Context, query func() (*domain.Page, error)) {
	page, err := query()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPaginatedResponse(page))
}
