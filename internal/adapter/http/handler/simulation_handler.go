package handler

import (
	"context"
	"fmt"

	"transaction-monitoring-api/internal/adapter/http/dto"
	"transaction-monitoring-api/internal/core/ports"
	"transaction-monitoring-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// SimulationHandler handles the simulation control endpoints.
type SimulationHandler struct {
	sim          ports.SimulationService
	defaultBurst int
	defaultRate  int
}

// NewSimulationHandler creates a new SimulationHandler. defaultBurst and
// defaultRate apply when the request leaves count or rate out.
func NewSimulationHandler(sim ports.SimulationService, defaultBurst, defaultRate int) *SimulationHandler {
	return &SimulationHandler{
		sim:          sim,
		defaultBurst: defaultBurst,
		defaultRate:  defaultRate,
	}
}

// Simulate handles POST /transactions/simulate.
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var q dto.SimulateQuery
	if !bindQuery(c, &q) {
		return
	}
	count := h.defaultBurst
	if q.Count != nil {
		count = *q.Count
	}

	// A burst runs to completion even if the client goes away.
	if err := h.sim.SimulateTransactions(context.WithoutCancel(c.Request.Context()), count); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, fmt.Sprintf("Successfully simulated %d transactions", count))
}

// Start handles POST /transactions/simulate/start.
func (h *SimulationHandler) Start(c *gin.Context) {
	var q dto.StartSimulationQuery
	if !bindQuery(c, &q) {
		return
	}
	rate := h.defaultRate
	if q.TransactionsPerMinute != nil {
		rate = *q.TransactionsPerMinute
	}

	h.sim.StartSimulation(rate)
	response.Message(c, fmt.Sprintf("Started transaction simulation at %d transactions per minute", rate))
}

// Stop handles POST /transactions/simulate/stop.
func (h *SimulationHandler) Stop(c *gin.Context) {
	h.sim.StopSimulation()
	response.Message(c, "Stopped transaction simulation")
}

// Status handles GET /transactions/simulate/status.
func (h *SimulationHandler) Status(c *gin.Context) {
	response.OK(c, dto.NewSimulationStatusResponse(h.sim.Status()))
}
