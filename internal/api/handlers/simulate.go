package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vessel-propsim/internal/analysis"
	"vessel-propsim/internal/api/models"
	"vessel-propsim/internal/model"
	"vessel-propsim/internal/propulsion"
	"vessel-propsim/internal/simulator"
)

// SimulationHandler serves the simulate/compare endpoints.
type SimulationHandler struct {
	sim *simulator.Simulator
}

func NewSimulationHandler(sim *simulator.Simulator) *SimulationHandler {
	return &SimulationHandler{sim: sim}
}

// RunSimulation handles POST /api/v1/simulate.
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	result, err := h.sim.Simulate(req.Config.ToModel(), req.Profile.ToModel())
	if err != nil {
		respondError(c, simulationStatus(err), simulationCode(err), err)
		return
	}

	c.JSON(http.StatusOK, models.SimulateResponse{
		ID:     uuid.NewString(),
		Status: "completed",
		Result: models.ResultPayloadFrom(result),
	})
}

// CompareConfigurations handles POST /api/v1/compare.
func (h *SimulationHandler) CompareConfigurations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	if len(req.Configurations) == 0 {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST",
			errors.New("at least one configuration is required"))
		return
	}

	cfgs := make([]model.Config, 0, len(req.Configurations))
	for _, p := range req.Configurations {
		cfgs = append(cfgs, p.ToModel())
	}

	results, err := h.sim.Compare(cfgs, req.Profile.ToModel())
	if err != nil {
		respondError(c, simulationStatus(err), simulationCode(err), err)
		return
	}
	if err := simulator.RelativePerformance(results, req.BaselineIndex); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_BASELINE", err)
		return
	}

	payloads := make([]models.ResultPayload, 0, len(results))
	for _, r := range results {
		payloads = append(payloads, models.ResultPayloadFrom(r))
	}
	c.JSON(http.StatusOK, models.CompareResponse{
		ID:      uuid.NewString(),
		Status:  "completed",
		Results: payloads,
	})
}

var defaultMultipliers = []float64{0.5, 0.75, 1.0, 1.25, 1.5}

// FuelPriceSensitivity handles POST /api/v1/sensitivity.
func (h *SimulationHandler) FuelPriceSensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	multipliers := req.Multipliers
	if len(multipliers) == 0 {
		multipliers = defaultMultipliers
	}

	sens, err := analysis.FuelPriceSensitivity(h.sim, req.Config.ToModel(), req.Profile.ToModel(), multipliers)
	if err != nil {
		respondError(c, simulationStatus(err), simulationCode(err), err)
		return
	}

	c.JSON(http.StatusOK, models.SensitivityResponseFrom(uuid.NewString(), sens))
}

func simulationStatus(err error) int {
	// All simulation failures are caller mistakes (bad config or profile);
	// nothing in the pipeline is transient.
	_ = err
	return http.StatusBadRequest
}

func simulationCode(err error) string {
	if errors.Is(err, propulsion.ErrUnsupportedType) {
		return "UNSUPPORTED_TYPE"
	}
	return "INVALID_CONFIG"
}

func respondError(c *gin.Context, status int, code string, err error) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
