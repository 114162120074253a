package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vessel-propsim/internal/api/models"
	"vessel-propsim/internal/simulator"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSimulationHandler(simulator.New())
	r := gin.New()
	r.POST("/api/v1/simulate", h.RunSimulation)
	r.POST("/api/v1/compare", h.CompareConfigurations)
	r.POST("/api/v1/sensitivity", h.FuelPriceSensitivity)
	return r
}

func conventionalPayload() models.ConfigPayload {
	return models.ConfigPayload{
		Name:           "Conventional Diesel",
		Type:           "conventional",
		MainEngineSFOC: 181.0,
		AuxEngineSFOC:  195.1,
		CO2Factor:      3.206,
		SOxFactor:      0.001,
		InitialCost:    2_800_000,
		FuelPrice:      650,
	}
}

func hybridPayload() models.ConfigPayload {
	return models.ConfigPayload{
		Name:               "Hybrid Electric",
		Type:               "hybrid",
		AuxEngineSFOC:      194.5,
		BatteryCapacityKWh: 1500,
		BatteryEfficiency:  0.95,
		MotorEfficiency:    0.97,
		CO2Factor:          3.206,
		SOxFactor:          0.001,
		InitialCost:        3_900_000,
		FuelPrice:          650,
	}
}

func tankerPayload() models.ProfilePayload {
	return models.ProfilePayload{
		Name:                   "Short-Sea Tanker Route",
		SailingHours:           5694,
		SailingPropPowerKW:     3200,
		SailingElecPowerKW:     378,
		ManeuveringHours:       438,
		ManeuveringPropPowerKW: 1200,
		ManeuveringElecPowerKW: 400,
		PortHours:              2628,
		PortElecPowerKW:        450,
	}
}

func post(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRunSimulation(t *testing.T) {
	r := testRouter()
	w := post(t, r, "/api/v1/simulate", models.SimulateRequest{
		Config:  conventionalPayload(),
		Profile: tankerPayload(),
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "Conventional Diesel", resp.Result.Configuration)
	assert.Greater(t, resp.Result.TotalFuelKg, 0.0)
	assert.Len(t, resp.Result.Breakdown, 3)
}

func TestRunSimulation_InvalidBody(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestRunSimulation_UnsupportedType(t *testing.T) {
	r := testRouter()
	cfg := conventionalPayload()
	cfg.Type = "nuclear"

	w := post(t, r, "/api/v1/simulate", models.SimulateRequest{
		Config:  cfg,
		Profile: tankerPayload(),
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_TYPE", resp.Error.Code)
}

func TestRunSimulation_InvalidConfig(t *testing.T) {
	r := testRouter()
	cfg := conventionalPayload()
	cfg.MainEngineSFOC = 0

	w := post(t, r, "/api/v1/simulate", models.SimulateRequest{
		Config:  cfg,
		Profile: tankerPayload(),
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_CONFIG", resp.Error.Code)
}

func TestCompareConfigurations(t *testing.T) {
	r := testRouter()
	w := post(t, r, "/api/v1/compare", models.CompareRequest{
		Configurations: []models.ConfigPayload{conventionalPayload(), hybridPayload()},
		Profile:        tankerPayload(),
		BaselineIndex:  0,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)

	base := resp.Results[0]
	require.NotNil(t, base.VsBaseline)
	assert.True(t, base.VsBaseline.IsBaseline)

	alt := resp.Results[1]
	require.NotNil(t, alt.VsBaseline)
	assert.False(t, alt.VsBaseline.IsBaseline)
}

func TestFuelPriceSensitivity(t *testing.T) {
	r := testRouter()
	w := post(t, r, "/api/v1/sensitivity", models.SensitivityRequest{
		Config:      conventionalPayload(),
		Profile:     tankerPayload(),
		Multipliers: []float64{0.5, 1.0, 1.5},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SensitivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "Conventional Diesel", resp.Configuration)
	require.Len(t, resp.Points, 3)
	assert.Greater(t, resp.Slope, 0.0)
	assert.InDelta(t, resp.Points[0].TotalAnnualCost, resp.MinCost, 1e-9)
	assert.InDelta(t, resp.Points[2].TotalAnnualCost, resp.MaxCost, 1e-9)
}

func TestFuelPriceSensitivity_DefaultMultipliers(t *testing.T) {
	r := testRouter()
	w := post(t, r, "/api/v1/sensitivity", models.SensitivityRequest{
		Config:  conventionalPayload(),
		Profile: tankerPayload(),
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SensitivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Points, len(defaultMultipliers))
	assert.InDelta(t, 0.5, resp.Points[0].Multiplier, 1e-9)
}

func TestFuelPriceSensitivity_InvalidConfig(t *testing.T) {
	r := testRouter()
	cfg := conventionalPayload()
	cfg.Type = "nuclear"

	w := post(t, r, "/api/v1/sensitivity", models.SensitivityRequest{
		Config:  cfg,
		Profile: tankerPayload(),
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_TYPE", resp.Error.Code)
}

func TestCompareConfigurations_Empty(t *testing.T) {
	r := testRouter()
	w := post(t, r, "/api/v1/compare", models.CompareRequest{
		Configurations: []models.ConfigPayload{},
		Profile:        tankerPayload(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareConfigurations_BadBaseline(t *testing.T) {
	r := testRouter()
	w := post(t, r, "/api/v1/compare", models.CompareRequest{
		Configurations: []models.ConfigPayload{conventionalPayload()},
		Profile:        tankerPayload(),
		BaselineIndex:  3,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_BASELINE", resp.Error.Code)
}
