package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vessel-propsim/internal/api/models"
	"vessel-propsim/internal/store"
)

// CatalogHandler serves the stored configurations, profiles, and results.
type CatalogHandler struct {
	store *store.Store
	log   zerolog.Logger
}

func NewCatalogHandler(st *store.Store, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{store: st, log: log}
}

// ListConfigurations handles GET /api/v1/configurations.
func (h *CatalogHandler) ListConfigurations(c *gin.Context) {
	cfgs, err := h.store.Configurations(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list configurations")
		respondError(c, http.StatusInternalServerError, "STORE_ERROR", err)
		return
	}
	out := make([]models.ConfigPayload, 0, len(cfgs))
	for _, cfg := range cfgs {
		out = append(out, models.ConfigPayloadFrom(cfg))
	}
	c.JSON(http.StatusOK, gin.H{"configurations": out})
}

// ListProfiles handles GET /api/v1/profiles.
func (h *CatalogHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.store.Profiles(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list profiles")
		respondError(c, http.StatusInternalServerError, "STORE_ERROR", err)
		return
	}
	out := make([]models.ProfilePayload, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, models.ProfilePayloadFrom(p))
	}
	c.JSON(http.StatusOK, gin.H{"profiles": out})
}

// ListResults handles GET /api/v1/results.
func (h *CatalogHandler) ListResults(c *gin.Context) {
	rows, err := h.store.Results(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list results")
		respondError(c, http.StatusInternalServerError, "STORE_ERROR", err)
		return
	}
	out := make([]models.StoredResult, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.StoredResult{
			ID:                r.ID,
			CreatedAt:         r.CreatedAt,
			ConfigID:          r.ConfigID,
			ProfileID:         r.ProfileID,
			TotalFuelKg:       r.TotalFuelKg,
			TotalCO2Tonnes:    r.TotalCO2Tonnes,
			TotalSOxTonnes:    r.TotalSOxTonnes,
			FuelCost:          r.FuelCost,
			AnnualCapitalCost: r.AnnualCapitalCost,
			TotalAnnualCost:   r.TotalAnnualCost,
			SailingFuelKg:     r.SailingFuelKg,
			ManeuveringFuelKg: r.ManeuveringFuelKg,
			PortFuelKg:        r.PortFuelKg,
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": out})
}
