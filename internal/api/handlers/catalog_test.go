package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vessel-propsim/internal/api/models"
	"vessel-propsim/internal/store"
)

var catalogDBCounter int

func catalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	catalogDBCounter++
	uri := fmt.Sprintf("file:catalog_test_%d?mode=memory&cache=shared", catalogDBCounter)
	st, err := store.Open(uri, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	require.NoError(t, st.Init(ctx))
	require.NoError(t, st.Seed(ctx))

	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler(st, zerolog.Nop())
	r := gin.New()
	r.GET("/api/v1/configurations", h.ListConfigurations)
	r.GET("/api/v1/profiles", h.ListProfiles)
	r.GET("/api/v1/results", h.ListResults)
	return r
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListConfigurations(t *testing.T) {
	r := catalogRouter(t)
	w := get(t, r, "/api/v1/configurations")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Configurations []models.ConfigPayload `json:"configurations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Configurations, 3)
	assert.Equal(t, "conventional", resp.Configurations[0].Type)
	assert.Equal(t, "dual-fuel", resp.Configurations[1].Type)
	assert.Equal(t, "hybrid", resp.Configurations[2].Type)
}

func TestListProfiles(t *testing.T) {
	r := catalogRouter(t)
	w := get(t, r, "/api/v1/profiles")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Profiles []models.ProfilePayload `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Profiles, 2)
	assert.Equal(t, "Short-Sea Tanker Route", resp.Profiles[0].Name)
}

func TestListResults_Empty(t *testing.T) {
	r := catalogRouter(t)
	w := get(t, r, "/api/v1/results")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []models.StoredResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Results)
}
