package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calcware/numerics/internal/infrastructure/monitoring"
	calcProvider "github.com/calcware/numerics/internal/providers/calc"
	"github.com/calcware/numerics/internal/service"
	"github.com/calcware/numerics/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testMetrics = monitoring.NewMetrics()

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(calcProvider.NewProvider()))

	handlers := NewHandlers(registry, testMetrics)

	router := gin.New()
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)
	return router
}

func execute(t *testing.T, router *gin.Engine, toolID string, params map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(types.ExecuteRequest{ToolID: toolID, Params: params})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/services/execute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "online")
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestListServices(t *testing.T) {
	router := newTestRouter(t)

	t.Run("All services", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Services []types.Service `json:"services"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Services, 1)
		assert.Equal(t, "calc", resp.Services[0].ID)
		assert.NotEmpty(t, resp.Services[0].Tools)
	})

	t.Run("Unknown category is empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services?category=nope", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Services []types.Service `json:"services"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Services)
	})
}

func TestExecuteService(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Add", func(t *testing.T) {
		w := execute(t, router, "calc.add", map[string]interface{}{"a": 2, "b": 3})
		assert.Equal(t, http.StatusOK, w.Code)

		var result types.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, 5.0, result.Data["result"])
	})

	t.Run("Divide by zero surfaces failure result", func(t *testing.T) {
		w := execute(t, router, "calc.divide", map[string]interface{}{"a": 5, "b": 0})
		assert.Equal(t, http.StatusOK, w.Code)

		var result types.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.False(t, result.Success)
		require.NotNil(t, result.Error)
		assert.Equal(t, "division by zero", *result.Error)
	})

	t.Run("Process array", func(t *testing.T) {
		w := execute(t, router, "calc.process_array", map[string]interface{}{
			"numbers": []interface{}{1, -2, 3, 0, 4, -1},
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var result types.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, []interface{}{2.0, 6.0, 8.0}, result.Data["result"])
	})

	t.Run("Unknown service", func(t *testing.T) {
		w := execute(t, router, "ghost.add", map[string]interface{}{})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/services/execute", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing tool_id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/services/execute", bytes.NewReader([]byte(`{"params":{}}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
