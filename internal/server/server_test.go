package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwell/retirement-compare/internal/domain"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	return New(Config{Addr: ":0"}, nil)
}

func doRequest(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func TestHealthz(t *testing.T) {
	s := newTestServer()
	rr := doRequest(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "retirement-compare", resp.Service)
}

func TestCompareEndpoint(t *testing.T) {
	s := newTestServer()

	body, err := json.Marshal(domain.DefaultComparisonRequest())
	require.NoError(t, err)

	rr := doRequest(t, s, http.MethodPost, "/api/compare", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result domain.ComparisonResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.False(t, result.Contribution.EmployeeContribution.IsZero())
	assert.Len(t, result.TraditionalProjections, 30)
	assert.NotEmpty(t, result.ProjectionSummary.Advantage)
}

func TestCompareEndpointAppliesDefaults(t *testing.T) {
	s := newTestServer()

	// A minimal body keeps the documented defaults for everything else.
	rr := doRequest(t, s, http.MethodPost, "/api/compare", []byte(`{"annual_income": 80000}`))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result domain.ComparisonResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	// 10% of 80000 by default.
	assert.Equal(t, "8000", result.Contribution.EmployeeContribution.String())
}

func TestCompareEndpointRejectsBadBody(t *testing.T) {
	s := newTestServer()

	rr := doRequest(t, s, http.MethodPost, "/api/compare", []byte(`{"annual_income": "lots"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCompareEndpointRejectsInvalidRequest(t *testing.T) {
	s := newTestServer()

	req := domain.DefaultComparisonRequest()
	req.CurrentAge = 66
	req.RetirementAge = 65
	body, err := json.Marshal(req)
	require.NoError(t, err)

	rr := doRequest(t, s, http.MethodPost, "/api/compare", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "retirement age")
}

func TestLimitsEndpoint(t *testing.T) {
	s := newTestServer()

	rr := doRequest(t, s, http.MethodGet, "/api/limits/2024", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var limits domain.LimitsInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &limits))
	assert.Equal(t, 2024, limits.Year)
	assert.Equal(t, "23000", limits.BaseLimit.String())
	assert.Equal(t, "30500", limits.TotalWithCatchup.String())
}

func TestLimitsEndpointUnknownYear(t *testing.T) {
	s := newTestServer()
	rr := doRequest(t, s, http.MethodGet, "/api/limits/1999", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLimitsEndpointBadYear(t *testing.T) {
	s := newTestServer()
	rr := doRequest(t, s, http.MethodGet, "/api/limits/banana", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
