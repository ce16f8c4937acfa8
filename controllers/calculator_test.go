package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestCapitalRatioCalculation(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/tools/capital-ratio", "", gin.H{
		"tier1_capital":        80.0,
		"tier2_capital":        20.0,
		"risk_weighted_assets": 1000.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	require.Equal(t, float64(10), body["car"])
	require.Equal(t, float64(8), body["tier1_ratio"])
	require.Equal(t, true, body["meets_minimum"])
	require.Equal(t, float64(80), body["required_amount"])
}

func TestCapitalRatioShortfall(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/tools/capital-ratio", "", gin.H{
		"tier1_capital":        30.0,
		"tier2_capital":        10.0,
		"risk_weighted_assets": 1000.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, float64(4), body["car"])
	require.Equal(t, false, body["meets_minimum"])
	require.Equal(t, float64(40), body["shortfall"])
}

func TestCapitalRatioValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		payload gin.H
	}{
		{"zero RWA", gin.H{"tier1_capital": 10.0, "risk_weighted_assets": 0.0}},
		{"negative RWA", gin.H{"tier1_capital": 10.0, "risk_weighted_assets": -5.0}},
		{"negative tier1", gin.H{"tier1_capital": -1.0, "risk_weighted_assets": 100.0}},
		{"negative tier2", gin.H{"tier2_capital": -1.0, "risk_weighted_assets": 100.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/api/tools/capital-ratio", "", tt.payload)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCapitalRatioRateLimited(t *testing.T) {
	env := newTestEnv(t)

	payload := gin.H{
		"tier1_capital":        80.0,
		"tier2_capital":        20.0,
		"risk_weighted_assets": 1000.0,
	}

	// The bucket allows a burst of 5 per IP; the sixth call in quick
	// succession must be rejected.
	for i := 0; i < 5; i++ {
		w := env.request(t, http.MethodPost, "/api/tools/capital-ratio", "", payload)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := env.request(t, http.MethodPost, "/api/tools/capital-ratio", "", payload)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
}
