package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Minimum total capital ratio under the KPMM framework (percent of ATMR).
const minimumCapitalRatio = 8.0

type CapitalRatioInput struct {
	Tier1Capital       float64 `json:"tier1_capital"`
	Tier2Capital       float64 `json:"tier2_capital"`
	RiskWeightedAssets float64 `json:"risk_weighted_assets"`
}

type CapitalRatioResult struct {
	CAR            float64 `json:"car"`         // total capital / ATMR, percent
	Tier1Ratio     float64 `json:"tier1_ratio"` // tier 1 / ATMR, percent
	Minimum        float64 `json:"minimum"`
	MeetsMinimum   bool    `json:"meets_minimum"`
	Shortfall      float64 `json:"shortfall,omitempty"` // capital needed to reach the minimum
	TotalCapital   float64 `json:"total_capital"`
	RequiredAmount float64 `json:"required_amount"` // minimum capital for the given ATMR
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// POST /tools/capital-ratio
// Demo calculator for the marketing site; rate limited per client IP.
func CalculateCapitalRatio(c *gin.Context) {
	var input CapitalRatioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if input.Tier1Capital < 0 || input.Tier2Capital < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Capital components cannot be negative"})
		return
	}
	if input.RiskWeightedAssets <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "risk_weighted_assets must be positive"})
		return
	}

	total := input.Tier1Capital + input.Tier2Capital
	car := total / input.RiskWeightedAssets * 100
	tier1 := input.Tier1Capital / input.RiskWeightedAssets * 100
	required := input.RiskWeightedAssets * minimumCapitalRatio / 100

	result := CapitalRatioResult{
		CAR:            round2(car),
		Tier1Ratio:     round2(tier1),
		Minimum:        minimumCapitalRatio,
		MeetsMinimum:   car >= minimumCapitalRatio,
		TotalCapital:   round2(total),
		RequiredAmount: round2(required),
	}
	if !result.MeetsMinimum {
		result.Shortfall = round2(required - total)
	}

	c.JSON(http.StatusOK, result)
}
