package handlers

import (
	"net/http"

	"solar-profit/internal/analysis"
	"solar-profit/internal/api/models"
	"solar-profit/internal/estimator"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CompareHandler handles scenario comparison and sweep requests
type CompareHandler struct {
	est    estimator.Estimator
	strict bool
	log    *logrus.Entry
}

// NewCompareHandler creates a new compare handler
func NewCompareHandler(est estimator.Estimator, strict bool, log *logrus.Entry) *CompareHandler {
	return &CompareHandler{est: est, strict: strict, log: log}
}

// Compare handles POST /api/v1/estimate/compare
func (h *CompareHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	base, _ := req.Base.Parse()
	variations := make([]analysis.Variation, 0, len(req.Variations))
	for _, v := range req.Variations {
		variations = append(variations, analysis.Variation{Name: v.Name, Overrides: v.Inputs.Overrides()})
	}

	ranked := analysis.Compare(base, variations, h.est)
	if h.strict {
		for _, r := range ranked {
			if err := estimator.CheckDomain(r.Inputs); err != nil {
				abortError(c, http.StatusUnprocessableEntity, "DOMAIN_ERROR", r.Name+": "+err.Error())
				return
			}
		}
	}

	out := make([]models.ComparisonResult, 0, len(ranked))
	for i, r := range ranked {
		out = append(out, models.ComparisonResult{
			Rank:   i + 1,
			Name:   r.Name,
			Inputs: r.Inputs,
			Report: models.NewReport(r.Report),
			Gain:   models.NewGain(r.Gain()),
		})
	}
	h.log.WithField("variations", len(out)).Debug("comparison computed")
	c.JSON(http.StatusOK, models.CompareResponse{Comparison: out})
}

// Sweep handles POST /api/v1/estimate/sweep
func (h *CompareHandler) Sweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	base, _ := req.Base.Parse()
	points, err := analysis.Sweep(base, req.From, req.To, req.Step, h.est)
	if err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_SWEEP", err.Error())
		return
	}
	if h.strict {
		for _, p := range points {
			in := base
			in.ImprovedDeviation = p.ImprovedDeviation
			if err := estimator.CheckDomain(in); err != nil {
				abortError(c, http.StatusUnprocessableEntity, "DOMAIN_ERROR", err.Error())
				return
			}
		}
	}

	out := make([]models.SweepPoint, 0, len(points))
	for _, p := range points {
		out = append(out, models.SweepPoint{
			ImprovedDeviation: p.ImprovedDeviation,
			Report:            models.NewReport(p.Report),
			Gain:              models.NewGain(p.Report.Gain()),
		})
	}
	c.JSON(http.StatusOK, models.SweepResponse{Points: out})
}
