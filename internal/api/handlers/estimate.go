package handlers

import (
	"errors"
	"net/http"
	"strings"

	"solar-profit/internal/api/models"
	"solar-profit/internal/cache"
	"solar-profit/internal/estimator"
	"solar-profit/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EstimateHandler handles estimate-related requests
type EstimateHandler struct {
	est    estimator.Estimator
	strict bool
	// results maps id -> response, ids maps inputs digest -> id.
	results *cache.TTLCache[models.EstimateResponse]
	ids     *cache.TTLCache[string]
	log     *logrus.Entry
}

// NewEstimateHandler creates a new estimate handler.
// A nil results cache disables GET /estimate/:id.
func NewEstimateHandler(est estimator.Estimator, strict bool, results *cache.TTLCache[models.EstimateResponse], ids *cache.TTLCache[string], log *logrus.Entry) *EstimateHandler {
	return &EstimateHandler{
		est:     est,
		strict:  strict,
		results: results,
		ids:     ids,
		log:     log,
	}
}

// Estimate handles POST /api/v1/estimate
func (h *EstimateHandler) Estimate(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	h.respond(c, req.Parse)
}

// EstimateQuery handles GET /api/v1/estimate?power=..&initial_deviation=..
func (h *EstimateHandler) EstimateQuery(c *gin.Context) {
	h.respond(c, func() (model.Inputs, model.ParsedInputs) {
		return model.ParseInputs(model.RawInputs{
			Power:             c.Query("power"),
			InitialDeviation:  c.Query("initial_deviation"),
			ImprovedDeviation: c.Query("improved_deviation"),
			RatePerKWh:        c.Query("rate_per_kwh"),
		})
	})
}

// GetEstimate handles GET /api/v1/estimate/:id
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	if h.results == nil {
		abortError(c, http.StatusNotImplemented, "CACHE_DISABLED", "Result caching is disabled on this server.")
		return
	}
	id := c.Param("id")
	resp, ok := h.results.Get(id)
	if !ok {
		abortError(c, http.StatusNotFound, "NOT_FOUND", "No estimate with id "+id)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstimateHandler) respond(c *gin.Context, parse func() (model.Inputs, model.ParsedInputs)) {
	in, parsed := parse()

	warnings, err := h.checkDomain(in)
	if err != nil {
		var de *estimator.DomainError
		errors.As(err, &de)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DOMAIN_ERROR",
				Message: err.Error(),
				Details: map[string]interface{}{"field": de.Field},
			},
		})
		return
	}

	r := h.est.Compute(in)
	resp := models.EstimateResponse{
		Inputs:    in,
		Defaulted: parsed.Defaulted(),
		Report:    models.NewReport(r),
		Finite:    r.Finite(),
		Warnings:  warnings,
	}
	resp.ID = h.store(in, resp)

	h.log.WithFields(logrus.Fields{
		"id":        resp.ID,
		"defaulted": len(resp.Defaulted),
		"finite":    resp.Finite,
	}).Debug("estimate computed")

	c.JSON(http.StatusOK, resp)
}

// checkDomain returns warnings in lenient mode and an error in strict mode.
func (h *EstimateHandler) checkDomain(in model.Inputs) ([]string, error) {
	err := estimator.CheckDomain(in)
	if err == nil {
		return nil, nil
	}
	if h.strict {
		return nil, err
	}
	return []string{err.Error()}, nil
}

func (h *EstimateHandler) store(in model.Inputs, resp models.EstimateResponse) string {
	if h.results == nil {
		return ""
	}
	key := cache.InputsKey(in) + ":" + strings.Join(resp.Defaulted, ",")
	if id, ok := h.ids.Get(key); ok {
		if _, ok := h.results.Get(id); ok {
			return id
		}
	}
	id := uuid.NewString()
	resp.ID = id
	h.results.Set(id, resp)
	h.ids.Set(key, id)
	return id
}

func abortError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
