package handlers

import (
	"net/http"

	"solar-profit/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FieldHandler describes the estimate form
type FieldHandler struct {
	log *logrus.Entry
}

// NewFieldHandler creates a new field handler
func NewFieldHandler(log *logrus.Entry) *FieldHandler {
	return &FieldHandler{log: log}
}

// Fields lists the inputs of an estimate, in form order.
var Fields = []models.FieldInfo{
	{
		Name:        "power",
		Label:       "Power (MW)",
		Unit:        "MW",
		Description: "Nominal plant output.",
	},
	{
		Name:        "initial_deviation",
		Label:       "First deviation (MW)",
		Unit:        "MW",
		Description: "Standard deviation of the production error before the improvement.",
	},
	{
		Name:        "improved_deviation",
		Label:       "Second deviation (MW)",
		Unit:        "MW",
		Description: "Standard deviation after the improvement. Also sets the half-width of the integration window.",
	},
	{
		Name:        "rate_per_kwh",
		Label:       "Electricity price (UAH/kWh)",
		Unit:        "UAH/kWh",
		Description: "Price per kWh delivered.",
	},
}

// ListFields handles GET /api/v1/fields
func (h *FieldHandler) ListFields(c *gin.Context) {
	h.log.WithField("count", len(Fields)).Debug("listing fields")
	c.JSON(http.StatusOK, gin.H{"fields": Fields})
}
