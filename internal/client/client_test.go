package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-profit/internal/api"
	"solar-profit/internal/api/models"
	"solar-profit/internal/config"
	"solar-profit/internal/model"
)

func newServer(t *testing.T, mutate func(*config.Config)) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	caches, err := api.NewCaches(cfg)
	require.NoError(t, err)
	l := logrus.New()
	l.SetOutput(io.Discard)

	srv := httptest.NewServer(api.NewRouter(cfg, caches, logrus.NewEntry(l)))
	t.Cleanup(srv.Close)
	return srv
}

func TestEstimateRoundTrip(t *testing.T) {
	c := New(newServer(t, nil).URL)
	ctx := context.Background()
	require.NoError(t, c.Health(ctx))

	resp, err := c.Estimate(ctx, model.Inputs{Power: 10, InitialDeviation: 2, ImprovedDeviation: 1, RatePerKWh: 2})
	require.NoError(t, err)
	assert.True(t, resp.Finite)
	assert.Equal(t, 175.38, resp.Report.Estimator().NetAfter)

	cached, err := c.GetEstimate(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, cached.ID)
}

func TestAPIError(t *testing.T) {
	c := New(newServer(t, func(cfg *config.Config) { cfg.Estimator.StrictDomain = true }).URL)

	_, err := c.Estimate(context.Background(), model.Inputs{Power: 10, ImprovedDeviation: 1})
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "DOMAIN_ERROR", apiErr.Code)

	_, err = c.GetEstimate(context.Background(), "missing")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestCompare(t *testing.T) {
	c := New(newServer(t, nil).URL)
	req := models.CompareRequest{
		Base: models.NewEstimateRequest(model.Inputs{Power: 10, InitialDeviation: 2, ImprovedDeviation: 1, RatePerKWh: 2}),
		Variations: []models.Variation{
			{Name: "a", Inputs: models.NewOverridesRequest(model.Overrides{ImprovedDeviation: model.Set(0.5)})},
			{Name: "b", Inputs: models.NewOverridesRequest(model.Overrides{ImprovedDeviation: model.Set(1.5)})},
			{Name: "collapsed", Inputs: models.NewOverridesRequest(model.Overrides{ImprovedDeviation: model.Set(0)})},
		},
	}
	resp, err := c.Compare(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Comparison, 3)
	assert.Equal(t, "a", resp.Comparison[0].Name)
	assert.Equal(t, model.Inputs{Power: 10, InitialDeviation: 2, ImprovedDeviation: 0.5, RatePerKWh: 2}, resp.Comparison[0].Inputs)
	assert.Equal(t, "collapsed", resp.Comparison[2].Name)
	assert.Equal(t, 0.0, resp.Comparison[2].Inputs.ImprovedDeviation)
}

func TestUnreachable(t *testing.T) {
	srv := newServer(t, nil)
	srv.Close()
	err := New(srv.URL).Health(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
