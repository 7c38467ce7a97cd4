package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"solar-profit/internal/api/models"
	"solar-profit/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// APIError is a non-2xx answer from the estimate server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("estimate api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Client talks to the estimate HTTP API.
type Client struct {
	http *resty.Client
}

// New creates a client for baseURL (e.g. http://localhost:8080).
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

func (c *Client) Health(ctx context.Context) error {
	var out map[string]string
	return c.do(ctx, http.MethodGet, "/health", nil, &out)
}

// Estimate posts already-parsed inputs.
func (c *Client) Estimate(ctx context.Context, in model.Inputs) (*models.EstimateResponse, error) {
	var out models.EstimateResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/estimate", models.NewEstimateRequest(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetEstimate(ctx context.Context, id string) (*models.EstimateResponse, error) {
	var out models.EstimateResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/estimate/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Compare(ctx context.Context, req models.CompareRequest) (*models.CompareResponse, error) {
	var out models.CompareResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/estimate/compare", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var apiErr models.ErrorResponse
	req := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(&apiErr)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	if resp.IsError() {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Code:       apiErr.Error.Code,
			Message:    apiErr.Error.Message,
		}
	}
	return nil
}
