// Package crmclient is the typed HTTP client the scheduled jobs use to talk
// to the CRM API.
package crmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phenrril/crmcell/internal/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type OrderSummary struct {
	ID       string `json:"id"`
	Customer struct {
		Email string `json:"email"`
	} `json:"customer"`
}

type RestockResponse struct {
	OK       bool   `json:"ok"`
	Message  string `json:"message"`
	Products []struct {
		Name  string `json:"name"`
		Stock int    `json:"stock"`
	} `json:"products"`
}

type ReportResponse struct {
	Customers int64  `json:"customers"`
	Orders    int64  `json:"orders"`
	Revenue   string `json:"revenue"`
}

func (c *Client) Health(ctx context.Context) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

func (c *Client) OrdersSince(ctx context.Context, since time.Time) ([]OrderSummary, error) {
	q := url.Values{}
	q.Set("since", since.Format(time.RFC3339))
	path := "/api/orders?" + q.Encode()
	var out []OrderSummary
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Restock(ctx context.Context) (*RestockResponse, error) {
	var out RestockResponse
	if err := c.do(ctx, http.MethodPost, "/api/products/restock", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Report(ctx context.Context) (*ReportResponse, error) {
	var out ReportResponse
	if err := c.do(ctx, http.MethodGet, "/api/report", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(data)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrDependency, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s: status %d", domain.ErrDependency, method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: decode: %v", domain.ErrDependency, method, path, err)
	}
	return nil
}
