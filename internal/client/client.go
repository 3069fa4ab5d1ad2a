// Package client consumes the record store's HTTP contract: bare JSON
// payloads on success, {"error": "..."} bodies on failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"payrolldesk/internal/domain/payroll"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
	}
}

// APIError carries the status and the store-provided message of a failed
// call. Message falls back to the HTTP status text when the body carries
// no error field.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("store returned %d: %s", e.Status, e.Message)
}

func (c *Client) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error) {
	url := c.BaseURL + "/api/payroll/all"
	if q := filter.Query().Encode(); q != "" {
		url += "?" + q
	}
	var records []payroll.Record
	if err := c.do(ctx, http.MethodGet, url, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) Get(ctx context.Context, id string) (payroll.Record, error) {
	var rec payroll.Record
	err := c.do(ctx, http.MethodGet, c.BaseURL+"/api/payroll/"+id, nil, &rec)
	return rec, err
}

func (c *Client) Create(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	var created payroll.Record
	err := c.do(ctx, http.MethodPost, c.BaseURL+"/api/payroll", rec, &created)
	return created, err
}

func (c *Client) Update(ctx context.Context, id string, rec payroll.Record) (payroll.Record, error) {
	var updated payroll.Record
	err := c.do(ctx, http.MethodPut, c.BaseURL+"/api/payroll/"+id, rec, &updated)
	return updated, err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.BaseURL+"/api/payroll/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return apiError(res)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func apiError(res *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)
	if body.Error == "" {
		body.Error = http.StatusText(res.StatusCode)
	}
	return &APIError{Status: res.StatusCode, Message: body.Error}
}
