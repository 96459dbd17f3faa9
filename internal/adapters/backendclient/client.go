// Package backendclient talks to the storefront API on behalf of the order
// and contact forms. It is the forms' only route to the outside world.
package backendclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/harichselvamc/merakiartist/internal/domain"
	"github.com/harichselvamc/merakiartist/internal/orderform"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: &http.Client{Timeout: 30 * time.Second}}
}

// Upload posts one file as the multipart "file" field and returns the URL
// the backend stored it under.
func (c *Client) Upload(ctx context.Context, file domain.ImageFile) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", file.Name)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(file.Data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Success bool   `json:"success"`
		FileURL string `json:"fileUrl"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("upload: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !out.Success {
		if out.Message != "" {
			return "", &orderform.ServerError{Message: out.Message}
		}
		return "", fmt.Errorf("upload: unexpected status %d", resp.StatusCode)
	}
	return out.FileURL, nil
}

func (c *Client) SendOrderConfirmation(ctx context.Context, conf domain.OrderConfirmation, cust domain.Customer, screenshotURL string) error {
	payload := struct {
		OrderDetails domain.OrderConfirmation `json:"orderDetails"`
		domain.Customer
		PaymentScreenshotURL string `json:"paymentScreenshotUrl,omitempty"`
	}{conf, cust, screenshotURL}
	return c.postJSON(ctx, "/api/send-order-confirmation", payload)
}

func (c *Client) SendContact(ctx context.Context, msg domain.ContactMessage) error {
	return c.postJSON(ctx, "/api/contact", msg)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	var out struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	if out.Message != "" {
		return &orderform.ServerError{Message: out.Message}
	}
	return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
}
