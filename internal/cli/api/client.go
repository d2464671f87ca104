package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Item mirrors the server's item representation.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Client is a minimal HTTP client for the items API.
// Every request carries the API key in the x-api-key header.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewClient creates a client for the given server base URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    http.DefaultClient,
	}
}

// ListItems fetches all items from the server.
func (c *Client) ListItems() ([]Item, error) {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+"/items", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var out struct {
		Items []Item `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CreateItem creates an item with the given name and returns it with the assigned id.
func (c *Client) CreateItem(name string) (Item, error) {
	b, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return Item{}, err
	}
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/items", bytes.NewReader(b))
	if err != nil {
		return Item{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Item{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return Item{}, apiError(resp)
	}

	var it Item
	if err := json.NewDecoder(resp.Body).Decode(&it); err != nil {
		return Item{}, err
	}
	return it, nil
}

// apiError turns an error response body {"error": "..."} into a Go error.
func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
