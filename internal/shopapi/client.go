package shopapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jogardn/larek-storefront/pkg/models"
	"github.com/sirupsen/logrus"
)

// ItemListResponse is the shop API envelope for the catalog listing.
type ItemListResponse struct {
	Total int           `json:"total"`
	Items []models.Item `json:"items"`
}

// Client talks to the remote shop API: catalog fetch and order placement.
// Item image paths are relative and resolved against the CDN prefix.
type Client struct {
	baseURL    string
	cdnURL     string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL, cdnURL string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cdnURL:  strings.TrimRight(cdnURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// ImageURL resolves a relative item image path against the CDN prefix.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.cdnURL + path
}

func (c *Client) GetItems() ([]models.Item, error) {
	c.logger.Info("Fetching catalog from shop API")

	req, err := http.NewRequest("GET", c.baseURL+"/product", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to shop API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shop API returned error status: %d", resp.StatusCode)
	}

	var response ItemListResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode shop API response: %w", err)
	}

	c.logger.WithField("count", len(response.Items)).Info("Retrieved catalog from shop API")
	return response.Items, nil
}

func (c *Client) GetItem(itemID string) (*models.Item, error) {
	c.logger.WithField("item_id", itemID).Info("Fetching item from shop API")

	req, err := http.NewRequest("GET", c.baseURL+"/product/"+itemID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to shop API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("item not found in shop API")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shop API returned error status: %d", resp.StatusCode)
	}

	var item models.Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to decode shop API response: %w", err)
	}

	c.logger.WithField("item_id", itemID).Info("Retrieved item from shop API")
	return &item, nil
}

func (c *Client) PlaceOrder(order models.Order) (*models.OrderSuccess, error) {
	c.logger.WithFields(logrus.Fields{
		"total":       order.Total,
		"items_count": len(order.Items),
	}).Info("Sending order to shop API")

	jsonData, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/order", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to shop API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("shop API returned error status: %d", resp.StatusCode)
	}

	var success models.OrderSuccess
	if err := json.NewDecoder(resp.Body).Decode(&success); err != nil {
		return nil, fmt.Errorf("failed to decode shop API response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"order_id": success.ID,
		"total":    success.Total,
	}).Info("Received response from shop API")

	return &success, nil
}
