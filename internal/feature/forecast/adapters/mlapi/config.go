// Package mlapi provides a client for the external demand forecasting API.
package mlapi

import "time"

// Config holds configuration for the forecast API client.
type Config struct {
	BaseURL string        // Base URL for the API (e.g. "http://ml-service:8000")
	Timeout time.Duration // HTTP request timeout
}
