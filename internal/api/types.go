// Package api defines the request and response shapes of the HTTP API.
// Request types carry Gin binding tags; response field names are part of
// the wire contract and must not change.
package api

import "time"

// RegisterRequest は /api/auth/register のリクエストボディです。
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest は /api/auth/login のリクエストボディです。
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserSummary is the public view of a user embedded in token responses.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserSummary `json:"user"`
}

// MeResponse is the authenticated user's own record, password hash stripped.
type MeResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SaleResponse is a single generated sales row.
type SaleResponse struct {
	ID        string  `json:"id"`
	DrugName  string  `json:"drug_name"`
	Category  string  `json:"category"`
	UnitsSold int     `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
	Date      string  `json:"date"`
}

// SalesResponse は /api/sales のレスポンスです。
type SalesResponse struct {
	Sales []SaleResponse `json:"sales"`
	Total int            `json:"total"`
}

// RankedStat is a named revenue/units pair used for top drugs and categories.
type RankedStat struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Units   int     `json:"units"`
}

// MetricsResponse は /api/sales/metrics のレスポンスです。
type MetricsResponse struct {
	TotalRevenue   float64      `json:"total_revenue"`
	TotalUnits     int          `json:"total_units"`
	AvgDailyDemand float64      `json:"avg_daily_demand"`
	TopDrugs       []RankedStat `json:"top_drugs"`
	Categories     []RankedStat `json:"categories"`
	Period         string       `json:"period"`
}

// TrendsResponse は /api/sales/trends のレスポンスです。
// The three arrays are parallel and ordered by ascending date.
type TrendsResponse struct {
	Dates   []string  `json:"dates"`
	Units   []int     `json:"units"`
	Revenue []float64 `json:"revenue"`
}

// ConfidenceInterval carries the lower/upper band around predicted values.
type ConfidenceInterval struct {
	Lower []int `json:"lower"`
	Upper []int `json:"upper"`
}

// ForecastResponse は /api/predict のローカル予測レスポンスです。
// 外部予測APIが設定されている場合はそのペイロードがそのまま中継されます。
type ForecastResponse struct {
	HistoricalDates    []string           `json:"historical_dates"`
	HistoricalValues   []int              `json:"historical_values"`
	ForecastDates      []string           `json:"forecast_dates"`
	Predicted          []int              `json:"predicted"`
	Drug               string             `json:"drug"`
	Status             string             `json:"status"`
	Model              string             `json:"model"`
	ConfidenceInterval ConfidenceInterval `json:"confidence_interval"`
}

// InsightResponse is a single recommendation record.
type InsightResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
	DrugName    *string `json:"drug_name"`
}

// InsightsResponse は /api/insights のレスポンスです。
type InsightsResponse struct {
	Insights []InsightResponse `json:"insights"`
	Total    int               `json:"total"`
}

// DrugResponse is a single catalog entry.
type DrugResponse struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	BasePrice float64 `json:"base_price"`
}

// DrugsResponse は /api/drugs のレスポンスです。
type DrugsResponse struct {
	Drugs []DrugResponse `json:"drugs"`
}

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
