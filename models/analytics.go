package models

// AnalyticsEventRequest is the envelope posted to the tracking events API
type AnalyticsEventRequest struct {
	Events AnalyticsEvents `json:"events"`
}

// AnalyticsEvents wraps the single event carried per request
type AnalyticsEvents struct {
	EventParams AnalyticsEventParams `json:"event_params"`
}

// AnalyticsEventParams is the FPTI event payload. Timestamp is milliseconds
// since the epoch, as a string.
type AnalyticsEventParams struct {
	AppID           string `json:"app_id"`
	AppName         string `json:"app_name"`
	PartnerClientID string `json:"partner_client_id"`
	Component       string `json:"comp"`
	Environment     string `json:"merchant_sdk_env"`
	EventName       string `json:"event_name"`
	EventSource     string `json:"event_source"`
	OrderID         string `json:"order_id,omitempty"`
	SessionID       string `json:"session_id"`
	Timestamp       string `json:"t"`
	TenantName      string `json:"tenant_name"`
}
