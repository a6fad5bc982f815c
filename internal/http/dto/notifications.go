package dto

// NotificationRequest mirrors the v2 API body so callers can send the same JSON
// to the relay that they would send to HipChat.
type NotificationRequest struct {
	Message       string `json:"message"`
	MessageFormat string `json:"message_format"`
	Color         string `json:"color"`
	Notify        bool   `json:"notify"`
	From          string `json:"from"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// ProviderStatus is the HipChat API status when the provider rejected the call.
	ProviderStatus int `json:"provider_status,omitempty"`
}
