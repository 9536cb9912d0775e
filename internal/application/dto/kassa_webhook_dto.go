package dto

import "github.com/shopspring/decimal"

// KassaWebhookRequest Body für POST /api/kassa/webhook.
// event_id ist ein optionaler Idempotenzschlüssel des Terminals; ohne ihn wird
// jede Zustellung unabhängig verbucht (auch Wiederholungen).
type KassaWebhookRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  decimal.Decimal  `json:"quantity"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	EventID   string           `json:"event_id,omitempty"`
}

// KassaWebhookResponse Erfolgsantwort des Webhooks.
// Feldnamen sind Teil des externen Kassen-Protokolls und bleiben englisch.
// new_quantity ist eine JSON-Zahl, kein String: die Terminals rechnen damit.
type KassaWebhookResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	NewQuantity   float64 `json:"new_quantity"`
	NeedsPurchase bool    `json:"needs_purchase"`
	SaleID        string  `json:"sale_id"`
}

// WebhookErrorResponse Fehlerkörper des Webhooks ({error}, Kassen-Protokoll).
type WebhookErrorResponse struct {
	Error string `json:"error"`
}
