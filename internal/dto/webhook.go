package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// GatewayAmount accepts both JSON numbers and numeric strings. Some gateway
// configurations serialize amounts as strings ("500"), and the receiver
// coerces either form. A missing amount records a zero payment.
type GatewayAmount float64

func (a *GatewayAmount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*a = GatewayAmount(f)
	return nil
}

var _ json.Unmarshaler = (*GatewayAmount)(nil)

// WebhookRequest is the gateway notification body.
type WebhookRequest struct {
	Secret        string        `json:"secret"`
	StudentID     string        `json:"student_id"`
	Amount        GatewayAmount `json:"amount"`
	TransactionID string        `json:"transaction_id"`
	Purpose       string        `json:"purpose"`
}

// WebhookResponse acknowledges a recorded gateway payment.
type WebhookResponse struct {
	Status    string `json:"status"`
	ReceiptID string `json:"receipt_id"`
}
