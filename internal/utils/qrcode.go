package utils

import (
	"encoding/json"
	"fmt"

	"event-ticketing-demo/internal/models"

	"github.com/skip2/go-qrcode"
)

// TicketQRPayload is the JSON document encoded into a ticket's QR image.
// Scanners post it back verbatim to the validation endpoint.
type TicketQRPayload struct {
	TicketID string `json:"ticketId"`
	Code     string `json:"code"`
}

// EncodeTicketQR renders a ticket's validation payload as a PNG QR code.
func EncodeTicketQR(ticket *models.Ticket) ([]byte, error) {
	payload, err := json.Marshal(TicketQRPayload{
		TicketID: ticket.ID,
		Code:     ticket.ValidationCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR payload: %w", err)
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return png, nil
}

// DecodeTicketQR parses a scanned QR payload.
func DecodeTicketQR(data string) (*TicketQRPayload, error) {
	var payload TicketQRPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("invalid QR payload: %w", err)
	}
	if payload.TicketID == "" || payload.Code == "" {
		return nil, fmt.Errorf("invalid QR payload: missing ticket id or code")
	}
	return &payload, nil
}
