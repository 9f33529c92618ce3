package utils

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"event-ticketing-demo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateValidationCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := GenerateValidationCode()
		require.NoError(t, err)
		require.Len(t, code, CodeLength)

		for _, r := range code {
			assert.True(t, strings.ContainsRune(CodeCharset, r),
				"code %q contains %q outside the charset", code, r)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 90, "codes should rarely collide")
}

func TestEncodeTicketQR(t *testing.T) {
	ticket := &models.Ticket{ID: "ticket-1", ValidationCode: "AB12CD"}

	png, err := EncodeTicketQR(ticket)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "output is a PNG image")
}

func TestDecodeTicketQR(t *testing.T) {
	payload, err := json.Marshal(TicketQRPayload{TicketID: "ticket-1", Code: "AB12CD"})
	require.NoError(t, err)

	decoded, err := DecodeTicketQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "ticket-1", decoded.TicketID)
	assert.Equal(t, "AB12CD", decoded.Code)

	_, err = DecodeTicketQR("not json")
	assert.Error(t, err)

	_, err = DecodeTicketQR(`{"ticketId":"","code":""}`)
	assert.Error(t, err)
}
