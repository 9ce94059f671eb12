package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionView(t *testing.T) {
	view := NewTransactionView(Transaction{
		ID:     "TRX-1700000000000",
		Price:  150000,
		Status: StatusPending,
	})

	assert.Equal(t, "Menunggu Konfirmasi", view.StatusLabel)
	assert.Equal(t, "Rp 150.000", view.PriceDisplay)
}

func TestTransactionViewJSON(t *testing.T) {
	view := NewTransactionView(Transaction{
		ID:            "TRX-1700000000000",
		UserID:        42,
		Date:          "2026-09-01",
		Time:          "19:00",
		Field:         "Lapangan A",
		Price:         150000,
		PaymentMethod: "Bank BCA",
		Status:        StatusSuccess,
		Venue:         Venue{ID: "venue-1", Name: "Futsal Arena Jakarta"},
	})

	data, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "TRX-1700000000000", decoded["id"])
	assert.Equal(t, "success", decoded["status"])
	assert.Equal(t, "Dikonfirmasi", decoded["status_label"])
	assert.Equal(t, "Rp 150.000", decoded["price_display"])
}

func TestSessionIsAdmin(t *testing.T) {
	assert.True(t, (&Session{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&Session{Role: RoleUser}).IsAdmin())
}

func TestUserPasswordHashHidden(t *testing.T) {
	data, err := json.Marshal(User{
		ID:           1,
		Name:         "Budi",
		Email:        "budi@example.com",
		PasswordHash: "deadbeef",
	})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "deadbeef")
}
