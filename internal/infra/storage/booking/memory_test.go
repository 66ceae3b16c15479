package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
)

func newBooking(slotID string) *domain.Booking {
	return &domain.Booking{
		CenterID: "centre-42",
		SlotID:   slotID,
		Client: domain.ClientInfo{
			FirstName:    "Jean",
			LastName:     "Dupont",
			Phone:        "0612345678",
			VehicleBrand: "Renault",
			LicensePlate: "AB-123-CD",
		},
		Status: domain.StatusConfirmed,
	}
}

func TestMemoryStoreCreate(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.Create(context.Background(), newBooking("slot_1"))

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Contains(t, created.ID, "booking_")
	assert.False(t, created.CreatedAt.IsZero())
}

func TestMemoryStoreCreateAssignsUniqueIDs(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.Create(context.Background(), newBooking("slot_1"))
	require.NoError(t, err)
	second, err := store.Create(context.Background(), newBooking("slot_2"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestMemoryStoreGetByID(t *testing.T) {
	store := NewMemoryStore()
	created, err := store.Create(context.Background(), newBooking("slot_1"))
	require.NoError(t, err)

	found, err := store.GetByID(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "slot_1", found.SlotID)
	assert.Equal(t, "Jean Dupont", found.Client.FullName())
}

func TestMemoryStoreGetByIDNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetByID(context.Background(), "booking_missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	created, err := store.Create(context.Background(), newBooking("slot_1"))
	require.NoError(t, err)

	// Мутация возвращенной копии не трогает хранилище
	created.SlotID = "mutated"

	found, err := store.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "slot_1", found.SlotID)
}
