package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
)

// MemoryStore нестойкая in-memory заглушка хранилища бронирований.
// Используется, пока внешнее постоянное хранилище не подключено
// ([database] enabled = false). Данные теряются при перезапуске.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
}

// NewMemoryStore создает пустое in-memory хранилище бронирований
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings: make(map[string]*domain.Booking),
	}
}

// Create сохраняет бронирование, присваивая ему идентификатор и время создания
func (s *MemoryStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *booking
	stored.ID = "booking_" + uuid.NewString()
	stored.CreatedAt = time.Now()

	s.bookings[stored.ID] = &stored

	result := stored
	return &result, nil
}

// GetByID возвращает бронирование по идентификатору
func (s *MemoryStore) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	result := *stored
	return &result, nil
}
