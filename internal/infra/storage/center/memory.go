package center

import (
	"context"
	"sync"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
)

// MemoryStore нестойкая in-memory заглушка хранилища центров.
// Реальное хранилище - внешний сервис; заглушка отдает данные,
// загруженные при старте, и хранит agent_id только в памяти.
type MemoryStore struct {
	mu      sync.RWMutex
	centers map[string]*domain.Center
}

// NewMemoryStore создает хранилище с переданными центрами
func NewMemoryStore(centers ...*domain.Center) *MemoryStore {
	store := &MemoryStore{
		centers: make(map[string]*domain.Center),
	}
	for _, c := range centers {
		copied := *c
		store.centers[c.ID] = &copied
	}
	return store
}

// Get возвращает центр по идентификатору
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Center, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.centers[id]
	if !ok {
		return nil, ErrCenterNotFound
	}

	result := *stored
	return &result, nil
}

// UpdateAgentID сохраняет идентификатор голосового агента центра
func (s *MemoryStore) UpdateAgentID(_ context.Context, id, agentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.centers[id]
	if !ok {
		return ErrCenterNotFound
	}

	stored.AgentID = agentID
	return nil
}

// DefaultDemoCenter возвращает демонстрационный центр, которым
// инициализируется заглушка при старте без базы данных
func DefaultDemoCenter(id string) *domain.Center {
	weekday := domain.DaySchedule{
		MorningStart:   "08:00",
		MorningEnd:     "12:00",
		AfternoonStart: "13:30",
		AfternoonEnd:   "18:30",
	}

	return &domain.Center{
		ID:                     id,
		Name:                   "Centre de Contrôle Technique",
		Phone:                  "01 45 78 92 34",
		AverageControlDuration: 50,
		OpeningHours: domain.WeekSchedule{
			Monday:    weekday,
			Tuesday:   weekday,
			Wednesday: weekday,
			Thursday:  weekday,
			Friday:    weekday,
			Saturday:  domain.DaySchedule{MorningStart: "08:00", MorningEnd: "12:00", Closed: false},
			Sunday:    domain.DaySchedule{Closed: true},
		},
		PricingGrid: map[domain.VehicleType]domain.FuelPricing{
			domain.VehicleTypeCar:     {Essence: 78, Diesel: 85},
			domain.VehicleTypeUtility: {Essence: 95, Diesel: 105},
		},
		AllowEarlyDropOff: true,
		PaymentMethods:    []string{"carte bancaire", "espèces", "chèque"},
	}
}
