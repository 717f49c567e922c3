package calendar

import (
	"sync"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Factory создает календарь для новой сессии
type Factory func(session *domain.Session) *Calendar

// Registry календари активных сессий: у каждой сессии свой выбор и свой месяц
type Registry struct {
	mu        sync.Mutex
	calendars map[string]*Calendar
	factory   Factory
}

func NewRegistry(factory Factory) *Registry {
	return &Registry{
		calendars: make(map[string]*Calendar),
		factory:   factory,
	}
}

// Get возвращает календарь сессии, создавая его при первом обращении
func (r *Registry) Get(session *domain.Session) *Calendar {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.calendars[session.ID]; ok {
		return c
	}

	c := r.factory(session)
	r.calendars[session.ID] = c
	return c
}

// Drop удаляет календарь сессии (при выходе из аккаунта)
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.calendars, sessionID)
}

// Len количество активных календарей
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calendars)
}
