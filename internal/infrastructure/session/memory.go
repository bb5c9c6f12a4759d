// Package session implementa el almacén de sesiones en memoria: la asociación
// autoritativa entre un id de sesión y el usuario autenticado. La expiración se
// verifica pasivamente en cada lectura; el barrido periódico solo es higiene de
// memoria, no condición de corrección.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	userID    string
	expiresAt time.Time
}

// Store almacén de sesiones con TTL fijo.
type Store struct {
	mu        sync.RWMutex
	entries   map[string]entry
	ttl       time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

// NewStore construye el almacén y arranca el barrido periódico de expiradas.
func NewStore(ttl, sweepPeriod time.Duration) *Store {
	s := &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.sweep(sweepPeriod)
	return s
}

// Close detiene el barrido periódico.
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Create registra una sesión nueva para el usuario y devuelve su id.
func (s *Store) Create(userID string) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.entries[id] = entry{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return id
}

// Get devuelve el usuario de la sesión si existe y no expiró. Una sesión
// expirada se elimina en el acto y se reporta como inexistente.
func (s *Store) Get(id string) (string, bool) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		s.Destroy(id)
		return "", false
	}
	return e.userID, true
}

// Destroy elimina la sesión; no-op si no existe.
func (s *Store) Destroy(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len devuelve el número de sesiones vivas (incluye expiradas aún no barridas).
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) sweep(period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, e := range s.entries {
				if now.After(e.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
