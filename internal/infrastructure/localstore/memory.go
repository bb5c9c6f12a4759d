// Package localstore provee adaptadores del almacenamiento duradero del
// cliente que consume internal/selection: un almacén en memoria (pruebas,
// embebido) y uno sobre archivos con eventos entre procesos vía fsnotify.
package localstore

import "sync"

// broadcaster administra suscriptores con canales señal de tamaño 1:
// las notificaciones se colapsan, nunca bloquean al escritor.
type broadcaster struct {
	mu     sync.Mutex
	subs   map[int]chan struct{}
	nextID int
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[int]chan struct{})}
}

func (b *broadcaster) subscribe() (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan struct{}, 1)
	b.subs[id] = ch
	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (b *broadcaster) notify() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default: // ya hay una señal pendiente
		}
	}
}

// Memory es un Storage en memoria con broadcast de cambios. Útil para pruebas
// y para superficies embebidas en el mismo proceso.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
	bc   *broadcaster
}

// NewMemory construye el almacén vacío.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string), bc: newBroadcaster()}
}

// Get devuelve el valor bajo key y si existe.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// Set guarda el valor y notifica a todos los suscriptores.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
	m.bc.notify()
	return nil
}

// Subscribe registra un suscriptor a cambios del almacén.
func (m *Memory) Subscribe() (<-chan struct{}, func()) {
	return m.bc.subscribe()
}
