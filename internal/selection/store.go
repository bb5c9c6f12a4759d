package selection

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Storage es el colaborador de almacenamiento duradero del cliente.
// Subscribe entrega un canal que recibe una señal por cada escritura al
// almacenamiento (propia o de otro Store/proceso) y una función para darse de baja.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Subscribe() (<-chan struct{}, func())
}

// Store es una vista de la selección montada sobre el Storage compartido.
// Lee una vez al construirse y se resincroniza con cada notificación; las
// mutaciones persisten y notifican antes de devolver el control al llamador.
type Store struct {
	storage     Storage
	log         zerolog.Logger
	unsubscribe func()

	mu    sync.Mutex
	items []Item
}

// NewStore construye un Store, hace la lectura inicial y queda suscrito a los
// cambios del Storage. Llamar Close cuando la superficie se desmonte.
func NewStore(storage Storage, log zerolog.Logger) *Store {
	s := &Store{storage: storage, log: log}
	s.reload()
	ch, cancel := storage.Subscribe()
	s.unsubscribe = cancel
	go func() {
		for range ch {
			s.reload()
		}
	}()
	return s
}

// Close da de baja la suscripción a cambios.
func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// reload relee la selección desde el Storage. Un blob malformado se trata como
// selección vacía: se registra el fallo, nunca se propaga al llamador.
// La lectura ocurre bajo el lock para que una notificación atrasada no pise
// una mutación local más reciente con estado viejo.
func (s *Store) reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []Item
	if raw, ok := s.storage.Get(StorageKey); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			s.log.Error().Err(err).Msg("selección persistida malformada, se descarta")
			items = nil
		}
	}
	s.items = normalize(items)
}

// persist serializa la lista completa bajo la clave fija. Un fallo de escritura
// se registra y el estado en memoria se conserva igualmente.
func (s *Store) persist() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error().Err(err).Msg("serializar selección")
		return
	}
	if err := s.storage.Set(StorageKey, string(raw)); err != nil {
		s.log.Error().Err(err).Msg("persistir selección")
	}
}

// Add agrega una línea nueva preservando el orden de inserción. Si ya existe
// una entrada con la misma pareja (ID, Type) la llamada es un no-op: la
// cantidad solo cambia vía UpdateQuantity, nunca por "agregar" repetido.
func (s *Store) Add(item Item) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.sameLine(item.ID, item.Type) {
			return
		}
	}
	s.items = append(s.items, item)
	s.persist()
}

// Remove elimina la línea (id, typ) si existe; no-op si no.
func (s *Store) Remove(id string, typ ItemType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.sameLine(id, typ) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateQuantity fija la cantidad de la línea (id, typ), acotada a un mínimo
// de 1; no-op si la línea no existe.
func (s *Store) UpdateQuantity(id string, typ ItemType, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].sameLine(id, typ) {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Clear vacía la selección (por ejemplo tras enviar el pedido).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// IsSelected indica si existe una línea con la pareja (id, typ).
func (s *Store) IsSelected(id string, typ ItemType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.sameLine(id, typ) {
			return true
		}
	}
	return false
}

// Count devuelve el número de líneas distintas.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// TotalItems devuelve la suma de cantidades de todas las líneas.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// Items devuelve una copia de la lista en orden de inserción.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Snapshot serializa la selección como JSON para adjuntarla al mensaje de
// pedido. El servidor la trata como un blob opaco.
func (s *Store) Snapshot() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(s.items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
