package session

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
)

// Store almacén de sesiones indexado por el id de la cookie. En memoria,
// con persistencia opcional a un archivo JSON para que las sesiones
// sobrevivan a un reinicio (el equivalente del localStorage del navegador
// en la versión original). El archivo se reescribe en cada mutación.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
	file     string // vacío = solo en memoria
}

// NewStore crea el almacén y, si file no es vacío, carga las sesiones
// persistidas descartando las caducadas. Un archivo corrupto se ignora:
// arrancar sin sesiones solo obliga a volver a iniciar sesión.
func NewStore(file string) *Store {
	s := &Store{
		sessions: make(map[string]*entity.Session),
		file:     file,
	}
	s.load()
	return s
}

// Get devuelve la sesión o nil si no existe.
func (s *Store) Get(id string) *entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Put guarda la sesión.
func (s *Store) Put(sess *entity.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	s.persistLocked()
}

// Delete elimina la sesión.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	s.persistLocked()
}

// Len número de sesiones vivas.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) load() {
	if s.file == "" {
		return
	}
	raw, err := os.ReadFile(s.file)
	if err != nil {
		return
	}
	var persisted []*entity.Session
	if err := json.Unmarshal(raw, &persisted); err != nil {
		return
	}
	now := time.Now()
	for _, sess := range persisted {
		if !sess.Expired(now) {
			s.sessions[sess.ID] = sess
		}
	}
}

// persistLocked serializa el estado al archivo. Debe llamarse con el lock
// de escritura tomado. Los errores de IO no interrumpen la operación: la
// persistencia es mejor-esfuerzo.
func (s *Store) persistLocked() {
	if s.file == "" {
		return
	}
	list := make([]*entity.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		list = append(list, sess)
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	_ = os.WriteFile(s.file, raw, 0o600)
}
