// Package cache implementa la caché de listas de entidades por vista.
//
// Política de frescura (explícita, en lugar del splicing ad hoc de la
// versión original): una lista se llena con Replace en la carga o búsqueda
// y vive hasta el siguiente Replace o Invalidate; no hay TTL ni
// invalidación entre sesiones. Tras una escritura 2xx la vista parchea la
// lista en memoria (Append/Update/Remove) en vez de recargar; una escritura
// fallida no toca la caché. Las ediciones concurrentes desde otra sesión
// ganan en el servidor y se ven en la siguiente carga completa. Las
// operaciones que cambian estado del servidor fuera de la lista (confirmar
// una venta, registrar una entrega) recargan siempre con Replace.
package cache

import "sync"

// List lista ordenada de entidades de una vista, indexada por una clave.
type List[T any] struct {
	mu     sync.RWMutex
	key    func(T) string
	items  []T
	loaded bool
}

// NewList crea la lista con su función de clave (name, ean, ...).
func NewList[T any](key func(T) string) *List[T] {
	return &List[T]{key: key}
}

// Loaded indica si la lista ya se cargó al menos una vez.
func (l *List[T]) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Replace sustituye el contenido completo (carga inicial o búsqueda).
func (l *List[T]) Replace(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = make([]T, len(items))
	copy(l.items, items)
	l.loaded = true
}

// Invalidate vacía la lista y fuerza una recarga en el próximo acceso.
func (l *List[T]) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	l.loaded = false
}

// Items devuelve una copia del contenido en su orden actual.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Get busca por clave.
func (l *List[T]) Get(key string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, it := range l.items {
		if l.key(it) == key {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Append añade al final tras un alta 2xx.
func (l *List[T]) Append(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, item)
}

// Update sustituye en su posición la entidad con esa clave tras una
// edición 2xx. Si la clave no está, no hace nada: la próxima recarga
// completa reconcilia.
func (l *List[T]) Update(key string, item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, it := range l.items {
		if l.key(it) == key {
			l.items[i] = item
			return
		}
	}
}

// Remove elimina la entidad con esa clave tras un borrado 2xx.
func (l *List[T]) Remove(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, it := range l.items {
		if l.key(it) == key {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Scoped colección de listas, una por sesión. Drop suelta el estado de una
// sesión cuando esta se destruye.
type Scoped[T any] struct {
	mu    sync.Mutex
	key   func(T) string
	lists map[string]*List[T]
}

// NewScoped crea la colección.
func NewScoped[T any](key func(T) string) *Scoped[T] {
	return &Scoped[T]{key: key, lists: make(map[string]*List[T])}
}

// For devuelve (creándola si hace falta) la lista de la sesión.
func (s *Scoped[T]) For(sessionID string) *List[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lists[sessionID]
	if !ok {
		l = NewList(s.key)
		s.lists[sessionID] = l
	}
	return l
}

// Drop elimina la lista de la sesión.
func (s *Scoped[T]) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, sessionID)
}
