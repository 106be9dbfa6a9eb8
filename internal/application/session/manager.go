package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain"
	"github.com/chrisx123456/WarehouseAppFrontend/internal/domain/entity"
	"github.com/chrisx123456/WarehouseAppFrontend/pkg/jwt"
	"github.com/chrisx123456/WarehouseAppFrontend/pkg/logger"
)

// AccountAPI puerto de salida hacia el backend para autenticación.
// La implementación concreta es warehouse.Client; para tests se inyecta un fake.
type AccountAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	GetRole(ctx context.Context, token string) (entity.Role, error)
	GetCurrency(ctx context.Context, token string) (string, error)
}

// Manager dueño único del ciclo de vida de las sesiones: login en tres
// pasos, revalidación del token persistido y destrucción. Las vistas nunca
// leen estado global; reciben el *entity.Session que el manager resuelve.
type Manager struct {
	api   AccountAPI
	store *Store
	ttl   time.Duration
	log   *logger.Logger

	// revalidated ids ya revalidados contra el backend desde el arranque.
	// No se persiste: tras un reinicio toda sesión cargada del archivo se
	// revalida una vez antes de confiar en su token.
	mu          sync.Mutex
	revalidated map[string]bool

	onDestroy []func(sessionID string)
}

// NewManager construye el manager.
func NewManager(api AccountAPI, store *Store, ttl time.Duration, log *logger.Logger) *Manager {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &Manager{
		api:         api,
		store:       store,
		ttl:         ttl,
		log:         log,
		revalidated: make(map[string]bool),
	}
}

// OnDestroy registra un callback que se ejecuta al destruir una sesión
// (logout o fallo de autenticación); sirve para soltar las cachés de vista.
func (m *Manager) OnDestroy(fn func(sessionID string)) {
	m.onDestroy = append(m.onDestroy, fn)
}

// Login ejecuta el intercambio en tres pasos: credenciales -> token,
// rol con ese token y moneda de presentación. Cualquier fallo en cualquier
// paso es un fallo duro: no se persiste nada y el usuario vuelve al login.
func (m *Manager) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	token, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	role, err := m.api.GetRole(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("consultar rol tras login: %w", err)
	}

	currency, err := m.api.GetCurrency(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("consultar moneda tras login: %w", err)
	}

	now := time.Now()
	expires := now.Add(m.ttl)
	// El exp del token manda si caduca antes que el TTL propio.
	if tokenExp, ok := jwt.Expiry(token); ok && tokenExp.Before(expires) {
		expires = tokenExp
	}

	sess := &entity.Session{
		ID:        uuid.NewString(),
		Token:     token,
		Role:      role,
		Currency:  currency,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: expires,
	}
	m.store.Put(sess)
	m.markRevalidated(sess.ID)

	m.log.Info().Str("email", email).Str("role", string(role)).Msg("sesión iniciada")
	return sess, nil
}

// Validate resuelve la sesión de la cookie. Comprueba la caducidad local y,
// una vez por arranque del proceso, revalida el token contra el backend
// (GET /Account/getrole) antes de confiar en él. Cualquier fallo destruye
// la sesión: un token viejo no debe quedarse utilizable.
func (m *Manager) Validate(ctx context.Context, sessionID string) (*entity.Session, error) {
	sess := m.store.Get(sessionID)
	if sess == nil {
		return nil, domain.ErrAuthFailure
	}

	now := time.Now()
	if sess.Expired(now) || jwt.Expired(sess.Token, now) {
		m.destroy(sessionID, "sesión caducada")
		return nil, domain.ErrSessionExpired
	}

	if !m.isRevalidated(sessionID) {
		role, err := m.api.GetRole(ctx, sess.Token)
		if err != nil {
			m.destroy(sessionID, "token persistido rechazado por el backend")
			return nil, fmt.Errorf("revalidar token: %w", domain.ErrAuthFailure)
		}
		sess.Role = role
		m.store.Put(sess)
		m.markRevalidated(sessionID)
	}

	return sess, nil
}

// Logout destruye la sesión de forma explícita.
func (m *Manager) Logout(sessionID string) {
	m.destroy(sessionID, "logout")
}

func (m *Manager) destroy(sessionID, reason string) {
	m.store.Delete(sessionID)
	m.mu.Lock()
	delete(m.revalidated, sessionID)
	m.mu.Unlock()
	for _, fn := range m.onDestroy {
		fn(sessionID)
	}
	m.log.Info().Str("reason", reason).Msg("sesión destruida")
}

func (m *Manager) markRevalidated(sessionID string) {
	m.mu.Lock()
	m.revalidated[sessionID] = true
	m.mu.Unlock()
}

func (m *Manager) isRevalidated(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revalidated[sessionID]
}
