package session

import (
	"sync"
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/google/uuid"
)

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Registry - сессии HTTP-клиентов по их ID.
type Registry struct {
	mu         sync.Mutex
	sessions   map[string]*entry
	ttl        time.Duration
	now        func() time.Time
	newSession func(id string) *Session
}

// NewRegistry создает реестр. ttl <= 0 отключает истечение сессий.
func NewRegistry(ttl time.Duration, newSession func(id string) *Session) *Registry {
	return &Registry{
		sessions:   make(map[string]*entry),
		ttl:        ttl,
		now:        time.Now,
		newSession: newSession,
	}
}

// Create регистрирует новую анонимную сессию.
func (r *Registry) Create() *Session {
	s := r.newSession(uuid.New().String())

	r.mu.Lock()
	r.sessions[s.ID()] = &entry{session: s, lastSeen: r.now()}
	r.mu.Unlock()
	return s
}

// Get возвращает сессию и продлевает ее жизнь.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	now := r.now()
	if r.expired(e, now) {
		delete(r.sessions, id)
		return nil, domain.ErrSessionNotFound
	}
	e.lastSeen = now
	return e.session, nil
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Sweep удаляет сессии, простаивавшие дольше ttl. Возвращает число удаленных.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.sessions {
		if r.expired(e, now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) > r.ttl
}
