// Package session keeps the transient per-visitor UI state: pending toasts,
// saved scroll positions, the open dropdown, theme and the in-flight contact
// submission. Nothing here outlives the process.
package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/scroll"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/toast"
	"github.com/Zachkp/portfolio/internal/widget"
)

type Session struct {
	ID      string
	Toasts  *toast.Queue
	Scroll  *scroll.Restorer
	Selects *widget.Registry
	Theme   *theme.Store

	mu         sync.Mutex
	lastSeen   time.Time
	submitting bool
}

// BeginSubmit marks a contact submission as in flight. It returns false when
// one already is, in which case the caller must not send.
func (s *Session) BeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

func (s *Session) EndSubmit() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}

func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idleTTL  time.Duration
	now      func() time.Time
	salt     string
	logger   *zap.Logger
}

func NewStore(idleTTL time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
		now:      time.Now,
		salt:     newSalt(),
		logger:   logger,
	}
}

func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(b)
}

// HashIP returns a salted, truncated digest of ip. The salt lives only in
// memory, so digests cannot be correlated across restarts.
func (st *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + st.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Get returns a live session and refreshes its idle timer. The refresh
// happens under the store lock so Sweep never closes a session it hands out.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	s.touch(st.now())
	return s, true
}

func (st *Store) Create() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Toasts:   toast.NewQueue(),
		Scroll:   scroll.NewRestorer(scroll.NewMemoryStorage()),
		Selects:  widget.NewRegistry(),
		Theme:    theme.NewStore(theme.Dark),
		lastSeen: st.now(),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// GetOrCreate resolves id, creating a fresh session when it is unknown or
// expired. created reports whether a new session was made.
func (st *Store) GetOrCreate(id string) (s *Session, created bool) {
	if s, ok := st.Get(id); ok {
		return s, false
	}
	return st.Create(), true
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops sessions idle longer than the TTL and returns how many went.
func (st *Store) Sweep() int {
	now := st.now()

	var expired []*Session
	st.mu.Lock()
	for id, s := range st.sessions {
		if s.idleSince(now) > st.idleTTL {
			delete(st.sessions, id)
			expired = append(expired, s)
		}
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.Toasts.Close()
	}
	if len(expired) > 0 {
		st.logger.Info("swept idle sessions", zap.Int("removed", len(expired)))
	}
	return len(expired)
}

// StartSweeper schedules Sweep with a six-field (seconds first) cron spec.
// The caller stops the returned cron on shutdown.
func (st *Store) StartSweeper(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(spec, func() { st.Sweep() }); err != nil {
		return nil, err
	}
	c.Start()
	st.logger.Info("session sweeper started", zap.String("spec", spec))
	return c, nil
}
