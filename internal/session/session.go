package session

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Makepad-fr/menu/internal/menu"
	"github.com/Makepad-fr/menu/internal/model"
	"github.com/Makepad-fr/menu/internal/snapshot"
)

const (
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeSessionClosed = "SESSION_CLOSED"
)

var (
	ErrForbidden     = errors.New("only Christoffel (Chef) may change the menu")
	ErrSessionClosed = errors.New("session has ended")
)

// Action is a menu change gated by role.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionReset  Action = "reset"
)

// Session is one login: a role plus the registry it works on.
// It is created by Login and ends with Logout.
type Session struct {
	role     model.Role
	registry *menu.Registry
	warning  *menu.PartialImportError
	active   bool
	logger   zerolog.Logger
}

type options struct {
	logger   zerolog.Logger
	registry []menu.Option
}

type Option func(*options)

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegistryOptions passes options through to the session's registry.
func WithRegistryOptions(opts ...menu.Option) Option {
	return func(o *options) { o.registry = append(o.registry, opts...) }
}

// Login starts a session for role, seeded from a snapshot carried over from a
// previous session (nil or empty for a fresh menu). Under DropInvalid, invalid
// dishes do not fail the login; see ImportWarning. Under RejectAll they do, and
// the error wraps the *menu.PartialImportError so the caller keeps its snapshot.
func Login(role string, carried []byte, opts ...Option) (*Session, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	r, err := model.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	dishes, err := snapshot.Decode(carried)
	if err != nil {
		return nil, fmt.Errorf("login: snapshot: %w", err)
	}

	logger := o.logger.With().Str("component", "session").Str("role", string(r)).Logger()
	regOpts := append([]menu.Option{menu.WithLogger(o.logger)}, o.registry...)
	s := &Session{
		role:     r,
		registry: menu.NewRegistry(regOpts...),
		active:   true,
		logger:   logger,
	}

	if err := s.registry.Replace(dishes); err != nil {
		var perr *menu.PartialImportError
		if !errors.As(err, &perr) || perr.RejectedAll {
			logger.Warn().Err(err).Msg("carried menu refused")
			return nil, fmt.Errorf("login: %w", err)
		}
		s.warning = perr
		logger.Warn().Int("rejected", len(perr.Rejected)).Msg("carried menu had invalid dishes")
	}

	logger.Info().Int("dishes", s.registry.Len()).Msg("logged in")
	return s, nil
}

func (s *Session) Role() model.Role { return s.role }

func (s *Session) Active() bool { return s.active }

// ImportWarning reports dishes dropped (or a snapshot refused) at login, or nil.
func (s *Session) ImportWarning() *menu.PartialImportError { return s.warning }

// Registry returns the session's menu, or ErrSessionClosed after Logout.
func (s *Session) Registry() (*menu.Registry, error) {
	if !s.active {
		return nil, ErrSessionClosed
	}
	return s.registry, nil
}

// Authorize checks whether the logged-in role may perform a.
func (s *Session) Authorize(a Action) error {
	if !s.active {
		return ErrSessionClosed
	}
	if !s.role.CanEdit() {
		s.logger.Debug().Str("action", string(a)).Msg("action refused")
		return fmt.Errorf("%s: %w", a, ErrForbidden)
	}
	return nil
}

// Logout ends the session and returns the menu snapshot for the next login.
func (s *Session) Logout() ([]byte, error) {
	if !s.active {
		return nil, ErrSessionClosed
	}
	b, err := snapshot.Encode(s.registry.Dishes())
	if err != nil {
		return nil, fmt.Errorf("logout: %w", err)
	}
	s.active = false
	s.logger.Info().Int("dishes", s.registry.Len()).Msg("logged out")
	s.registry = nil
	return b, nil
}
