package menu

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Makepad-fr/menu/internal/model"
)

// ImportPolicy decides what Replace does with dishes that fail validation.
type ImportPolicy string

const (
	// DropInvalid keeps the valid dishes and reports the rest.
	DropInvalid ImportPolicy = "drop"
	// RejectAll leaves the registry untouched if any dish is invalid.
	RejectAll ImportPolicy = "reject"
)

func ParseImportPolicy(s string) (ImportPolicy, error) {
	switch ImportPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case DropInvalid:
		return DropInvalid, nil
	case RejectAll:
		return RejectAll, nil
	}
	return "", fmt.Errorf("unknown import policy %q (must be drop or reject)", s)
}

// Registry holds the dish collection of one session.
// It is not safe for concurrent use; a session has a single writer.
type Registry struct {
	dishes []model.Dish
	seen   map[string]struct{} // every id issued or accepted, so none is handed out twice
	newID  func() string
	policy ImportPolicy
	logger zerolog.Logger
}

type Option func(*Registry)

func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithIDGenerator replaces uuid.NewString, mostly for tests.
func WithIDGenerator(gen func() string) Option {
	return func(r *Registry) { r.newID = gen }
}

func WithImportPolicy(p ImportPolicy) Option {
	return func(r *Registry) { r.policy = p }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		dishes: []model.Dish{},
		seen:   make(map[string]struct{}),
		newID:  uuid.NewString,
		policy: DropInvalid,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With().Str("component", "registry").Logger()
	return r
}

// Policy returns the import policy Replace applies.
func (r *Registry) Policy() ImportPolicy { return r.policy }

// Append validates a draft and adds it to the end of the menu.
// On error the collection is unchanged.
func (r *Registry) Append(d model.Draft) (model.Dish, error) {
	dish, err := validateDraft(d)
	if err != nil {
		r.logger.Debug().Err(err).Msg("draft rejected")
		return model.Dish{}, err
	}
	dish.ID = r.nextID()
	r.dishes = append(r.dishes, dish)

	r.logger.Info().
		Str("id", dish.ID).
		Str("course", dish.Course.String()).
		Float64("price", dish.Price).
		Msg("dish added")
	return dish, nil
}

// Remove deletes the dish with the given id. Unknown ids are a no-op.
func (r *Registry) Remove(id string) bool {
	for i, d := range r.dishes {
		if d.ID == id {
			r.dishes = append(r.dishes[:i:i], r.dishes[i+1:]...)
			r.logger.Info().Str("id", id).Msg("dish removed")
			return true
		}
	}
	return false
}

// Clear empties the menu. Confirmation is the caller's job.
func (r *Registry) Clear() {
	n := len(r.dishes)
	r.dishes = []model.Dish{}
	r.logger.Info().Int("removed", n).Msg("menu cleared")
}

// Replace swaps in a snapshot collection after re-validating each dish.
// Under DropInvalid it returns a *PartialImportError when some dishes were dropped;
// under RejectAll the same error means nothing changed.
func (r *Registry) Replace(dishes []model.Dish) error {
	accepted := make([]model.Dish, 0, len(dishes))
	var rejected []RejectedDish
	ids := make(map[string]struct{}, len(dishes))

	for i, d := range dishes {
		valid, err := validateDish(d)
		if err == nil {
			if _, dup := ids[valid.ID]; dup {
				err = &InvalidInputError{Field: "id", Reason: ReasonDuplicateID}
			}
		}
		if err != nil {
			rejected = append(rejected, RejectedDish{Index: i, Dish: d, Reason: err})
			continue
		}
		ids[valid.ID] = struct{}{}
		accepted = append(accepted, valid)
	}

	if len(rejected) > 0 && r.policy == RejectAll {
		perr := &PartialImportError{Rejected: rejected, RejectedAll: true}
		r.logger.Warn().Err(perr).Msg("snapshot rejected")
		return perr
	}

	r.dishes = accepted
	for id := range ids {
		r.seen[id] = struct{}{}
	}

	if len(rejected) > 0 {
		perr := &PartialImportError{Rejected: rejected, Accepted: len(accepted)}
		r.logger.Warn().Err(perr).Int("kept", len(accepted)).Msg("snapshot partially imported")
		return perr
	}
	r.logger.Debug().Int("dishes", len(accepted)).Msg("snapshot imported")
	return nil
}

// Dishes returns a copy of the collection in insertion order.
func (r *Registry) Dishes() []model.Dish {
	out := make([]model.Dish, len(r.dishes))
	copy(out, r.dishes)
	return out
}

func (r *Registry) Len() int { return len(r.dishes) }

func (r *Registry) Get(id string) (model.Dish, bool) {
	for _, d := range r.dishes {
		if d.ID == id {
			return d, true
		}
	}
	return model.Dish{}, false
}

func (r *Registry) nextID() string {
	const maxAttempts = 8
	id := r.newID()
	for attempt := 1; r.taken(id); attempt++ {
		if attempt < maxAttempts {
			id = r.newID()
			continue
		}
		id = fmt.Sprintf("%s-%d", id, len(r.seen))
	}
	r.seen[id] = struct{}{}
	return id
}

func (r *Registry) taken(id string) bool {
	if id == "" {
		return true
	}
	_, ok := r.seen[id]
	return ok
}
