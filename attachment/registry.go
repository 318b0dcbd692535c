package attachment

import (
	"errors"
	"image"
	"net/url"
	"sort"

	"github.com/google/uuid"

	"github.com/dshills/richtext/logging"
)

// ErrNotFound is returned when no attachment exists for an id.
var ErrNotFound = errors.New("attachment not found")

// Registry owns every attachment in a document, keyed by id. Like the
// document it belongs to, a registry is owned by the single mutation
// context and is not safe for concurrent mutation.
type Registry struct {
	items        map[string]*Attachment
	onInvalidate func(id string)
	logger       *logging.Logger
}

// Option configures a registry.
type Option func(*Registry)

// WithInvalidation sets the callback fired once per mutated attachment so
// the display layer can recompute layout for just that region.
func WithInvalidation(fn func(id string)) Option {
	return func(r *Registry) {
		r.onInvalidate = fn
	}
}

// WithLogger sets the registry's logger.
func WithLogger(logger *logging.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty attachment registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		items:  make(map[string]*Attachment),
		logger: logging.NullLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnInvalidate replaces the invalidation callback. A display layer that
// adopts an existing registry attaches itself here; nil silences it.
func (r *Registry) OnInvalidate(fn func(id string)) {
	r.onInvalidate = fn
}

// Insert creates a new attachment for the URL under a freshly generated
// unique id and returns it.
func (r *Registry) Insert(u *url.URL) *Attachment {
	a := &Attachment{
		id:        uuid.New().String(),
		URL:       u,
		Alignment: AlignCenter,
	}
	r.items[a.id] = a
	r.logger.Debug("attachment inserted: id=%s url=%v", a.id, u)
	return a
}

// Lookup returns the attachment with the given id.
func (r *Registry) Lookup(id string) (*Attachment, bool) {
	a, ok := r.items[id]
	return a, ok
}

// Remove deletes the attachment with the given id. Returns true if it
// existed.
func (r *Registry) Remove(id string) bool {
	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	r.logger.Debug("attachment removed: id=%s", id)
	return true
}

// Len returns the number of registered attachments.
func (r *Registry) Len() int {
	return len(r.items)
}

// IDs returns every registered id in lexical order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.items))
	for id := range r.items {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SetAppearance updates an attachment's alignment, size and URL in place
// and invalidates its display.
func (r *Registry) SetAppearance(id string, alignment Alignment, size Size, u *url.URL) error {
	a, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	a.Alignment = alignment
	a.Size = size
	a.URL = u
	r.invalidate(id)
	return nil
}

// SetProgress sets or clears an attachment's progress overlay and
// invalidates its display.
func (r *Registry) SetProgress(id string, p *Progress) error {
	a, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	a.Progress = p
	r.invalidate(id)
	return nil
}

// SetMessage sets or clears an attachment's overlay message and invalidates
// its display.
func (r *Registry) SetMessage(id string, message string) error {
	a, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	a.Message = message
	r.invalidate(id)
	return nil
}

// SetImage stores resolved pixel data, clears the progress overlay and
// invalidates the display. Called on the mutation context once an
// asynchronous fetch delivers its result.
func (r *Registry) SetImage(id string, img image.Image) error {
	a, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	a.Image = img
	a.Progress = nil
	r.invalidate(id)
	return nil
}

// invalidate fires the per-attachment invalidation callback.
func (r *Registry) invalidate(id string) {
	if r.onInvalidate != nil {
		r.onInvalidate(id)
	}
}
