// Package locale formats dates with moment-style patterns using
// registered or built-in locale name tables.
package locale

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// DefaultID is the locale active in a new Registry.
const DefaultID = "en_US"

// Locale errors.
var (
	ErrUnknownLocale       = errors.New("unknown locale")
	ErrInvalidDefinition   = errors.New("invalid locale definition")
	ErrEmptyLocaleID       = errors.New("locale id must not be empty")
	ErrEmptyPattern        = errors.New("format pattern must not be empty")
	ErrUnterminatedLiteral = errors.New("unterminated [ in format pattern")
)

// Ordinal styles with rules a single %d pattern cannot express.
const (
	// OrdinalEnglish renders 1st, 2nd, 3rd, 4th, 11th.
	OrdinalEnglish = "english"
	// OrdinalFrench renders 1er, and plain day numbers or an "e" suffix
	// otherwise (16 juin, 6e mois).
	OrdinalFrench = "french"
)

// Definition holds the names a locale uses for months and weekdays.
// Weekday slices start on Sunday, matching time.Weekday.
type Definition struct {
	Months        []string `toml:"months"`
	MonthsShort   []string `toml:"months_short"`
	Weekdays      []string `toml:"weekdays"`
	WeekdaysShort []string `toml:"weekdays_short"`
	WeekdaysMin   []string `toml:"weekdays_min"`
	// Ordinal is OrdinalEnglish, OrdinalFrench or a fmt pattern with one
	// %d, e.g. "%d.".
	Ordinal string `toml:"ordinal"`
}

// normalize validates d and fills optional fields from the required ones.
func (d Definition) normalize() (Definition, error) {
	if len(d.Months) != 12 {
		return d, fmt.Errorf("%w: need 12 months, got %d", ErrInvalidDefinition, len(d.Months))
	}
	if len(d.Weekdays) != 7 {
		return d, fmt.Errorf("%w: need 7 weekdays, got %d", ErrInvalidDefinition, len(d.Weekdays))
	}

	out := Definition{
		Months:   slices.Clone(d.Months),
		Weekdays: slices.Clone(d.Weekdays),
		Ordinal:  d.Ordinal,
	}

	var err error
	if out.MonthsShort, err = shortForms(d.MonthsShort, d.Months, 3, "months_short"); err != nil {
		return d, err
	}
	if out.WeekdaysShort, err = shortForms(d.WeekdaysShort, d.Weekdays, 3, "weekdays_short"); err != nil {
		return d, err
	}
	if out.WeekdaysMin, err = shortForms(d.WeekdaysMin, out.WeekdaysShort, 2, "weekdays_min"); err != nil {
		return d, err
	}

	if out.Ordinal == "" {
		out.Ordinal = "%d."
	}
	switch out.Ordinal {
	case OrdinalEnglish, OrdinalFrench:
	default:
		if strings.Count(out.Ordinal, "%d") != 1 {
			return d, fmt.Errorf("%w: ordinal must be %q, %q or contain one %%d, got %q",
				ErrInvalidDefinition, OrdinalEnglish, OrdinalFrench, out.Ordinal)
		}
	}
	return out, nil
}

// shortForms returns given, or long truncated to n runes when given is empty.
func shortForms(given, long []string, n int, field string) ([]string, error) {
	if len(given) == 0 {
		out := make([]string, len(long))
		for i, name := range long {
			out[i] = truncateRunes(name, n)
		}
		return out, nil
	}
	if len(given) != len(long) {
		return nil, fmt.Errorf("%w: %s needs %d entries, got %d", ErrInvalidDefinition, field, len(long), len(given))
	}
	return slices.Clone(given), nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Registry holds locale definitions and the active locale.
// Reads and writes are synchronized; when several callers change the
// active locale, the last writer wins.
type Registry struct {
	mu     sync.RWMutex
	custom map[string]Definition
	active string
}

// NewRegistry returns a registry with DefaultID active.
func NewRegistry() *Registry {
	return &Registry{
		custom: make(map[string]Definition),
		active: DefaultID,
	}
}

// Register adds or replaces the definition stored under id and makes it
// the active locale.
func (r *Registry) Register(id string, def Definition) error {
	key := CanonicalID(id)
	if key == "" {
		return ErrEmptyLocaleID
	}
	norm, err := def.normalize()
	if err != nil {
		return fmt.Errorf("registering locale %q: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.custom[key] = norm
	r.active = key
	return nil
}

// SetLocale makes id the active locale. Unknown ids leave the active
// locale unchanged.
func (r *Registry) SetLocale(id string) error {
	key := CanonicalID(id)
	if key == "" {
		return ErrEmptyLocaleID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.custom[key]; !ok && !isBuiltin(key) {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, id)
	}
	r.active = key
	return nil
}

// Locale returns the canonical id of the active locale.
func (r *Registry) Locale() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Lookup returns the definition for id. Registered definitions shadow
// built-in ones.
func (r *Registry) Lookup(id string) (Definition, bool) {
	key := CanonicalID(id)

	r.mu.RLock()
	def, ok := r.custom[key]
	r.mu.RUnlock()
	if ok {
		return def, true
	}
	return builtinDefinition(key)
}

// Available returns all known locale ids, sorted.
func (r *Registry) Available() []string {
	ids := builtinIDs()

	r.mu.RLock()
	for id := range r.custom {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Formatter returns a formatter bound to the active locale.
func (r *Registry) Formatter() Formatter {
	f, err := r.FormatterFor(r.Locale())
	if err != nil {
		return Formatter{id: DefaultID, def: english()}
	}
	return f
}

// FormatterFor returns a formatter bound to id.
func (r *Registry) FormatterFor(id string) (Formatter, error) {
	def, ok := r.Lookup(id)
	if !ok {
		return Formatter{}, fmt.Errorf("%w: %q", ErrUnknownLocale, id)
	}
	return Formatter{id: CanonicalID(id), def: def}, nil
}

// Format formats t with pattern in the active locale.
func (r *Registry) Format(t time.Time, pattern string) (string, error) {
	return r.Formatter().Format(t, pattern)
}

// Formatter formats dates for one resolved locale. It is immutable and
// safe to share. The zero value formats in English.
type Formatter struct {
	id  string
	def Definition
}

// Locale returns the id the formatter is bound to.
func (f Formatter) Locale() string {
	if f.id == "" {
		return DefaultID
	}
	return f.id
}

func (f Formatter) definition() Definition {
	if len(f.def.Months) != 12 {
		return english()
	}
	return f.def
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// helpers.
func Default() *Registry {
	return defaultRegistry
}

// FormatDate formats t with pattern in the process-wide active locale.
func FormatDate(t time.Time, pattern string) (string, error) {
	return defaultRegistry.Format(t, pattern)
}

// SetLocale changes the process-wide active locale.
func SetLocale(id string) error {
	return defaultRegistry.SetLocale(id)
}

// RegisterLocale adds a definition to the process-wide registry and
// activates it.
func RegisterLocale(id string, def Definition) error {
	return defaultRegistry.Register(id, def)
}
