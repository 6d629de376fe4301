package region

import (
	"fmt"

	dErrors "loanmap/pkg/domain-errors"
)

// Info describes one first-level administrative division. Population is nil
// for territories without a census count.
type Info struct {
	Name       string
	Code       string
	Population *int64
}

// HasPopulation reports whether a usable (positive) population is known.
func (i Info) HasPopulation() bool {
	return i.Population != nil && *i.Population > 0
}

// Registry is a read-only lookup from region name or code to Info.
type Registry struct {
	entries []Info
	byName  map[string]int
	byCode  map[string]int
}

// New builds a registry. Names and codes must be non-empty and unique.
func New(entries []Info) (*Registry, error) {
	r := &Registry{
		entries: make([]Info, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
		byCode:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" || e.Code == "" {
			return nil, dErrors.New(dErrors.CodeValidation, "region name and code are required")
		}
		if _, dup := r.byName[e.Name]; dup {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("duplicate region name %q", e.Name))
		}
		if _, dup := r.byCode[e.Code]; dup {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("duplicate region code %q", e.Code))
		}
		if e.Population != nil && *e.Population < 0 {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("negative population for %q", e.Name))
		}
		if e.Population != nil {
			p := *e.Population
			e.Population = &p
		}
		r.byName[e.Name] = len(r.entries)
		r.byCode[e.Code] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// ByName resolves a region by its full name (as used by boundary features).
func (r *Registry) ByName(name string) (Info, bool) {
	if r == nil {
		return Info{}, false
	}
	i, ok := r.byName[name]
	if !ok {
		return Info{}, false
	}
	return r.entries[i], true
}

// ByCode resolves a region by its short code (as used by loan records).
func (r *Registry) ByCode(code string) (Info, bool) {
	if r == nil {
		return Info{}, false
	}
	i, ok := r.byCode[code]
	if !ok {
		return Info{}, false
	}
	return r.entries[i], true
}

// Population returns the census population for code. ok is false when the code
// is unknown or the region has no population on record; a recorded zero is
// returned with ok true.
func (r *Registry) Population(code string) (int64, bool) {
	info, ok := r.ByCode(code)
	if !ok || info.Population == nil {
		return 0, false
	}
	return *info.Population, true
}

// Len is the number of registered regions.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// All returns the entries in registration order.
func (r *Registry) All() []Info {
	if r == nil {
		return nil
	}
	out := make([]Info, len(r.entries))
	for i, e := range r.entries {
		if e.Population != nil {
			p := *e.Population
			e.Population = &p
		}
		out[i] = e
	}
	return out
}
