package mtrand

import "sync"

// Globals is the host's named-cell store. Cells are 32-bit and live for
// the rest of the host session once created.
type Globals interface {
	// CreateGlobal allocates a zeroed cell under name. It returns
	// ErrGlobalExists if the name is taken and ErrGlobalName if name is empty.
	CreateGlobal(name string) error

	// QueryGlobal returns the cell stored under name, or nil if there is none.
	QueryGlobal(name string) *int32
}

// Registry is an in-memory Globals. The zero value is ready to use and
// is safe for concurrent use; the cells it hands out are not.
type Registry struct {
	mu    sync.Mutex
	cells map[string]*int32
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// CreateGlobal implements Globals.
func (r *Registry) CreateGlobal(name string) error {
	if name == "" {
		return ErrGlobalName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cells[name]; ok {
		return ErrGlobalExists
	}
	if r.cells == nil {
		r.cells = make(map[string]*int32)
	}
	r.cells[name] = new(int32)
	return nil
}

// QueryGlobal implements Globals.
func (r *Registry) QueryGlobal(name string) *int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cells[name]
}

// DestroyGlobal removes name from the registry. Pointers previously
// returned by QueryGlobal stay valid but are no longer reachable by name.
func (r *Registry) DestroyGlobal(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cells[name]; !ok {
		return ErrGlobalNotFound
	}
	delete(r.cells, name)
	return nil
}

// Len returns the number of cells in the registry.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cells)
}
