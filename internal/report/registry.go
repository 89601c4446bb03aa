package report

import (
	"fmt"
	"sync"

	"empreport/pkg/contracts/domain"
)

// Func is a report implementation: it consumes the full ingested record
// sequence and produces a result ready for rendering.
type Func func(records []domain.EmployeeRecord) (*domain.ReportResult, error)

// Registry manages registered report functions by name.
type Registry struct {
	mu      sync.RWMutex
	reports map[string]Func
	order   []string // maintains registration order
}

// NewRegistry creates an empty report registry.
func NewRegistry() *Registry {
	return &Registry{
		reports: make(map[string]Func),
		order:   make([]string, 0),
	}
}

// NewDefaultRegistry creates a registry with all built-in reports registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	// Built-in registration cannot collide, ignore the error.
	_ = r.Register(PerformanceReportName, PerformanceReport)
	return r
}

// Register adds a report function under the given name.
func (r *Registry) Register(name string, fn Func) error {
	if fn == nil {
		return fmt.Errorf("cannot register nil report function")
	}
	if name == "" {
		return fmt.Errorf("report name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reports[name]; exists {
		return fmt.Errorf("report %q already registered", name)
	}

	r.reports[name] = fn
	r.order = append(r.order, name)
	return nil
}

// Get retrieves a report function by name.
func (r *Registry) Get(name string) (Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.reports[name]
	if !exists {
		return nil, fmt.Errorf("report %q not found", name)
	}
	return fn, nil
}

// Has checks whether a report is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.reports[name]
	return exists
}

// Names returns all registered report names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Count returns the number of registered reports.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.reports)
}
