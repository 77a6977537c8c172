package digest

import (
	"fmt"
	"sort"
	"sync"
)

// Manager is a thread-safe registry of named [Hasher] drivers.
//
// Register one or more hashers under an [Algorithm] name, nominate a default,
// and resolve drivers by name when configuring a derivation engine.  A
// deployment should settle on one algorithm: every derived value depends
// on it.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver) while
// allowing concurrent reads (Driver, Sum, etc.).
type Manager struct {
	mu      sync.RWMutex
	drivers map[Algorithm]Hasher
	def     Algorithm
}

// NewManager creates an empty Manager with the given default algorithm.
// Drivers must be registered with [Manager.RegisterDriver] before they can
// be resolved.
//
// Use [NewDefaultManager] for the variant that registers all built-in drivers.
func NewManager(defaultAlgorithm Algorithm) *Manager {
	return &Manager{
		drivers: make(map[Algorithm]Hasher),
		def:     defaultAlgorithm,
	}
}

// NewDefaultManager creates a Manager with [SHA512Hasher], [SHA3Hasher] and
// [BLAKE2bHasher] registered.  The default algorithm is [AlgorithmSHA512].
func NewDefaultManager() *Manager {
	m := NewManager(AlgorithmSHA512)
	_ = m.RegisterDriver(AlgorithmSHA512, SHA512Hasher{})
	_ = m.RegisterDriver(AlgorithmSHA3, SHA3Hasher{})
	_ = m.RegisterDriver(AlgorithmBLAKE2b, BLAKE2bHasher{})
	return m
}

// RegisterDriver adds or replaces a named hasher.
// It is safe to call while other goroutines are using the Manager.
func (m *Manager) RegisterDriver(name Algorithm, h Hasher) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name, or [ErrDriverNotFound].
func (m *Manager) Driver(name Algorithm) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the algorithm returned by [Manager.Default].
// The named driver must already be registered.
func (m *Manager) SetDefaultDriver(name Algorithm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the current default algorithm.
func (m *Manager) DefaultDriver() Algorithm {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name Algorithm) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Algorithms returns the registered algorithm names in sorted order.
func (m *Manager) Algorithms() []Algorithm {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Algorithm, 0, len(m.drivers))
	for name := range m.drivers {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Default returns the default driver, or [ErrDriverNotFound] if it has not
// been registered.
func (m *Manager) Default() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return h, nil
}

// Sum hashes message with the default driver.
func (m *Manager) Sum(message []byte) (string, error) {
	h, err := m.Default()
	if err != nil {
		return "", err
	}
	return h.Sum(message), nil
}
