package store

import (
	"sync"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("store")

// ErrNotFound is returned by Get for a key that was never set.
var ErrNotFound = Error.New("not found")

// Store is a key-value store of opaque values.
type Store interface {
	Get(key string) (value []byte, err error)
	Set(key string, value []byte) (err error)
}

// Memory is an in-memory Store. It is safe for concurrent use.
type Memory struct {
	log *zap.Logger

	mu   sync.RWMutex
	data map[string][]byte
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty Memory store. A nil log disables logging.
func NewMemory(log *zap.Logger) *Memory {
	if log == nil {
		log = zap.NewNop()
	}

	return &Memory{
		log:  log,
		data: map[string][]byte{},
	}
}

// Get returns a copy of the value stored at key or ErrNotFound.
func (m *Memory) Get(key string) (value []byte, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, oops.Trace(ErrNotFound)
	}

	return append([]byte(nil), v...), nil
}

// Set stores a copy of value at key.
func (m *Memory) Set(key string, value []byte) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)

	m.log.Debug("set", zap.String("key", key), zap.Int("size", len(value)))

	return nil
}
