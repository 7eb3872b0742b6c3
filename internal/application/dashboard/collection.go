package dashboard

import (
	"slices"
	"sync"
)

// Collection lista en memoria segura para lectura/escritura concurrente.
// El orden es el de presentación: los registros nuevos van al frente.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	seed  func() []T
}

// NewCollection crea la colección con los datos que devuelve seed.
func NewCollection[T any](seed func() []T) *Collection[T] {
	return &Collection[T]{items: seed(), seed: seed}
}

// All devuelve una copia de todos los elementos en orden.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Filter devuelve, en orden, los elementos que cumplen pred.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Prepend inserta item al frente.
func (c *Collection[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Insert(c.items, 0, item)
}

// Len número de elementos.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Mutate aplica fn bajo el lock de escritura. Si fn falla la colección no cambia.
func (c *Collection[T]) Mutate(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := fn(slices.Clone(c.items))
	if err != nil {
		return err
	}
	c.items = next
	return nil
}

// Reset vuelve a los datos iniciales.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = c.seed()
}
