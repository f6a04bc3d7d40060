package usecase

import "sync"

// broadcaster fans values out to in-process subscribers. Listeners run
// synchronously on the publishing goroutine.
type broadcaster[T any] struct {
	mu        sync.RWMutex
	next      int
	listeners map[int]func(T)
}

func (b *broadcaster[T]) subscribe(fn func(T)) func() {
	b.mu.Lock()
	if b.listeners == nil {
		b.listeners = make(map[int]func(T))
	}
	id := b.next
	b.next++
	b.listeners[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

func (b *broadcaster[T]) publish(v T) {
	b.mu.RLock()
	fns := make([]func(T), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(v)
	}
}
