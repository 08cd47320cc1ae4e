package event

type Emitter[T any] struct {
	listeners []func(T)
}

func (e *Emitter[T]) AddListener(listener func(T)) {
	e.listeners = append(e.listeners, listener)
}

func (e *Emitter[T]) Emit(payload T) {
	for _, listener := range e.listeners {
		listener(payload)
	}
}
