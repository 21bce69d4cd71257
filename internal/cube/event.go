package cube

// Event is a multi-cast callback list. Listeners are invoked in
// registration order; there is no removal, matching the single-setup
// lifetime of the engine.
type Event[T any] struct {
	listeners []func(T)
}

// AddListener adds a callback to be invoked when the event fires.
func (e *Event[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// Invoke calls all registered listeners.
func (e *Event[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		if listener != nil {
			listener(arg)
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (e *Event[T]) ListenerCount() int {
	return len(e.listeners)
}
