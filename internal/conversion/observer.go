package conversion

import (
	"sync"

	"github.com/agbru/fibkm/internal/logging"
)

// Observer receives every conversion performed through a MethodConverter.
// Implementations must be safe for concurrent use.
type Observer interface {
	// Observe is called after a successful conversion.
	Observe(res Result)
	// ObserveError is called when the input was rejected.
	ObserveError(method Method, miles float64, err error)
}

// Subject fans results out to registered observers.
type Subject struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewSubject creates a Subject with the given observers registered.
func NewSubject(observers ...Observer) *Subject {
	s := &Subject{}
	for _, o := range observers {
		s.Register(o)
	}
	return s
}

// Register adds an observer. Nil observers are ignored.
func (s *Subject) Register(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Len returns the number of registered observers.
func (s *Subject) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// Notify delivers a result to every observer.
func (s *Subject) Notify(res Result) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.observers {
		o.Observe(res)
	}
}

// NotifyError delivers a rejected input to every observer.
func (s *Subject) NotifyError(method Method, miles float64, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.observers {
		o.ObserveError(method, miles, err)
	}
}

// LoggingObserver writes a debug entry per conversion and a warning per
// rejected input.
type LoggingObserver struct {
	logger logging.Logger
}

// NewLoggingObserver creates an observer logging through logger.
func NewLoggingObserver(logger logging.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// Observe implements Observer.
func (o *LoggingObserver) Observe(res Result) {
	o.logger.Debug("conversion completed",
		logging.String("method", string(res.Method)),
		logging.Float64("miles", res.Miles),
		logging.Float64("km", res.Kilometers),
		logging.String("outcome", string(res.Outcome)),
		logging.Bool("fallback", res.Outcome.IsFallback()),
	)
}

// ObserveError implements Observer.
func (o *LoggingObserver) ObserveError(method Method, miles float64, err error) {
	o.logger.Warn("conversion rejected",
		logging.String("method", string(method)),
		logging.Float64("miles", miles),
		logging.Err(err),
	)
}

// NoOpObserver discards all notifications.
type NoOpObserver struct{}

func (NoOpObserver) Observe(Result)                      {}
func (NoOpObserver) ObserveError(Method, float64, error) {}
