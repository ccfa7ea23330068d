package middleware

import "net/http"

// statusRecorder remembers the status code a handler answered with.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

// recordStatus wraps w. When w is already a recorder it is returned as is,
// so stacked middleware see the same status.
func recordStatus(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w}
}

// WriteHeader forwards the first call only.
func (s *statusRecorder) WriteHeader(code int) {
	if s.answered() {
		return
	}
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if !s.answered() {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// Status returns the answered code; a handler that wrote nothing answered 200.
func (s *statusRecorder) Status() int {
	if !s.answered() {
		return http.StatusOK
	}
	return s.status
}

func (s *statusRecorder) answered() bool {
	return s.status != 0
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
