package notify

import (
	"fmt"
	"io"
)

// Icon returns the glyph shown in front of a toast of the given kind.
func Icon(k Kind) string {
	switch k {
	case KindLoading:
		return "●"
	case KindError:
		return "✗"
	default:
		return "•"
	}
}

// WriterSink prints toasts as lines, for headless use. Dismiss is a no-op
// since printed lines cannot be withdrawn.
type WriterSink struct {
	w      io.Writer
	nextID ID
}

var _ Sink = (*WriterSink)(nil)

// NewWriterSink creates a sink printing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Show implements Sink.
func (s *WriterSink) Show(message string, _ Options) ID {
	return s.print(KindInfo, message)
}

// Error implements Sink.
func (s *WriterSink) Error(message string, _ Options) ID {
	return s.print(KindError, message)
}

// Loading implements Sink.
func (s *WriterSink) Loading(message string, _ Options) ID {
	return s.print(KindLoading, message)
}

// Dismiss implements Sink.
func (s *WriterSink) Dismiss(ID) {}

func (s *WriterSink) print(k Kind, message string) ID {
	s.nextID++
	fmt.Fprintf(s.w, "%s %s\n", Icon(k), message)
	return s.nextID
}
