package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
)

// Stream formats each event as it arrives. Output is buffered until Close.
type Stream struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer
	level  Level
	format Format
}

// NewStream writes to w; if w is an io.Closer, Close closes it.
func NewStream(w io.Writer, level Level, format Format) *Stream {
	s := &Stream{w: bufio.NewWriter(w), level: level, format: format}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

func (s *Stream) Emit(ev Event) {
	if ev.Level > s.level {
		return
	}
	data := FormatEvent(&ev, s.format)
	s.mu.Lock()
	// ошибка записи всплывёт в Close через Flush
	_, _ = s.w.Write(data)
	s.mu.Unlock()
}

func (s *Stream) Level() Level { return s.level }

func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.w.Flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Ring keeps the last cap(buf) events in memory until WriteTo.
type Ring struct {
	mu    sync.Mutex
	buf   []Event
	start int // oldest event once buf is full
	level Level
}

func NewRing(size int, level Level) *Ring {
	return &Ring{buf: make([]Event, 0, max(size, 1)), level: level}
}

func (r *Ring) Emit(ev Event) {
	if ev.Level > r.level {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.buf) < cap(r.buf) {
		r.buf = append(r.buf, ev)
		return
	}
	r.buf[r.start] = ev
	r.start = (r.start + 1) % len(r.buf)
}

// Events returns the kept events oldest first.
func (r *Ring) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, 0, len(r.buf))
	out = append(out, r.buf[r.start:]...)
	return append(out, r.buf[:r.start]...)
}

// WriteTo formats the kept events into w.
func (r *Ring) WriteTo(w io.Writer, format Format) error {
	for _, ev := range r.Events() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Ring) Level() Level { return r.level }
func (r *Ring) Close() error { return nil }

// Config selects the tracer built by New.
type Config struct {
	Level  Level
	Format Format
	Path   string    // файл; "" или "-" значит stderr
	Output io.Writer // если задан, Path не используется
	Ring   int       // >0: кольцо на Ring событий вместо потока
}

// New returns Nop for LevelOff, a *Ring when cfg.Ring > 0 and a *Stream
// otherwise.
func New(cfg Config) (Tracer, error) {
	switch {
	case cfg.Level == LevelOff:
		return Nop, nil
	case cfg.Ring > 0:
		return NewRing(cfg.Ring, cfg.Level), nil
	}
	w := cfg.Output
	switch {
	case w != nil:
	case cfg.Path == "" || cfg.Path == "-":
		// stderr закрывать нельзя
		w = struct{ io.Writer }{os.Stderr}
	default:
		f, err := os.Create(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("trace output: %w", err)
		}
		w = f
	}
	return NewStream(w, cfg.Level, cfg.Format), nil
}
