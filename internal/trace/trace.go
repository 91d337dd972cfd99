package trace

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Level is both the verbosity of a tracer and the visibility of an event:
// a tracer keeps events whose Level is not above its own.
type Level uint8

const (
	LevelOff    Level = iota
	LevelPhase        // load, tokenize, parse, parse-dir
	LevelDetail       // + per-file spans and points
)

var levelNames = [...]string{"off", "phase", "detail"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", l)
}

// ParseLevel accepts off, phase or detail in any case.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("unknown trace level %q (want off|phase|detail)", s)
}

// Kind says whether an event opens a span, closes it or stands alone.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindBegin:
		return "begin"
	case KindEnd:
		return "end"
	case KindPoint:
		return "point"
	}
	return "unknown"
}

// Attr is one key=value annotation on a span end.
type Attr struct {
	Key, Value string
}

// Event is one record handed to a Tracer.
type Event struct {
	Seq    uint64
	Time   time.Time
	Kind   Kind
	Level  Level
	ID     uint64 // span id; 0 for points
	Parent uint64
	Name   string
	Detail string
	Err    bool
	Attrs  []Attr
}

// Tracer receives events. Emit must be safe for concurrent use: parse-dir
// traces files from several goroutines.
type Tracer interface {
	Emit(ev Event)
	Level() Level
	Close() error
}

type nopTracer struct{}

func (nopTracer) Emit(Event)   {}
func (nopTracer) Level() Level { return LevelOff }
func (nopTracer) Close() error { return nil }

// Nop drops everything.
var Nop Tracer = nopTracer{}

// counter раздаёт и Seq, и id спанов: оба только растут.
var counter atomic.Uint64

func next() uint64 { return counter.Add(1) }

func wants(t Tracer, lvl Level) bool {
	return t != nil && lvl > LevelOff && lvl <= t.Level()
}
