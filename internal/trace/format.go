package trace

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format is the encoding of formatted events.
type Format uint8

const (
	FormatText Format = iota
	FormatNDJSON
)

// ParseFormat accepts text (or empty) and ndjson (or json).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	}
	return FormatText, fmt.Errorf("unknown trace format %q (want text|ndjson)", s)
}

// FormatEvent renders ev as one line ending in '\n'.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return eventJSON(ev)
	}
	return eventText(ev)
}

type jsonEvent struct {
	Seq    uint64            `json:"seq"`
	Time   string            `json:"time"`
	Kind   string            `json:"kind"`
	Level  string            `json:"level"`
	ID     uint64            `json:"id,omitempty"`
	Parent uint64            `json:"parent,omitempty"`
	Name   string            `json:"name"`
	Detail string            `json:"detail,omitempty"`
	Err    bool              `json:"error,omitempty"`
	Attrs  map[string]string `json:"attrs,omitempty"`
}

func eventJSON(ev *Event) []byte {
	je := jsonEvent{
		Seq:    ev.Seq,
		Time:   ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Kind:   ev.Kind.String(),
		Level:  ev.Level.String(),
		ID:     ev.ID,
		Parent: ev.Parent,
		Name:   ev.Name,
		Detail: ev.Detail,
		Err:    ev.Err,
	}
	if len(ev.Attrs) > 0 {
		je.Attrs = make(map[string]string, len(ev.Attrs))
		for _, a := range ev.Attrs {
			je.Attrs[a.Key] = a.Value
		}
	}
	data, err := json.Marshal(je)
	if err != nil {
		// в jsonEvent только строки, числа и bool
		panic(err)
	}
	return append(data, '\n')
}

// eventText: "[15:04:05.000000]   → name (detail) {k=v, k=v}".
// Вложенные события сдвинуты на два пробела, ошибки помечены ✗.
func eventText(ev *Event) []byte {
	var sb strings.Builder
	sb.WriteString(ev.Time.Format("[15:04:05.000000] "))
	if ev.Parent != 0 {
		sb.WriteString("  ")
	}
	switch {
	case ev.Err:
		sb.WriteString("✗ ")
	case ev.Kind == KindBegin:
		sb.WriteString("→ ")
	case ev.Kind == KindEnd:
		sb.WriteString("← ")
	default:
		sb.WriteString("• ")
	}
	sb.WriteString(ev.Name)
	if ev.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", ev.Detail)
	}
	for i, a := range ev.Attrs {
		if i == 0 {
			sb.WriteString(" {")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Key + "=" + a.Value)
	}
	if len(ev.Attrs) > 0 {
		sb.WriteString("}")
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
