// Package render turns listener events into text, JSON or YAML records.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"inputhook/internal/input"
)

// Record is the flat, serialisable form of an input.Event.
type Record struct {
	Time         time.Time `json:"time" yaml:"time"`
	Type         string    `json:"type" yaml:"type"`
	Key          string    `json:"key,omitempty" yaml:"key,omitempty"`
	Button       string    `json:"button,omitempty" yaml:"button,omitempty"`
	X            *float64  `json:"x,omitempty" yaml:"x,omitempty"`
	Y            *float64  `json:"y,omitempty" yaml:"y,omitempty"`
	DeltaX       *int64    `json:"delta_x,omitempty" yaml:"delta_x,omitempty"`
	DeltaY       *int64    `json:"delta_y,omitempty" yaml:"delta_y,omitempty"`
	PlatformCode uint32    `json:"platform_code" yaml:"platform_code"`
	ScanCode     uint32    `json:"scan_code" yaml:"scan_code"`
}

// FromEvent flattens ev.
func FromEvent(ev input.Event) Record {
	r := Record{
		Time:         ev.Time,
		PlatformCode: ev.PlatformCode,
		ScanCode:     ev.ScanCode,
	}
	switch t := ev.Type.(type) {
	case input.KeyPress:
		r.Type, r.Key = "key_press", t.Key.String()
	case input.KeyRelease:
		r.Type, r.Key = "key_release", t.Key.String()
	case input.ButtonPress:
		r.Type, r.Button = "button_press", t.Button.String()
	case input.ButtonRelease:
		r.Type, r.Button = "button_release", t.Button.String()
	case input.MouseMove:
		r.Type, r.X, r.Y = "mouse_move", &t.X, &t.Y
	case input.Wheel:
		r.Type, r.DeltaX, r.DeltaY = "wheel", &t.DeltaX, &t.DeltaY
	default:
		r.Type = fmt.Sprintf("%T", ev.Type)
	}
	return r
}

// Writer writes one record per event in a fixed format.
type Writer struct {
	w      io.Writer
	format string
	json   *json.Encoder
}

// NewWriter returns a writer for format text, json (one object per line) or
// yaml (one document per event).
func NewWriter(w io.Writer, format string) (*Writer, error) {
	rw := &Writer{w: w, format: strings.ToLower(format)}
	switch rw.format {
	case "text", "yaml":
	case "json":
		rw.json = json.NewEncoder(w)
		rw.json.SetEscapeHTML(false)
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return rw, nil
}

// Write renders ev.
func (w *Writer) Write(ev input.Event) error {
	r := FromEvent(ev)
	switch w.format {
	case "json":
		return w.json.Encode(r)
	case "yaml":
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal event: %w", err)
		}
		_, err = fmt.Fprintf(w.w, "---\n%s", data)
		return err
	default:
		_, err := fmt.Fprintln(w.w, Text(r))
		return err
	}
}

// Text renders r as a single human readable line.
func Text(r Record) string {
	var b strings.Builder
	b.WriteString(r.Time.Format("15:04:05.000"))
	b.WriteByte(' ')
	fmt.Fprintf(&b, "%-14s", r.Type)
	switch {
	case r.Key != "":
		fmt.Fprintf(&b, " %s code=%d scan=%d", r.Key, r.PlatformCode, r.ScanCode)
	case r.Button != "":
		fmt.Fprintf(&b, " %s", r.Button)
	case r.X != nil && r.Y != nil:
		fmt.Fprintf(&b, " x=%g y=%g", *r.X, *r.Y)
	case r.DeltaX != nil && r.DeltaY != nil:
		fmt.Fprintf(&b, " dx=%d dy=%d", *r.DeltaX, *r.DeltaY)
	}
	return b.String()
}
