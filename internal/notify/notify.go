// Package notify delivers transient, non-blocking notifications to the
// operator. Every mutation reports exactly one success or error notice;
// fetches only report errors.
package notify

import (
	"fmt"
	"io"
)

type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// Terminal prints notices to the REPL's output writer.
type Terminal struct {
	w io.Writer
}

func NewTerminal(w io.Writer) *Terminal { return &Terminal{w: w} }

func (t *Terminal) Success(title, message string) {
	fmt.Fprintf(t.w, "[ok] %s: %s\n", title, message)
}

func (t *Terminal) Error(title, message string) {
	fmt.Fprintf(t.w, "[error] %s: %s\n", title, message)
}

// Notice is one recorded notification.
type Notice struct {
	Kind    string // "success" or "error"
	Title   string
	Message string
}

// Recorder captures notices for assertions in tests.
type Recorder struct {
	Notices []Notice
}

func (r *Recorder) Success(title, message string) {
	r.Notices = append(r.Notices, Notice{Kind: "success", Title: title, Message: message})
}

func (r *Recorder) Error(title, message string) {
	r.Notices = append(r.Notices, Notice{Kind: "error", Title: title, Message: message})
}

// Errors returns only the error notices.
func (r *Recorder) Errors() []Notice {
	var out []Notice
	for _, n := range r.Notices {
		if n.Kind == "error" {
			out = append(out, n)
		}
	}
	return out
}
