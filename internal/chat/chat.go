// Package chat holds the assistant mini-panel's draft and hands accepted
// messages to a Sink.
package chat

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sink receives one trimmed, non-empty message per accepted submission.
type Sink interface {
	Deliver(text string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(text string)

func (f SinkFunc) Deliver(text string) { f(text) }

// LogSink records messages in the application log. It stands in for the
// assistant backend.
type LogSink struct {
	Log *zap.Logger
}

func (s LogSink) Deliver(text string) {
	if s.Log == nil {
		return
	}
	s.Log.Info("chat message",
		zap.String("id", uuid.NewString()),
		zap.Int("length", len(text)),
		zap.String("text", text),
	)
}

// Panel owns the draft text of the chat input.
type Panel struct {
	sink  Sink
	draft string
}

func NewPanel(sink Sink) *Panel {
	if sink == nil {
		sink = SinkFunc(func(string) {})
	}
	return &Panel{sink: sink}
}

func (p *Panel) UpdateDraft(text string) { p.draft = text }
func (p *Panel) Draft() string           { return p.draft }

// Reset drops the draft without delivering it.
func (p *Panel) Reset() { p.draft = "" }

// Submit delivers the trimmed draft and clears it. A blank draft is left
// untouched and nothing is delivered.
func (p *Panel) Submit() bool {
	text := strings.TrimSpace(p.draft)
	if text == "" {
		return false
	}
	p.sink.Deliver(text)
	p.draft = ""
	return true
}
