package iobend

import (
	"fmt"

	"github.com/zeusync/physunits/internal/core/observability/log"
)

// Bender is a scoped stream decorator. One created without a stream is bound
// to the first stream it is applied to.
type Bender interface {
	IsSet() bool
	Set(s *Stream)
	Close() error
}

// Apply binds b to s unless b already has a stream, and returns s for chaining.
func (s *Stream) Apply(b Bender) *Stream {
	if !b.IsSet() {
		b.Set(s)
	}
	return s
}

type bender struct {
	stream *Stream
}

func (b *bender) IsSet() bool {
	return b.stream != nil
}

func (b *bender) Set(s *Stream) {
	b.stream = s
}

// KeepFlags snapshots the flags and precision of a stream and restores them
// on Close. Typical use:
//
//	defer iobend.NewKeepFlags(s).Close()
type KeepFlags struct {
	bender
	flags     Flags
	precision int
}

// NewKeepFlags snapshots s now. Pass nil to snapshot the stream the keeper is
// first applied to.
func NewKeepFlags(s *Stream) *KeepFlags {
	k := &KeepFlags{}
	if s != nil {
		k.Set(s)
	}
	return k
}

func (k *KeepFlags) Set(s *Stream) {
	k.bender.Set(s)
	k.flags = s.Flags()
	k.precision = s.Precision()
}

// Close restores the snapshot. It is a no-op if the keeper was never bound.
func (k *KeepFlags) Close() error {
	if k.IsSet() {
		k.stream.SetFlags(k.flags)
		k.stream.SetPrecision(k.precision)
	}
	return nil
}

// TextAtEnd writes fixed text to its stream on Close.
type TextAtEnd struct {
	bender
	text string
}

// NewTextAtEnd returns an unbound TextAtEnd writing text, or "\n" if text is empty.
func NewTextAtEnd(text string) *TextAtEnd {
	if text == "" {
		text = "\n"
	}
	return &TextAtEnd{text: text}
}

// NewTextAtEndOn returns a TextAtEnd bound to s. Unlike NewTextAtEnd, an
// empty text stays empty.
func NewTextAtEndOn(s *Stream, text string) *TextAtEnd {
	t := &TextAtEnd{text: text}
	t.Set(s)
	return t
}

// Close writes the text. It fails if the decorator was never bound.
func (t *TextAtEnd) Close() error {
	if !t.IsSet() {
		return ErrUnbound
	}
	return t.stream.Text(t.text).Err()
}

// Tracer reports when it is created, bound and closed. It decorates nothing
// and exists to show when scoped decorators run.
type Tracer struct {
	bender
	name string
	log  log.Log
}

func NewTracer(logger log.Log, name string) *Tracer {
	t := &Tracer{name: name, log: logger.With(log.String("bender", name))}
	t.log.Debug("empty tracer constructed")
	return t
}

func (t *Tracer) Set(s *Stream) {
	t.bender.Set(s)
	t.log.Debug("tracer set", log.String("stream", fmt.Sprintf("%p", s)))
}

func (t *Tracer) Close() error {
	t.log.Debug("tracer destroyed", log.String("stream", fmt.Sprintf("%p", t.stream)))
	return nil
}
