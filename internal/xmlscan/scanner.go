// Package xmlscan drives a standard library encoding/xml.Decoder as a
// push parser: instead of the caller pulling tokens, the scanner pushes
// character-data, element-begin, and element-end events into a Listener
// and lets the listener suspend the pump from inside a callback.
//
// encoding/xml.Decoder is already pull-based underneath, so "suspend" has
// no analogue to a C expat-style XML_StopParser call: the scanner simply
// stops asking the decoder for the next token and returns control to the
// caller. Resume picks the same decoder back up at the next token. No
// bytes are re-read and no state is lost between Walk and Resume.
package xmlscan

import (
	"encoding/xml"
	"errors"
	"io"
)

// Listener receives the three event kinds the scanner emits. Byte/string
// views passed to CharData and Begin are only valid for the duration of
// the call; a listener that needs to retain them must copy.
type Listener interface {
	// CharData is called once per contiguous run of character data.
	CharData(data []byte)
	// Begin is called on every opening tag. attrs alternates name, value,
	// name, value... in document order.
	Begin(name string, attrs []string)
	// End is called on every closing tag.
	End(name string)
}

// Suspender is the handle a Listener uses to stop the pump from inside a
// callback. It exposes nothing else, so a machine that holds one cannot
// reach back into the scanner's internals — there is no ownership cycle
// between scanner and listener, only this one narrow interface.
type Suspender interface {
	Suspend()
}

// Scanner pumps a byte stream through an XML decoder and dispatches
// events to a Listener, with the ability for the listener to request
// suspension from inside a callback.
type Scanner struct {
	dec       *xml.Decoder
	listener  Listener
	suspended bool
	done      bool
}

// New creates a Scanner reading from r. The decoder is strict: a
// mismatched or unexpected end tag is a parse error. HTML's named
// entities are accepted in addition to XML's predefined ones; any other
// undeclared entity is a parse error.
func New(r io.Reader) *Scanner {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.Entity = xml.HTMLEntity
	return &Scanner{dec: dec}
}

// Suspend requests that the pump stop at the next event boundary. Callable
// only from within a Listener callback invoked by this Scanner.
func (s *Scanner) Suspend() {
	s.suspended = true
}

// Walk attaches listener and begins pumping. Returns true if pumping
// stopped because the listener suspended it or because EOF was reached
// with no error; false on a parse error.
func (s *Scanner) Walk(listener Listener) (bool, error) {
	s.listener = listener
	return s.pump()
}

// Resume re-enters the pump after a prior Suspend. Semantics mirror Walk:
// true on suspension or clean EOF, false on parse error.
func (s *Scanner) Resume() (bool, error) {
	if s.done {
		s.suspended = false
		return true, nil
	}
	return s.pump()
}

// Suspended reports whether the most recent Walk/Resume call returned
// true because the listener called Suspend (a real page boundary) as
// opposed to running off the end of the input with no further
// suspension. Callers that must not re-read the same snapshot twice at
// EOF use this to tell the two "true" outcomes of Walk/Resume apart.
func (s *Scanner) Suspended() bool {
	return s.suspended
}

// pump drives the decoder one token at a time, dispatching to the
// listener, until the listener suspends, EOF is reached, or an error
// occurs. It always consumes at least one token before returning unless
// already at EOF.
func (s *Scanner) pump() (bool, error) {
	s.suspended = false
	for {
		tok, err := s.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.done = true
				return true, nil
			}
			s.done = true
			return false, err
		}

		switch t := tok.(type) {
		case xml.CharData:
			if len(t) > 0 {
				s.listener.CharData(t)
			}
		case xml.StartElement:
			s.listener.Begin(t.Name.Local, flattenAttrs(t.Attr))
		case xml.EndElement:
			s.listener.End(t.Name.Local)
		}

		if s.suspended {
			return true, nil
		}
	}
}

func flattenAttrs(attrs []xml.Attr) []string {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]string, 0, len(attrs)*2)
	for _, a := range attrs {
		out = append(out, a.Name.Local, a.Value)
	}
	return out
}

// Attr looks up the value of attribute name within a Begin event's attrs
// slice. Returns ok=false if absent.
func Attr(attrs []string, name string) (value string, ok bool) {
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i] == name {
			return attrs[i+1], true
		}
	}
	return "", false
}
