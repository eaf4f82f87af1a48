package session

import "fmt"

type EventType int

const (
	EventKey EventType = iota
	EventClose
)

// Event is one pending input event.
type Event struct {
	Type EventType
	Key  rune
}

func Key(r rune) Event { return Event{Type: EventKey, Key: r} }
func Close() Event     { return Event{Type: EventClose} }

func (e Event) String() string {
	if e.Type == EventClose {
		return "close"
	}
	return fmt.Sprintf("key(%q)", e.Key)
}

// Keys recognized by the dispatcher. Digits 1 to 7 select the algorithm of
// that key in the sorting registry.
const (
	KeyRandomize = '0'
	KeyQuit      = 'q'
)
