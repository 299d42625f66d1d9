package jsua

import "fmt"

// EventKind identifies the kind of token or structural byte an Event
// represents.
type EventKind uint8

const (
	// EventNone is the zero value. It is never attached to an emitted
	// Event; it is used internally to mean "no value observed yet".
	EventNone EventKind = iota
	EventObjStart
	EventObjEnd
	EventArrStart
	EventArrEnd
	EventColon
	EventComma
	EventValStr
	EventValNum
	EventValBool
	EventValNull
)

var eventKindNames = []string{
	EventNone:     "none",
	EventObjStart: "ObjStart",
	EventObjEnd:   "ObjEnd",
	EventArrStart: "ArrStart",
	EventArrEnd:   "ArrEnd",
	EventColon:    "Colon",
	EventComma:    "Comma",
	EventValStr:   "ValStr",
	EventValNum:   "ValNum",
	EventValBool:  "ValBool",
	EventValNull:  "ValNull",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// ContainerKind is the resolved or pending kind of a container stack
// frame. Unknown is not a placeholder for "unset": it is a first-class
// state that the tokenizer can observe, carry forward, and resolve as
// evidence arrives.
type ContainerKind uint8

const (
	ContainerUnknown ContainerKind = iota
	ContainerObject
	ContainerArray
)

var containerKindNames = []string{
	ContainerUnknown: "Unknown",
	ContainerObject:  "Object",
	ContainerArray:   "Array",
}

func (k ContainerKind) String() string {
	if int(k) < len(containerKindNames) {
		return containerKindNames[k]
	}
	return fmt.Sprintf("ContainerKind(%d)", uint8(k))
}

// Event is a single token or structural byte observed by the tokenizer.
//
// Data is a slice borrowed from internal buffers; it is only valid until
// the EventFunc that receives it returns. A caller that needs to retain
// it must copy it.
type Event struct {
	Kind      EventKind
	Completed bool
	Data      []byte
	Container ContainerKind
}

// EventFunc is invoked synchronously, zero or more times, for every byte
// slice passed to Feed, in byte order.
type EventFunc func(Event)
