package ecs

import (
	"github.com/phanxgames/liquid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CascadeEvent is the payload published for each cascade transition. Name
// is the cell's name, empty for events about the whole chain.
type CascadeEvent struct {
	Type  liquid.EventType
	Index int
	Name  string
}

// CascadeEventType is the Donburi event type for liquid cascade events.
var CascadeEventType = events.NewEventType[CascadeEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on CascadeEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) liquid.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(e liquid.Event) {
	ev := CascadeEvent{Type: e.Type, Index: e.Index}
	if e.Cell != nil {
		ev.Name = e.Cell.Name
	}
	CascadeEventType.Publish(s.world, ev)
}
