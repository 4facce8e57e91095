package ecs

import (
	"github.com/phanxgames/nest"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType is the Donburi event type for nest platform events.
var EventType = events.NewEventType[nest.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events are
// published to EventType and delivered by events.ProcessAllEvents or
// EventType.ProcessEvents.
func NewDonburiStore(world donburi.World) nest.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event nest.Event) {
	EventType.Publish(s.world, event)
}
