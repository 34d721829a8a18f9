package ecs

import (
	"github.com/phanxgames/balloons"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BalloonEventType is the Donburi event type for balloon lifecycle events.
// Subscribe to this in your ECS systems to receive spawn, click, and recycle
// events.
var BalloonEventType = events.NewEventType[balloons.BalloonEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are published to BalloonEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) balloons.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event balloons.BalloonEvent) {
	BalloonEventType.Publish(s.world, event)
}
