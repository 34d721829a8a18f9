package ecs

import (
	"testing"

	"github.com/phanxgames/balloons"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []balloons.BalloonEvent
	BalloonEventType.Subscribe(world, func(w donburi.World, e balloons.BalloonEvent) {
		received = append(received, e)
	})

	store.EmitEvent(balloons.BalloonEvent{
		Type:  balloons.EventClick,
		Index: 14,
		Char:  'Q',
		X:     100,
		Y:     230,
	})
	store.EmitEvent(balloons.BalloonEvent{
		Type:  balloons.EventRecycle,
		Index: 3,
	})

	// Events are queued until processed.
	BalloonEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != balloons.EventClick || e0.Index != 14 || e0.Char != 'Q' {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 230 {
		t.Errorf("event 0 position: (%v,%v)", e0.X, e0.Y)
	}
	if received[1].Type != balloons.EventRecycle || received[1].Index != 3 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_SceneSpawn(t *testing.T) {
	world := donburi.NewWorld()
	scene := balloons.NewScene(balloons.SceneConfig{Message: "HI", Seed: 5})
	scene.SetEntityStore(NewDonburiStore(world))

	var spawned []rune
	BalloonEventType.Subscribe(world, func(w donburi.World, e balloons.BalloonEvent) {
		if e.Type == balloons.EventSpawn {
			spawned = append(spawned, e.Char)
		}
	})

	scene.SpawnPopulation(640, 480)
	scene.Click(10, 10)
	events.ProcessAllEvents(world)

	if len(spawned) != 2 || spawned[0] != 'H' || spawned[1] != 'I' {
		t.Errorf("spawned = %q, want [H I]", spawned)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	BalloonEventType.Subscribe(world, func(w donburi.World, e balloons.BalloonEvent) {
		count1++
	})
	BalloonEventType.Subscribe(world, func(w donburi.World, e balloons.BalloonEvent) {
		count2++
	})

	store.EmitEvent(balloons.BalloonEvent{Type: balloons.EventSpawn})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
