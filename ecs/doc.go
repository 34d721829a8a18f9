// Package ecs provides ECS adapters for balloon lifecycle events.
//
// The primary adapter is [NewDonburiStore], which bridges balloon events
// (spawn, click, recycle) into a [Donburi] world as typed events.
// Subscribe to [BalloonEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
