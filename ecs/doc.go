// Package ecs provides ECS adapters for nest's event stream.
//
// The primary adapter is [NewDonburiStore], which forwards every event the run
// loop drains (quit, key, mouse, window) into a [Donburi] world as typed
// events. Subscribe to [EventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
