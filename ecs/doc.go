// Package ecs provides ECS adapters for liquid's cascade events.
//
// The primary adapter is [NewDonburiSink], which bridges cascade events
// (open, close, spawn, settle, remove) into a [Donburi] world as typed
// events. Subscribe to [CascadeEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	button.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
