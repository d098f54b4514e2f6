// Package ecs provides ECS adapters for burst sprites.
//
// [Attach] puts a sprite into a [Donburi] world as an [Animator] component,
// [Update] is the system that advances every attached sprite, and finished
// animations are published as [FinishedEventType] events:
//
//	entity := ecs.Attach(world, hero)
//	ecs.FinishedEventType.Subscribe(world, func(w donburi.World, e ecs.Finished) { ... })
//
//	// each tick
//	ecs.Update(world, dt)
//	ecs.FinishedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
