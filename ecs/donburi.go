package ecs

import (
	"time"

	"github.com/phanxgames/burst"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// AnimatorData is the component payload: the sprite an entity animates.
type AnimatorData struct {
	Sprite *burst.Sprite
}

// Animator is the Donburi component type for animated sprites.
var Animator = donburi.NewComponentType[AnimatorData]()

// Finished is published when an attached sprite's animation finishes.
type Finished struct {
	Entity    donburi.Entity
	Animation string
}

// FinishedEventType is the Donburi event type for finished animations.
var FinishedEventType = events.NewEventType[Finished]()

var animators = donburi.NewQuery(filter.Contains(Animator))

// Attach creates an entity carrying s and chains s's finished callback so
// completions are also published as Finished events.
func Attach(world donburi.World, s *burst.Sprite) donburi.Entity {
	entity := world.Create(Animator)
	Animator.SetValue(world.Entry(entity), AnimatorData{Sprite: s})

	prev := s.Animation.OnFinish
	s.Animation.OnFinish = func(name string) {
		if prev != nil {
			prev(name)
		}
		FinishedEventType.Publish(world, Finished{Entity: entity, Animation: name})
	}
	return entity
}

// Update advances every attached sprite by dt. Entities whose sprite was
// killed are removed from the world.
func Update(world donburi.World, dt time.Duration) {
	var dead []donburi.Entity
	animators.Each(world, func(entry *donburi.Entry) {
		s := Animator.Get(entry).Sprite
		if s == nil || !s.Alive() {
			dead = append(dead, entry.Entity())
			return
		}
		s.Update(dt)
	})
	for _, e := range dead {
		world.Remove(e)
	}
}
