// Package burst is a 2D sprite-animation library for [Ebitengine].
//
// Burst reads texture atlases into ordered frame collections and plays named
// animations over them, driven by elapsed time.
//
// # Atlases
//
// Two description formats are supported, each as an independent parser that
// returns a [FrameCollection] bound to one source image:
//
//	frames, err := burst.LoadSparrow("hero.png", "hero.xml")     // Sparrow / Starling XML
//	frames, err := burst.LoadJSONPacker("hero.png", "hero.json") // TexturePacker JSON (array or hash)
//
// [ParseSparrow] and [ParseJSONPacker] take already-parsed documents when the
// bytes come from somewhere other than disk. Failures are returned as errors
// wrapping [ErrNoImage], [ErrNoDescription] or [ErrMalformed]; a failed parse
// never yields a partial collection.
//
// # Animations
//
// Every [Sprite] owns an [AnimationController]:
//
//	hero := burst.NewSprite("hero")
//	hero.LoadFrames(frames)
//	hero.Animation.AddByPrefix("run", "hero run", 24, true)
//	hero.Animation.Add("hit", []int{8, 9, 10}, 12, false)
//	hero.Animation.OnFinish = func(name string) { hero.Animation.Play("run") }
//	hero.Animation.Play("run")
//
// Call [Sprite.Update] with the elapsed time each tick, or add the sprite to a
// [Stage], which is an [ebiten.Game] that does it for you:
//
//	stage := burst.NewStage(640, 480)
//	stage.Add(hero)
//	burst.Run(stage, burst.RunConfig{Title: "Hero", Width: 640, Height: 480})
//
// Animations can also be declared in YAML with [AnimationSet]. Sprites can be
// moved, scaled and faded with gween tweens ([TweenPosition] and friends).
//
// Burst is single-threaded: a controller must only be driven from one
// goroutine at a time.
//
// [Ebitengine]: https://ebitengine.org
package burst
