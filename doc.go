// Package nest is a minimal 2D rendering engine: one window, one lifecycle
// state, and a handful of outlined primitives drawn through a pluggable
// backend.
//
// # Quick start
//
// Create a backend, open it with [Init], register a [State], and call
// [Nest.Run]. The loop clears the frame, runs the state's Update, drains
// events, and presents, until a quit event arrives:
//
//	n, err := nest.Init(nest.NewEbitenBackend(nest.EbitenOptions{}), nest.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	box := nest.NewRectangle(nest.Vec2{X: 20, Y: 20}, 80, 40, nest.Hex("#52ba71"))
//	n.SetCurrentState(nest.State{
//		Init:   func() { fmt.Println("hello") },
//		Update: func() { n.Draw(box) },
//		Exit:   func() { fmt.Println("goodbye") },
//	})
//	if err := n.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Backends
//
// [EbitenBackend] runs on [Ebitengine] and is the default. Ebitengine owns the
// main loop, so it implements [Driver] and records draw calls for replay in
// its Draw callback. An SDL2 backend lives in nest/sdlbackend behind the sdl2
// build tag. Anything implementing [Backend] works, including test doubles.
//
// # Primitives and textures
//
// [Rectangle], [Circle], [Triangle], and [Line] embed an [Entity] and are
// drawn with [Nest.Draw]. Textures are loaded with [Nest.LoadTexture] (PNG,
// JPEG, GIF, BMP, TIFF, WebP, and SVG) and bound to exactly one entity with
// [Nest.BindTexture].
//
// # Math
//
// [Vec2] covers the usual vector operations. Angles are typed as [Degrees] or
// [Radians] so the two cannot be mixed; both wrap into [0, period) with
// Normalize and report the signed shortest turn with ShortestDistance.
//
// Tweens (via [gween]) animate entity positions, scalar fields, and angles
// along the shortest arc. ECS integration (via a [Donburi] adapter) lives in
// nest/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package nest
