// Package balloons renders letters riding balloons that drift up an
// [Ebitengine] window, wrap back to the bottom when they float off the top,
// and multiply when you click.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := balloons.NewScene(balloons.SceneConfig{Message: "HAPPY BIRTHDAY"})
//	if err := balloons.Run(scene, balloons.RunConfig{Title: "Party"}); err != nil {
//		log.Fatal(err)
//	}
//
// # Simulation
//
// A [Scene] owns an ordered slice of [Balloon] values. Each frame,
// [Scene.Step] turns the frame time (milliseconds) into a normalized step
// where 1.0 is one frame at 60 Hz, clamped to 2.0 after long pauses, and
// advances every balloon. [Scene.Draw] renders them back-to-front onto a
// [Surface]. [Scene.Frame] does both in one pass for hosts that own their
// own refresh callback.
//
// All randomness flows through the [Rand] given in [SceneConfig], so a fixed
// seed replays the exact same animation:
//
//	scene := balloons.NewScene(balloons.SceneConfig{Seed: 42})
//	scene.SpawnPopulation(800, 600)
//	rec := balloons.NewRecorder()
//	for f := 0; f < 60; f++ {
//		scene.Frame(rec, float64(f)*16.6667)
//	}
//
// # Surfaces
//
// [EbitenSurface] draws onto an *ebiten.Image with solid-color triangles and
// text/v2 glyphs. [Recorder] records the calls instead, which is how tests
// and the headless demo inspect frames without a GPU.
//
// # Input
//
// [Game] turns left-click and touch releases into [Scene.Click]. Other
// goroutines use [Scene.InjectClick], which queues clicks for the next frame.
// A JSON [TestRunner] script can click, resize, wait, and take screenshots.
//
// ECS integration is available through the Donburi adapter in balloons/ecs.
//
// [Ebitengine]: https://ebitengine.org
package balloons
