// Headless runs the balloon scene without a window. Frames are recorded into
// a balloons.Recorder and summarized on stdout, which makes it handy for
// profiling the simulation or checking determinism across machines.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/phanxgames/balloons"
)

func main() {
	frames := flag.Int("frames", 600, "number of frames to simulate")
	width := flag.Float64("width", 960, "viewport width")
	height := flag.Float64("height", 640, "viewport height")
	seed := flag.Uint64("seed", 1, "random seed")
	clicks := flag.Int("clicks", 10, "clicks injected over the run")
	msg := flag.String("message", balloons.DefaultMessage, "message to spell")
	debug := flag.Bool("debug", false, "print per-second scene stats to stderr")
	flag.Parse()

	if *frames <= 0 {
		log.Fatal("frames must be positive")
	}

	scene := balloons.NewScene(balloons.SceneConfig{Message: *msg, Seed: *seed})
	scene.SetDebugMode(*debug)
	scene.SpawnPopulation(*width, *height)

	every := 0
	if *clicks > 0 {
		every = max(1, *frames / *clicks)
	}

	rec := balloons.NewRecorder()
	var fills, glyphs int
	for f := 0; f < *frames; f++ {
		if every > 0 && f%every == 0 {
			x := *width * (0.5 + 0.4*math.Sin(float64(f)))
			scene.InjectClick(x, *height*0.75)
		}
		rec.Reset()
		scene.Frame(rec, float64(f)*16.6667)
		fills += rec.Count(balloons.OpFill)
		glyphs += rec.Count(balloons.OpFillText)
	}

	highest := math.Inf(1)
	for _, b := range scene.Balloons() {
		highest = min(highest, b.Y)
	}

	fmt.Printf("frames:    %d\n", *frames)
	fmt.Printf("balloons:  %d\n", scene.Len())
	fmt.Printf("recycles:  %d\n", scene.Recycles())
	fmt.Printf("fills:     %d (%.1f/frame)\n", fills, float64(fills)/float64(*frames))
	fmt.Printf("glyphs:    %d (%.1f/frame)\n", glyphs, float64(glyphs)/float64(*frames))
	fmt.Printf("highest y: %.2f\n", highest)
}
