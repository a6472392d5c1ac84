// Command glrender renders a sample headlessly and saves the last frame
// as a PNG.
//
// Shaders are compiled from their WGSL variants with naga; the recorded
// frame is played back on a registered backend, the software rasterizer
// by default.
//
//	glrender -sample 5 -frames 90 -workers 4 -output cube.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/glscene"
	"github.com/gogpu/glscene/raster"
	"github.com/gogpu/glscene/recording"
	"github.com/gogpu/glscene/sample"
	"github.com/gogpu/glscene/shaders"
)

func main() {
	var (
		id          = flag.Int("sample", 5, "sample id (1-5)")
		frames      = flag.Int("frames", 60, "frames to advance animated samples")
		width       = flag.Int("width", 800, "image width")
		height      = flag.Int("height", 600, "image height")
		backend     = flag.String("backend", "raster", fmt.Sprintf("playback backend %v", recording.Backends()))
		supersample = flag.Int("supersample", 1, "supersampling factor per axis")
		workers     = flag.Int("workers", 1, "rasterizer goroutines")
		output      = flag.String("output", "sample.png", "output file")
		verbose     = flag.Bool("v", false, "log object and frame events")
	)
	flag.Parse()

	if *verbose {
		glscene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	rec := recording.NewRecorder(recording.WithSize(*width, *height))
	sched := &recording.ManualScheduler{}
	sess, err := sample.Run(rec, *id, sample.Env{
		Width:     float32(*width),
		Height:    float32(*height),
		Source:    shaders.WGSL,
		Scheduler: sched,
	})
	if err != nil {
		log.Fatalf("Failed to run sample: %v", err)
	}

	// Only the last frame is played back.
	if sched.Pending() > 0 && *frames > 0 {
		sched.Run(*frames - 1)
		rec.Reset()
		sched.Advance()
	}

	b, err := rec.Render(*backend, recording.BackendConfig{
		Supersample: *supersample,
		Workers:     *workers,
	})
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	sess.Release()

	rb, ok := b.(*raster.Backend)
	if !ok {
		log.Fatalf("Backend %q cannot write images", *backend)
	}
	if err := rb.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	st := rb.Stats()
	p := message.NewPrinter(language.English)
	p.Printf("Sample %d (%s) saved to %s (%dx%d): %d frames, %d triangles, %d fragments\n",
		*id, sess.Sample().Name, *output, *width, *height, sess.Frames(), st.Triangles, st.Fragments)
}
