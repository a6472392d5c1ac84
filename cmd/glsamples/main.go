//go:build js && wasm

// Command glsamples runs the rendering samples in a browser. The sample is
// chosen by the page's URL fragment ("#sample-1" to "#sample-5") and
// replaced whenever the fragment changes.
//
// The page must contain <canvas id="canvas">.
package main

import (
	"errors"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/gogpu/glscene"
	"github.com/gogpu/glscene/sample"
	"github.com/gogpu/glscene/shaders"
	"github.com/gogpu/glscene/webgl"
)

type app struct {
	ctx     *webgl.Context
	env     sample.Env
	session *sample.Session
}

func main() {
	glscene.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))
	logger := glscene.Logger()

	canvas, err := webgl.Canvas("canvas")
	if err != nil {
		logger.Error("startup failed", "err", err)
		return
	}
	ctx, err := webgl.NewContext(canvas)
	if err != nil {
		logger.Error("startup failed", "err", err)
		return
	}
	sched := webgl.NewScheduler()
	defer sched.Release()

	a := &app{
		ctx: ctx,
		env: sample.Env{
			Width:     float32(ctx.Width()),
			Height:    float32(ctx.Height()),
			Source:    shaders.GLSL,
			Scheduler: sched,
		},
	}
	a.redraw()

	onHash := js.FuncOf(func(this js.Value, args []js.Value) any {
		a.redraw()
		return nil
	})
	defer onHash.Release()
	js.Global().Call("addEventListener", "hashchange", onHash)

	select {}
}

// redraw stops the running sample and starts the one named by the URL
// fragment. An unknown fragment leaves the canvas as it is.
func (a *app) redraw() {
	hash := js.Global().Get("location").Get("hash").String()
	id, err := sample.ParseHash(hash)
	if err != nil {
		glscene.Logger().Warn("no sample selected", "hash", hash)
		return
	}

	if a.session != nil {
		a.session.Release()
		a.session = nil
	}
	sess, err := sample.Run(a.ctx, id, a.env)
	switch {
	case errors.Is(err, sample.ErrUnknown):
		glscene.Logger().Warn("unknown sample", "id", id)
	case err != nil:
		glscene.Logger().Error("sample failed", "id", id, "err", err)
	default:
		a.session = sess
	}
}
