// Package webgl implements gl.Context on a browser WebGL 1 context and
// anim.Scheduler on requestAnimationFrame. Both build only for js/wasm.
//
//	canvas, _ := webgl.Canvas("canvas")
//	ctx, err := webgl.NewContext(canvas)
//	if err != nil {
//	    return err
//	}
//	sched := webgl.NewScheduler()
//	defer sched.Release()
package webgl
