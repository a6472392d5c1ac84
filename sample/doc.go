// Package sample defines the numbered rendering samples and runs them
// against a gl.Context.
//
// Samples are registered by id in init and selected with Run:
//
//	sess, err := sample.Run(ctx, 5, sample.Env{
//	    Width:     800,
//	    Height:    600,
//	    Source:    shaders.GLSL,
//	    Scheduler: sched,
//	})
//	if err != nil {
//	    return err
//	}
//	defer sess.Release()
//
// Built-in samples:
//
//	1  clear       clear the target to opaque black
//	2  white       a white square
//	3  colored     a square with per-corner colours, one frame
//	4  spinning    the coloured square rotating about Z
//	5  cube        a tumbling cube with one colour per face, depth tested
package sample
