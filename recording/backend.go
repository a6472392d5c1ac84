package recording

// Backend renders played-back commands to some output, such as pixels.
//
// Playback folds every state command into the DrawState carried by each
// DrawCommand and the clear values carried by each ClearCommand, so a
// Backend only sees frame boundaries, clears and draws.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Accept any sequence of Clear and Draw calls between Begin and End
//  3. Treat unknown topologies and missing attribute streams as no-ops
type Backend interface {
	// Begin initializes the backend for a surface of the given size.
	Begin(width, height int) error

	// Clear clears the buffers selected by c.Mask to c.Color and c.Depth.
	Clear(c ClearCommand)

	// Draw executes one draw call with its captured pipeline state.
	Draw(d DrawCommand)

	// End finalizes the output.
	End() error
}

// Playback replays cmds to b, bracketed by Begin and End.
func Playback(cmds []Command, width, height int, b Backend) error {
	if err := b.Begin(width, height); err != nil {
		return err
	}
	for _, c := range cmds {
		switch c := c.(type) {
		case ClearCommand:
			b.Clear(c)
		case DrawCommand:
			b.Draw(c)
		}
	}
	return b.End()
}

// Playback replays the commands recorded so far to b.
func (r *Recorder) Playback(b Backend) error {
	return Playback(r.commands, r.width, r.height, b)
}
