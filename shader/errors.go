package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glscene/gl"
)

// ErrInvalidStage reports a source or compiled stage that is not the one
// expected (vertex or fragment).
var ErrInvalidStage = errors.New("shader: invalid stage")

// CompileError carries the info log of a failed compile, verbatim.
type CompileError struct {
	Stage gputypes.ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: %s compile failed: %s", gl.StageName(e.Stage), e.Log)
}

// LinkError carries the info log of a failed link, verbatim.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader: link failed: " + e.Log
}
