package recording

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"

	"github.com/gogpu/glscene/gl"
	"github.com/gogpu/glscene/internal/cache"
)

// Reflection is the interface of a compiled shader stage as seen by the
// linker: vertex inputs by name, and the uniforms it declares.
type Reflection struct {
	// Attributes maps vertex input names to their locations.
	// Only vertex stages declare attributes.
	Attributes map[string]int
	// Uniforms lists uniform names in declaration order.
	Uniforms []string
}

// Compiler compiles one shader stage for the Recorder. A non-nil error
// marks the compile as failed; its text becomes the shader info log.
type Compiler interface {
	Compile(stage gputypes.ShaderStage, source string) (Reflection, error)
}

// NagaCompiler compiles WGSL with naga and reflects the stage interface
// from the lowered IR. It is the Recorder's default compiler.
//
// Results are memoized per stage and source in a process-wide cache, so
// returned reflections must be treated as read-only.
type NagaCompiler struct{}

type compileKey struct {
	stage  gputypes.ShaderStage
	source string
}

type compileResult struct {
	refl Reflection
	err  error
}

var compileCache = cache.New[compileKey, compileResult](128)

// CompileCacheStats reports hit and miss counts of the NagaCompiler cache.
func CompileCacheStats() cache.Stats {
	return compileCache.Stats()
}

// Compile implements Compiler.
func (NagaCompiler) Compile(stage gputypes.ShaderStage, source string) (Reflection, error) {
	res := compileCache.GetOrCreate(compileKey{stage, source}, func() compileResult {
		refl, err := compile(stage, source)
		return compileResult{refl, err}
	})
	return res.refl, res.err
}

func compile(stage gputypes.ShaderStage, source string) (Reflection, error) {
	var want ir.ShaderStage
	switch stage {
	case gputypes.ShaderStageVertex:
		want = ir.StageVertex
	case gputypes.ShaderStageFragment:
		want = ir.StageFragment
	default:
		return Reflection{}, fmt.Errorf("unsupported shader stage %q", gl.StageName(stage))
	}

	ast, err := naga.Parse(source)
	if err != nil {
		return Reflection{}, err
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return Reflection{}, fmt.Errorf("lowering error: %w", err)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return Reflection{}, fmt.Errorf("validation error: %w", err)
	}
	if len(verrs) > 0 {
		return Reflection{}, fmt.Errorf("validation failed: %w", &verrs[0])
	}
	if _, err := naga.GenerateSPIRV(module, spirv.Options{Version: naga.DefaultOptions().SPIRVVersion}); err != nil {
		return Reflection{}, err
	}

	ep := entryPoint(module, want)
	if ep == nil {
		return Reflection{}, fmt.Errorf("no @%s entry point", gl.StageName(stage))
	}

	refl := Reflection{Attributes: map[string]int{}}
	for _, gv := range module.GlobalVariables {
		if gv.Space == ir.SpaceUniform {
			refl.Uniforms = append(refl.Uniforms, gv.Name)
		}
	}
	if want == ir.StageVertex {
		for _, arg := range ep.Function.Arguments {
			collectInputs(module, refl.Attributes, arg.Name, arg.Type, arg.Binding)
		}
	}
	return refl, nil
}

func entryPoint(m *ir.Module, stage ir.ShaderStage) *ir.EntryPoint {
	for i := range m.EntryPoints {
		if m.EntryPoints[i].Stage == stage {
			return &m.EntryPoints[i]
		}
	}
	return nil
}

// collectInputs records location-bound inputs. An unbound argument of
// struct type contributes its members.
func collectInputs(m *ir.Module, dst map[string]int, name string, ty ir.TypeHandle, b *ir.Binding) {
	if b != nil {
		if loc, ok := (*b).(ir.LocationBinding); ok {
			dst[name] = int(loc.Location)
		}
		return
	}
	if int(ty) >= len(m.Types) {
		return
	}
	st, ok := m.Types[ty].Inner.(ir.StructType)
	if !ok {
		return
	}
	for _, mem := range st.Members {
		collectInputs(m, dst, mem.Name, mem.Type, mem.Binding)
	}
}
