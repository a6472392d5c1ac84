package recording

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glscene/gl"
)

type shaderObject struct {
	stage       gputypes.ShaderStage
	source      string
	compiled    bool
	log         string
	refl        Reflection
	attachments int
	deleted     bool // flagged for deletion, still attached somewhere
}

type programObject struct {
	attached []uint32
	linked   bool
	log      string
	attribs  map[string]int
	uniforms map[string]int
	values   map[int][16]float32
}

func (p *programObject) uniformName(loc int) string {
	for name, l := range p.uniforms {
		if l == loc {
			return name
		}
	}
	return ""
}

type bufferObject struct {
	floats  []float32
	indices []uint16
	usage   gl.Usage
}

// objectPool stores the Recorder's shader, program and buffer objects.
// IDs are shared across kinds and start at 1, so 0 is never a valid handle.
//
// objectPool is not safe for concurrent use.
type objectPool struct {
	next     uint32
	shaders  map[uint32]*shaderObject
	programs map[uint32]*programObject
	buffers  map[uint32]*bufferObject
}

func newObjectPool() *objectPool {
	return &objectPool{
		shaders:  make(map[uint32]*shaderObject),
		programs: make(map[uint32]*programObject),
		buffers:  make(map[uint32]*bufferObject),
	}
}

func (p *objectPool) id() uint32 {
	p.next++
	return p.next
}

func (p *objectPool) addShader(stage gputypes.ShaderStage) uint32 {
	id := p.id()
	p.shaders[id] = &shaderObject{stage: stage}
	return id
}

func (p *objectPool) addProgram() uint32 {
	id := p.id()
	p.programs[id] = &programObject{}
	return id
}

func (p *objectPool) addBuffer() uint32 {
	id := p.id()
	p.buffers[id] = &bufferObject{}
	return id
}

func (p *objectPool) shader(id uint32) *shaderObject {
	return p.shaders[id]
}

func (p *objectPool) program(id uint32) *programObject {
	return p.programs[id]
}

func (p *objectPool) buffer(id uint32) *bufferObject {
	return p.buffers[id]
}

func (p *objectPool) deleteProgram(id uint32) {
	delete(p.programs, id)
}

func (p *objectPool) deleteBuffer(id uint32) {
	delete(p.buffers, id)
}

// deleteShader releases a shader, or flags it when it is still attached.
func (p *objectPool) deleteShader(id uint32) {
	sh := p.shaders[id]
	if sh == nil {
		return
	}
	if sh.attachments > 0 {
		sh.deleted = true
		return
	}
	delete(p.shaders, id)
}

// detachShader drops one attachment and releases a flagged shader once it
// is no longer attached.
func (p *objectPool) detachShader(id uint32) {
	sh := p.shaders[id]
	if sh == nil {
		return
	}
	sh.attachments--
	if sh.attachments <= 0 && sh.deleted {
		delete(p.shaders, id)
	}
}

func (p *objectPool) live() (shaders, programs, buffers int) {
	for _, sh := range p.shaders {
		if !sh.deleted {
			shaders++
		}
	}
	return shaders, len(p.programs), len(p.buffers)
}
