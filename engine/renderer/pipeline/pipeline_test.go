package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"

	"github.com/killown/cube-simulator/engine/renderer/shader"
)

const testSource = `@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(0.0); }`

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("cube_field")

	assert.Equal(t, "cube_field", p.PipelineKey())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleStrip, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.Nil(t, p.Pipeline())
}

func TestPipelineShaderLookup(t *testing.T) {
	vs := shader.NewShader("vs", shader.ShaderTypeVertex, testSource, "vs_main")
	fs := shader.NewShader("fs", shader.ShaderTypeFragment, testSource, "fs_main")

	p := NewPipeline("cube_field",
		WithVertexShader(vs),
		WithFragmentShader(fs),
	)

	assert.Equal(t, vs, p.Shader(shader.ShaderTypeVertex))
	assert.Equal(t, fs, p.Shader(shader.ShaderTypeFragment))
}
