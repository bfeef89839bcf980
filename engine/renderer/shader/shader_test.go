package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

const testSource = `@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(1.0); }`

func TestNewShaderRequiresSourceAndEntryPoint(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("broken", ShaderTypeFragment, "", "fs_main")
	})
	assert.Panics(t, func() {
		NewShader("broken", ShaderTypeFragment, testSource, "")
	})
}

func TestNewShaderAccessors(t *testing.T) {
	layout := wgpu.BindGroupLayoutDescriptor{
		Label: "uniforms",
		Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageFragment},
		},
	}

	s := NewShader("hud_fs", ShaderTypeFragment, testSource, "fs_main",
		WithBindGroupLayoutDescriptor(0, layout))

	assert.Equal(t, "hud_fs", s.Key())
	assert.Equal(t, testSource, s.Source())
	assert.Equal(t, "fs_main", s.EntryPoint())
	assert.Equal(t, ShaderTypeFragment, s.ShaderType())

	assert.Equal(t, layout, s.BindGroupLayoutDescriptor(0))
	assert.Len(t, s.BindGroupLayoutDescriptors(), 1)
	assert.Empty(t, s.BindGroupLayoutDescriptor(1).Entries)

	assert.NotNil(t, s.Module())
	assert.Equal(t, "hud_fs", s.Module().Label)
	assert.Equal(t, testSource, s.Module().WGSLDescriptor.Code)
}

func TestSharedSourceDistinctEntryPoints(t *testing.T) {
	base := NewShader("fs_base", ShaderTypeFragment, testSource, "fs_main")
	ext := NewShader("fs_ext", ShaderTypeFragment, testSource, "fs_extended")

	assert.Equal(t, base.Source(), ext.Source())
	assert.NotEqual(t, base.EntryPoint(), ext.EntryPoint())
}
