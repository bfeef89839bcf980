package field

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/killown/cube-simulator/engine/telemetry"
)

func TestGPUFieldUniformsSize(t *testing.T) {
	u := GPUFieldUniforms{}
	assert.Equal(t, 64, u.Size())
	assert.Len(t, u.Marshal(), 64)
}

func TestNewGPUFieldUniformsClampsCubeCount(t *testing.T) {
	p := testParams()
	p.CubeCount = 500

	u := NewGPUFieldUniforms(p, telemetry.Sample{})
	assert.Equal(t, uint32(MaxCubeCount), u.CubeCount)

	buf := u.Marshal()
	assert.Equal(t, uint32(MaxCubeCount), binary.LittleEndian.Uint32(buf[16:20]))
}

func TestMarshalLayout(t *testing.T) {
	p := testParams()
	s := telemetry.Sample{
		CurrentFPS:       60.0,
		MinFPS:           30.0,
		MaxFPS:           144.0,
		OnePercentLowFPS: 24.0,
		JitterMS:         1.5,
		AcquireLatencyMS: 0.25,
	}
	u := NewGPUFieldUniforms(p, s)
	buf := u.Marshal()

	f32At := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
	}

	assert.Equal(t, p.Color[0], f32At(0))
	assert.Equal(t, p.Color[1], f32At(4))
	assert.Equal(t, p.Color[2], f32At(8))
	assert.Equal(t, float32(1.0), f32At(12))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf[16:20]))
	assert.Equal(t, p.Size, f32At(20))
	assert.Equal(t, p.Speed, f32At(24))
	assert.Zero(t, f32At(28))
	assert.Equal(t, s.CurrentFPS, f32At(32))
	assert.Equal(t, s.MinFPS, f32At(36))
	assert.Equal(t, s.MaxFPS, f32At(40))
	assert.Equal(t, s.OnePercentLowFPS, f32At(44))
	assert.Equal(t, s.JitterMS, f32At(48))
	assert.Equal(t, s.AcquireLatencyMS, f32At(52))
	assert.Zero(t, f32At(56))
	assert.Zero(t, f32At(60))
}
