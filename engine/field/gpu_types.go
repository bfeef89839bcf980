package field

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/killown/cube-simulator/engine/telemetry"
)

// CubeFieldShaderSource is the canonical WGSL source for the cube-field render
// pipeline. Its Uniforms struct matches GPUFieldUniforms exactly (64 bytes,
// 16-byte aligned). The source carries one vertex entry point and two fragment
// entry points: the basic HUD and the extended-telemetry HUD.
//
//go:embed assets/cubefield.wgsl
var CubeFieldShaderSource string

// WGSL entry point names within CubeFieldShaderSource.
const (
	VertexEntryPoint           = "vs_main"
	FragmentEntryPoint         = "fs_main"
	FragmentEntryPointExtended = "fs_extended"
)

// GPUFieldUniforms is the GPU-aligned uniform record consumed by the cube-field
// shader. It combines the immutable scene parameters with the most recent
// telemetry sample and is rewritten only when a telemetry window closes, so the
// shading stage reads a stable record between synchronizations.
// Size: 64 bytes (std140 aligned, little-endian on the wire).
type GPUFieldUniforms struct {
	Color     [4]float32 // offset  0: base surface color (rgba, a unused) (16 bytes)
	CubeCount uint32     // offset 16: clamped primitive count (4 bytes)
	CubeSize  float32    // offset 20: cube half-extent (4 bytes)
	Speed     float32    // offset 24: motion speed scale (4 bytes)
	Padding   float32    // offset 28: pad to 16-byte boundary (4 bytes)
	FPSData   [4]float32 // offset 32: current, min-ever, max-ever, 1%-low FPS (16 bytes)
	AdvData   [4]float32 // offset 48: jitter ms, acquire latency ms, reserved ×2 (16 bytes)
}

// NewGPUFieldUniforms packs scene parameters and a telemetry sample into a
// uniform record. The cube count is clamped here so the GPU loop bound can
// never exceed MaxCubeCount.
//
// Parameters:
//   - p: the scene parameters
//   - s: the telemetry sample to display
//
// Returns:
//   - GPUFieldUniforms: the packed record, ready to Marshal
func NewGPUFieldUniforms(p Params, s telemetry.Sample) GPUFieldUniforms {
	return GPUFieldUniforms{
		Color:     [4]float32{p.Color[0], p.Color[1], p.Color[2], 1.0},
		CubeCount: p.EffectiveCubeCount(),
		CubeSize:  p.Size,
		Speed:     p.Speed,
		FPSData:   [4]float32{s.CurrentFPS, s.MinFPS, s.MaxFPS, s.OnePercentLowFPS},
		AdvData:   [4]float32{s.JitterMS, s.AcquireLatencyMS, 0, 0},
	}
}

// Size returns the size of the GPUFieldUniforms struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUFieldUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFieldUniforms struct into a byte buffer suitable
// for GPU upload.
//
// Returns:
//   - []byte: 64-byte little-endian buffer ready for GPU upload.
func (g *GPUFieldUniforms) Marshal() []byte {
	buf := make([]byte, 64)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Color[3]))
	binary.LittleEndian.PutUint32(buf[16:20], g.CubeCount)
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.CubeSize))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Speed))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Padding))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.FPSData[0]))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.FPSData[1]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.FPSData[2]))
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(g.FPSData[3]))
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(g.AdvData[0]))
	binary.LittleEndian.PutUint32(buf[52:56], math.Float32bits(g.AdvData[1]))
	binary.LittleEndian.PutUint32(buf[56:60], math.Float32bits(g.AdvData[2]))
	binary.LittleEndian.PutUint32(buf[60:64], math.Float32bits(g.AdvData[3]))
	return buf
}
