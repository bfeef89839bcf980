package softrender

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/killown/cube-simulator/engine/field"
	"github.com/killown/cube-simulator/engine/telemetry"
)

func TestRenderFrameRejectsInvalidSize(t *testing.T) {
	r := NewRenderer(softWorkers())

	_, err := r.RenderFrame(0, 32, 0, field.DefaultParams(), telemetry.Sample{})
	assert.Error(t, err)

	_, err = r.RenderFrame(32, -1, 0, field.DefaultParams(), telemetry.Sample{})
	assert.Error(t, err)
}

func TestRenderFrameOpaqueGradient(t *testing.T) {
	r := NewRenderer(softWorkers(), WithHUD(false, false))

	params := field.DefaultParams()
	params.CubeCount = 1

	img, err := r.RenderFrame(32, 18, 0, params, telemetry.Sample{})
	assert.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 18, img.Bounds().Dy())

	for y := 0; y < 18; y++ {
		for x := 0; x < 32; x++ {
			assert.Equal(t, uint8(255), img.RGBAAt(x, y).A)
		}
	}

	// The background gradient brightens toward the top of the frame.
	top := img.RGBAAt(0, 0)
	bottom := img.RGBAAt(0, 17)
	assert.Greater(t, top.B, bottom.B)
}

func TestRenderFrameHUDHighlight(t *testing.T) {
	withHUD := NewRenderer(softWorkers(), WithAspect(1.0), WithHUD(true, false))
	noHUD := NewRenderer(softWorkers(), WithAspect(1.0), WithHUD(false, false))

	params := field.DefaultParams()
	params.CubeCount = 1

	// Pixel (2, 2) of a 220x220 frame lands in the lit top-left cell of the
	// FPS row's 'F' glyph.
	img, err := withHUD.RenderFrame(220, 220, 0, params, telemetry.Sample{})
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0, G: 255, B: 128, A: 255}, img.RGBAAt(2, 2))

	plain, err := noHUD.RenderFrame(220, 220, 0, params, telemetry.Sample{})
	assert.NoError(t, err)
	assert.NotEqual(t, img.RGBAAt(2, 2), plain.RGBAAt(2, 2))
}

// softWorkers keeps test pools small so repeated renderer construction stays cheap.
func softWorkers() RendererOption {
	return WithWorkers(2)
}
