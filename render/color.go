package render

// RGB stores explicit 8-bit color channels, decoupled from any backend
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBWhite  = RGB{255, 255, 255}
	RGBRed    = RGB{255, 0, 0}
	RGBBounds = RGB{0, 255, 255}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Add performs additive blend with clamping (light accumulation)
func (dst RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(dst.R)+int(src.R), 255)),
		G: uint8(min(int(dst.G)+int(src.G), 255)),
		B: uint8(min(int(dst.B)+int(src.B), 255)),
	}
}
