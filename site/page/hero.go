package page

// Parallax ranges: the background moves at most this many pixels from centre.
const (
	ParallaxX = 8.0
	ParallaxY = 5.0
)

// Hero is the background video rotation.
type Hero struct {
	Clips  int
	Index  int
	Paused bool
}

// ClipEnded advances to the next clip, wrapping after the last one.
// With no clips it does nothing.
func (h *Hero) ClipEnded() {
	if h.Clips <= 0 {
		return
	}
	h.Index = (h.Index + 1) % h.Clips
}

// Select jumps to clip i. Out of range values wrap.
func (h *Hero) Select(i int) {
	if h.Clips <= 0 {
		h.Index = 0
		return
	}
	h.Index = ((i % h.Clips) + h.Clips) % h.Clips
}

// Playing reports whether the hero video should be playing.
func (h *Hero) Playing() bool {
	return h.Clips > 0 && !h.Paused
}

// Offset maps a pointer position inside a w by h hero to the background
// translation. Positions outside the box are clamped to its edge.
func Offset(x, y, w, h float64) (tx, ty float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	nx := clamp(x/w, 0, 1)
	ny := clamp(y/h, 0, 1)
	return (nx - 0.5) * 2 * ParallaxX, (ny - 0.5) * 2 * ParallaxY
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
