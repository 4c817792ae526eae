package page

// Slider is the horizontally scrolled showreel strip.
// Max is the largest scroll offset; zero means unbounded.
type Slider struct {
	ScrollLeft float64
	Max        float64

	dragging    bool
	startX      float64
	startScroll float64
}

// Down starts a drag at pointer x.
func (s *Slider) Down(x float64) {
	s.dragging = true
	s.startX = x
	s.startScroll = s.ScrollLeft
}

// Move drags to pointer x and returns the new scroll offset. Without a
// preceding Down the offset is unchanged.
func (s *Slider) Move(x float64) float64 {
	if !s.dragging {
		return s.ScrollLeft
	}
	s.ScrollLeft = s.bound(s.startScroll + (s.startX - x))
	return s.ScrollLeft
}

// Up ends the drag. Pointer leave is handled the same way.
func (s *Slider) Up() {
	s.dragging = false
}

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// Wheel scrolls horizontally by the vertical wheel delta.
func (s *Slider) Wheel(dy float64) float64 {
	if dy != 0 {
		s.ScrollLeft = s.bound(s.ScrollLeft + dy)
	}
	return s.ScrollLeft
}

func (s *Slider) bound(v float64) float64 {
	if v < 0 {
		return 0
	}
	if s.Max > 0 && v > s.Max {
		return s.Max
	}
	return v
}
