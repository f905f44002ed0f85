package ember

// ScrollOffset returns the current scroll position.
func (w *Widget) ScrollOffset() (x, y float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scrollX, w.scrollY
}

// SetContentSize records the scrollable content extent. The host
// measures content during layout and reports it here; the offset is
// re-clamped against the new extent.
func (w *Widget) SetContentSize(width, height float64) {
	w.mu.Lock()
	w.contentWidth = width
	w.contentHeight = height
	w.clampScrollLocked()
	w.mu.Unlock()
}

// SetViewportSize records the visible window onto the content.
func (w *Widget) SetViewportSize(width, height float64) {
	w.mu.Lock()
	w.viewportWidth = width
	w.viewportHeight = height
	w.clampScrollLocked()
	w.mu.Unlock()
}

// ScrollTo moves the scroll offset to (x, y), clamped so the viewport
// stays within the content.
func (w *Widget) ScrollTo(x, y float64) {
	w.mu.Lock()
	w.scrollX = x
	w.scrollY = y
	w.clampScrollLocked()
	w.dirty |= DirtyLayout
	w.mu.Unlock()
}

// ScrollBy moves the scroll offset by (dx, dy), clamped.
func (w *Widget) ScrollBy(dx, dy float64) {
	w.mu.Lock()
	w.scrollX += dx
	w.scrollY += dy
	w.clampScrollLocked()
	w.dirty |= DirtyLayout
	w.mu.Unlock()
}

func (w *Widget) clampScrollLocked() {
	maxX := w.contentWidth - w.viewportWidth
	maxY := w.contentHeight - w.viewportHeight
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if w.scrollX < 0 {
		w.scrollX = 0
	}
	if w.scrollX > maxX {
		w.scrollX = maxX
	}
	if w.scrollY < 0 {
		w.scrollY = 0
	}
	if w.scrollY > maxY {
		w.scrollY = maxY
	}
}

// ShowsScrollIndicators reports whether the host should draw scroll
// bars for this view.
func (w *Widget) ShowsScrollIndicators() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.showScrollIndicators
}
