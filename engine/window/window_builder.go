package window

// WindowBuilderOption is a functional option applied to the window before it is spawned.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the title bar text.
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithWidth sets the requested client width in screen coordinates.
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the requested client height in screen coordinates.
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithMinSize sets the smallest client area the user can resize the window to.
// Non-positive values leave that dimension unconstrained.
//
// Parameters:
//   - width: minimum width in screen coordinates
//   - height: minimum height in screen coordinates
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth = sizeLimit(width)
		w.minHeight = sizeLimit(height)
	}
}

// WithMaxSize sets the largest client area the user can resize the window to.
// Non-positive values leave that dimension unconstrained.
//
// Parameters:
//   - width: maximum width in screen coordinates
//   - height: maximum height in screen coordinates
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMaxSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.maxWidth = sizeLimit(width)
		w.maxHeight = sizeLimit(height)
	}
}

// sizeLimit maps non-positive limits to the platform's "don't care" value.
func sizeLimit(v int) int {
	if v <= 0 {
		return dontCare
	}
	return v
}

// fitSize clamps the requested size into the configured limits.
func (w *engineWindow) fitSize() {
	w.width = fitDimension(w.width, w.minWidth, w.maxWidth)
	w.height = fitDimension(w.height, w.minHeight, w.maxHeight)
}

func fitDimension(v, lo, hi int) int {
	if lo != dontCare && v < lo {
		v = lo
	}
	if hi != dontCare && v > hi {
		v = hi
	}
	return v
}
