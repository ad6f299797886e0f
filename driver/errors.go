package driver

import "errors"

// ErrInvalidWindowSize is the configuration fault raised by NewWindowConfig
// when asked to build a window of zero width. Like lvlath's option
// constructors, this panics immediately at construction time rather than
// surfacing later as a runtime data error, because a zero-width window is
// never a legitimate choice, only a programmer mistake.
var ErrInvalidWindowSize = errors.New("driver: window size must be positive")
