package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTapLeft
	GestureTapRight
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// String returns the gesture name used in logs
func (g GestureType) String() string {
	switch g {
	case GestureTapLeft:
		return "tap_left"
	case GestureTapRight:
		return "tap_right"
	case GestureSwipeLeft:
		return "swipe_left"
	case GestureSwipeRight:
		return "swipe_right"
	case GestureSwipeUp:
		return "swipe_up"
	case GestureSwipeDown:
		return "swipe_down"
	case GestureLongPress:
		return "long_press"
	default:
		return "none"
	}
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler turns press/release pairs into gestures
type GestureHandler struct {
	onGesture func(GestureType)
	now       func() time.Time

	// Touch tracking
	pressed        bool
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		now:               time.Now,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// Press records the start of a touch or mouse press
func (gh *GestureHandler) Press(pos fyne.Position) {
	gh.pressed = true
	gh.touchStartTime = gh.now()
	gh.touchStartPos = pos
}

// Release completes the gesture begun by Press. width is the surface width,
// used to tell left taps from right taps.
func (gh *GestureHandler) Release(pos fyne.Position, width float32) GestureType {
	if !gh.pressed {
		return GestureNone
	}
	gh.pressed = false

	gesture := Classify(gh.touchStartPos, pos, gh.now().Sub(gh.touchStartTime), width,
		gh.swipeThreshold, gh.longPressDuration)
	if gesture != GestureNone && gh.onGesture != nil {
		gh.onGesture(gesture)
	}
	return gesture
}

// Cancel drops the gesture in progress
func (gh *GestureHandler) Cancel() {
	gh.pressed = false
	gh.touchStartTime = time.Time{}
}

// Classify determines the gesture for a press at start released at end
func Classify(start, end fyne.Position, duration time.Duration, width, swipeThreshold float32, longPress time.Duration) GestureType {
	dx := end.X - start.X
	dy := end.Y - start.Y

	// Compare squared distances
	if dx*dx+dy*dy >= swipeThreshold*swipeThreshold {
		return swipeDirection(dx, dy)
	}
	if duration >= longPress {
		return GestureLongPress
	}
	if end.X < width/2 {
		return GestureTapLeft
	}
	return GestureTapRight
}

// swipeDirection determines the direction of a swipe gesture
func swipeDirection(dx, dy float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// GestureSurface is a transparent widget that reports gestures from both
// touch screens and mice.
type GestureSurface struct {
	widget.BaseWidget
	handler *GestureHandler
}

var (
	_ mobile.Touchable  = (*GestureSurface)(nil)
	_ desktop.Mouseable = (*GestureSurface)(nil)
)

// NewGestureSurface creates a surface calling onGesture for each recognised gesture
func NewGestureSurface(onGesture func(GestureType)) *GestureSurface {
	s := &GestureSurface{handler: NewGestureHandler(onGesture)}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *GestureSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

// TouchDown handles touch down events
func (s *GestureSurface) TouchDown(event *mobile.TouchEvent) {
	s.handler.Press(event.Position)
}

// TouchUp handles touch up events
func (s *GestureSurface) TouchUp(event *mobile.TouchEvent) {
	s.handler.Release(event.Position, s.Size().Width)
}

// TouchCancel handles touch cancel events
func (s *GestureSurface) TouchCancel(*mobile.TouchEvent) {
	s.handler.Cancel()
}

// MouseDown handles mouse press events
func (s *GestureSurface) MouseDown(event *desktop.MouseEvent) {
	if event.Button == desktop.MouseButtonPrimary {
		s.handler.Press(event.Position)
	}
}

// MouseUp handles mouse release events
func (s *GestureSurface) MouseUp(event *desktop.MouseEvent) {
	if event.Button == desktop.MouseButtonPrimary {
		s.handler.Release(event.Position, s.Size().Width)
	}
}
