package anim

import (
	"time"
)

// Mode selects which entrance animation a freshly mounted card runs
type Mode int

const (
	Fade Mode = iota
	Scale
	Slide
	FadeSlide
	SlideUp
	RotateX
)

var modeNames = []string{"Fade", "Scale", "Slide", "Fade+Slide", "Slide Up", "RotateX"}

// Modes returns the named modes in chip order
func Modes() []Mode {
	return []Mode{Fade, Scale, Slide, FadeSlide, SlideUp, RotateX}
}

// Known reports whether m is one of the named modes
func (m Mode) Known() bool {
	return m >= Fade && m <= RotateX
}

func (m Mode) String() string {
	if !m.Known() {
		return "Fallback"
	}
	return modeNames[m]
}

// Prop is a visual property a tween drives
type Prop int

const (
	Opacity Prop = iota
	ScaleXY
	TranslateX
	TranslateY
	RotationX
)

// Tween animates one property from From to To over Duration
type Tween struct {
	Prop     Prop
	From     float64
	To       float64
	Duration time.Duration
	Easing   Easing // nil means FastOutSlowIn
}

// At evaluates the tween after elapsed time
func (tw Tween) At(elapsed time.Duration) float64 {
	if tw.Duration <= 0 {
		return tw.To
	}
	ease := tw.Easing
	if ease == nil {
		ease = FastOutSlowIn
	}
	p := clamp01(float64(elapsed) / float64(tw.Duration))
	return tw.From + (tw.To-tw.From)*ease(p)
}

// Plan returns the tweens a mode runs, one after another
func Plan(m Mode) []Tween {
	switch m {
	case Fade:
		return []Tween{
			{Prop: Opacity, From: 0, To: 1, Duration: 600 * time.Millisecond},
		}
	case Scale:
		return []Tween{
			{Prop: ScaleXY, From: 0.8, To: 1, Duration: 300 * time.Millisecond, Easing: Linear},
		}
	case Slide:
		return []Tween{
			{Prop: TranslateX, From: 300, To: 0, Duration: 300 * time.Millisecond, Easing: FastOutSlowIn},
		}
	case FadeSlide:
		return []Tween{
			{Prop: TranslateX, From: -300, To: 0, Duration: 300 * time.Millisecond, Easing: Linear},
			{Prop: Opacity, From: 0, To: 1, Duration: 600 * time.Millisecond},
		}
	case SlideUp:
		return []Tween{
			{Prop: TranslateY, From: 300, To: 0, Duration: 300 * time.Millisecond, Easing: Linear},
			{Prop: Opacity, From: 0, To: 1, Duration: 600 * time.Millisecond},
		}
	case RotateX:
		return []Tween{
			{Prop: RotationX, From: 0, To: 360, Duration: 400 * time.Millisecond, Easing: FastOutSlowIn},
		}
	default:
		return []Tween{
			{Prop: Opacity, From: 0.8, To: 1, Duration: 300 * time.Millisecond},
		}
	}
}

// Transform is the sampled visual state of a card
type Transform struct {
	Opacity    float64
	Scale      float64
	TranslateX float64 // px
	TranslateY float64 // px
	RotationX  float64 // degrees
}

// Identity is a card at rest
var Identity = Transform{Opacity: 1, Scale: 1}

func (t *Transform) set(p Prop, v float64) {
	switch p {
	case Opacity:
		t.Opacity = v
	case ScaleXY:
		t.Scale = v
	case TranslateX:
		t.TranslateX = v
	case TranslateY:
		t.TranslateY = v
	case RotationX:
		t.RotationX = v
	}
}

// Animation is a plan bound to the moment its card was mounted
type Animation struct {
	Mode  Mode
	Start time.Time
	steps []Tween
	total time.Duration
}

// New starts the animation for mode at start
func New(m Mode, start time.Time) *Animation {
	steps := Plan(m)
	var total time.Duration
	for _, s := range steps {
		total += s.Duration
	}
	return &Animation{Mode: m, Start: start, steps: steps, total: total}
}

// Duration is the time from start until every step has finished
func (a *Animation) Duration() time.Duration {
	return a.total
}

// Done reports whether the animation has finished at now
func (a *Animation) Done(now time.Time) bool {
	return now.Sub(a.Start) >= a.total
}

// Sample returns the card's transform at now. A step that has not begun
// holds its From value, a finished step holds its To value.
func (a *Animation) Sample(now time.Time) Transform {
	t := Identity
	elapsed := now.Sub(a.Start)
	for i := len(a.steps) - 1; i >= 0; i-- {
		t.set(a.steps[i].Prop, a.steps[i].From)
	}
	var offset time.Duration
	for _, s := range a.steps {
		if elapsed < offset {
			break
		}
		t.set(s.Prop, s.At(elapsed-offset))
		offset += s.Duration
	}
	return t
}
