package feedback

import "image/color"

// FlashPhase is the stage of the feedback color animation.
type FlashPhase int

const (
	FlashOff  FlashPhase = iota // Resting text color
	FlashOn                     // Cue color
	FlashFade                   // Blending back toward the resting color
)

// Flash animates the feedback line: the cue color for one interval, a
// blend back for a second interval, then the resting color.
type Flash struct {
	Cue   Cue
	Phase FlashPhase
}

// Start begins a flash for cue.
func (f *Flash) Start(cue Cue) {
	f.Cue = cue
	f.Phase = FlashOn
}

// Step advances to the next phase. It returns false once the flash is over.
func (f *Flash) Step() bool {
	switch f.Phase {
	case FlashOn:
		f.Phase = FlashFade
		return true
	default:
		f.Phase = FlashOff
		return false
	}
}

// Color returns the color to draw with, given the cue color and the
// resting color.
func (f Flash) Color(cueColor, rest color.Color) color.Color {
	switch f.Phase {
	case FlashOn:
		return cueColor
	case FlashFade:
		return blend(cueColor, rest)
	}
	return rest
}

// blend returns the midpoint of two colors.
func blend(a, b color.Color) color.Color {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return color.RGBA{
		R: uint8((ar + br) >> 9),
		G: uint8((ag + bg) >> 9),
		B: uint8((ab + bb) >> 9),
		A: 0xff,
	}
}
