package blend

import (
	"fmt"
	"strings"
)

// Mode selects one of the 26 supported blend formulas.
type Mode int

// The full mode set, in Photoshop's layer menu order.
const (
	Normal Mode = iota
	Darken
	Multiply
	ColorBurn
	LinearBurn
	DarkerColor
	Lighten
	Screen
	ColorDodge
	LinearDodge
	LighterColor
	Overlay
	SoftLight
	HardLight
	VividLight
	LinearLight
	PinLight
	HardMix
	Difference
	Exclusion
	Subtract
	Divide
	Hue
	Saturation
	Color
	Luminosity

	numModes // sentinel, keep last
)

// modeNames maps each mode to its canonical lowercase name.
var modeNames = [numModes]string{
	Normal:       "normal",
	Darken:       "darken",
	Multiply:     "multiply",
	ColorBurn:    "color burn",
	LinearBurn:   "linear burn",
	DarkerColor:  "darker color",
	Lighten:      "lighten",
	Screen:       "screen",
	ColorDodge:   "color dodge",
	LinearDodge:  "linear dodge",
	LighterColor: "lighter color",
	Overlay:      "overlay",
	SoftLight:    "soft light",
	HardLight:    "hard light",
	VividLight:   "vivid light",
	LinearLight:  "linear light",
	PinLight:     "pin light",
	HardMix:      "hard mix",
	Difference:   "difference",
	Exclusion:    "exclusion",
	Subtract:     "subtract",
	Divide:       "divide",
	Hue:          "hue",
	Saturation:   "saturation",
	Color:        "color",
	Luminosity:   "luminosity",
}

// String returns the canonical mode name, e.g. "color burn".
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	return m >= 0 && m < numModes
}

// Separable reports whether the mode applies independently per channel.
// The four HSL modes and the darker/lighter color picks operate on whole
// pixels instead.
func (m Mode) Separable() bool {
	switch m {
	case DarkerColor, LighterColor, Hue, Saturation, Color, Luminosity:
		return false
	}
	return true
}

// Modes returns all supported modes in canonical order.
func Modes() []Mode {
	all := make([]Mode, numModes)
	for i := range all {
		all[i] = Mode(i)
	}
	return all
}

// ModeNames returns the canonical names of all supported modes, in order.
func ModeNames() []string {
	names := make([]string, numModes)
	for i := range names {
		names[i] = Mode(i).String()
	}
	return names
}

// ParseMode resolves a mode name to its Mode value. Matching is
// case-insensitive, and underscores and hyphens are treated as spaces, so
// "color burn", "Color_Burn", and "color-burn" all resolve to ColorBurn.
// "add" and "linear dodge (add)" are accepted aliases for LinearDodge.
//
// Unrecognized names return an error wrapping ErrUnknownMode that lists
// every valid name.
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", " ")
	n = strings.ReplaceAll(n, "-", " ")

	if n == "add" || n == "linear dodge (add)" {
		return LinearDodge, nil
	}

	for i, canonical := range modeNames {
		if n == canonical {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid modes: %s)",
		ErrUnknownMode, name, strings.Join(ModeNames(), ", "))
}
