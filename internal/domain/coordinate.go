package domain

import (
	"fmt"
	"math"
	"strconv"
)

// CoordinatePair is one `longitude,latitude` token of a path string,
// in signed decimal degrees.
type CoordinatePair struct {
	Longitude float64
	Latitude  float64
}

// Axis selects which pair of hemisphere labels applies to a value.
type Axis int

const (
	AxisLatitude Axis = iota
	AxisLongitude
)

func (a Axis) String() string {
	switch a {
	case AxisLatitude:
		return "latitude"
	case AxisLongitude:
		return "longitude"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Hemisphere is the single-letter label carrying the sign of a coordinate.
type Hemisphere string

const (
	North Hemisphere = "N"
	South Hemisphere = "S"
	East  Hemisphere = "E"
	West  Hemisphere = "W"
)

// Negative reports whether the hemisphere stands for a negative value.
func (h Hemisphere) Negative() bool {
	return h == South || h == West
}

// DMS is a degrees-minutes-seconds rendition of one coordinate component.
// The three stages are whole, non-negative values; the sign lives in
// Hemisphere. They stay float64 because input range is not checked and a
// degree count may not fit in an int.
//
// Minutes or Seconds may come out as 60 for values sitting just under a
// boundary. That is what the staged truncation produces and it is kept as is.
type DMS struct {
	Hemisphere Hemisphere
	Degrees    float64
	Minutes    float64
	Seconds    float64
}

func (d DMS) String() string {
	return string(d.Hemisphere) + " " + whole(d.Degrees) + " " + whole(d.Minutes) + " " + whole(d.Seconds)
}

// whole prints a truncated stage as a plain decimal integer.
func whole(x float64) string {
	return strconv.FormatFloat(x, 'f', 0, 64)
}

// ToDMS converts a decimal-degree value on the given axis.
//
// Each stage truncates toward zero and re-derives its remainder from the
// already truncated stages before it, so the result is not the same as
// rounding the full fraction. Seconds scale by 60 twice, not by 3600: the
// two differ in the last bit often enough to move the truncated value.
func ToDMS(v float64, axis Axis) DMS {
	deg := math.Trunc(v)
	minutes := math.Trunc((v - deg) * 60)
	seconds := math.Trunc((v - deg - minutes/60) * 60 * 60)

	return DMS{
		Hemisphere: HemisphereOf(v, axis),
		Degrees:    math.Abs(deg),
		Minutes:    math.Abs(minutes),
		Seconds:    math.Abs(seconds),
	}
}

// HemisphereOf labels v on the given axis. Zero counts as positive.
func HemisphereOf(v float64, axis Axis) Hemisphere {
	if axis == AxisLongitude {
		if v < 0 {
			return West
		}
		return East
	}
	if v < 0 {
		return South
	}
	return North
}

// FormatPair renders the 8-field waypoint line, latitude first.
func FormatPair(p CoordinatePair) string {
	return ToDMS(p.Latitude, AxisLatitude).String() + " " + ToDMS(p.Longitude, AxisLongitude).String()
}
