package domain

// ArcsecPerDegree is the number of arcseconds in one degree.
const ArcsecPerDegree = 60 * 60

// ArcPoint is a position in whole signed arcseconds.
// East is the longitude axis, North the latitude axis.
type ArcPoint struct {
	East  int
	North int
}

// ArcsecOf folds a DMS value back into signed arcseconds.
func ArcsecOf(d DMS) int {
	v := int(d.Degrees)*ArcsecPerDegree + int(d.Minutes)*60 + int(d.Seconds)
	if d.Hemisphere.Negative() {
		return -v
	}
	return v
}

// Waypoint builds an ArcPoint from the latitude and longitude halves of a
// waypoint line.
func Waypoint(lat, lon DMS) ArcPoint {
	return ArcPoint{East: ArcsecOf(lon), North: ArcsecOf(lat)}
}

// ProfileSample is one elevation reading along a leg between two waypoints.
type ProfileSample struct {
	Leg       int
	Point     ArcPoint
	Elevation uint16
}

// Degrees converts arcseconds back to decimal degrees.
func (p ArcPoint) Degrees() (lat, lon float64) {
	return float64(p.North) / ArcsecPerDegree, float64(p.East) / ArcsecPerDegree
}

// Leg is the straight stretch between two consecutive waypoints.
type Leg struct {
	Index   int
	From    ArcPoint
	To      ArcPoint
	Samples int
	Km      float64
}
