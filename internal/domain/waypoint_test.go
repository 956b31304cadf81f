package domain

import "testing"

func TestArcsecOf(t *testing.T) {
	cases := []struct {
		in   DMS
		want int
	}{
		{DMS{North, 19, 24, 10}, 19*3600 + 24*60 + 10},
		{DMS{South, 19, 24, 10}, -(19*3600 + 24*60 + 10)},
		{DMS{East, 0, 7, 39}, 7*60 + 39},
		{DMS{West, 99, 0, 0}, -99 * 3600},
		{DMS{West, 0, 0, 0}, 0},
	}
	for _, c := range cases {
		if got := ArcsecOf(c.in); got != c.want {
			t.Errorf("ArcsecOf(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestWaypoint_RoundTripsConverterOutput(t *testing.T) {
	p := CoordinatePair{Longitude: -99.25, Latitude: 19.5}
	wp := Waypoint(ToDMS(p.Latitude, AxisLatitude), ToDMS(p.Longitude, AxisLongitude))

	if wp.North != 19*3600+30*60 {
		t.Fatalf("north = %d", wp.North)
	}
	if wp.East != -(99*3600 + 15*60) {
		t.Fatalf("east = %d", wp.East)
	}

	lat, lon := wp.Degrees()
	if lat != 19.5 || lon != -99.25 {
		t.Fatalf("Degrees() = %v,%v", lat, lon)
	}
}
