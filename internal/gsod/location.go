package gsod

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Location is a point on the globe in signed decimal degrees.
type Location struct {
	Lat float64
	Lng float64
}

var dmsPattern = regexp.MustCompile(
	`(\d+)°(\d+)[′'](\d+)[″"]([NSns]) (\d+)°(\d+)[′'](\d+)[″"]([EWew])`)

// ParseLocation parses a degrees-minutes-seconds pair such as
// 47°36′35″N 122°19′59″W into signed decimal degrees.
func ParseLocation(s string) (Location, error) {
	caps := dmsPattern.FindStringSubmatch(s)
	if caps == nil {
		return Location{}, fmt.Errorf("invalid dms: %q", s)
	}

	lat := dmsValue(caps[1], caps[2], caps[3])
	switch caps[4] {
	case "S", "s":
		lat = -lat
	}

	lng := dmsValue(caps[5], caps[6], caps[7])
	switch caps[8] {
	case "W", "w":
		lng = -lng
	}

	return Location{Lat: lat, Lng: lng}, nil
}

func dmsValue(d, m, s string) float64 {
	dv, _ := strconv.Atoi(d)
	mv, _ := strconv.Atoi(m)
	sv, _ := strconv.Atoi(s)
	return float64(dv) + float64(mv)/60 + float64(sv)/3600
}

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance to other in kilometers.
func (l Location) DistanceKm(other Location) float64 {
	lat1 := l.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (other.Lng - l.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func (l Location) String() string {
	return fmt.Sprintf("%.4f,%.4f", l.Lat, l.Lng)
}
