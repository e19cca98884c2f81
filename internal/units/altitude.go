package units

import (
	"fmt"
	"math"
)

// Datum is the reference an altitude is measured against.
type Datum int

const (
	QNH Datum = iota // above mean sea level
	QFE              // above ground level
	QNE              // flight level (standard pressure)
)

func (d Datum) String() string {
	switch d {
	case QNH:
		return "QNH"
	case QFE:
		return "QFE"
	default:
		return "QNE"
	}
}

// Altitude is a vertical limit: feet for QNH and QFE, a flight level number
// for QNE.
type Altitude struct {
	Value int
	Datum Datum
}

// Ground and Unlimited are the sentinels for surface level and no upper
// limit.
var (
	Ground    = Altitude{Value: 0, Datum: QFE}
	Unlimited = Altitude{Value: 999, Datum: QNE}
)

func (a Altitude) String() string {
	if a.Datum == QNE {
		return fmt.Sprintf("FL%03d", a.Value)
	}
	return fmt.Sprintf("%d ft %s", a.Value, a.Datum)
}

// FeetFromMetres converts metres to feet, rounded to the nearest foot.
func FeetFromMetres(m int) int {
	return int(math.Round(float64(m) * 3.28084))
}

// Point is a geographic location in decimal degrees, north and east positive.
type Point struct {
	Lat, Lon float64
}

func (p Point) String() string {
	return fmt.Sprintf("%.5f %.5f", p.Lat, p.Lon)
}

// Distance is a horizontal distance in nautical miles.
type Distance struct {
	NM int
}

func (d Distance) String() string {
	return fmt.Sprintf("%d NM", d.NM)
}
