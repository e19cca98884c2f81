package units

import "math"

// SolarMinutes computes the UTC clock time (minutes since midnight) of
// sunrise or sunset on the given date at the given location using the NOAA
// solar calculation (Spencer series for the equation of time and solar
// declination, zenith 90.833 degrees). Accurate to about one minute. The
// second return value is false during polar day or polar night when the
// event does not occur.
func SolarMinutes(event Event, on Date, at Point) (int, bool) {
	// Fractional year in radians, evaluated at solar noon.
	gamma := 2 * math.Pi / 365 * (float64(on.yearDay()-1) + 0.5)

	// Equation of time in minutes.
	eqTime := 229.18 * (0.000075 +
		0.001868*math.Cos(gamma) - 0.032077*math.Sin(gamma) -
		0.014615*math.Cos(2*gamma) - 0.040849*math.Sin(2*gamma))

	// Solar declination in radians.
	decl := 0.006918 -
		0.399912*math.Cos(gamma) + 0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2*gamma) + 0.000907*math.Sin(2*gamma) -
		0.002697*math.Cos(3*gamma) + 0.00148*math.Sin(3*gamma)

	lat := radians(at.Lat)
	cosHA := math.Cos(radians(90.833))/(math.Cos(lat)*math.Cos(decl)) -
		math.Tan(lat)*math.Tan(decl)
	if cosHA < -1 || cosHA > 1 {
		return 0, false
	}
	ha := degrees(math.Acos(cosHA))
	if event == Sunset {
		ha = -ha
	}

	minutes := int(math.Round(720 - 4*(at.Lon+ha) - eqTime))
	// Normalize into the day; extreme longitudes can push past midnight.
	minutes = ((minutes % 1440) + 1440) % 1440
	return minutes, true
}

func (d Date) yearDay() int {
	return d.toTime().YearDay()
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
