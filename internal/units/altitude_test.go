package units

import "testing"

func TestAltitudeString(t *testing.T) {
	cases := []struct {
		alt  Altitude
		want string
	}{
		{Altitude{Value: 100, Datum: QNE}, "FL100"},
		{Altitude{Value: 45, Datum: QNE}, "FL045"},
		{Altitude{Value: 2050, Datum: QNH}, "2050 ft QNH"},
		{Altitude{Value: 150, Datum: QFE}, "150 ft QFE"},
		{Ground, "0 ft QFE"},
		{Unlimited, "FL999"},
	}
	for _, c := range cases {
		if got := c.alt.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestFeetFromMetres(t *testing.T) {
	cases := []struct {
		metres, want int
	}{
		{1000, 3281},
		{100, 328},
		{0, 0},
	}
	for _, c := range cases {
		if got := FeetFromMetres(c.metres); got != c.want {
			t.Errorf("FeetFromMetres(%d) = %d, want %d", c.metres, got, c.want)
		}
	}
}
