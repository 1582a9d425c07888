package hexgrid

import "testing"

func TestNeighborsOffsets(t *testing.T) {
	c := Coord{Q: 3, R: 3}
	want := map[Coord]bool{
		{4, 3}: true,
		{4, 2}: true,
		{3, 2}: true,
		{2, 3}: true,
		{2, 4}: true,
		{3, 4}: true,
	}
	for _, n := range c.Neighbors() {
		if !want[n] {
			t.Fatalf("unexpected neighbor %v of %v", n, c)
		}
		delete(want, n)
	}
	if len(want) != 0 {
		t.Fatalf("missing neighbors: %v", want)
	}
}

func TestDirectionsOppositePairs(t *testing.T) {
	for i := 0; i < 3; i++ {
		a, b := Directions[i], Directions[i+3]
		if a.Q+b.Q != 0 || a.R+b.R != 0 {
			t.Fatalf("directions %d and %d are not opposite: %v %v", i, i+3, a, b)
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b Coord
		want int
	}{
		{Coord{0, 0}, Coord{0, 0}, 0},
		{Coord{0, 0}, Coord{1, 0}, 1},
		{Coord{0, 0}, Coord{1, -1}, 1},
		{Coord{0, 0}, Coord{2, 0}, 2},
		{Coord{0, 0}, Coord{-2, 1}, 2},
		{Coord{3, -2}, Coord{0, 0}, 3},
	}
	for _, tc := range cases {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Fatalf("Distance(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := Distance(tc.b, tc.a); got != tc.want {
			t.Fatalf("Distance(%v, %v) = %d, want %d (not symmetric)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestDistanceMatchesNeighborStep(t *testing.T) {
	c := Coord{Q: 5, R: 5}
	for _, n := range c.Neighbors() {
		if d := Distance(c, n); d != 1 {
			t.Fatalf("neighbor %v of %v at distance %d", n, c, d)
		}
	}
}

func TestPixelRoundTrip(t *testing.T) {
	for _, radius := range []float64{0.5, 1.0, 7.3} {
		for r := 0; r < 10; r++ {
			for q := 0; q < 10; q++ {
				c := Coord{Q: q, R: r}
				x, y := ToPixel(c, radius)
				if got := FromPixel(x, y, radius); got != c {
					t.Fatalf("round trip radius=%g: %v -> (%g,%g) -> %v", radius, c, x, y, got)
				}
			}
		}
	}
}

func TestInBoundsAndIndex(t *testing.T) {
	w, h := 4, 3
	seen := make(map[int]bool)
	for r := 0; r < h; r++ {
		for q := 0; q < w; q++ {
			c := Coord{Q: q, R: r}
			if !InBounds(c, w, h) {
				t.Fatalf("%v should be in bounds of %dx%d", c, w, h)
			}
			i := Index(c, w)
			if i < 0 || i >= w*h {
				t.Fatalf("Index(%v) = %d out of range", c, i)
			}
			if seen[i] {
				t.Fatalf("Index(%v) = %d already used", c, i)
			}
			seen[i] = true
		}
	}
	for _, c := range []Coord{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if InBounds(c, w, h) {
			t.Fatalf("%v should be out of bounds of %dx%d", c, w, h)
		}
	}
}
