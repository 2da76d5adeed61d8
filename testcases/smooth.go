package testcases

import "math"

var smoothCases = []TestCase{
	{
		Name:   "gaussian",
		Values: sample(21, 21, gaussian),
		Level:  0.5,
		Paths:  1,
		Closed: 1,
	},
	{
		Name:      "gaussian_triangles",
		Values:    sample(21, 21, gaussian),
		Level:     0.5,
		Triangles: true,
		Paths:     1,
		Closed:    1,
	},
	{
		// two concentric rings, at radius pi and 3*pi
		Name:   "ripple",
		Values: sample(21, 21, ripple),
		Level:  0,
		Paths:  2,
		Closed: 2,
	},
	{
		Name:   "terrain",
		Values: sample(40, 30, terrain),
		Level:  0.3,
		Paths:  -1,
		Closed: -1,
	},
	{
		Name:   "terrain_above",
		Values: sample(40, 30, terrain),
		Level:  0.3,
		Close:  CloseAbove,
		Paths:  -1,
		Closed: -1,
	},
}

// gaussian is a bump of height 1 centred on node (10, 10).
func gaussian(x, y float64) float64 {
	dx, dy := x-10, y-10
	return math.Exp(-(dx*dx + dy*dy) / 20)
}

func ripple(x, y float64) float64 {
	r := math.Hypot(x-10, y-10)
	return math.Cos(r / 2)
}

// terrain is a smooth landscape with several hills and valleys.
func terrain(x, y float64) float64 {
	return math.Sin(x/3)*math.Cos(y/4) + 0.2*math.Sin((x+y)/5)
}
