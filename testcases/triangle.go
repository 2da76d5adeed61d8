package testcases

var triangleCases = []TestCase{
	{
		Name: "peak",
		Values: [][]float64{
			{0, 0, 0},
			{0, 1, 0},
			{0, 0, 0},
		},
		Level:     0.5,
		Triangles: true,
		Paths:     1,
		Closed:    1,
	},
	{
		// Along the diagonal, both high corners are connected, so the
		// two contour pieces stay separate.
		Name: "saddle",
		Values: [][]float64{
			{1, 0},
			{0, 1},
		},
		Level:     0.5,
		Triangles: true,
		Paths:     2,
		Closed:    0,
	},
	{
		Name:      "ramp_above",
		Values:    ramp(5),
		Level:     2.5,
		Close:     CloseAbove,
		Triangles: true,
		Paths:     1,
		Closed:    1,
	},
}
