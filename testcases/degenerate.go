package testcases

var degenerateCases = []TestCase{
	{
		// The level coincides with every node.  The output is not
		// specified, but must be stable.
		Name: "flat",
		Values: [][]float64{
			{1, 1, 1},
			{1, 1, 1},
			{1, 1, 1},
		},
		Level:  1,
		Paths:  -1,
		Closed: -1,
	},
	{
		Name: "single_corner",
		Values: [][]float64{
			{1, 0},
			{0, 0},
		},
		Level:  1,
		Paths:  0,
		Closed: 0,
	},
	{
		Name: "level_at_max",
		Values: [][]float64{
			{0, 0, 0},
			{0, 1, 0},
			{0, 0, 0},
		},
		Level:  1,
		Paths:  0,
		Closed: 0,
	},
	{
		// a single short segment near the corner is discarded
		Name: "corner_tip",
		Values: [][]float64{
			{1, 0},
			{0, 0},
		},
		Level:  0.95,
		Paths:  0,
		Closed: 0,
	},
	{
		Name: "corner_cut",
		Values: [][]float64{
			{1, 0},
			{0, 0},
		},
		Level:  0.5,
		Paths:  1,
		Closed: 0,
	},
}
