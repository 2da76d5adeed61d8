package testcases

var borderCases = []TestCase{
	{
		Name:   "ramp_above",
		Values: ramp(5),
		Level:  2.5,
		Close:  CloseAbove,
		Paths:  1,
		Closed: 1,
	},
	{
		Name:   "ramp_below",
		Values: ramp(5),
		Level:  2.5,
		Close:  CloseBelow,
		Paths:  1,
		Closed: 1,
	},
	{
		Name: "hill_edge",
		Values: [][]float64{
			{0, 1, 0},
			{0, 0, 0},
		},
		Level:  0.5,
		Paths:  1,
		Closed: 0,
	},
	{
		Name: "hill_edge_above",
		Values: [][]float64{
			{0, 1, 0},
			{0, 0, 0},
		},
		Level:  0.5,
		Close:  CloseAbove,
		Paths:  1,
		Closed: 1,
	},
	{
		Name: "hill_edge_below",
		Values: [][]float64{
			{0, 1, 0},
			{0, 0, 0},
		},
		Level:  0.5,
		Close:  CloseBelow,
		Paths:  1,
		Closed: 1,
	},
	{
		Name: "pit_below",
		Values: [][]float64{
			{1, 1, 1},
			{1, 0, 1},
			{1, 1, 1},
		},
		Level:  0.5,
		Close:  CloseBelow,
		Paths:  1,
		Closed: 1,
	},

	// levels outside the value range give no output, even with border closing
	{
		Name: "peak_level_above_max",
		Values: [][]float64{
			{0, 0, 0},
			{0, 1, 0},
			{0, 0, 0},
		},
		Level:  2,
		Close:  CloseAbove,
		Paths:  0,
		Closed: 0,
	},
	{
		Name: "peak_level_below_min",
		Values: [][]float64{
			{0, 0, 0},
			{0, 1, 0},
			{0, 0, 0},
		},
		Level:  -1,
		Close:  CloseAbove,
		Paths:  0,
		Closed: 0,
	},
}
