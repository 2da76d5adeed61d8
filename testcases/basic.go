package testcases

var basicCases = []TestCase{
	{
		Name: "peak",
		Values: [][]float64{
			{0, 0, 0},
			{0, 1, 0},
			{0, 0, 0},
		},
		Level:  0.5,
		Paths:  1,
		Closed: 1,
	},
	{
		Name: "pit",
		Values: [][]float64{
			{1, 1, 1},
			{1, 0, 1},
			{1, 1, 1},
		},
		Level:  0.5,
		Paths:  1,
		Closed: 1,
	},
	{
		Name:   "ramp",
		Values: ramp(5),
		Level:  2.5,
		Paths:  1,
		Closed: 0,
	},
	{
		Name: "two_peaks",
		Values: [][]float64{
			{0, 0, 0, 0, 0},
			{0, 1, 0, 1, 0},
			{0, 0, 0, 0, 0},
		},
		Level:  0.5,
		Paths:  2,
		Closed: 2,
	},
	{
		Name: "saddle",
		Values: [][]float64{
			{1, 0},
			{0, 1},
		},
		Level:  0.5,
		Paths:  1,
		Closed: 0,
	},
}
