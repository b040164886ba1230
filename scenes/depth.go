package scenes

// In these scenes the second move of the red square leaves the depth
// range.  Its x, y part still applies.
var depthCases = []Case{
	{
		Name:  "reject_high",
		Scale: 2,
		Squares: []Square{
			blue(mv(-0.5, -0.5, 0)),
			red(mv(0, 0, 3), mv(0.5, 0.5, 1)),
		},
		Want: []string{
			"..RR",
			"BBBR",
			"BBB.",
			"BBB.",
		},
	},
	{
		Name:  "reject_low",
		Scale: 2,
		Squares: []Square{
			blue(),
			red(mv(0, 0, -2), mv(-0.5, -0.5, -0.1)),
		},
		Want: []string{
			".BBB",
			"RRRB",
			"RRRB",
			"RRR.",
		},
	},
}
