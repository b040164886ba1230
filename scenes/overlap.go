package scenes

var overlapCases = []Case{
	{
		Name:  "near_first",
		Scale: 2,
		Squares: []Square{
			red(mv(-0.5, -0.5, -1)),
			blue(mv(0, 0, 1)),
		},
		Want: []string{
			".BBB",
			"RRRB",
			"RRRB",
			"RRR.",
		},
	},
	{
		Name:  "far_first",
		Scale: 2,
		Squares: []Square{
			blue(mv(0, 0, 1)),
			red(mv(-0.5, -0.5, -1)),
		},
		Want: []string{
			".BBB",
			"RRRB",
			"RRRB",
			"RRR.",
		},
	},
	{
		// equal depth: the first square keeps every cell
		Name:    "tie_red_first",
		Scale:   2,
		Squares: []Square{red(), green()},
		Want: []string{
			".RRR",
			".RRR",
			".RRR",
			"....",
		},
	},
	{
		Name:    "tie_green_first",
		Scale:   2,
		Squares: []Square{green(), red()},
		Want: []string{
			".GGG",
			".GGG",
			".GGG",
			"....",
		},
	},
	{
		Name:  "stack",
		Scale: 2,
		Squares: []Square{
			red(mv(0, 0, 1)),
			green(mv(0, 0, -1)),
			blue(),
		},
		Want: []string{
			".GGG",
			".GGG",
			".GGG",
			"....",
		},
	},
}
