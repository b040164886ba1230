package scenes

var basicCases = []Case{
	{
		Name:    "single",
		Scale:   2,
		Squares: []Square{red()},
		Want: []string{
			".RRR",
			".RRR",
			".RRR",
			"....",
		},
	},
	{
		Name:  "empty",
		Scale: 2,
		Want: []string{
			"....",
			"....",
			"....",
			"....",
		},
	},
	{
		Name:    "tiny",
		Scale:   1,
		Squares: []Square{red()},
		Want: []string{
			".R",
			"..",
		},
	},
	{
		Name:    "corner",
		Scale:   2,
		Squares: []Square{red(mv(-0.5, -0.5, 0))},
		Want: []string{
			"....",
			"RRR.",
			"RRR.",
			"RRR.",
		},
	},
	{
		Name:    "clipped",
		Scale:   2,
		Squares: []Square{red(mv(0.8, 0, 0))},
		Want: []string{
			"...R",
			"...R",
			"...R",
			"....",
		},
	},
	{
		Name:    "off_grid",
		Scale:   2,
		Squares: []Square{red(mv(3, 0, 0))},
		Want: []string{
			"....",
			"....",
			"....",
			"....",
		},
	},
}

func red(moves ...Move) Square {
	return Square{Key: 'R', Name: "Red Square", Color: "#ff0000", Moves: moves}
}

func green(moves ...Move) Square {
	return Square{Key: 'G', Name: "Green Square", Color: "#00ff00", Moves: moves}
}

func blue(moves ...Move) Square {
	return Square{Key: 'B', Name: "Blue Square", Color: "#0000ff", Moves: moves}
}
