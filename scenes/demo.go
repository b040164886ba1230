package scenes

// demoSquares is the three-square arrangement of the interactive demo.
// The blue square is moved in depth by the extra moves.
func demoSquares(blueMoves ...Move) []Square {
	return []Square{
		red(mv(0.3, -0.3, 0.5)),
		blue(blueMoves...),
		green(mv(-0.3, 0.3, -0.5)),
	}
}

var demoCases = []Case{
	{
		Name:    "small",
		Scale:   4,
		Squares: demoSquares(),
		Want: []string{
			".GGGGG..",
			".GGGGGB.",
			".GGGGGBR",
			".GGGGGBR",
			".GGGGGBR",
			"..BBBBBR",
			"...RRRRR",
			"........",
		},
	},
	{
		Name:    "initial",
		Scale:   50,
		Squares: demoSquares(),
	},
	{
		Name:    "blue_front",
		Scale:   50,
		Squares: demoSquares(mv(0, 0, -1)),
	},
	{
		Name:    "blue_back",
		Scale:   50,
		Squares: demoSquares(mv(0, 0, 1), mv(0, 0, 1)),
	},
	{
		Name:    "blue_past_limit",
		Scale:   50,
		Squares: demoSquares(mv(0, 0, 1), mv(0, 0, 1), mv(0, 0, 1), mv(0, 0, 1)),
	},
}
