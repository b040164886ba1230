package scenes

// All contains all scenes, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]Case{
	"basic":   basicCases,
	"overlap": overlapCases,
	"depth":   depthCases,
	"demo":    demoCases,
}
