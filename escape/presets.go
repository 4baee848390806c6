package escape

// Classic Julia constants.
const (
	// JuliaDendrite is a connected set with rich filaments.
	JuliaDendrite complex128 = complex(-0.8, 0.156)
	// JuliaBranches is a tree-like branching set.
	JuliaBranches complex128 = complex(-0.4, 0.6)
	// JuliaSpirals is a detailed set close to the main cardioid cusp.
	JuliaSpirals complex128 = complex(0.285, 0.01)
)

// Classic landmarks of the Mandelbrot set.
var (
	// SeahorseValley shows dense filaments and repeating "seahorse" curls.
	SeahorseValley = Region{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}
	// ElephantValley shows a large bulb with trunk-like tendrils.
	ElephantValley = Region{XMin: 0.25, XMax: 0.35, YMin: -0.05, YMax: 0.05}
	// SpiralMinibrot is a small copy of the set with tight spiral arms.
	SpiralMinibrot = Region{XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325}
	// TripleSpiral is a threefold symmetric spiral structure.
	TripleSpiral = Region{XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980}
	// MiniMandelbrot sits on the real axis inside the antenna.
	MiniMandelbrot = Region{XMin: -1.7900, XMax: -1.7300, YMin: -0.0300, YMax: 0.0300}
)

// JuliaConstants returns the classic constants keyed by name.
func JuliaConstants() map[string]complex128 {
	return map[string]complex128{
		"dendrite": JuliaDendrite,
		"branches": JuliaBranches,
		"spirals":  JuliaSpirals,
	}
}

// Regions returns the built-in regions keyed by name.
func Regions() map[string]Region {
	return map[string]Region{
		"mandelbrot":      MandelbrotRegion,
		"julia":           JuliaRegion,
		"seahorse-valley": SeahorseValley,
		"elephant-valley": ElephantValley,
		"spiral-minibrot": SpiralMinibrot,
		"triple-spiral":   TripleSpiral,
		"mini-mandelbrot": MiniMandelbrot,
	}
}
