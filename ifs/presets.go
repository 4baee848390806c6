package ifs

// BarnsleyFern returns the four-map Barnsley fern (stem, successively
// smaller leaflets, left and right leaflets).
func BarnsleyFern() System {
	return mustSystem(
		Map{A: 0, B: 0, C: 0, D: 0.16, E: 0, F: 0, P: 0.01},
		Map{A: 0.85, B: 0.04, C: -0.04, D: 0.85, E: 0, F: 1.6, P: 0.85},
		Map{A: 0.2, B: -0.26, C: 0.23, D: 0.22, E: 0, F: 1.6, P: 0.07},
		Map{A: -0.15, B: 0.28, C: 0.26, D: 0.24, E: 0, F: 0.44, P: 0.07},
	)
}

// ProbabilityTree returns a trunk map plus two rotated, scaled branch maps.
func ProbabilityTree() System {
	return mustSystem(
		Map{A: 0, B: 0, C: 0, D: 0.5, E: 0, F: 0, P: 0.1},
		Map{A: 0.42, B: -0.42, C: 0.42, D: 0.42, E: 0, F: 0.2, P: 0.45},
		Map{A: 0.42, B: 0.42, C: -0.42, D: 0.42, E: 0, F: 0.2, P: 0.45},
	)
}

// Presets returns the built-in systems keyed by name.
func Presets() map[string]System {
	return map[string]System{
		"fern": BarnsleyFern(),
		"tree": ProbabilityTree(),
	}
}

// mustSystem is only used with the constant tables above.
func mustSystem(maps ...Map) System {
	sys, err := NewSystem(maps...)
	if err != nil {
		panic(err)
	}

	return sys
}
