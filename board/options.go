package board

// Option customizes a Board at construction.
type Option func(*config)

type config struct {
	seed   int64
	seeded bool
	layout []Point
}

// WithSeed seeds the board's random source so mine placement is
// deterministic. Without it the board seeds from the wall clock.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithMines places mines at exactly the given points during construction
// instead of deferring placement to the first reveal. The layout must
// contain one distinct in-bounds point per mine. Intended for tests and
// replays; fixed layouts carry no first-click safety.
func WithMines(points ...Point) Option {
	return func(c *config) {
		c.layout = points
	}
}
