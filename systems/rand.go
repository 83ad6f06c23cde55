package systems

// Rand is the single pseudo-random stream consumed by every pass.
// *math/rand.Rand satisfies it; tests substitute scripted sources.
//
// Per tick the passes draw, in order: one Float64 per empty cell (growth),
// one Intn(8) per animal without a visible target (movement), one Float64 per
// animal at or above its breeding threshold and up to PlacementAttempts
// Intn(8) per successful breed roll (lifecycle).
type Rand interface {
	Intn(n int) int
	Float64() float64
}
