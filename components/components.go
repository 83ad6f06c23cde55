// Package components defines the per-cell state of the ecosystem grid.
package components

// Kind identifies what occupies a grid cell. A cell holds exactly one kind.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindGrass
	KindRabbit
	KindWolf

	NumKinds = 4
)

// MatureGrassAge is the maturity at which grass is drawn as mature.
const MatureGrassAge = 4

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindGrass:
		return "grass"
	case KindRabbit:
		return "rabbit"
	case KindWolf:
		return "wolf"
	default:
		return "unknown"
	}
}

// IsAnimal reports whether the kind moves, ages and breeds.
func (k Kind) IsAnimal() bool {
	return k == KindRabbit || k == KindWolf
}

// Food returns the kind this animal eats, or KindEmpty for non-animals.
func (k Kind) Food() Kind {
	switch k {
	case KindRabbit:
		return KindGrass
	case KindWolf:
		return KindRabbit
	default:
		return KindEmpty
	}
}

// SnapshotGlyph is the character used in text snapshots. Grass maturity is
// not distinguished.
func (k Kind) SnapshotGlyph() byte {
	switch k {
	case KindGrass:
		return 'G'
	case KindRabbit:
		return 'r'
	case KindWolf:
		return 'W'
	default:
		return '.'
	}
}
