package systems

// sign returns -1, 0 or 1.
func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// manhattan returns |dr| + |dc|.
func manhattan(dr, dc int) int {
	return abs(dr) + abs(dc)
}
