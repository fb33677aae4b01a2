package domain

var levelThresholds = []int{100, 250, 450, 700, 1000}

// LevelForXP maps accumulated xp onto the fixed level step table.
func LevelForXP(xp int) int {
	for i, threshold := range levelThresholds {
		if xp < threshold {
			return i + 1
		}
	}
	return len(levelThresholds) + 1
}
