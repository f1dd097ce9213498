package matching

// Similarity returns a normalized edit-distance ratio in [0,1] between two
// strings: (maxLen - editDistance) / maxLen. Two empty strings are defined
// as identical (1.0). The measure is symmetric and Similarity(a,a) == 1.0.
func Similarity(a, b string) float64 {
	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}

	if len(longer) == 0 {
		return 1.0
	}

	distance := EditDistance(longer, shorter)
	return float64(len(longer)-distance) / float64(len(longer))
}

// EditDistance computes the classic Levenshtein distance between two strings
// using a full (len(a)+1) x (len(b)+1) dynamic-programming table with unit
// costs for insertion, deletion, and substitution.
func EditDistance(a, b string) int {
	matrix := make([][]int, len(b)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(a)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(a); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(b); i++ {
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
			} else {
				matrix[i][j] = min(
					matrix[i-1][j-1]+1, // substitution
					matrix[i][j-1]+1,   // insertion
					matrix[i-1][j]+1,   // deletion
				)
			}
		}
	}

	return matrix[len(b)][len(a)]
}
