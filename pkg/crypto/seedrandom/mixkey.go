package seedrandom

import "unicode/utf16"

// mixKey folds the seed into at most Width key bytes. The seed is walked
// as UTF-16 code units, so characters outside the BMP count twice.
func mixKey(seed string) []int {
	units := utf16.Encode([]rune(seed))
	key := make([]int, Width)
	smear := 0
	for j, c := range units {
		smear ^= key[j&mask] * 19
		key[j&mask] = (smear + int(c)) & mask
	}
	if len(units) < Width {
		return key[:len(units)]
	}
	return key
}
