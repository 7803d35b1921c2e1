package domain

import "math/rand/v2"

// DefaultPasswordLength is the length of generated passwords.
const DefaultPasswordLength = 8

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Password returns length characters drawn uniformly, with replacement,
// from the 62 ASCII letters and digits.
func Password(r *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = passwordAlphabet[r.IntN(len(passwordAlphabet))]
	}
	return string(b)
}
