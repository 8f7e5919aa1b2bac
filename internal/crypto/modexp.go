package crypto

import "math/bits"

// ModExp returns base^exp mod m by square-and-multiply.
//
// Products are formed in 128 bits so the result is exact for any 64-bit
// modulus. m must be greater than 1.
func ModExp(base, exp, m uint64) uint64 {
	result := uint64(1) % m
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}

// mulMod requires a, b < m, which keeps the high word below m for Rem64.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}
