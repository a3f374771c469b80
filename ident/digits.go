package ident

// DigitLen returns the number of decimal digits in n. Zero has one digit.
func DigitLen(n uint64) int {
	length := 1
	for n >= 10 {
		n /= 10
		length++
	}
	return length
}

// FixLen extends n with the leading digits of prev when n has fewer digits
// than prev. Otherwise n is returned unchanged.
//
//	FixLen(23, 1234) == 1223
//	FixLen(5, 123)   == 125
//	FixLen(1234, 56) == 1234
func FixLen(n, prev uint64) uint64 {
	width := DigitLen(n)
	if width >= DigitLen(prev) {
		return n
	}
	scale := pow10(width)
	return (prev/scale)*scale + n
}

func pow10(exp int) uint64 {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		result *= 10
	}
	return result
}
