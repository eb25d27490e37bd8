package num2words

// splitIrregular splits n into the groups of the South Asian place-value
// system, lowest first: two digits (units and tens), one digit (hundreds),
// then two digits per step (thousand, lakh, crore, ...). Zero yields [0 0].
func splitIrregular(n uint64) []uint64 {
	groups := make([]uint64, 0, 10)
	groups = append(groups, n%100)
	n /= 100
	groups = append(groups, n%10)
	n /= 10
	for n != 0 {
		groups = append(groups, n%100)
		n /= 100
	}
	return groups
}

// splitUniform splits n into groups of a fixed base, lowest first.
// Zero yields [0].
func splitUniform(n uint64, base uint64) []uint64 {
	groups := []uint64{n % base}
	n /= base
	for n != 0 {
		groups = append(groups, n%base)
		n /= base
	}
	return groups
}

// highestGroup returns the index of the most significant non-zero group, or -1.
func highestGroup(groups []uint64) int {
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] != 0 {
			return i
		}
	}
	return -1
}

// lowestGroup returns the index of the least significant non-zero group, or -1.
func lowestGroup(groups []uint64) int {
	for i, g := range groups {
		if g != 0 {
			return i
		}
	}
	return -1
}
