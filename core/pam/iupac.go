// core/pam/iupac.go
package pam

/* -------------------------- IUPAC lookup table -------------------------- */

const (
	baseA uint8 = 1 << iota
	baseC
	baseG
	baseT
)

var iupacMask [256]uint8 // bit0=A bit1=C bit2=G bit3=T

// seqMask only knows concrete bases; N and anything else in a template is 0.
var seqMask [256]uint8

func init() {
	set := func(c byte, bits uint8) {
		iupacMask[c] = bits
		iupacMask[c+'a'-'A'] = bits
	}
	set('A', baseA)
	set('C', baseC)
	set('G', baseG)
	set('T', baseT)
	set('R', baseA|baseG)
	set('Y', baseC|baseT)
	set('M', baseA|baseC)
	set('K', baseG|baseT)
	set('S', baseC|baseG)
	set('W', baseA|baseT)
	set('H', baseA|baseC|baseT)
	set('B', baseC|baseG|baseT)
	set('V', baseA|baseC|baseG)
	set('D', baseA|baseG|baseT)
	set('N', baseA|baseC|baseG|baseT)

	for _, c := range []byte("ACGT") {
		seqMask[c] = iupacMask[c]
		seqMask[c+'a'-'A'] = iupacMask[c]
	}
}

// Mask returns the base set of an ambiguity symbol. ok is false for symbols
// outside the IUPAC nucleotide alphabet.
func Mask(sym byte) (m uint8, ok bool) {
	m = iupacMask[sym]
	return m, m != 0
}

// Bases expands an ambiguity symbol into its concrete bases, in ACGT order.
func Bases(sym byte) (string, bool) {
	m, ok := Mask(sym)
	if !ok {
		return "", false
	}
	return maskBases(m), true
}

func maskBases(m uint8) string {
	out := make([]byte, 0, 4)
	for i, c := range []byte("ACGT") {
		if m&(1<<i) != 0 {
			out = append(out, c)
		}
	}
	return string(out)
}

// complementMask swaps A<->T and C<->G inside a base set.
func complementMask(m uint8) uint8 {
	var out uint8
	if m&baseA != 0 {
		out |= baseT
	}
	if m&baseT != 0 {
		out |= baseA
	}
	if m&baseC != 0 {
		out |= baseG
	}
	if m&baseG != 0 {
		out |= baseC
	}
	return out
}
