package softfloat

// Mathematical constants, stored as raw bit patterns rather than computed.
// The raw words are part of the compatibility surface: conforming
// reimplementations carry the same table.
const (
	rawPi       = 0x40490FDB // 3.14159274
	rawPiOver2  = 0x3FC90FDB
	rawPiOver4  = 0x3F490FDB
	rawTwoPi    = 0x40C90FDB
	rawE        = 0x402DF854 // 2.71828175
	rawLn2      = 0x3F317218
	rawLn10     = 0x40135D8E
	rawLog2E    = 0x3FB8AA3B
	rawLog10E   = 0x3EDE5BD9
	rawSqrt2    = 0x3FB504F3
	rawHalf     = 0x3F000000
	rawTwo      = 0x40000000
	rawDeg2Rad  = 0x3C8EFA35 // pi/180
	rawRad2Deg  = 0x42652EE1 // 180/pi
	rawCalcEps  = 0x358637BD // ~1e-6, comparison epsilon for derived math
	rawCalcEps2 = 0x2B8CBCCC // ~1e-12
)

// Pi returns the binary32 value nearest pi.
func Pi() F32 { return F32{bits: rawPi} }

// PiOver2 returns pi/2.
func PiOver2() F32 { return F32{bits: rawPiOver2} }

// PiOver4 returns pi/4.
func PiOver4() F32 { return F32{bits: rawPiOver4} }

// TwoPi returns 2*pi.
func TwoPi() F32 { return F32{bits: rawTwoPi} }

// E returns Euler's number.
func E() F32 { return F32{bits: rawE} }

// Ln2 returns the natural logarithm of 2.
func Ln2() F32 { return F32{bits: rawLn2} }

// Ln10 returns the natural logarithm of 10.
func Ln10() F32 { return F32{bits: rawLn10} }

// Log2E returns log2(e).
func Log2E() F32 { return F32{bits: rawLog2E} }

// Log10E returns log10(e).
func Log10E() F32 { return F32{bits: rawLog10E} }

// Sqrt2 returns the square root of 2.
func Sqrt2() F32 { return F32{bits: rawSqrt2} }

// Half returns 0.5.
func Half() F32 { return F32{bits: rawHalf} }

// Two returns 2.
func Two() F32 { return F32{bits: rawTwo} }

// Deg2Rad returns the degrees-to-radians factor pi/180.
func Deg2Rad() F32 { return F32{bits: rawDeg2Rad} }

// Rad2Deg returns the radians-to-degrees factor 180/pi.
func Rad2Deg() F32 { return F32{bits: rawRad2Deg} }

// CalcEpsilon returns the comparison epsilon (~1e-6) used by the derived
// math and geometry layers.
func CalcEpsilon() F32 { return F32{bits: rawCalcEps} }

// CalcEpsilonSqr returns CalcEpsilon squared (~1e-12).
func CalcEpsilonSqr() F32 { return F32{bits: rawCalcEps2} }
