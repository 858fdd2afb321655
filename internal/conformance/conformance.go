// Package conformance checks the software float core against the host
// float implementation. This is test-harness territory: the host FPU is
// the oracle here and nowhere else.
package conformance

import (
	"math"

	sf "github.com/nilpunch/soft-math/softfloat"
	"github.com/nilpunch/soft-math/softmath"
)

// Case is a single conformance check: an operation applied to one or two
// raw operands. Want carries the recorded golden result for replay files
// and is ignored for oracle runs.
type Case struct {
	Op   string `cbor:"op"`
	A    uint32 `cbor:"a"`
	B    uint32 `cbor:"b,omitempty"`
	Want uint32 `cbor:"want,omitempty"`
}

// Verdict is the outcome of running one case.
type Verdict struct {
	Case
	Got uint32 `cbor:"got"`
	OK  bool   `cbor:"ok"`
}

// Op describes a checkable operation: the soft implementation, the host
// oracle, and the tolerance scale of its family.
type Op struct {
	Name  string
	Arity int
	Soft  func(a, b sf.F32) sf.F32
	Host  func(a, b float64) float64
	Scale float64 // tolerance multiplier: 1 exact-ish, 5000 for trig

	// DomainA and DomainB fold sampled operands into the range the op is
	// specified over (the trig reduction is only meaningful for moderate
	// angles, pow for moderate exponents).
	DomainA func(f sf.F32) sf.F32
	DomainB func(f sf.F32) sf.F32
	// Loosen returns an extra tolerance multiplier for an operand pair;
	// exp is documented x100 looser at large arguments and pow scales
	// with |y*log2(x)|.
	Loosen func(a, b float64) float64
}

// foldAngle maps huge finite angles into [-256, 256]; NaN, infinities and
// moderate angles pass through.
func foldAngle(f sf.F32) sf.F32 {
	v := float64(f.Float32())
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) <= 256 {
		return f
	}
	return sf.FromFloat32(float32(math.Mod(v, 256)))
}

// foldExponent keeps pow exponents where the result is comparable.
func foldExponent(f sf.F32) sf.F32 {
	v := float64(f.Float32())
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) <= 16 {
		return f
	}
	return sf.FromFloat32(float32(math.Mod(v, 16)))
}

func expLoosen(a, _ float64) float64 {
	if math.Abs(a) > 16 {
		return 100
	}
	return 1
}

func powLoosen(a, b float64) float64 {
	aa := math.Abs(a)
	if aa == 0 || math.IsInf(aa, 0) || math.IsNaN(aa) || math.IsNaN(b) {
		return 1
	}
	return 4 + math.Abs(b*math.Log2(aa))
}

// Ops is the registry of checkable operations, keyed by name.
var Ops = map[string]Op{
	"add": {Name: "add", Arity: 2, Scale: 1,
		Soft: func(a, b sf.F32) sf.F32 { return a.Add(b) },
		Host: func(a, b float64) float64 { return float64(float32(a) + float32(b)) }},
	"sub": {Name: "sub", Arity: 2, Scale: 1,
		Soft: func(a, b sf.F32) sf.F32 { return a.Sub(b) },
		Host: func(a, b float64) float64 { return float64(float32(a) - float32(b)) }},
	"mul": {Name: "mul", Arity: 2, Scale: 1,
		Soft: func(a, b sf.F32) sf.F32 { return a.Mul(b) },
		Host: func(a, b float64) float64 { return float64(float32(a) * float32(b)) }},
	"div": {Name: "div", Arity: 2, Scale: 1,
		Soft: func(a, b sf.F32) sf.F32 { return a.Div(b) },
		Host: func(a, b float64) float64 { return float64(float32(a) / float32(b)) }},
	"sqrt": {Name: "sqrt", Arity: 1, Scale: 1,
		Soft: func(a, _ sf.F32) sf.F32 { return a.Sqrt() },
		Host: func(a, _ float64) float64 { return float64(float32(math.Sqrt(a))) }},
	"trunc": {Name: "trunc", Arity: 1, Scale: 1,
		Soft: func(a, _ sf.F32) sf.F32 { return a.Trunc() },
		Host: func(a, _ float64) float64 { return math.Trunc(a) }},
	"floor": {Name: "floor", Arity: 1, Scale: 1,
		Soft: func(a, _ sf.F32) sf.F32 { return a.Floor() },
		Host: func(a, _ float64) float64 { return math.Floor(a) }},
	"ceil": {Name: "ceil", Arity: 1, Scale: 1,
		Soft: func(a, _ sf.F32) sf.F32 { return a.Ceil() },
		Host: func(a, _ float64) float64 { return math.Ceil(a) }},
	"exp": {Name: "exp", Arity: 1, Scale: 1, Loosen: expLoosen,
		Soft: func(a, _ sf.F32) sf.F32 { return softmath.Exp(a) },
		Host: func(a, _ float64) float64 { return math.Exp(a) }},
	"expm1": {Name: "expm1", Arity: 1, Scale: 1, Loosen: expLoosen,
		Soft: func(a, _ sf.F32) sf.F32 { return softmath.Expm1(a) },
		Host: func(a, _ float64) float64 { return math.Expm1(a) }},
	"log": {Name: "log", Arity: 1, Scale: 1,
		Soft: func(a, _ sf.F32) sf.F32 { return softmath.Log(a) },
		Host: func(a, _ float64) float64 { return math.Log(a) }},
	"log1p": {Name: "log1p", Arity: 1, Scale: 1,
		Soft: func(a, _ sf.F32) sf.F32 { return softmath.Log1p(a) },
		Host: func(a, _ float64) float64 { return math.Log1p(a) }},
	"log2": {Name: "log2", Arity: 1, Scale: 1,
		Soft: func(a, _ sf.F32) sf.F32 { return softmath.Log2(a) },
		Host: func(a, _ float64) float64 { return math.Log2(a) }},
	"sin": {Name: "sin", Arity: 1, Scale: 5000, DomainA: foldAngle,
		Soft: func(a, _ sf.F32) sf.F32 { return softmath.Sin(a) },
		Host: func(a, _ float64) float64 { return math.Sin(a) }},
	"cos": {Name: "cos", Arity: 1, Scale: 5000, DomainA: foldAngle,
		Soft: func(a, _ sf.F32) sf.F32 { return softmath.Cos(a) },
		Host: func(a, _ float64) float64 { return math.Cos(a) }},
	"atan": {Name: "atan", Arity: 1, Scale: 5000,
		Soft: func(a, _ sf.F32) sf.F32 { return softmath.Atan(a) },
		Host: func(a, _ float64) float64 { return math.Atan(a) }},
	"atan2": {Name: "atan2", Arity: 2, Scale: 5000,
		Soft: func(a, b sf.F32) sf.F32 { return softmath.Atan2(a, b) },
		Host: func(a, b float64) float64 { return math.Atan2(a, b) }},
	"acos": {Name: "acos", Arity: 1, Scale: 5000,
		Soft: func(a, _ sf.F32) sf.F32 { return softmath.Acos(a) },
		Host: func(a, _ float64) float64 { return math.Acos(a) }},
	"asin": {Name: "asin", Arity: 1, Scale: 5000,
		Soft: func(a, _ sf.F32) sf.F32 { return softmath.Asin(a) },
		Host: func(a, _ float64) float64 { return math.Asin(a) }},
	"hypot": {Name: "hypot", Arity: 2, Scale: 1,
		Soft: func(a, b sf.F32) sf.F32 { return softmath.Hypot(a, b) },
		Host: func(a, b float64) float64 { return math.Hypot(a, b) }},
	"pow": {Name: "pow", Arity: 2, Scale: 1, Loosen: powLoosen, DomainB: foldExponent,
		Soft: func(a, b sf.F32) sf.F32 { return softmath.Pow(a, b) },
		Host: func(a, b float64) float64 { return math.Pow(a, b) }},
}

// OpNames lists the registry in a stable order for CLI output.
func OpNames() []string {
	names := make([]string, 0, len(Ops))
	for _, n := range [...]string{
		"add", "sub", "mul", "div", "sqrt", "trunc", "floor", "ceil",
		"exp", "expm1", "log", "log1p", "log2",
		"pow", "sin", "cos", "atan", "atan2", "acos", "asin", "hypot",
	} {
		if _, ok := Ops[n]; ok {
			names = append(names, n)
		}
	}
	return names
}
