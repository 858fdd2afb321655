package conformance

import (
	"context"
	"fmt"
	"time"

	sf "github.com/nilpunch/soft-math/softfloat"
	"github.com/nilpunch/soft-math/softrand"
)

// Bands are the operand magnitude decades the random suite samples from,
// plus a raw band of arbitrary bit patterns (NaNs and infinities
// included).
var Bands = [6]float64{1e-40, 1e-10, 1, 1e5, 1e9, 1e38}

// Sampler draws deterministic operands for the suite.
type Sampler struct {
	rng *softrand.Rand
}

// NewSampler seeds a sampler; the same seed reproduces the same case
// stream.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: softrand.New(seed)}
}

// Draw produces one operand: seven in eight from a magnitude band, one in
// eight an arbitrary raw pattern.
func (s *Sampler) Draw() sf.F32 {
	r := s.rng.Uint64()
	if r&7 == 7 {
		return sf.FromRaw(uint32(r >> 32))
	}
	band := Bands[(r>>3)%uint64(len(Bands))]
	u := float64(s.rng.Uint64()>>11) / (1 << 53)
	return sf.FromFloat32(float32((u*2 - 1) * band))
}

// Cases generates n cases for the named op, folding operands into the
// op's specified domain.
func (s *Sampler) Cases(op string, n int) []Case {
	def := Ops[op]
	out := make([]Case, n)
	for i := range out {
		a := s.Draw()
		if def.DomainA != nil {
			a = def.DomainA(a)
		}
		c := Case{Op: op, A: a.Raw()}
		if def.Arity == 2 {
			b := s.Draw()
			if def.DomainB != nil {
				b = def.DomainB(b)
			}
			c.B = b.Raw()
		}
		out[i] = c
	}
	return out
}

// Summary aggregates a run.
type Summary struct {
	Cases      int
	Mismatches int
	Elapsed    time.Duration
}

// Run checks n random cases per op, feeding mismatches into the
// collector. A nil ops slice means every registered op. The context stops
// the run between ops.
func Run(ctx context.Context, seed uint64, n int, ops []string, col *Collector) (Summary, error) {
	if ops == nil {
		ops = OpNames()
	}
	sampler := NewSampler(seed)
	start := time.Now()
	var sum Summary
	for _, name := range ops {
		if _, ok := Ops[name]; !ok {
			return sum, fmt.Errorf("unknown op %q", name)
		}
		select {
		case <-ctx.Done():
			return sum, ctx.Err()
		default:
		}
		for _, c := range sampler.Cases(name, n) {
			v, err := Check(c)
			if err != nil {
				return sum, err
			}
			sum.Cases++
			casesTotal.WithLabelValues(name).Inc()
			if !v.OK {
				sum.Mismatches++
				mismatchesTotal.WithLabelValues(name).Inc()
				if col != nil {
					col.Add(v)
				}
			}
		}
	}
	sum.Elapsed = time.Since(start)
	runDuration.Observe(sum.Elapsed.Seconds())
	return sum, nil
}
