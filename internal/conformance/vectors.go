package conformance

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	sf "github.com/nilpunch/soft-math/softfloat"
)

// Golden vectors are CBOR-encoded case lists with recorded raw results.
// Replaying them is the bit-exactness check of the compatibility surface:
// every (raw_a, raw_b, op) -> raw_result triple must match.

// Record fills in Want for every case by running the soft implementation.
func Record(cases []Case) []Case {
	out := make([]Case, len(cases))
	for i, c := range cases {
		op := Ops[c.Op]
		c.Want = op.Soft(sf.FromRaw(c.A), sf.FromRaw(c.B)).Raw()
		out[i] = c
	}
	return out
}

// Replay checks recorded cases bit-exactly and returns the verdicts.
func Replay(cases []Case) ([]Verdict, error) {
	out := make([]Verdict, len(cases))
	for i, c := range cases {
		op, ok := Ops[c.Op]
		if !ok {
			return nil, fmt.Errorf("unknown op %q in vector %d", c.Op, i)
		}
		got := op.Soft(sf.FromRaw(c.A), sf.FromRaw(c.B)).Raw()
		out[i] = Verdict{Case: c, Got: got, OK: got == c.Want}
	}
	return out, nil
}

// SaveVectors writes cases as a CBOR file.
func SaveVectors(path string, cases []Case) error {
	data, err := cbor.Marshal(cases)
	if err != nil {
		return fmt.Errorf("encode vectors: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write vectors: %w", err)
	}
	return nil
}

// LoadVectors reads a CBOR vector file.
func LoadVectors(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vectors: %w", err)
	}
	var cases []Case
	if err := cbor.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("decode vectors: %w", err)
	}
	return cases, nil
}
