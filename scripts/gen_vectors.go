//go:build ignore

// Generates golden conformance vectors: samples cases for every op,
// records the current soft results, and writes one CBOR file per op.
//
//	go run scripts/gen_vectors.go -out testdata -count 10000 -seed 1
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nilpunch/soft-math/internal/conformance"
)

var (
	outDir = flag.String("out", "testdata", "Output directory")
	count  = flag.Int("count", 10000, "Cases per op")
	seed   = flag.Uint64("seed", 1, "Sampling seed")
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create output dir")
	}

	sampler := conformance.NewSampler(*seed)
	for _, op := range conformance.OpNames() {
		cases := conformance.Record(sampler.Cases(op, *count))
		path := filepath.Join(*outDir, op+".cbor")
		if err := conformance.SaveVectors(path, cases); err != nil {
			log.Fatal().Err(err).Str("op", op).Msg("Failed to save vectors")
		}
		log.Info().Str("op", op).Int("cases", len(cases)).Str("path", path).Msg("Recorded")
	}
}
