// Command softcheck runs the soft-float conformance suite against the
// host float implementation: randomized oracle runs, golden-vector
// replays, a soak mode, and an HTTP service exposing checks and metrics.
package main

import (
	"context"
	"flag"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/nilpunch/soft-math/internal/conformance"
)

var (
	opsFlag       = flag.String("op", "", "Comma-separated ops to check (default: all)")
	count         = flag.Int("count", 100000, "Random cases per op")
	seed          = flag.Uint64("seed", 1, "Sampling seed")
	vectorsPath   = flag.String("vectors", "", "Golden CBOR vector file to replay")
	recordPath    = flag.String("record", "", "Record golden vectors to this CBOR file and exit")
	arrowOut      = flag.String("arrow-out", "", "Write mismatches as an Arrow IPC file ('-' for stdout)")
	listenAddr    = flag.String("listen", "", "Address to serve /check, /metrics, /health (e.g. :8080)")
	soak          = flag.Duration("soak", 0, "Repeat the suite for the given duration (e.g. 10m)")
	maxConcurrent = flag.Int("max-concurrent", 64, "Maximum concurrent check batches in server mode")
	maxMismatches = flag.Int("max-mismatches", 4096, "Mismatches kept for reporting")
	cpuProfile    = flag.String("cpuprofile", "", "Write cpu profile to file")
	enableOTel    = flag.Bool("otel", false, "Enable OpenTelemetry tracing (stdout)")
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Caller().Logger()

	flag.Parse()

	if *enableOTel {
		shutdown, err := initTracer()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer shutdown(context.Background())
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create CPU profile file")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("Could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	var ops []string
	if *opsFlag != "" {
		ops = strings.Split(*opsFlag, ",")
	}

	if *recordPath != "" {
		recordVectors(*recordPath, ops)
		return
	}

	if *vectorsPath != "" {
		replayVectors(*vectorsPath)
		return
	}

	if *listenAddr != "" {
		startServer(*listenAddr, *maxConcurrent, *maxMismatches)
		return
	}

	if *soak > 0 {
		runSoak(ops)
		return
	}

	runOnce(ops)
}

func runOnce(ops []string) {
	col := conformance.NewCollector(*maxMismatches)
	sum, err := conformance.Run(context.Background(), *seed, *count, ops, col)
	if err != nil {
		log.Fatal().Err(err).Msg("Suite failed")
	}
	log.Info().
		Int("cases", sum.Cases).
		Int("mismatches", sum.Mismatches).
		Dur("elapsed", sum.Elapsed).
		Float64("cps", float64(sum.Cases)/sum.Elapsed.Seconds()).
		Msg("Conformance run complete")

	if sum.Mismatches > 0 {
		writeMismatches(col)
		os.Exit(1)
	}
}

func runSoak(ops []string) {
	log.Info().Str("duration", soak.String()).Msg("Starting soak run")
	start := time.Now()
	end := start.Add(*soak)
	var totalCases, totalMismatches int
	var iter int
	col := conformance.NewCollector(*maxMismatches)

	for time.Now().Before(end) {
		sum, err := conformance.Run(context.Background(), *seed+uint64(iter), *count, ops, col)
		if err != nil {
			log.Fatal().Err(err).Msg("Suite failed")
		}
		totalCases += sum.Cases
		totalMismatches += sum.Mismatches
		iter++

		if iter%10 == 0 {
			elapsed := time.Since(start)
			log.Info().
				Str("elapsed", elapsed.Round(time.Second).String()).
				Int("iter", iter).
				Int("total_cases", totalCases).
				Int("mismatches", totalMismatches).
				Float64("cps", float64(totalCases)/elapsed.Seconds()).
				Msg("Soak progress")
		}
	}

	totalElapsed := time.Since(start)
	log.Info().
		Int("total_cases", totalCases).
		Int("mismatches", totalMismatches).
		Dur("total_time", totalElapsed).
		Float64("avg_cps", float64(totalCases)/totalElapsed.Seconds()).
		Msg("Soak complete")
	if totalMismatches > 0 {
		writeMismatches(col)
		os.Exit(1)
	}
}

func recordVectors(path string, ops []string) {
	if ops == nil {
		ops = conformance.OpNames()
	}
	sampler := conformance.NewSampler(*seed)
	var cases []conformance.Case
	for _, op := range ops {
		cases = append(cases, sampler.Cases(op, *count)...)
	}
	cases = conformance.Record(cases)
	if err := conformance.SaveVectors(path, cases); err != nil {
		log.Fatal().Err(err).Msg("Failed to save vectors")
	}
	log.Info().Int("cases", len(cases)).Str("path", path).Msg("Recorded golden vectors")
}

func replayVectors(path string) {
	cases, err := conformance.LoadVectors(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load vectors")
	}
	verdicts, err := conformance.Replay(cases)
	if err != nil {
		log.Fatal().Err(err).Msg("Replay failed")
	}
	var fails []conformance.Verdict
	for _, v := range verdicts {
		if !v.OK {
			fails = append(fails, v)
		}
	}
	log.Info().
		Int("cases", len(verdicts)).
		Int("mismatches", len(fails)).
		Str("path", path).
		Msg("Replay complete")
	if len(fails) > 0 {
		if *arrowOut != "" {
			writeArrowFile(*arrowOut, fails)
		}
		os.Exit(1)
	}
}

func writeMismatches(col *conformance.Collector) {
	if *arrowOut == "" {
		return
	}
	fails := col.Snapshot()
	if col.Dropped() > 0 {
		log.Warn().Int("dropped", col.Dropped()).Msg("Mismatch report truncated")
	}
	writeArrowFile(*arrowOut, fails)
}

func writeArrowFile(path string, verdicts []conformance.Verdict) {
	w := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create arrow output")
		}
		defer f.Close()
		w = f
	}
	if err := conformance.WriteReport(w, verdicts); err != nil {
		log.Warn().Err(err).Msg("Failed to write arrow report")
		return
	}
	log.Info().Int("rows", len(verdicts)).Str("path", path).Msg("Wrote mismatch report")
}

func initTracer() (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("softcheck"),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}
