package main

import (
	"fmt"
	"net/http"

	"github.com/fxamacker/cbor/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/semaphore"

	"github.com/nilpunch/soft-math/internal/conformance"
)

// Server exposes conformance checking over HTTP: POST /check takes a CBOR
// case list and answers with CBOR verdicts; /metrics and /health follow.
type Server struct {
	collector *conformance.Collector
	sem       *semaphore.Weighted
}

func NewServer(maxConcurrent, maxMismatches int) *Server {
	return &Server{
		collector: conformance.NewCollector(maxMismatches),
		sem:       semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

func startServer(addr string, maxConcurrent, maxMismatches int) {
	srv := NewServer(maxConcurrent, maxMismatches)

	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/check", srv.handleCheck)
	http.HandleFunc("/mismatches", srv.handleMismatches)
	http.HandleFunc("/health", srv.handleHealth)

	log.Info().Str("addr", addr).Msg("Starting softcheck server")
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

var tracer = otel.Tracer("softcheck-server")

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleCheck")
	defer span.End()

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var cases []conformance.Case
	decoder := cbor.NewDecoder(r.Body)
	if err := decoder.Decode(&cases); err != nil {
		span.RecordError(err)
		http.Error(w, fmt.Sprintf("Bad Request (CBOR decode): %v", err), http.StatusBadRequest)
		return
	}

	if len(cases) == 0 {
		w.WriteHeader(http.StatusOK)
		return
	}

	span.SetAttributes(attribute.Int("case_count", len(cases)))

	if err := s.sem.Acquire(ctx, 1); err != nil {
		http.Error(w, "Shutting down", http.StatusServiceUnavailable)
		return
	}
	defer s.sem.Release(1)

	verdicts := make([]conformance.Verdict, 0, len(cases))
	for _, c := range cases {
		v, err := conformance.Check(c)
		if err != nil {
			span.RecordError(err)
			http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
			return
		}
		if !v.OK {
			s.collector.Add(v)
		}
		verdicts = append(verdicts, v)
	}

	w.Header().Set("Content-Type", "application/cbor")
	if err := cbor.NewEncoder(w).Encode(verdicts); err != nil {
		log.Warn().Err(err).Msg("Failed to encode verdicts")
	}
}

// handleMismatches streams the mismatches the collector holds (at most its
// cap; dropped ones are not included) as an Arrow IPC stream.
func (s *Server) handleMismatches(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "handleMismatches")
	defer span.End()

	fails := s.collector.Snapshot()
	w.Header().Set("Content-Type", "application/vnd.apache.arrow.stream")
	if err := conformance.WriteReport(w, fails); err != nil {
		span.RecordError(err)
		log.Warn().Err(err).Msg("Failed to write mismatch stream")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}
