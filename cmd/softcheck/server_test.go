package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilpunch/soft-math/internal/conformance"
)

func TestHandleCheck(t *testing.T) {
	srv := NewServer(4, 16)

	cases := []conformance.Case{
		{Op: "add", A: 0x3F800000, B: 0x3F800000}, // 1+1
		{Op: "sqrt", A: 0x40000000},               // sqrt(2)
	}
	data, err := cbor.Marshal(cases)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/check", bytes.NewReader(data))
	rr := httptest.NewRecorder()
	srv.handleCheck(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var verdicts []conformance.Verdict
	require.NoError(t, cbor.Unmarshal(rr.Body.Bytes(), &verdicts))
	require.Len(t, verdicts, 2)
	assert.True(t, verdicts[0].OK)
	assert.Equal(t, uint32(0x40000000), verdicts[0].Got) // 2.0
	assert.True(t, verdicts[1].OK)
	assert.Equal(t, uint32(0x3FB504F3), verdicts[1].Got) // sqrt(2)
}

func TestHandleCheckRejectsBadInput(t *testing.T) {
	srv := NewServer(4, 16)

	req := httptest.NewRequest(http.MethodPost, "/check", bytes.NewReader([]byte("not cbor")))
	rr := httptest.NewRecorder()
	srv.handleCheck(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/check", nil)
	rr = httptest.NewRecorder()
	srv.handleCheck(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	data, _ := cbor.Marshal([]conformance.Case{{Op: "nosuch", A: 1}})
	req = httptest.NewRequest(http.MethodPost, "/check", bytes.NewReader(data))
	rr = httptest.NewRecorder()
	srv.handleCheck(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleHealth(t *testing.T) {
	srv := NewServer(1, 1)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	srv.handleHealth(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestHandleMismatches(t *testing.T) {
	srv := NewServer(1, 16)
	srv.collector.Add(conformance.Verdict{
		Case: conformance.Case{Op: "add", A: 1, B: 2},
		Got:  3,
	})
	req := httptest.NewRequest(http.MethodGet, "/mismatches", nil)
	rr := httptest.NewRecorder()
	srv.handleMismatches(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Body.Bytes())
}
