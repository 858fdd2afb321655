package conformance

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// mismatchSchema is the columnar layout of a mismatch report: the op name,
// the raw operand words, the raw soft result, and the case's recorded Want
// (zero for oracle runs).
var mismatchSchema = arrow.NewSchema(
	[]arrow.Field{
		{Name: "op", Type: arrow.BinaryTypes.String},
		{Name: "raw_a", Type: arrow.PrimitiveTypes.Uint32},
		{Name: "raw_b", Type: arrow.PrimitiveTypes.Uint32},
		{Name: "got", Type: arrow.PrimitiveTypes.Uint32},
		{Name: "want", Type: arrow.PrimitiveTypes.Uint32},
	},
	nil,
)

// BuildRecord packs verdicts into an Arrow record batch. The caller owns
// the release.
func BuildRecord(verdicts []Verdict) arrow.RecordBatch {
	pool := memory.NewGoAllocator()

	opB := array.NewStringBuilder(pool)
	defer opB.Release()
	aB := array.NewUint32Builder(pool)
	defer aB.Release()
	bB := array.NewUint32Builder(pool)
	defer bB.Release()
	gotB := array.NewUint32Builder(pool)
	defer gotB.Release()
	wantB := array.NewUint32Builder(pool)
	defer wantB.Release()

	for _, v := range verdicts {
		opB.Append(v.Op)
		aB.Append(v.A)
		bB.Append(v.B)
		gotB.Append(v.Got)
		wantB.Append(v.Want)
	}

	cols := []arrow.Array{
		opB.NewArray(), aB.NewArray(), bB.NewArray(), gotB.NewArray(), wantB.NewArray(),
	}
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()
	return array.NewRecordBatch(mismatchSchema, cols, int64(len(verdicts)))
}

// WriteReport streams verdicts as an Arrow IPC stream.
func WriteReport(w io.Writer, verdicts []Verdict) error {
	rec := BuildRecord(verdicts)
	defer rec.Release()

	writer := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()))
	if err := writer.Write(rec); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}
