// Package archive provides an optional TileDB sink that records each
// emitted trace's field-record number, reel sequence number, source
// coordinates and samples from a segychange run in a dense TileDB array,
// for downstream querying without re-parsing the SEG-Y file.
//
// Grounded on the teacher's Attitude.ToTileDB / attitude_tiledb_array
// (attitude.go): same domain/dimension/schema/array/query construction
// sequence, same delta+zstd dimension filter pipeline, adapted from a
// single dense row-per-observation layout to segychange's trace record
// model instead of a generic reflection-driven attribute set, since the
// archive's column set is fixed (it is not meant to mirror an arbitrary
// struct).
package archive

import (
	"errors"
	"math"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
)

var (
	ErrCreateSchema = errors.New("archive: error creating tiledb schema")
	ErrCreateArray  = errors.New("archive: error creating tiledb array")
	ErrWriteArray   = errors.New("archive: error writing tiledb array")
)

// TraceRecord is one row appended to the archive: the trace's field-record
// number and reel sequence number, its source coordinate pair, and its
// decoded samples.
type TraceRecord struct {
	OriginalFieldRecord int64
	TraceSequence       int64
	SourceX, SourceY    float64
	Samples             []float64
}

// Writer accumulates TraceRecords in memory for a single input file and
// writes them to a TileDB array on Flush, mirroring the teacher's
// whole-file-at-once ToTileDB pattern (attitude.go, svp.go).
type Writer struct {
	ctx     *tiledb.Context
	records []TraceRecord
	maxLen  int
}

// NewWriter builds a TileDB context from configURI ("" for the default
// config) ready to accept TraceRecords.
func NewWriter(configURI string) (*Writer, error) {
	var (
		config *tiledb.Config
		err    error
	)
	if configURI == "" {
		config, err = tiledb.NewConfig()
	} else {
		config, err = tiledb.LoadConfig(configURI)
	}
	if err != nil {
		return nil, err
	}
	defer config.Free()

	ctx, err := tiledb.NewContext(config)
	if err != nil {
		return nil, err
	}
	return &Writer{ctx: ctx}, nil
}

// Append buffers one trace record for the eventual write.
func (w *Writer) Append(r TraceRecord) {
	if len(r.Samples) > w.maxLen {
		w.maxLen = len(r.Samples)
	}
	w.records = append(w.records, r)
}

// AppendTrace satisfies the pipeline's ArchiveSink interface (pipeline.go),
// letting Writer be wired in as a -archive_uri sink without the pipeline
// importing TileDB.
func (w *Writer) AppendTrace(originalFieldRecord, traceSequence int64, sourceX, sourceY float64, samples []float64) {
	w.Append(TraceRecord{
		OriginalFieldRecord: originalFieldRecord,
		TraceSequence:       traceSequence,
		SourceX:             sourceX,
		SourceY:             sourceY,
		Samples:             append([]float64(nil), samples...),
	})
}

// Flush creates a new dense array at uri sized to the buffered
// record count and writes every field as a fixed-width attribute, padding
// each trace's sample vector with NaN out to the archive's widest trace so
// the SAMPLES attribute can be a fixed-size float64 vector per row rather
// than a variable-length one.
func (w *Writer) Flush(uri string) error {
	nrows := uint64(len(w.records))
	if nrows == 0 {
		return nil
	}

	schema, err := w.buildSchema(nrows)
	if err != nil {
		return errors.Join(ErrCreateSchema, err)
	}
	defer schema.Free()

	array, err := tiledb.NewArray(w.ctx, uri)
	if err != nil {
		return errors.Join(ErrCreateArray, err)
	}
	defer array.Free()

	if err := array.Create(schema); err != nil {
		return errors.Join(ErrCreateArray, err)
	}

	if err := array.Open(tiledb.TILEDB_WRITE); err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	defer array.Close()

	query, err := tiledb.NewQuery(w.ctx, array)
	if err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	defer query.Free()

	if err := query.SetLayout(tiledb.TILEDB_ROW_MAJOR); err != nil {
		return errors.Join(ErrWriteArray, err)
	}

	rec, seq := make([]int64, nrows), make([]int64, nrows)
	srcX, srcY := make([]float64, nrows), make([]float64, nrows)
	samples := make([]float64, nrows*uint64(w.maxLen))

	for i, r := range w.records {
		rec[i] = r.OriginalFieldRecord
		seq[i] = r.TraceSequence
		srcX[i] = r.SourceX
		srcY[i] = r.SourceY
		for j := 0; j < w.maxLen; j++ {
			idx := i*w.maxLen + j
			if j < len(r.Samples) {
				samples[idx] = r.Samples[j]
			} else {
				samples[idx] = math.NaN()
			}
		}
	}

	if _, err := query.SetDataBuffer("ORIGINAL_FIELD_RECORD", rec); err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	if _, err := query.SetDataBuffer("TRACE_SEQUENCE", seq); err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	if _, err := query.SetDataBuffer("SOURCE_X", srcX); err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	if _, err := query.SetDataBuffer("SOURCE_Y", srcY); err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	if _, err := query.SetDataBuffer("SAMPLES", samples); err != nil {
		return errors.Join(ErrWriteArray, err)
	}

	if err := query.Submit(); err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	return query.Finalize()
}

// buildSchema constructs a dense array schema with a single row dimension
// and five fixed-width attributes (SPEC_FULL.md DOMAIN STACK, archive
// sink).
func (w *Writer) buildSchema(nrows uint64) (*tiledb.ArraySchema, error) {
	domain, err := tiledb.NewDomain(w.ctx)
	if err != nil {
		return nil, err
	}
	defer domain.Free()

	tileSize := uint64(math.Min(50000, float64(nrows)))
	dim, err := tiledb.NewDimension(w.ctx, "trace_row", tiledb.TILEDB_UINT64, []uint64{0, nrows - 1}, tileSize)
	if err != nil {
		return nil, err
	}
	defer dim.Free()

	dimFilters, err := tiledb.NewFilterList(w.ctx)
	if err != nil {
		return nil, err
	}
	defer dimFilters.Free()

	deltaFilter, err := tiledb.NewFilter(w.ctx, tiledb.TILEDB_FILTER_POSITIVE_DELTA)
	if err != nil {
		return nil, err
	}
	defer deltaFilter.Free()

	zstdFilter, err := tiledb.NewFilter(w.ctx, tiledb.TILEDB_FILTER_ZSTD)
	if err != nil {
		return nil, err
	}
	defer zstdFilter.Free()
	if err := zstdFilter.SetOption(tiledb.TILEDB_COMPRESSION_LEVEL, int32(16)); err != nil {
		return nil, err
	}

	if err := dimFilters.AddFilter(deltaFilter); err != nil {
		return nil, err
	}
	if err := dimFilters.AddFilter(zstdFilter); err != nil {
		return nil, err
	}
	if err := dim.SetFilterList(dimFilters); err != nil {
		return nil, err
	}
	if err := domain.AddDimensions(dim); err != nil {
		return nil, err
	}

	schema, err := tiledb.NewArraySchema(w.ctx, tiledb.TILEDB_DENSE)
	if err != nil {
		return nil, err
	}
	if err := schema.SetDomain(domain); err != nil {
		schema.Free()
		return nil, err
	}
	if err := schema.SetCellOrder(tiledb.TILEDB_ROW_MAJOR); err != nil {
		schema.Free()
		return nil, err
	}
	if err := schema.SetTileOrder(tiledb.TILEDB_ROW_MAJOR); err != nil {
		schema.Free()
		return nil, err
	}

	for _, name := range []string{"ORIGINAL_FIELD_RECORD", "TRACE_SEQUENCE", "SOURCE_X", "SOURCE_Y", "SAMPLES"} {
		dtype := tiledb.TILEDB_INT64
		if name == "SOURCE_X" || name == "SOURCE_Y" {
			dtype = tiledb.TILEDB_FLOAT64
		}
		var attr *tiledb.Attribute
		if name == "SAMPLES" {
			attr, err = tiledb.NewAttribute(w.ctx, name, tiledb.TILEDB_FLOAT64)
			if err == nil {
				err = attr.SetCellValNum(uint32(w.maxLen))
			}
		} else {
			attr, err = tiledb.NewAttribute(w.ctx, name, dtype)
		}
		if err != nil {
			schema.Free()
			return nil, err
		}
		if err := schema.AddAttributes(attr); err != nil {
			schema.Free()
			return nil, err
		}
	}

	return schema, nil
}
