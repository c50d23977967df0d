package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	segy "github.com/segychange/segychange"
	"github.com/segychange/segychange/archive"
	"github.com/segychange/segychange/batch"
)

// optionsFromContext builds an Options from the command's flags, the single
// place that translates the command-surface strings into the pipeline's
// typed configuration (spec §6).
func optionsFromContext(c *cli.Context) (segy.Options, error) {
	opts := segy.DefaultOptions()

	opts.FlipEndian = c.Bool("flip_endianess")
	opts.NoHeader = c.Bool("no_header")
	opts.NoEBCDICStamp = c.Bool("no_EBCDIC_stamp")
	opts.UseNames = c.Bool("use_names")

	if c.IsSet("record") {
		lo, hi, err := parsePair(c.String("record"))
		if err != nil {
			return opts, err
		}
		opts.RecordStart, opts.RecordEnd = lo, hi
	}
	if c.IsSet("trace") {
		lo, hi, err := parsePair(c.String("trace"))
		if err != nil {
			return opts, err
		}
		opts.TraceStart, opts.TraceEnd = lo, hi
	}
	if c.IsSet("num_trace_offset") {
		opts.TraceOffset = c.Int("num_trace_offset")
	}
	opts.SkipNTraces = c.Int("skip_n_traces")
	opts.OnlyNTraces = c.Int("only_n_traces")
	opts.SkipNSamples = c.Int("skip_n_samples")
	opts.OnlyNSamples = c.Int("only_n_samples")
	opts.SamplesPerTraceOverride = c.Int("samples_per_trace")
	opts.TracesPerRecord = c.Int("traces_per_record")

	if sel := c.String("only_traces_with"); sel != "" {
		entries, err := segy.ParseSelector(sel, segy.TraceRegistry, opts.UseNames)
		if err != nil {
			return opts, err
		}
		opts.OnlyTracesWith = entries
	}

	if sel := c.String("change_header_fields"); sel != "" {
		entries, err := segy.ParseSelector(sel, segy.ReelRegistry, opts.UseNames)
		if err != nil {
			return opts, err
		}
		opts.ChangeHeaderFields = entries
	}

	if path := c.String("EBCDIC"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return opts, err
		}
		opts.ReplaceEBCDIC = true
		opts.EBCDICText = string(data)
	}

	if path := c.String("change_trace_fields"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return opts, err
		}
		opts.ChangeTraceFields = segy.NewChangeFileReader(f, opts.UseNames)
	}

	if c.IsSet("irc") {
		opts.RenumberShot = true
		opts.InitialRecord = int64(c.Int("irc"))
	}
	if c.IsSet("itc") {
		opts.RenumberTrace = true
		opts.InitialTrace = int64(c.Int("itc"))
	}

	if raw := c.String("add_xy"); raw != "" {
		parts := strings.SplitN(raw, ",", 2)
		if len(parts) != 2 {
			return opts, fmt.Errorf("segy: -add_xy expects <path>,{SOURCE|RECEIVER}")
		}
		f, err := os.Open(parts[0])
		if err != nil {
			return opts, err
		}
		defer f.Close()
		table, err := segy.ReadCoordinateTable(f)
		if err != nil {
			return opts, err
		}
		opts.CoordTable = table
		if strings.EqualFold(strings.TrimSpace(parts[1]), "RECEIVER") {
			opts.CoordTarget = segy.TargetReceiver
		} else {
			opts.CoordTarget = segy.TargetSource
		}
	}

	if conv := c.String("convert"); conv != "" {
		code, err := convertCodeFromLetter(conv)
		if err != nil {
			return opts, err
		}
		opts.DoConvert = true
		opts.ConvertTo = code
	}

	if k := c.Int("vertical_stack"); k > 1 {
		opts.VerticalStack = k
	}

	if op := c.String("do_op"); op != "" {
		opParts := strings.SplitN(op, ":", 2)
		if len(opParts) != 2 || len(opParts[0]) != 1 {
			return opts, fmt.Errorf("segy: -do_op expects {+|-|*|/}:<val>")
		}
		val, err := strconv.ParseFloat(opParts[1], 64)
		if err != nil {
			return opts, err
		}
		opts.DoArith = true
		opts.ArithOp = opParts[0][0]
		opts.ArithVal = val
	}

	return opts, nil
}

func parsePair(s string) (int64, int64, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("segy: expected \"lo hi\", got %q", s)
	}
	lo, err1 := strconv.ParseInt(parts[0], 10, 64)
	hi, err2 := strconv.ParseInt(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("segy: malformed range %q", s)
	}
	return lo, hi, nil
}

// convertCodeFromLetter maps the -convert letter to a sample format code,
// the same S=16-bit/I=32-bit-int naming the field registry uses for its
// selector type codes (spec §4.2 vs §6): S -> int16, I -> int32, F -> IBM
// float (SEG-Y format 1, "floating point"), E -> IEEE 754 (format 5).
func convertCodeFromLetter(letter string) (int, error) {
	switch strings.ToUpper(strings.TrimSpace(letter)) {
	case "S":
		return segy.FormatInt16, nil
	case "I":
		return segy.FormatInt32, nil
	case "F":
		return segy.FormatIBMFloat, nil
	case "E":
		return segy.FormatIEEEFloat, nil
	default:
		return 0, fmt.Errorf("segy: unknown -convert code %q", letter)
	}
}

// runPipeline opens the input/output streams named by the command's shared
// -f/-o/-x flags and drives the single-pass pipeline (spec §5, §6).
func runPipeline(c *cli.Context, opts segy.Options) error {
	inPath := c.String("f")
	outPath := c.String("o")
	if inPath == "" || outPath == "" {
		return fmt.Errorf("segy: -f and -o are required")
	}

	in, inCloser, err := segy.OpenInputStream(inPath)
	if err != nil {
		return err
	}
	defer inCloser.Close()

	if seek := c.Int64("x"); seek != 0 {
		if _, err := in.Seek(seek, 0); err != nil {
			return err
		}
	}

	out, outCloser, err := segy.OpenOutputStream(outPath)
	if err != nil {
		return err
	}
	defer outCloser.Close()

	sink, flushArchive, err := openArchive(c)
	if err != nil {
		return err
	}
	opts.Archive = sink

	ctx := segy.NewPipelineContext(opts)
	if c.Bool("scan") {
		ctx.Scan = segy.NewScanReport()
	}

	if err := segy.Run(ctx, in, out); err != nil {
		return err
	}

	if ctx.Scan != nil {
		ctx.Scan.Finish()
		log.Println(ctx.Scan.String())
	}
	if flushArchive != nil {
		return flushArchive()
	}
	return nil
}

func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "f", Usage: "input path, or - for standard input"},
		&cli.StringFlag{Name: "o", Usage: "output path, or - for standard output"},
		&cli.Int64Flag{Name: "x", Usage: "initial byte offset into the input stream"},
		&cli.BoolFlag{Name: "no_header", Usage: "suppress writing the reel header"},
		&cli.BoolFlag{Name: "no_EBCDIC_stamp", Usage: "suppress the provenance watermark"},
		&cli.BoolFlag{Name: "flip_endianess", Usage: "byte-swap every registered field on read and write"},
		&cli.BoolFlag{Name: "all", Usage: "process every trace (default range)"},
		&cli.StringFlag{Name: "record", Usage: "\"lo hi\" field-record range"},
		&cli.StringFlag{Name: "trace", Usage: "\"lo hi\" trace-offset range"},
		&cli.IntFlag{Name: "num_trace_offset", Usage: "trace-header offset used for the trace range filter"},
		&cli.IntFlag{Name: "skip_n_traces", Usage: "skip this many kept traces before emitting any"},
		&cli.IntFlag{Name: "only_n_traces", Usage: "emit at most this many traces"},
		&cli.IntFlag{Name: "skip_n_samples", Usage: "drop this many leading samples per trace"},
		&cli.IntFlag{Name: "only_n_samples", Usage: "keep at most this many samples per trace"},
		&cli.StringFlag{Name: "only_traces_with", Usage: "selector of offset:type:value equality filters"},
		&cli.StringFlag{Name: "change_header_fields", Usage: "selector of offset:type:value reel header edits"},
		&cli.StringFlag{Name: "EBCDIC", Usage: "path to replacement EBCDIC free-text"},
		&cli.BoolFlag{Name: "use_names", Usage: "selectors and -change_trace_fields use symbolic field names"},
		&cli.StringFlag{Name: "change_trace_fields", Usage: "path to a -change_trace_fields file"},
		&cli.IntFlag{Name: "irc", Usage: "initial field-record number; enables shot renumbering"},
		&cli.IntFlag{Name: "itc", Usage: "initial within-record trace number; enables trace renumbering"},
		&cli.StringFlag{Name: "add_xy", Usage: "<path>,{SOURCE|RECEIVER} coordinate injection"},
		&cli.StringFlag{Name: "convert", Usage: "target sample format {S|I|F|E}"},
		&cli.IntFlag{Name: "vertical_stack", Usage: "sum groups of k consecutive samples"},
		&cli.StringFlag{Name: "do_op", Usage: "{+|-|*|/}:<val> scalar sample arithmetic"},
		&cli.IntFlag{Name: "traces_per_record", Usage: "override NUMBER_OF_DATA_TRACES_PER_RECORD"},
		&cli.IntFlag{Name: "samples_per_trace", Usage: "fallback sample count when a trace declares zero"},
		&cli.BoolFlag{Name: "scan", Usage: "accumulate and print a scan report while converting"},
		&cli.StringFlag{Name: "archive_uri", Usage: "append every emitted trace to a TileDB array at this URI"},
		&cli.StringFlag{Name: "archive_config_uri", Usage: "TileDB config URI for the archive sink"},
	}
}

// openArchive builds an ArchiveSink from the shared -archive_uri flags, or
// returns (nil, nil, nil) when archiving was not requested.
func openArchive(c *cli.Context) (segy.ArchiveSink, func() error, error) {
	uri := c.String("archive_uri")
	if uri == "" {
		return nil, nil, nil
	}
	w, err := archive.NewWriter(c.String("archive_config_uri"))
	if err != nil {
		return nil, nil, err
	}
	return w, func() error { return w.Flush(uri) }, nil
}

func main() {
	app := &cli.App{
		Name:  "segychange",
		Usage: "stream a SEG-Y file through a single-pass filter/transcode pipeline",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "apply the pipeline to one SEG-Y file",
				Flags: sharedFlags(),
				Action: func(c *cli.Context) error {
					opts, err := optionsFromContext(c)
					if err != nil {
						return err
					}
					return runPipeline(c, opts)
				},
			},
			{
				Name:  "info",
				Usage: "print the reel header's governing fields without walking traces",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "f", Usage: "input path"},
					&cli.BoolFlag{Name: "flip_endianess"},
					&cli.StringFlag{Name: "json_out", Usage: "write the summary as a JSON sidecar file instead of printing it"},
					&cli.StringFlag{Name: "json_out_config_uri", Usage: "TileDB config URI for the sidecar's output stream"},
					&cli.BoolFlag{Name: "compress", Usage: "zstd-compress the JSON sidecar written by -json_out"},
				},
				Action: func(c *cli.Context) error {
					f, closer, err := segy.OpenSegyFile(c.String("f"), 0)
					if err != nil {
						return err
					}
					defer closer.Close()

					summary, err := f.Info(c.Bool("flip_endianess"))
					if err != nil {
						return err
					}

					if out := c.String("json_out"); out != "" {
						_, err := segy.WriteJSON(out, c.String("json_out_config_uri"), summary, c.Bool("compress"))
						return err
					}

					jsn, err := segy.JSONIndentDumps(summary)
					if err != nil {
						return err
					}
					fmt.Println(jsn)
					return nil
				},
			},
			{
				Name:  "scan",
				Usage: "walk every trace and print min/max/duplicate statistics",
				Flags: sharedFlags(),
				Action: func(c *cli.Context) error {
					opts, err := optionsFromContext(c)
					if err != nil {
						return err
					}

					in, inCloser, err := segy.OpenInputStream(c.String("f"))
					if err != nil {
						return err
					}
					defer inCloser.Close()

					out, outCloser, err := segy.OpenOutputStream(os.DevNull)
					if err != nil {
						return err
					}
					defer outCloser.Close()

					ctx := segy.NewPipelineContext(opts)
					ctx.Scan = segy.NewScanReport()
					if err := segy.Run(ctx, in, out); err != nil {
						return err
					}
					ctx.Scan.Finish()
					fmt.Println(ctx.Scan.String())
					return nil
				},
			},
			{
				Name:  "dump",
				Usage: "render reel and/or trace header fields as text without writing an output file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "f", Usage: "input path"},
					&cli.BoolFlag{Name: "flip_endianess"},
					&cli.BoolFlag{Name: "use_names"},
					&cli.BoolFlag{Name: "segy_info", Usage: "print the reel header's EBCDIC free text block"},
					&cli.StringFlag{Name: "dump_header_fields", Usage: "selector of reel header fields to render; empty means every registered field"},
					&cli.StringFlag{Name: "dump_trace_fields", Usage: "selector of trace header fields to render; empty means every registered field"},
					&cli.StringFlag{Name: "dump_xy", Usage: "{SOURCE|RECEIVER} print the coordinate pair of every trace"},
					&cli.BoolFlag{Name: "print_rec_seq_num", Usage: "print each trace's identifying (record, reel-seq, record-seq) triple"},
				},
				Action: func(c *cli.Context) error {
					useNames := c.Bool("use_names")

					in, inCloser, err := segy.OpenInputStream(c.String("f"))
					if err != nil {
						return err
					}
					defer inCloser.Close()

					reel, err := segy.ReadReelHeader(in, c.Bool("flip_endianess"))
					if err != nil {
						return err
					}

					if c.Bool("segy_info") {
						fmt.Println(reel.EBCDICText())
					}

					if sel := c.String("dump_header_fields"); sel != "" {
						entries, err := segy.ParseSelector(sel, segy.ReelRegistry, useNames)
						if err != nil {
							return err
						}
						fmt.Println(segy.DumpSelectedFields(reel.Bytes(), segy.ReelRegistry, entries, useNames))
					} else if c.IsSet("dump_header_fields") {
						fmt.Println(segy.DumpFields(reel.Bytes(), segy.ReelRegistry, useNames))
					}

					wantTraceFields := c.IsSet("dump_trace_fields")
					var traceEntries []segy.SelectorEntry
					if sel := c.String("dump_trace_fields"); sel != "" {
						traceEntries, err = segy.ParseSelector(sel, segy.TraceRegistry, useNames)
						if err != nil {
							return err
						}
					}

					dumpXY := strings.ToUpper(strings.TrimSpace(c.String("dump_xy")))
					printSeq := c.Bool("print_rec_seq_num")

					for {
						h, err := segy.ReadTraceHeader(in, c.Bool("flip_endianess"))
						if err == io.EOF {
							break
						}
						if err != nil {
							return err
						}
						n := h.NumberOfSamples()
						if n == 0 {
							break
						}
						code, _ := reel.DataSampleFormatCode()
						if _, err := segy.ReadSamplePayload(in, n, code, c.Bool("flip_endianess")); err != nil {
							return err
						}

						if printSeq {
							rec, seqReel, seqRecord := h.IdentifyingTriple()
							fmt.Printf("%d/%d/%d\n", rec, seqReel, seqRecord)
						}
						if dumpXY == "SOURCE" {
							x, _ := h.FieldInt("SOURCE_X_FEET_OR_METERS_OR_LONGITUDE")
							y, _ := h.FieldInt("SOURCE_Y_FEET_OR_METERS_OR_LATITUDE")
							fmt.Printf("%d,%d\n", x, y)
						} else if dumpXY == "RECEIVER" {
							x, _ := h.FieldInt("RECEIVER_X_FEET_OR_METERS_OR_LONGITUDE")
							y, _ := h.FieldInt("RECEIVER_Y_FEET_OR_METERS_OR_LATITUDE")
							fmt.Printf("%d,%d\n", x, y)
						}
						if wantTraceFields {
							if len(traceEntries) > 0 {
								fmt.Println(segy.DumpSelectedFields(h.Bytes(), segy.TraceRegistry, traceEntries, useNames))
							} else {
								fmt.Println(segy.DumpFields(h.Bytes(), segy.TraceRegistry, useNames))
							}
						}
					}
					return nil
				},
			},
			{
				Name:  "convert-batch",
				Usage: "apply the pipeline to every SEG-Y file found under a directory or object-store URI",
				Flags: append(sharedFlags(),
					&cli.StringFlag{Name: "uri", Usage: "directory or URI to search for .sgy/.segy files"},
					&cli.StringFlag{Name: "config-uri", Usage: "TileDB config URI for the search/VFS layer"},
					&cli.StringFlag{Name: "outdir-uri", Usage: "output directory for converted files"},
				),
				Action: func(c *cli.Context) error {
					opts, err := optionsFromContext(c)
					if err != nil {
						return err
					}

					convertOne := func(job batch.Job) error {
						in, inCloser, err := segy.OpenInputStream(job.InputPath)
						if err != nil {
							return err
						}
						defer inCloser.Close()

						out, outCloser, err := segy.OpenOutputStream(job.OutputPath)
						if err != nil {
							return err
						}
						defer outCloser.Close()

						ctx := segy.NewPipelineContext(opts)
						return segy.Run(ctx, in, out)
					}

					results, err := batch.Run(c.String("uri"), c.String("config-uri"), c.String("outdir-uri"), convertOne)
					for _, r := range results {
						status := "ok"
						if r.Err != nil {
							status = r.Err.Error()
						}
						log.Printf("%s: %s", r.Job.InputPath, status)
					}
					return err
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
