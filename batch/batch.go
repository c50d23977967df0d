// Package batch fans a single-file conversion out over every SEG-Y file
// found under a directory or object-store URI, one worker pool submission
// per file. Grounded on the teacher's convert_gsf_list (cmd/main.go): a
// fixed pond pool sized to 2*NumCPU, a signal.NotifyContext so Ctrl+C drains
// in-flight work instead of killing it mid-file, one Submit per discovered
// path. Each file's own trace stream is still processed strictly in order
// by the pipeline; only the set of files runs concurrently.
package batch

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/alitto/pond"

	"github.com/segychange/segychange/search"
)

// ErrSomeFailed indicates at least one file in the batch did not convert
// cleanly; per-file errors are still available in the returned []Result.
var ErrSomeFailed = errors.New("batch: one or more files failed to convert")

// Job describes one file's worth of work: where it came from and where the
// converted output should be written.
type Job struct {
	InputPath  string
	OutputPath string
}

// ConvertFunc runs the single-file pipeline for one Job. Callers supply
// this so batch stays independent of how Options are built per file.
type ConvertFunc func(job Job) error

// Result pairs a Job with the error (if any) its ConvertFunc returned.
type Result struct {
	Job Job
	Err error
}

// Run discovers every .sgy/.segy file under uri, builds one Job per file
// with its converted sibling placed in outDir (or alongside the input when
// outDir is empty), and submits each to a fixed-size pond pool. It blocks
// until every file has been attempted or the process receives an interrupt.
func Run(uri, configURI, outDir string, convert ConvertFunc) ([]Result, error) {
	paths, err := search.FindSegy(uri, configURI)
	if err != nil {
		return nil, err
	}
	log.Println("files to convert:", len(paths))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	n := runtime.NumCPU() * 2
	pool := pond.New(n, 0, pond.MinWorkers(n), pond.Context(ctx))
	defer pool.StopAndWait()

	var (
		mu      sync.Mutex
		results []Result
	)

	for _, path := range paths {
		dir, file := filepath.Split(path)
		dest := outDir
		if dest == "" {
			dest = dir
		}
		job := Job{
			InputPath:  path,
			OutputPath: filepath.Join(dest, file+".out.sgy"),
		}

		pool.Submit(func() {
			err := convert(job)
			if err != nil {
				log.Printf("failed: %s: %v", job.InputPath, err)
			}
			mu.Lock()
			results = append(results, Result{Job: job, Err: err})
			mu.Unlock()
		})
	}

	pool.StopAndWait()

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return results, ErrSomeFailed
	}
	return results, nil
}
