package segy

import (
	"io"
	"os"
)

// Stream caters for a generic reader so the pipeline can treat a file on
// disk, standard input, or an in-memory byte buffer uniformly; all that is
// required is Read and Seek. This generalises the teacher's Stream
// interface (reader.go), which existed to paper over *tiledb.VFSfh versus
// *bytes.Reader -- here it papers over *os.File versus stdin versus a
// buffered fixture used by tests.
type Stream interface {
	io.Reader
	Seek(offset int64, whence int) (int64, error)
}

// OpenInputStream opens path for reading. path == "-" reads from standard
// input, which has no meaningful Seek; the initial seek must be zero in that
// case (spec §6, -x applies only to seekable input).
func OpenInputStream(path string) (Stream, io.Closer, error) {
	if path == "-" {
		return &unseekableStream{r: os.Stdin}, os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, ErrOpenFailed
	}
	return f, f, nil
}

// OpenOutputStream opens path for writing, truncating any existing file.
// path == "-" writes to standard output.
func OpenOutputStream(path string) (io.Writer, io.Closer, error) {
	if path == "-" {
		return os.Stdout, os.Stdout, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, ErrOpenFailed
	}
	return f, f, nil
}

// unseekableStream adapts an io.Reader with no Seek (standard input) to the
// Stream interface; Seek(0, io.SeekCurrent) reports position 0 (so Tell
// works) and every other Seek fails.
type unseekableStream struct {
	r io.Reader
}

func (u *unseekableStream) Read(p []byte) (int, error) {
	return u.r.Read(p)
}

func (u *unseekableStream) Seek(offset int64, whence int) (int64, error) {
	if offset == 0 && whence == io.SeekCurrent {
		return 0, nil
	}
	return 0, ErrOpenFailed
}
