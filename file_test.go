package segy

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInputOutputStreamRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.sgy")

	w, wc, err := OpenOutputStream(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, wc.Close())

	r, rc, err := OpenInputStream(path)
	require.NoError(t, err)
	defer rc.Close()

	pos, err := Tell(r)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)

	buf := make([]byte, 5)
	_, err = r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf))
}

func TestOpenInputStreamMissingFile(t *testing.T) {
	_, _, err := OpenInputStream(filepath.Join(t.TempDir(), "missing.sgy"))
	assert.ErrorIs(t, err, ErrOpenFailed)
}

func TestSegyFileInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.sgy")

	reel := &ReelHeader{}
	require.NoError(t, reel.SetFieldInt("LINE_NUMBER", 7))
	require.NoError(t, reel.SetFieldInt("DATA_SAMPLE_FORMAT_CODE", FormatIEEEFloat))

	var buf bytes.Buffer
	require.NoError(t, reel.WriteReelHeader(&buf, "", false, true))

	w, wc, err := OpenOutputStream(path)
	require.NoError(t, err)
	_, err = w.Write(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, wc.Close())

	f, closer, err := OpenSegyFile(path, 0)
	require.NoError(t, err)
	defer closer.Close()

	summary, err := f.Info(false)
	require.NoError(t, err)
	assert.Equal(t, int64(7), summary.LineNumber)
	assert.Equal(t, int64(FormatIEEEFloat), summary.DataSampleFormatCode)
}

func TestOpenSegyFileInitialSeek(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.sgy")

	w, wc, err := OpenOutputStream(path)
	require.NoError(t, err)
	_, err = w.Write(make([]byte, 100))
	require.NoError(t, err)
	require.NoError(t, wc.Close())

	f, closer, err := OpenSegyFile(path, 10)
	require.NoError(t, err)
	defer closer.Close()

	pos, err := Tell(f.Stream)
	require.NoError(t, err)
	assert.Equal(t, int64(10), pos)
}
