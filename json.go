package segy

import (
	"encoding/json"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
	"github.com/klauspost/compress/zstd"
)

// WriteJSON serialises data as indented JSON to fileURI, which may be a
// local path or any URI scheme TileDB's VFS layer supports (s3://, etc) --
// used by the info command's -json_out to persist its summary as a file. When compress is true the payload is written
// zstd-compressed (spec §6, -compress), borrowing klauspost/compress/zstd's
// Writer the way mebo wraps its block compression. Adapted from the
// teacher's WriteJson (json.go), unchanged in its use of TileDB's VFS for
// the actual write.
func WriteJSON(fileURI string, configURI string, data any, compress bool) (int, error) {
	var config *tiledb.Config
	var err error

	if configURI == "" {
		config, err = tiledb.NewConfig()
		if err != nil {
			return 0, err
		}
	} else {
		config, err = tiledb.LoadConfig(configURI)
		if err != nil {
			return 0, err
		}
	}
	defer config.Free()

	ctx, err := tiledb.NewContext(config)
	if err != nil {
		return 0, err
	}
	defer ctx.Free()

	vfs, err := tiledb.NewVFS(ctx, config)
	if err != nil {
		return 0, err
	}
	defer vfs.Free()

	stream, err := vfs.Open(fileURI, tiledb.TILEDB_VFS_WRITE)
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	jsn, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return 0, err
	}

	if !compress {
		return stream.Write(jsn)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return 0, err
	}
	defer enc.Close()

	return stream.Write(enc.EncodeAll(jsn, nil))
}

// JSONDumps constructs a compact JSON string of the supplied data.
func JSONDumps(data any) (string, error) {
	jsn, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(jsn), nil
}

// JSONIndentDumps constructs an indented JSON string, used by the info
// command's printed summary.
func JSONIndentDumps(data any) (string, error) {
	jsn, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return "", err
	}
	return string(jsn), nil
}
