package search

import (
	"path/filepath"
	"strings"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
)

// trawl recursively walks uri via TileDB's VFS, collecting every file whose
// basename matches pattern. Adapted from the teacher's trawl (search.go),
// unchanged beyond the match predicate.
func trawl(vfs *tiledb.VFS, match func(string) bool, uri string, items []string) []string {
	dirs, files, err := vfs.List(uri)
	if err != nil {
		panic(err)
	}

	for _, file := range files {
		if match(filepath.Base(file)) {
			items = append(items, file)
		}
	}

	for _, dir := range dirs {
		items = trawl(vfs, match, dir, items)
	}

	return items
}

// FindSegy recursively searches uri for *.sgy and *.segy files, using
// TileDB's VFS so the search transparently covers local filesystems and
// object stores such as S3 (spec §6 batch conversion, -convert over a
// directory of inputs). A TileDB config is required for searching object
// stores with permission constraints.
func FindSegy(uri string, configURI string) ([]string, error) {
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
	defer ctx.Free()

	vfs, err := tiledb.NewVFS(ctx, config)
	if err != nil {
		return nil, err
	}
	defer vfs.Free()

	match := func(name string) bool {
		lower := strings.ToLower(name)
		return strings.HasSuffix(lower, ".sgy") || strings.HasSuffix(lower, ".segy")
	}

	items := trawl(vfs, match, uri, nil)
	return items, nil
}
