// Package migrations provides embedded SQL migration files.
package migrations

import (
	_ "embed"
)

// MetadataCacheSQL creates the response cache schema. It is idempotent and
// applied every time a cache file is opened.
//
//go:embed sql/001_metadata_cache.sql
var MetadataCacheSQL string
