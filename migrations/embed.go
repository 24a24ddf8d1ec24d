// Package migrations embeds the versioned schema files applied by the
// migration runner. Files follow V<version>__<name>.sql.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
