// Package migrations embeds the SQL schema of the publisher inventory. The
// files are applied by golang-migrate through its iofs source.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
