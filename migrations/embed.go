// Package migrations embeds the goose SQL migrations so that the server and
// the test helpers apply the same schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
