package postgres

import sq "github.com/Masterminds/squirrel"

// builder is the shared statement builder for dynamically composed
// statements. Fixed-shape statements stay as plain SQL text.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
