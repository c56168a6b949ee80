package db

import "github.com/Masterminds/squirrel"

// Builder is the statement builder preconfigured for Postgres
// dollar-sign placeholders. All repository SQL goes through it.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
