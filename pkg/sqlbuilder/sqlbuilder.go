package sqlbuilder

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Поддерживаемые SQL диалекты
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// psql построитель запросов для PostgreSQL ($1, $2, ...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// lite построитель запросов для SQLite (?, ?, ...)
var lite = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// For возвращает построитель запросов для указанного диалекта
func For(dialect string) (squirrel.StatementBuilderType, error) {
	switch dialect {
	case DialectPostgres:
		return psql, nil
	case DialectSQLite:
		return lite, nil
	default:
		return squirrel.StatementBuilderType{}, fmt.Errorf("sqlbuilder: unsupported dialect %q", dialect)
	}
}
