package sqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_Placeholders(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{DialectPostgres, "SELECT id FROM bookings WHERE document_number = $1"},
		{DialectSQLite, "SELECT id FROM bookings WHERE document_number = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			sb, err := For(tt.dialect)
			require.NoError(t, err)

			query, args, err := sb.Select("id").
				From("bookings").
				Where(squirrel.Eq{"document_number": "1234567890"}).
				ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []interface{}{"1234567890"}, args)
		})
	}
}

func TestFor_UnknownDialect(t *testing.T) {
	_, err := For("oracle")
	assert.Error(t, err)
}
