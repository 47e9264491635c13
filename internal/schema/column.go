package schema

import (
	"strings"

	GORMSchema "gorm.io/gorm/schema"
)

// Column represents a gorm field
type Column struct {
	*GORMSchema.Field
}

func (c *Column) Type() string {
	return string(c.DataType)
}

func (c *Column) ColumnName() string {
	return c.DBName
}

func (c *Column) IsPrimaryKey() bool {
	return c.PrimaryKey
}

// Constraints lists the column's key and null constraints, e.g. "PK",
// "NOT NULL", "UNIQUE".
func (c *Column) Constraints() string {
	var parts []string
	if c.PrimaryKey {
		parts = append(parts, "PK")
	}
	if c.NotNull {
		parts = append(parts, "NOT NULL")
	}
	if c.Unique || isUniqueIndex(c.Field) {
		parts = append(parts, "UNIQUE")
	}
	return strings.Join(parts, ", ")
}

func isUniqueIndex(field *GORMSchema.Field) bool {
	_, ok := field.TagSettings["UNIQUEINDEX"]
	return ok
}
