package schema

import (
	"sync"

	GORMSchema "gorm.io/gorm/schema"
)

// Table represents a gorm model
type Table struct {
	*GORMSchema.Schema
	Columns []*Column
}

func (t *Table) TableName() string {
	return t.Table
}

func (t *Table) TableColumns() []*Column {
	return t.Columns
}

// CreateTableFromModel parses a model into its table and stored columns.
// Relationship fields, which have no column of their own, are left out.
func CreateTableFromModel(model interface{}, cache *sync.Map) (*Table, error) {
	modelSchema, err := GORMSchema.Parse(model, cache, GORMSchema.NamingStrategy{})
	if err != nil {
		return nil, err
	}

	columns := make([]*Column, 0, len(modelSchema.Fields))
	for _, field := range modelSchema.Fields {
		if field.DBName == "" {
			continue
		}
		columns = append(columns, &Column{Field: field})
	}

	return &Table{Schema: modelSchema, Columns: columns}, nil
}

// Describe parses every model, keeping the order they were given in.
func Describe(models ...interface{}) ([]*Table, error) {
	cache := &sync.Map{}
	tables := make([]*Table, 0, len(models))
	for _, model := range models {
		table, err := CreateTableFromModel(model, cache)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}
