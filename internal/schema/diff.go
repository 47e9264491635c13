package schema

import (
	"fmt"
	"sort"

	"gorm.io/gorm"
)

// TableDiff represents the differences between a model and its live table
type TableDiff struct {
	Table         string
	Missing       bool     // the table does not exist
	ColumnsToAdd  []string // described by the model, absent from the table
	ColumnsToDrop []string // present in the table, unknown to the model
}

// IsEmpty checks if a TableDiff is empty
func (d *TableDiff) IsEmpty() bool {
	return !d.Missing && len(d.ColumnsToAdd) == 0 && len(d.ColumnsToDrop) == 0
}

// Compare compares the tables of db with the provided models and returns
// the tables that differ, in model order.
func Compare(db *gorm.DB, models ...interface{}) ([]TableDiff, error) {
	tables, err := Describe(models...)
	if err != nil {
		return nil, err
	}

	migrator := db.Migrator()
	var diffs []TableDiff
	for _, table := range tables {
		diff := TableDiff{Table: table.TableName()}

		if !migrator.HasTable(table.TableName()) {
			diff.Missing = true
			diffs = append(diffs, diff)
			continue
		}

		columnTypes, err := migrator.ColumnTypes(table.TableName())
		if err != nil {
			return nil, fmt.Errorf("failed to get columns of %s: %w", table.TableName(), err)
		}
		live := make(map[string]bool, len(columnTypes))
		for _, col := range columnTypes {
			live[col.Name()] = true
		}

		for _, column := range table.TableColumns() {
			if !live[column.ColumnName()] {
				diff.ColumnsToAdd = append(diff.ColumnsToAdd, column.ColumnName())
			}
			delete(live, column.ColumnName())
		}
		for name := range live {
			diff.ColumnsToDrop = append(diff.ColumnsToDrop, name)
		}
		sort.Strings(diff.ColumnsToDrop)

		if !diff.IsEmpty() {
			diffs = append(diffs, diff)
		}
	}
	return diffs, nil
}
