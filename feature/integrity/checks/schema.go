package checks

import (
	"fmt"
	"reflect"
	"strings"

	"metadata-bridge/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the catalog models with the live schema.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport describes one table.
type TableReport struct {
	MissingTable   bool     `json:"missing_table"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

type tabler interface {
	TableName() string
}

// CheckSchema verifies the database schema using the given gorm models as the
// source of truth. Only columns with an explicit type tag are type-checked.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models {
		t := reflect.TypeOf(model)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		tbl, ok := reflect.New(t).Interface().(tabler)
		if !ok {
			return nil, fmt.Errorf("model %s does not implement TableName", t.Name())
		}
		tableName := tbl.TableName()

		actual, err := database.GetTableColumns(db, tableName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		tr := compareTable(t, actual)
		if tr.Status != "ok" {
			report.Matched = false
		}
		report.Tables[tableName] = tr
	}

	return report, nil
}

func compareTable(t reflect.Type, actual []database.ColumnInfo) TableReport {
	tr := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	// SQLite reports a missing table as no columns.
	if len(actual) == 0 {
		tr.MissingTable = true
		tr.Status = "error"
		return tr
	}

	byName := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		byName[col.Field] = col
	}

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("gorm")
		col := gormTagValue(tag, "column")
		if col == "" {
			continue
		}

		act, ok := byName[col]
		if !ok {
			tr.MissingColumns = append(tr.MissingColumns, col)
			tr.Status = "error"
			continue
		}

		expType := strings.ToLower(gormTagValue(tag, "type"))
		if expType != "" && !strings.Contains(act.Type, expType) {
			tr.TypeMismatches = append(tr.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", col, expType, act.Type))
			tr.Status = "error"
		}
	}

	return tr
}

// gormTagValue returns the value of key in a gorm struct tag.
func gormTagValue(tag, key string) string {
	for _, part := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(part, key+":"); ok {
			return v
		}
	}
	return ""
}
