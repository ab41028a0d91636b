package checks

import (
	"fmt"
	"reflect"
	"strings"

	"craft-planner/core/database"
	"craft-planner/core/session"

	"gorm.io/gorm"
)

// Models are the tables the server owns. Each must implement TableName.
var Models = []any{session.Record{}}

// ServerReport strictly types the result of a server integrity check.
type ServerReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckServerIntegrity verifies the database schema using the GORM models as the source of truth.
func CheckServerIntegrity(db *gorm.DB) (*ServerReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &ServerReport{
		Driver:  db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
		Matched: true,
	}

	for _, model := range Models {
		if err := checkModel(db, model, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func checkModel(db *gorm.DB, model any, report *ServerReport) error {
	val := reflect.TypeOf(model)
	tabler, ok := reflect.New(val).Interface().(interface{ TableName() string })
	if !ok {
		return fmt.Errorf("model %s does not implement TableName", val.Name())
	}
	tableName := tabler.TableName()

	actualCols, err := database.GetTableColumns(db, tableName)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
		report.Matched = false
		return nil
	}
	if len(actualCols) == 0 {
		report.Errors = append(report.Errors, fmt.Sprintf("Table %s does not exist", tableName))
		report.Matched = false
		return nil
	}

	actualMap := make(map[string]database.ColumnInfo)
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	tblReport := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}
	for i := 0; i < val.NumField(); i++ {
		gormTag := val.Field(i).Tag.Get("gorm")
		colName := parseGormColumn(gormTag)
		if colName == "" {
			continue
		}

		actCol, exists := actualMap[colName]
		if !exists {
			tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
			tblReport.Status = "error"
			report.Matched = false
			continue
		}

		// Only columns with an explicit type are compared, and loosely: varchar(36) matches varchar(36) character set ...
		expType := strings.ToLower(parseGormType(gormTag))
		if expType != "" && !strings.Contains(actCol.Type, expType) {
			tblReport.TypeMismatches = append(tblReport.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type))
			tblReport.Status = "error"
			report.Matched = false
		}
	}

	report.Tables[tableName] = tblReport
	return nil
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}

func parseGormType(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "type:") {
			return strings.TrimPrefix(p, "type:")
		}
	}
	return ""
}
