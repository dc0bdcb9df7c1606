package excel

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"probcalc/domain/stats"
	"probcalc/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader loads numeric datasets from Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadColumn returns the numeric values under the header column, in row
// order. Blank cells are skipped; any other non-numeric cell is an error.
func (r *DataReader) ReadColumn(column string) (stats.Dataset, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.Newf(errors.CodeInvalidArgument, "%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	return extractColumn(rows, column)
}

// readExcelRows reads every row of the workbook's first sheet
func (r *DataReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.InvalidArgument("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", sheets[0])
	}
	log.Printf("[DataReader] %s read in %.2fms (%d rows)", sheets[0], float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return rows, nil
}

// readCSVRows reads every CSV record
func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV file")
	}
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return rows, nil
}

// extractColumn parses the cells under the named header
func extractColumn(rows [][]string, column string) (stats.Dataset, error) {
	if len(rows) < 2 {
		return nil, errors.InvalidArgument("file must have at least a header row and one data row")
	}

	index := -1
	for i, header := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(header), strings.TrimSpace(column)) {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, errors.Newf(errors.CodeInvalidArgument, "column %q not found", column)
	}

	data := make(stats.Dataset, 0, len(rows)-1)
	for rowNum, row := range rows[1:] {
		if index >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[index])
		if cell == "" {
			continue
		}
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			// rowNum+2: one for the header, one for 1-based spreadsheet rows
			return nil, errors.Newf(errors.CodeInvalidArgument, "row %d: %q is not numeric", rowNum+2, cell)
		}
		data = append(data, value)
	}

	return data, nil
}
