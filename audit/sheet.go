// Package audit appends one immutable row per successful save to a tabular
// Excel workbook. The workbook is write-only from this system's perspective.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/straddleshift/configapi/api/strategy"
	"github.com/xuri/excelize/v2"
)

const timestampFormat = "2006-01-02 15:04:05"

// Header is the fixed audit column order. The first data row is only ever
// written after this header exists.
var Header = []string{
	"SavedAt_IST", "SavedAt_UTC",
	"ClientID", "StrategyID",
	"Start", "Pause", "Stop",
	"CallEntry", "PutEntry", "ShiftHedge", "FirstEntry",
	"ShiftPoints", "HedgePoints", "OTMPoints",
	"Symbol", "ExpiryNo", "OrderLot",
	"StartTime", "EndTime",
}

// Sheet is an append-only audit sink backed by one worksheet of an Excel
// workbook. The workbook file is shared across requests, so appends are
// serialized.
type Sheet struct {
	mu    sync.Mutex
	path  string
	sheet string
	ist   *time.Location
	now   func() time.Time
}

func NewSheet(path, sheetName string) (*Sheet, error) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return nil, fmt.Errorf("failed to load IST location: %v", err)
	}
	return &Sheet{
		path:  path,
		sheet: sheetName,
		ist:   ist,
		now:   time.Now,
	}, nil
}

// Append writes the next audit row for a successful save. Every value is
// written as text.
func (s *Sheet) Append(clientID string, config *strategy.ConfigModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fx, err := s.open()
	if err != nil {
		return err
	}
	defer fx.Close()

	next, err := s.ensureHeader(fx)
	if err != nil {
		return err
	}

	now := s.now()
	row := []interface{}{
		now.In(s.ist).Format(timestampFormat),
		now.UTC().Format(timestampFormat),
		clientID,
		config.StrategyID,
		strconv.FormatBool(config.Start),
		strconv.FormatBool(config.Pause),
		strconv.FormatBool(config.Stop),
		strconv.FormatBool(config.CallEntry),
		strconv.FormatBool(config.PutEntry),
		strconv.FormatBool(config.ShiftHedge),
		strconv.FormatBool(config.FirstEntry),
		strconv.Itoa(config.ShiftPoints),
		strconv.Itoa(config.HedgePoints),
		strconv.Itoa(config.OTMPoints),
		config.Symbol,
		strconv.Itoa(config.ExpiryNo),
		strconv.Itoa(config.OrderLot),
		config.StartTime,
		config.EndTime,
	}
	if err := fx.SetSheetRow(s.sheet, fmt.Sprintf("A%d", next), &row); err != nil {
		return fmt.Errorf("failed to append audit row: %v", err)
	}

	return fx.SaveAs(s.path)
}

// EnsureHeader makes sure the workbook, worksheet and header row exist. It
// is idempotent and safe to run before the first save of the day.
func (s *Sheet) EnsureHeader() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fx, err := s.open()
	if err != nil {
		return err
	}
	defer fx.Close()

	if _, err := s.ensureHeader(fx); err != nil {
		return err
	}
	return fx.SaveAs(s.path)
}

// open loads the workbook, creating it (and its parent directory) when it
// does not exist yet, and makes sure the audit worksheet is present.
func (s *Sheet) open() (*excelize.File, error) {
	var fx *excelize.File

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if dir := filepath.Dir(s.path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create audit directory %s: %v", dir, err)
			}
		}
		fx = excelize.NewFile()
		if err := fx.SetSheetName(fx.GetSheetName(0), s.sheet); err != nil {
			fx.Close()
			return nil, fmt.Errorf("failed to name audit sheet: %v", err)
		}
		return fx, nil
	}

	fx, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit workbook %s: %v", s.path, err)
	}

	idx, err := fx.GetSheetIndex(s.sheet)
	if err != nil {
		fx.Close()
		return nil, err
	}
	if idx == -1 {
		if _, err := fx.NewSheet(s.sheet); err != nil {
			fx.Close()
			return nil, fmt.Errorf("failed to create audit sheet: %v", err)
		}
	}
	return fx, nil
}

// ensureHeader writes the header row if A1 is still empty and returns the
// 1-based row number the next data row should land on.
func (s *Sheet) ensureHeader(fx *excelize.File) (int, error) {
	a1, err := fx.GetCellValue(s.sheet, "A1")
	if err != nil {
		return 0, err
	}
	if a1 == "" {
		header := make([]interface{}, len(Header))
		for i, h := range Header {
			header[i] = h
		}
		if err := fx.SetSheetRow(s.sheet, "A1", &header); err != nil {
			return 0, fmt.Errorf("failed to write audit header: %v", err)
		}
		return 2, nil
	}

	rows, err := fx.GetRows(s.sheet)
	if err != nil {
		return 0, err
	}
	return len(rows) + 1, nil
}
