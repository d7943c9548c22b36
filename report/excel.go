package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dhspitto/speetto"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	// SheetName은 결과 시트 이름입니다
	SheetName = "스피또 현황"

	DefaultDir    = "spitto_results"
	DefaultPrefix = "스피또"

	timestampLayout = "20060102_150405"
)

// Columns는 엑셀 열 제목입니다 (순서 고정)
var Columns = []string{
	"게임명", "회차", "기준일",
	"1등당첨금", "2등당첨금", "3등당첨금",
	"1등잔여매수", "2등잔여매수", "3등잔여매수",
	"판매점입고율",
}

// A4 가로 한 장에 맞춘 열 너비
var columnWidths = []float64{12, 8, 15, 12, 12, 12, 12, 12, 12, 12}

const (
	defaultRowHeight = 25
	headerRowHeight  = 30
	pageMargin       = 0.5
	paperA4          = 9
)

// Exporter는 수집 결과를 엑셀 파일로 저장합니다
type Exporter struct {
	Dir    string
	Prefix string
	Now    func() time.Time
}

// NewExporter는 dir에 파일을 쓰는 Exporter를 생성합니다
func NewExporter(dir string) *Exporter {
	if dir == "" {
		dir = DefaultDir
	}
	return &Exporter{
		Dir:    dir,
		Prefix: DefaultPrefix,
		Now:    time.Now,
	}
}

// FileName은 시각 t에 저장할 파일 이름을 반환합니다
func (e *Exporter) FileName(t time.Time) string {
	return fmt.Sprintf("%s_현황_%s.xlsx", e.Prefix, t.Format(timestampLayout))
}

// Export는 레코드를 스타일이 적용된 시트 하나로 저장하고 파일 경로를 반환합니다.
// 레코드가 없으면 아무것도 쓰지 않고 빈 경로를 반환합니다.
func (e *Exporter) Export(records []speetto.GameRecord) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("결과 디렉토리 생성 실패: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("⚠️  엑셀 파일 닫기 실패: %v\n", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return "", fmt.Errorf("시트 이름 설정 실패: %w", err)
	}

	if err := writeHeader(f); err != nil {
		return "", err
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		row := Row(rec)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return "", fmt.Errorf("%d행 쓰기 실패: %w", i+2, err)
		}
	}

	if err := applyLayout(f, len(records)); err != nil {
		return "", err
	}

	path := filepath.Join(e.Dir, e.FileName(e.Now()))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("엑셀 파일 저장 실패: %w", err)
	}

	log.Printf("결과가 저장되었습니다: %s\n", path)
	return path, nil
}

// Row는 레코드를 엑셀 한 행으로 변환합니다. 잔여 매수에는 "매",
// 입고율에는 "%"를 붙입니다.
func Row(rec speetto.GameRecord) []interface{} {
	return []interface{}{
		rec.Name(),
		rec.Round,
		rec.BaseDate,
		rec.Prize[0],
		rec.Prize[1],
		rec.Prize[2],
		rec.Remaining[0] + "매",
		rec.Remaining[1] + "매",
		rec.Remaining[2] + "매",
		rec.RestockRate + "%",
	}
}

func writeHeader(f *excelize.File) error {
	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("헤더 쓰기 실패: %w", err)
	}
	return nil
}
