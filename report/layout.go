package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

// applyLayout은 열 너비, 서식, 인쇄 설정을 적용합니다
func applyLayout(f *excelize.File, rowCount int) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
		Border: thinBorder(),
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return fmt.Errorf("헤더 서식 생성 실패: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 11},
		Border: thinBorder(),
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("셀 서식 생성 실패: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(Columns))
	if err != nil {
		return err
	}

	// 열 너비와 서식
	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("열 너비 설정 실패: %w", err)
		}
	}
	if err := f.SetColStyle(SheetName, "A:"+lastCol, cellStyle); err != nil {
		return fmt.Errorf("열 서식 설정 실패: %w", err)
	}

	lastCell := fmt.Sprintf("%s%d", lastCol, rowCount+1)
	if err := f.SetCellStyle(SheetName, "A2", lastCell, cellStyle); err != nil {
		return fmt.Errorf("셀 서식 설정 실패: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("헤더 서식 설정 실패: %w", err)
	}

	// 행 높이
	if err := f.SetSheetProps(SheetName, &excelize.SheetPropsOptions{
		DefaultRowHeight: float64Ptr(defaultRowHeight),
		CustomHeight:     boolPtr(true),
		FitToPage:        boolPtr(true),
	}); err != nil {
		return fmt.Errorf("시트 속성 설정 실패: %w", err)
	}
	for row := 2; row <= rowCount+1; row++ {
		if err := f.SetRowHeight(SheetName, row, defaultRowHeight); err != nil {
			return fmt.Errorf("행 높이 설정 실패: %w", err)
		}
	}
	if err := f.SetRowHeight(SheetName, 1, headerRowHeight); err != nil {
		return fmt.Errorf("헤더 행 높이 설정 실패: %w", err)
	}

	// A4 가로, 한 페이지에 맞춤
	if err := f.SetPageLayout(SheetName, &excelize.PageLayoutOptions{
		Size:        intPtr(paperA4),
		Orientation: stringPtr("landscape"),
		FitToWidth:  intPtr(1),
		FitToHeight: intPtr(1),
	}); err != nil {
		return fmt.Errorf("페이지 설정 실패: %w", err)
	}

	if err := f.SetPageMargins(SheetName, &excelize.PageLayoutMarginsOptions{
		Left:   float64Ptr(pageMargin),
		Right:  float64Ptr(pageMargin),
		Top:    float64Ptr(pageMargin),
		Bottom: float64Ptr(pageMargin),
	}); err != nil {
		return fmt.Errorf("여백 설정 실패: %w", err)
	}

	// 인쇄 영역
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("'%s'!$A$1:$%s$%d", SheetName, lastCol, rowCount+1),
		Scope:    SheetName,
	}); err != nil {
		return fmt.Errorf("인쇄 영역 설정 실패: %w", err)
	}

	return nil
}

func intPtr(v int) *int             { return &v }
func boolPtr(v bool) *bool          { return &v }
func float64Ptr(v float64) *float64 { return &v }
func stringPtr(v string) *string    { return &v }
