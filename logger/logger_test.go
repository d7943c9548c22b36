package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	Info("수집 시작 %d", 1)
	Error("오류 %s", "테스트")
	Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "수집 시작 1")
	assert.Contains(t, string(data), "오류 테스트")
}

func TestFatalClosesLogFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	code := -1
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = os.Exit })

	Fatal("❌ 결과 저장 실패: %s", "디스크 가득 참")

	assert.Equal(t, 1, code)
	assert.Nil(t, logFile)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "결과 저장 실패: 디스크 가득 참")
}
