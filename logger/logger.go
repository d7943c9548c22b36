package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	logFile *os.File

	// exit는 테스트에서 교체할 수 있도록 변수로 둡니다
	exit = os.Exit
)

// Init는 로거를 초기화하고 dir 아래에 날짜별 로그 파일을 생성합니다
func Init(dir string) error {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	// 로그 파일명: logs/spitto_2026-10-19.log
	logFileName := fmt.Sprintf("spitto_%s.log", time.Now().Format("2006-01-02"))
	logFilePath := filepath.Join(dir, logFileName)

	var err error
	logFile, err = os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("로그 파일 생성 실패: %w", err)
	}

	// 콘솔과 파일 둘 다에 출력
	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
		DisableColors:   true,
	})

	log.Printf("✅ 로그 파일 초기화 완료: %s\n", logFilePath)
	return nil
}

// Close는 로그 파일을 닫고 출력을 콘솔로 되돌립니다
func Close() {
	if logFile != nil {
		log.SetOutput(os.Stdout)
		logFile.Close()
		logFile = nil
	}
}

// Info는 정보 로그를 출력합니다
func Info(format string, v ...interface{}) {
	log.Infof(format, v...)
}

// Error는 에러 로그를 출력합니다
func Error(format string, v ...interface{}) {
	log.Errorf(format, v...)
}

// Warning은 경고 로그를 출력합니다
func Warning(format string, v ...interface{}) {
	log.Warnf(format, v...)
}

// Debug는 디버그 로그를 출력합니다
func Debug(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

// Fatal은 에러 로그를 남기고 로그 파일을 닫은 뒤 프로그램을 종료합니다
func Fatal(format string, v ...interface{}) {
	log.Errorf(format, v...)
	Close()
	exit(1)
}
