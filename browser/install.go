package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	log "github.com/sirupsen/logrus"
)

// ResolveExecPath는 사용할 브라우저 실행 파일 경로를 결정합니다.
// 경로가 지정되어 있으면 그대로 쓰고, install이 꺼져 있으면 빈 경로를
// 반환해 chromedp가 시스템 브라우저를 찾도록 합니다.
// 그 외에는 playwright로 Chromium을 설치하고 그 경로를 반환합니다.
func ResolveExecPath(install bool, path string) (string, error) {
	if path != "" || !install {
		return path, nil
	}

	log.Println("브라우저 설치 확인 중...")

	err := playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
	})
	if err != nil {
		return "", fmt.Errorf("브라우저 설치 실패: %w", err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return "", fmt.Errorf("playwright 실행 실패: %w", err)
	}
	defer pw.Stop()

	execPath := pw.Chromium.ExecutablePath()
	if execPath == "" {
		return "", fmt.Errorf("Chromium 실행 파일 경로를 찾을 수 없습니다")
	}

	log.Printf("   → 사용할 브라우저: %s\n", execPath)
	return execPath, nil
}
