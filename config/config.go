package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"dhspitto/speetto"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// DefaultTargetURL은 스피또 캐러셀이 있는 동행복권 메인 페이지입니다
const DefaultTargetURL = "https://dhlottery.co.kr/common.do?method=main"

// Duration은 JSON에서 "10s" 같은 문자열로 쓰는 시간 값입니다
type Duration struct {
	time.Duration
}

// UnmarshalJSON은 "10s" 형식 또는 초 단위 숫자를 읽습니다
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("시간 형식 오류 %q: %w", s, err)
		}
		d.Duration = v
		return nil
	}

	var sec float64
	if err := json.Unmarshal(b, &sec); err != nil {
		return fmt.Errorf("시간 형식 오류: %s", string(b))
	}
	d.Duration = time.Duration(sec * float64(time.Second))
	return nil
}

// MarshalJSON은 시간 값을 문자열로 씁니다
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Config는 전체 설정을 담는 구조체입니다
type Config struct {
	TargetURL       string   `json:"targetUrl"`
	OutputDir       string   `json:"outputDir"`
	Families        []string `json:"families"`
	PageLoadTimeout Duration `json:"pageLoadTimeout"`
	SettleDelay     Duration `json:"settleDelay"`
	PageDelay       Duration `json:"pageDelay"`
	MaxPages        int      `json:"maxPages"`

	Headless       bool   `json:"headless"`
	ChromePath     string `json:"chromePath,omitempty"`
	InstallBrowser bool   `json:"installBrowser"`

	// 등수("1"~"3")별 당첨금 문구. 비어 있으면 기본 표를 사용합니다.
	PrizeTiers map[string][]string `json:"prizeTiers,omitempty"`

	Schedule         string `json:"schedule"`
	TelegramBotToken string `json:"telegramBotToken,omitempty"`
	TelegramChatID   string `json:"telegramChatId,omitempty"`
}

// Default는 기본 설정을 반환합니다
func Default() Config {
	return Config{
		TargetURL:       DefaultTargetURL,
		OutputDir:       "spitto_results",
		Families:        append([]string(nil), speetto.DefaultFamilies...),
		PageLoadTimeout: Duration{10 * time.Second},
		SettleDelay:     Duration{3 * time.Second},
		PageDelay:       Duration{2 * time.Second},
		MaxPages:        speetto.DefaultMaxPages,
		Headless:        true,
		InstallBrowser:  true,
		Schedule:        "0 10 * * *",
	}
}

// Load는 기본값 → 설정 파일 → .env → 환경변수 순서로 설정을 덮어씁니다.
// 설정 파일과 .env는 없어도 됩니다.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
			log.Printf("설정 파일 없음 (%s), 기본값 사용\n", path)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf(".env 파일 로드 실패: %w", err)
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromFile은 파일의 값으로 설정을 덮어씁니다
func (c *Config) LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("설정 파일 읽기 실패: %w", err)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("설정 파일 파싱 실패: %w", err)
	}
	return nil
}

// LoadFromEnv는 설정된 환경변수로 값을 덮어씁니다
func (c *Config) LoadFromEnv() error {
	setString(&c.TargetURL, "SPITTO_URL")
	setString(&c.OutputDir, "SPITTO_OUTPUT_DIR")
	setString(&c.ChromePath, "SPITTO_CHROME_PATH")
	setString(&c.Schedule, "SPITTO_SCHEDULE")
	setString(&c.TelegramBotToken, "TELEGRAM_BOT_TOKEN")
	setString(&c.TelegramChatID, "TELEGRAM_CHAT_ID")

	if v := os.Getenv("SPITTO_FAMILIES"); v != "" {
		c.Families = strings.Split(v, ",")
	}

	if v := os.Getenv("SPITTO_MAX_PAGES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SPITTO_MAX_PAGES 값 오류: %w", err)
		}
		c.MaxPages = n
	}

	if v := os.Getenv("SPITTO_PAGE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SPITTO_PAGE_TIMEOUT 값 오류: %w", err)
		}
		c.PageLoadTimeout = Duration{d}
	}

	if v := os.Getenv("SPITTO_INSTALL_BROWSER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SPITTO_INSTALL_BROWSER 값 오류: %w", err)
		}
		c.InstallBrowser = b
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate는 설정 값을 검증합니다
func (c *Config) Validate() error {
	if c.TargetURL == "" {
		return fmt.Errorf("대상 URL이 비어 있습니다")
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("최대 페이지 수는 1 이상이어야 합니다: %d", c.MaxPages)
	}
	if c.PageLoadTimeout.Duration <= 0 {
		return fmt.Errorf("페이지 로드 대기 시간은 0보다 커야 합니다")
	}
	if c.SettleDelay.Duration < 0 || c.PageDelay.Duration < 0 {
		return fmt.Errorf("대기 시간은 음수일 수 없습니다")
	}

	for i, f := range c.Families {
		f = strings.TrimSpace(f)
		if !slices.Contains(speetto.DefaultFamilies, f) {
			return fmt.Errorf("게임 종류 %d: 지원하지 않는 종류입니다 (%q, 가능: %s)",
				i+1, f, strings.Join(speetto.DefaultFamilies, ", "))
		}
		c.Families[i] = f
	}
	if _, err := speetto.NewTitleMatcher(c.Families); err != nil {
		return err
	}

	if _, err := c.TierTable(); err != nil {
		return err
	}
	return nil
}

// TierTable은 설정된 당첨금 표를 반환합니다. 설정이 없으면 기본 표입니다.
func (c *Config) TierTable() (speetto.TierTable, error) {
	if len(c.PrizeTiers) == 0 {
		return speetto.DefaultTierTable, nil
	}
	return speetto.NewTierTable(c.PrizeTiers)
}

// TelegramEnabled는 텔레그램 알림 설정 여부를 반환합니다
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

// Print는 설정 정보를 출력합니다 (보안상 토큰은 마스킹)
func (c *Config) Print() {
	log.Println("=== 설정 정보 ===")
	log.Printf("  대상 페이지: %s\n", c.TargetURL)
	log.Printf("  결과 디렉토리: %s\n", c.OutputDir)
	log.Printf("  게임 종류: %s\n", strings.Join(c.Families, ", "))
	log.Printf("  대기 시간: 로드 %s / 안정화 %s / 화면 전환 %s\n",
		c.PageLoadTimeout, c.SettleDelay, c.PageDelay)
	log.Printf("  최대 페이지 수: %d\n", c.MaxPages)

	if c.ChromePath != "" {
		log.Printf("  브라우저 경로: %s\n", c.ChromePath)
	}

	if c.TelegramEnabled() {
		masked := strings.Repeat("*", len(c.TelegramBotToken))
		log.Printf("  텔레그램 알림: 활성화 (%s)\n", masked)
	} else {
		log.Println("  텔레그램 알림: 비활성화")
	}
}
