package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"lottodisplay/logger"
)

// AutoRoundLabel을 회차 라벨로 쓰면 추첨일로 회차를 계산합니다
const AutoRoundLabel = "auto"

// Config는 전체 설정을 담는 구조체입니다
type Config struct {
	Port             string   `json:"port"`
	Origin           string   `json:"origin"`
	StaticDir        string   `json:"staticDir"`
	AssetBase        string   `json:"assetBase"`
	RoundLabel       string   `json:"roundLabel"`
	HistoryFile      string   `json:"historyFile"`
	GenerationFile   string   `json:"generationFile"`
	AllowOrigins     []string `json:"allowOrigins,omitempty"`
	TelegramBotToken string   `json:"telegramBotToken,omitempty"`
	TelegramChatID   string   `json:"telegramChatId,omitempty"`
}

// Default는 기본 설정을 반환합니다
func Default() Config {
	return Config{
		Port:           "5000",
		Origin:         "http://localhost:5000",
		StaticDir:      "static",
		AssetBase:      "static/image/numbers",
		RoundLabel:     "1137회차",
		HistoryFile:    "lotto_numbers.txt",
		GenerationFile: "logs/last_generation.json",
		AllowOrigins:   []string{"*"},
	}
}

// Load는 기본값 → config.json → 환경변수(.env 포함) 순서로 설정을 로드합니다
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info(".env 파일이 없습니다. 환경변수를 사용합니다")
	}

	cfg := Default()

	if err := LoadFromFile(&cfg, "config.json"); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
		logger.Info("config.json 파일이 없습니다. 기본 설정을 사용합니다")
	}

	LoadFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnv는 설정된 환경변수로 값을 덮어씁니다
func LoadFromEnv(cfg *Config) {
	setString := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	setString(&cfg.Port, "PORT")
	setString(&cfg.Origin, "LOTTO_ORIGIN")
	setString(&cfg.StaticDir, "LOTTO_STATIC_DIR")
	setString(&cfg.AssetBase, "LOTTO_ASSET_BASE")
	setString(&cfg.RoundLabel, "LOTTO_ROUND_LABEL")
	setString(&cfg.HistoryFile, "LOTTO_HISTORY_FILE")
	setString(&cfg.GenerationFile, "LOTTO_GENERATION_FILE")
	setString(&cfg.TelegramBotToken, "TELEGRAM_BOT_TOKEN")
	setString(&cfg.TelegramChatID, "TELEGRAM_CHAT_ID")

	if v := os.Getenv("LOTTO_ALLOW_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	}
}

// LoadFromFile은 파일의 값으로 설정을 덮어씁니다
func LoadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("설정 파일 읽기 실패: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("설정 파일 파싱 실패: %w", err)
	}

	return nil
}

// Validate는 필수 값을 확인합니다
func (c *Config) Validate() error {
	switch {
	case c.Port == "":
		return fmt.Errorf("포트가 설정되지 않았습니다")
	case c.AssetBase == "":
		return fmt.Errorf("번호 이미지 경로가 설정되지 않았습니다")
	case c.RoundLabel == "":
		return fmt.Errorf("회차 라벨이 설정되지 않았습니다")
	case c.HistoryFile == "":
		return fmt.Errorf("당첨번호 파일이 설정되지 않았습니다")
	}
	return nil
}

// TelegramEnabled는 텔레그램 설정이 모두 있는지 확인합니다
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

// Print는 설정 정보를 출력합니다 (보안상 토큰은 마스킹)
func (c *Config) Print() {
	logger.Info("=== 설정 정보 ===")
	logger.Info("  포트: %s", c.Port)
	logger.Info("  오리진: %s", c.Origin)
	logger.Info("  번호 이미지: %s", c.AssetBase)
	logger.Info("  회차 라벨: %s", c.RoundLabel)
	logger.Info("  당첨번호 파일: %s", c.HistoryFile)

	if c.TelegramEnabled() {
		logger.Info("  텔레그램 알림: 활성화 (%s)", mask(c.TelegramBotToken))
	} else {
		logger.Info("  텔레그램 알림: 비활성화")
	}
}

func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-4)
}
