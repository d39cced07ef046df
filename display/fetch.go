package display

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// GeneratePath는 번호 생성 엔드포인트 경로입니다
const GeneratePath = "/generate-lotto"

// ErrMalformedResponse는 응답 본문이 {"numbers": [[...] x5]} 형태가 아닐 때 반환됩니다
var ErrMalformedResponse = errors.New("응답 형식 오류")

// StatusError는 2xx가 아닌 HTTP 응답입니다
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP 오류 (상태: %d)", e.Code)
}

// Source는 5게임 분량의 번호를 제공합니다
type Source interface {
	Fetch(ctx context.Context) ([][]int, error)
}

// SourceFunc는 함수를 Source로 사용하게 해줍니다
type SourceFunc func(ctx context.Context) ([][]int, error)

// Fetch는 f(ctx)를 호출합니다
func (f SourceFunc) Fetch(ctx context.Context) ([][]int, error) {
	return f(ctx)
}

// Fetcher는 {origin}/generate-lotto 에서 번호를 가져옵니다
type Fetcher struct {
	origin string
	client *http.Client
}

// NewFetcher는 Fetcher를 생성합니다. client가 nil이면 30초 타임아웃 클라이언트를 사용합니다
func NewFetcher(origin string, client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{
		origin: strings.TrimRight(origin, "/"),
		client: client,
	}
}

// URL은 요청 대상 주소를 반환합니다
func (f *Fetcher) URL() string {
	return f.origin + GeneratePath
}

// Fetch는 GET 요청을 보내고 numbers 필드를 파싱합니다
func (f *Fetcher) Fetch(ctx context.Context) ([][]int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("번호 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var body struct {
		Numbers *[][]int `json:"numbers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: JSON 파싱 실패: %v", ErrMalformedResponse, err)
	}

	if body.Numbers == nil {
		return nil, fmt.Errorf("%w: numbers 필드가 없습니다", ErrMalformedResponse)
	}

	games := *body.Numbers
	if err := checkGames(games); err != nil {
		return nil, err
	}

	return games, nil
}

func checkGames(games [][]int) error {
	if len(games) != GamesPerPage {
		return fmt.Errorf("%w: 게임 수 %d (기대값 %d)", ErrMalformedResponse, len(games), GamesPerPage)
	}
	return nil
}
