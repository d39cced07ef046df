package lottery

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"
)

// DefaultResultURL은 동행복권 최근 당첨번호 API 주소입니다
const DefaultResultURL = "https://www.dhlottery.co.kr/lt645/selectPstLt645Info.do"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client는 동행복권 조회용 HTTP 클라이언트입니다
type Client struct {
	httpClient *http.Client
	ResultURL  string
}

// NewClient는 쿠키 저장소와 30초 타임아웃을 가진 클라이언트를 생성합니다
func NewClient() (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
	if err != nil {
		return nil, fmt.Errorf("쿠키 저장소 생성 실패: %w", err)
	}

	httpClient := &http.Client{
		Jar:     jar,
		Timeout: 30 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("리다이렉트가 너무 많습니다")
			}
			return nil
		},
	}

	return &Client{
		httpClient: httpClient,
		ResultURL:  DefaultResultURL,
	}, nil
}

// GetHTTPClient는 HTTP 클라이언트를 반환합니다
func (c *Client) GetHTTPClient() *http.Client {
	return c.httpClient
}
