package lottery

const (
	MinNumber      = 1  // 가장 작은 번호
	MaxNumber      = 45 // 가장 큰 번호
	NumbersPerGame = 6  // 게임당 번호 개수
	GamesPerDraw   = 5  // 한 번에 생성하는 게임 수
	HistoryWindow  = 60 // 번호 생성에 쓰는 최근 회차 수
)

// GenerateResponse는 /generate-lotto 응답 구조체입니다
type GenerateResponse struct {
	Numbers [][]int `json:"numbers"`
}
