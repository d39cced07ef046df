package lottery

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const latestResultJSON = `{"data":{"list":[{"ltEpsd":1137,"ltRflYmd":"20240914","tm1WnNo":4,"tm2WnNo":9,"tm3WnNo":12,"tm4WnNo":15,"tm5WnNo":33,"tm6WnNo":45,"bnsWnNo":26}]}}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient()
	require.NoError(t, err)
	c.ResultURL = srv.URL
	return c
}

func TestGetLatestResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, latestResultJSON)
	})

	result, err := c.GetLatestResult(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1137", result.Round)
	assert.Equal(t, "2024-09-14", result.DrawDate)
	assert.Equal(t, []int{4, 9, 12, 15, 33, 45}, result.Numbers)
	assert.Equal(t, 26, result.BonusNumber)
}

func TestGetLatestResultErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}},
		{"empty list", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data":{"list":[]}}`)
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "점검 중입니다")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, tc.handler)
			_, err := c.GetLatestResult(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestCheckWinning(t *testing.T) {
	result := &LottoResult{Round: "1137", Numbers: []int{4, 9, 12, 15, 33, 45}, BonusNumber: 26}

	cases := []struct {
		name      string
		numbers   []int
		wantRank  int
		wantMatch int
		wantBonus bool
	}{
		{"first", []int{4, 9, 12, 15, 33, 45}, 1, 6, false},
		{"second", []int{4, 9, 12, 15, 33, 26}, 2, 5, true},
		{"third", []int{4, 9, 12, 15, 33, 1}, 3, 5, false},
		{"fourth", []int{4, 9, 12, 15, 1, 2}, 4, 4, false},
		{"fifth", []int{4, 9, 12, 1, 2, 3}, 5, 3, false},
		{"miss with bonus", []int{4, 26, 1, 2, 3, 5}, 0, 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rank, match, bonus := CheckWinning(tc.numbers, result)
			assert.Equal(t, tc.wantRank, rank)
			assert.Equal(t, tc.wantMatch, match)
			assert.Equal(t, tc.wantBonus, bonus)
		})
	}
}

func TestFormatWinningMessage(t *testing.T) {
	result := &LottoResult{Round: "1137", DrawDate: "2024-09-14", Numbers: []int{4, 9, 12, 15, 33, 45}, BonusNumber: 26}

	assert.Contains(t, FormatWinningMessage(result, nil), "저장된 추천 번호가 없습니다")

	other := &GenerationHistory{Round: "1136", Games: []GeneratedGame{{Type: "A", Numbers: []int{1, 2, 3, 4, 5, 6}}}}
	assert.Contains(t, FormatWinningMessage(result, other), "1136회")

	history := &GenerationHistory{
		Round: "1137",
		Games: []GeneratedGame{
			{Type: "A", Numbers: []int{4, 9, 12, 1, 2, 3}},
			{Type: "B", Numbers: []int{1, 2, 3, 5, 6, 7}},
		},
	}
	msg := FormatWinningMessage(result, history)
	assert.Contains(t, msg, "로또 1137회")
	assert.Contains(t, msg, "5등")
	assert.Contains(t, msg, "✅<b>04</b>")
	assert.Contains(t, msg, "총 1게임 당첨")
}
