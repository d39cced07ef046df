package display

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"lottodisplay/logger"
)

const sampleResponse = `{"numbers": [[1,2,3,4,5,6],[7,8,9,10,11,12],[13,14,15,16,17,18],[19,20,21,22,23,24],[25,26,27,28,29,30]]}`

// wednesday 2026-10-14
var wednesday = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	restore := logger.Use(zap.New(core).Sugar())
	t.Cleanup(restore)
	return logs
}

func newBackend(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func prefilledPage(t *testing.T) *Page {
	t.Helper()
	page, err := NewDefaultPage()
	require.NoError(t, err)
	for i := 1; i <= GamesPerPage; i++ {
		require.NoError(t, page.RenderGame(fmt.Sprintf("game%d", i), "old", []int{i}))
	}
	return page
}

func slotSnapshot(t *testing.T, page *Page, cfg Config) []string {
	t.Helper()
	var out []string
	for _, id := range cfg.Slots {
		inner, err := page.SlotHTML(id)
		require.NoError(t, err)
		out = append(out, inner)
	}
	return out
}

func TestRunRendersAllGames(t *testing.T) {
	var gotPath, gotMethod string
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleResponse)
	})

	cfg := DefaultConfig()
	cfg.Origin = srv.URL
	page := prefilledPage(t)

	err := Run(context.Background(), cfg, page, NewFetcher(cfg.Origin, srv.Client()), wednesday)
	require.NoError(t, err)

	assert.Equal(t, "/generate-lotto", gotPath)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "1137회차 (2026-10-17)", page.Text("game-info"))

	game1 := page.Balls("game1")
	require.Len(t, game1, 6)
	for i, ball := range game1 {
		assert.True(t, strings.HasSuffix(ball.Src, fmt.Sprintf("/%d.png", i+1)), ball.Src)
		assert.Equal(t, fmt.Sprintf("%d번", i+1), ball.Alt)
		assert.Equal(t, BallClass, ball.Class)
	}

	game3 := page.Balls("game3")
	require.Len(t, game3, 6)
	assert.True(t, strings.HasSuffix(game3[0].Src, "13.png"))
	assert.True(t, strings.HasSuffix(game3[5].Src, "18.png"))

	for _, id := range cfg.Slots {
		assert.Len(t, page.Balls(id), 6, id)
	}
}

func TestInitFetchesFromOrigin(t *testing.T) {
	observeLogs(t)
	var gotPath string
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleResponse)
	})

	kst := time.FixedZone("KST", 9*60*60)
	cfg := DefaultConfig()
	cfg.Origin = srv.URL + "/"
	cfg.Location = kst
	page := prefilledPage(t)

	before := InfoText(cfg.RoundLabel, NextDrawDate(time.Now().In(kst)))
	require.NoError(t, Init(context.Background(), cfg, page, srv.Client()))
	after := InfoText(cfg.RoundLabel, NextDrawDate(time.Now().In(kst)))

	assert.Equal(t, "/generate-lotto", gotPath)
	assert.Contains(t, []string{before, after}, page.Text("game-info"))
	for _, id := range cfg.Slots {
		assert.Len(t, page.Balls(id), 6, id)
	}
}

func TestInitBackendErrorLeavesSlotsUntouched(t *testing.T) {
	logs := observeLogs(t)
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	cfg := DefaultConfig()
	cfg.Origin = srv.URL
	page := prefilledPage(t)
	before := slotSnapshot(t, page, cfg)

	err := Init(context.Background(), cfg, page, srv.Client())
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, before, slotSnapshot(t, page, cfg))
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestRunFailuresLeaveSlotsUntouched(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "http 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			check: func(t *testing.T, err error) {
				var se *StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, 500, se.Code)
			},
		},
		{
			name: "body is not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "<html>oops</html>")
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMalformedResponse)
			},
		},
		{
			name: "numbers field missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"games": []}`)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMalformedResponse)
			},
		},
		{
			name: "only four games",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"numbers": [[1],[2],[3],[4]]}`)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMalformedResponse)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logs := observeLogs(t)
			srv := newBackend(t, tc.handler)

			cfg := DefaultConfig()
			page := prefilledPage(t)
			before := slotSnapshot(t, page, cfg)

			err := Run(context.Background(), cfg, page, NewFetcher(srv.URL, srv.Client()), wednesday)
			require.Error(t, err)
			tc.check(t, err)

			assert.Equal(t, before, slotSnapshot(t, page, cfg))
			assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
		})
	}
}

func TestRunHTTP500IsLogged(t *testing.T) {
	logs := observeLogs(t)
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	cfg := DefaultConfig()
	page := prefilledPage(t)
	_ = Run(context.Background(), cfg, page, NewFetcher(srv.URL, srv.Client()), wednesday)

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "500")
}

func TestRunNetworkError(t *testing.T) {
	logs := observeLogs(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	origin := srv.URL
	srv.Close()

	cfg := DefaultConfig()
	page := prefilledPage(t)
	before := slotSnapshot(t, page, cfg)

	err := Run(context.Background(), cfg, page, NewFetcher(origin, nil), wednesday)
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se))
	assert.NotErrorIs(t, err, ErrMalformedResponse)
	assert.Equal(t, before, slotSnapshot(t, page, cfg))
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestRunSourceWithWrongGameCount(t *testing.T) {
	observeLogs(t)
	src := SourceFunc(func(ctx context.Context) ([][]int, error) {
		return [][]int{{1, 2, 3}}, nil
	})

	cfg := DefaultConfig()
	page := prefilledPage(t)
	before := slotSnapshot(t, page, cfg)

	err := Run(context.Background(), cfg, page, src, wednesday)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Equal(t, before, slotSnapshot(t, page, cfg))
}

func TestRunMissingSlotRendersNothing(t *testing.T) {
	observeLogs(t)
	page, err := LoadPage(strings.NewReader(`<h1 id="game-info"></h1><div id="game1"></div>`))
	require.NoError(t, err)

	called := false
	src := SourceFunc(func(ctx context.Context) ([][]int, error) {
		called = true
		return nil, nil
	})

	err = Run(context.Background(), DefaultConfig(), page, src, wednesday)
	assert.Error(t, err)
	assert.False(t, called)
	assert.Empty(t, page.Balls("game1"))
}

func TestRunRerenderDoesNotAccumulate(t *testing.T) {
	observeLogs(t)
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleResponse)
	})

	cfg := DefaultConfig()
	page, err := NewDefaultPage()
	require.NoError(t, err)

	fetcher := NewFetcher(srv.URL+"/", srv.Client())
	require.NoError(t, Run(context.Background(), cfg, page, fetcher, wednesday))
	require.NoError(t, Run(context.Background(), cfg, page, fetcher, wednesday))

	for _, id := range cfg.Slots {
		assert.Len(t, page.Balls(id), 6, id)
	}
}

func TestFetcherURL(t *testing.T) {
	assert.Equal(t, "http://localhost:5000/generate-lotto", NewFetcher("http://localhost:5000/", nil).URL())
}
