package cmd

import (
	"net/http/httptest"
	"strings"
	"testing"

	"metadata-bridge/core/config"
	"metadata-bridge/core/reconcile"
	"metadata-bridge/feature/catalog"
	"metadata-bridge/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"1"}, {"2", "x"}}, []columnAlignment{alignRight})
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "x")
	assert.Empty(t, renderTable(nil, nil, nil))
}

func TestRenderEpisodes(t *testing.T) {
	out := renderEpisodes([]catalog.EpisodeMetadata{
		{EpisodeID: 1005, Type: "regular", Number: 5, Source: "regular", Title: "Episode 5",
			Overview: reconcile.OverviewPlaceholder, AlternateEpisodeID: 50105, AlternateSeason: 1, AlternateNumber: 5,
			Image: reconcile.ImageRef{Kind: reconcile.ImageKindTvDBEpisode, ID: 50105}},
		{EpisodeID: 1201, Type: "credits", Number: 1, Source: "none", Title: "Opening", Image: reconcile.ImageNone},
	})

	assert.Contains(t, out, "S01E05 (50105)")
	assert.Contains(t, out, "(placeholder)")
	assert.Contains(t, out, "Opening")
}

func TestOverviewSummary(t *testing.T) {
	assert.Equal(t, "short", overviewSummary("short"))
	long := strings.Repeat("a", 50)
	assert.Equal(t, strings.Repeat("a", 37)+"...", overviewSummary(long))
}

func TestRenderCrossRef(t *testing.T) {
	out := renderCrossRef(&checks.CrossRefReport{
		Duplicates:        []reconcile.DuplicateStart{{Type: reconcile.EpisodeTypeRegular, Number: 1, Count: 2}},
		UnknownCatalogs:   []int{600},
		MissingSeasons:    []checks.SeasonRef{{SeriesID: 500, Season: 3}},
		DanglingOverrides: []int{1002},
	})
	assert.Contains(t, out, "regular 1 claimed 2 times")
	assert.Contains(t, out, "series 500 season 3")
	assert.Contains(t, out, "episode 1002")
}

func TestNewApp(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.ApiKey = "secret"
	cfg.Server.MetricsEnabled = true

	app := newApp(&deps{cfg: cfg, log: zap.NewNop()})
	app.Get("/protected", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))

	resp, err = app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-API-Key", "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
