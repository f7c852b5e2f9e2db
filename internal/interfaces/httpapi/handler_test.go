package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/solblist-api/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/solblist-api/internal/platform/id"
	"github.com/riskibarqy/solblist-api/internal/platform/logging"
	"github.com/riskibarqy/solblist-api/internal/usecase"
)

const testAdminToken = "s3cret"

type testEnvelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T, cfg RouterConfig) http.Handler {
	t.Helper()

	players := memory.NewPlayerRepository(memory.SeedPlayers())
	levels := memory.NewLevelRepository(memory.SeedLevels())
	completions := memory.NewCompletionRepository(levels, players, memory.SeedCompletions())
	challenges := memory.NewChallengeRepository(memory.SeedChallenges())
	changelogs := memory.NewChangelogRepository(memory.SeedVersionChangelogs(), memory.SeedListChangelogs())

	handler := NewHandler(
		usecase.NewPlayerService(players, completions),
		usecase.NewLevelService(levels, players, completions),
		usecase.NewRankingService(levels, completions, players),
		usecase.NewChallengeService(challenges, id.NewRandomGenerator(4)),
		usecase.NewChangelogService(changelogs),
		logging.NewNop(),
	)

	if cfg.AdminRateLimitRPS == 0 {
		cfg.AdminRateLimitRPS = 100
		cfg.AdminRateLimitBurst = 100
	}
	return NewRouter(handler, cfg, logging.NewNop())
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) testEnvelope[T] {
	t.Helper()

	var out testEnvelope[T]
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response body: %v (%s)", err, rec.Body.String())
	}
	if out.APIVersion != googleAPIVersion {
		t.Fatalf("unexpected apiVersion %q", out.APIVersion)
	}
	return out
}

func TestRouter_SystemRoutes(t *testing.T) {
	router := newTestRouter(t, RouterConfig{SwaggerEnabled: true, Metrics: NewMetrics("solblist_test")})

	root := doRequest(t, router, http.MethodGet, "/", "", nil)
	if root.Code != http.StatusOK || decodeEnvelope[map[string]string](t, root).Data["status"] != "Server is running" {
		t.Fatalf("unexpected root response: %d %s", root.Code, root.Body.String())
	}

	welcome := doRequest(t, router, http.MethodGet, "/v1", "", nil)
	if decodeEnvelope[map[string]string](t, welcome).Data["message"] != "Welcome to the Solblist API!" {
		t.Fatalf("unexpected welcome response: %s", welcome.Body.String())
	}

	docs := doRequest(t, router, http.MethodGet, "/openapi.yaml", "", nil)
	if docs.Code != http.StatusOK || !strings.Contains(docs.Body.String(), "openapi:") {
		t.Fatalf("unexpected openapi response: %d", docs.Code)
	}

	docsJSON := doRequest(t, router, http.MethodGet, "/openapi.json", "", nil)
	if docsJSON.Code != http.StatusOK || !strings.Contains(docsJSON.Body.String(), `"openapi"`) {
		t.Fatalf("unexpected openapi json response: %d", docsJSON.Code)
	}

	ui := doRequest(t, router, http.MethodGet, "/docs", "", nil)
	if ui.Code != http.StatusOK || !strings.Contains(ui.Body.String(), "swagger-ui-bundle.js") {
		t.Fatalf("unexpected docs page: %d", ui.Code)
	}

	metrics := doRequest(t, router, http.MethodGet, "/metrics", "", nil)
	if metrics.Code != http.StatusOK || !strings.Contains(metrics.Body.String(), "solblist_test_http_requests_total") {
		t.Fatalf("expected request counter in metrics output, got %d", metrics.Code)
	}
	if !strings.Contains(metrics.Body.String(), `route="GET /v1"`) {
		t.Fatalf("metrics should be labelled by route pattern")
	}

	if rec := doRequest(t, router, http.MethodGet, "/nope", "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown path, got %d", rec.Code)
	}
}

func TestRouter_SwaggerDisabled(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})
	if rec := doRequest(t, router, http.MethodGet, "/docs", "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected docs to be hidden, got %d", rec.Code)
	}
}

func TestRouter_Leaderboard(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	rec := doRequest(t, router, http.MethodGet, "/v1/leaderboard", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	board := decodeEnvelope[[]leaderboardEntryDTO](t, rec).Data
	want := []struct {
		name    string
		display string
	}{
		{name: "Aurora", display: "34.86"},
		{name: "Blitz", display: "32.57"},
		{name: "Comet", display: "30.29"},
		{name: "Drift", display: "0.00"},
	}
	if len(board) != len(want) {
		t.Fatalf("unexpected leaderboard size %d", len(board))
	}
	for i, w := range want {
		if board[i].Name != w.name || board[i].PointsDisplay != w.display || board[i].Position != i+1 {
			t.Fatalf("position %d: got %+v want %+v", i+1, board[i], w)
		}
	}
}

func TestRouter_ListView(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	rec := doRequest(t, router, http.MethodGet, "/v1/list", "", nil)
	levels := decodeEnvelope[[]listLevelDTO](t, rec).Data
	if len(levels) != 5 {
		t.Fatalf("unexpected list size %d", len(levels))
	}
	top := levels[0]
	if top.Rank != 1 || top.PointsDisplay != "18.00" || top.ThumbnailURL != "https://img.youtube.com/vi/Xq2Jd1sK9aA/hqdefault.jpg" {
		t.Fatalf("unexpected top level: %+v", top)
	}
	if levels[1].FirstVictor != "Blitz" || len(levels[1].Victors) != 2 {
		t.Fatalf("victors must keep recording order: %+v", levels[1])
	}
	if last := levels[4]; !last.IsLegacy || last.Points != 0 {
		t.Fatalf("legacy level should not award points: %+v", last)
	}
}

func TestRouter_ProfileAndTimeline(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	rec := doRequest(t, router, http.MethodGet, "/v1/profiles/Aurora", "", nil)
	profile := decodeEnvelope[profileDTO](t, rec).Data
	if profile.MainListCompletionCount != 2 || len(profile.Completions) != 3 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.HardestCompletion == nil || profile.HardestCompletion.Rank != 1 {
		t.Fatalf("unexpected hardest completion: %+v", profile.HardestCompletion)
	}

	timeline := decodeEnvelope[[]timelinePointDTO](t, doRequest(t, router, http.MethodGet, "/v1/profiles/Aurora/timeline", "", nil)).Data
	if len(timeline) != 3 || timeline[0].Date != "2022-05-01" || !timeline[0].IsLegacy {
		t.Fatalf("unexpected timeline: %+v", timeline)
	}

	missing := doRequest(t, router, http.MethodGet, "/v1/profiles/Nobody", "", nil)
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown profile, got %d", missing.Code)
	}
}

func TestRouter_Compare(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	rec := doRequest(t, router, http.MethodGet, "/v1/compare?player_a=Aurora&player_b=Blitz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	cmp := decodeEnvelope[comparisonDTO](t, rec).Data
	if len(cmp.CommonLevelNames) != 1 || cmp.CommonLevelNames[0] != "Solar Flare" {
		t.Fatalf("unexpected common levels: %+v", cmp.CommonLevelNames)
	}
	if cmp.CompletionCountA != 3 || cmp.CompletionCountB != 2 {
		t.Fatalf("unexpected completion counts: %d %d", cmp.CompletionCountA, cmp.CompletionCountB)
	}

	same := doRequest(t, router, http.MethodGet, "/v1/compare?player_a=Aurora&player_b=Aurora", "", nil)
	if same.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for same player, got %d", same.Code)
	}
	body := decodeEnvelope[any](t, same)
	if body.Error == nil || len(body.Error.Errors) != 1 || body.Error.Errors[0].Reason != "samePlayer" {
		t.Fatalf("expected samePlayer reason, got %+v", body.Error)
	}

	missing := doRequest(t, router, http.MethodGet, "/v1/compare?player_a=Aurora", "", nil)
	if missing.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when player_b is missing, got %d", missing.Code)
	}
}

func TestRouter_PlayerSubresources(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	byName := decodeEnvelope[playerDTO](t, doRequest(t, router, http.MethodGet, "/v1/players/name/Comet", "", nil)).Data
	if byName.ID != memory.SeedPlayerCometID {
		t.Fatalf("unexpected player: %+v", byName)
	}

	completions := decodeEnvelope[[]completionDTO](t, doRequest(t, router, http.MethodGet, "/v1/players/1/completions", "", nil)).Data
	if len(completions) != 3 || completions[0].LevelRank != 1 {
		t.Fatalf("unexpected completions: %+v", completions)
	}

	if rec := doRequest(t, router, http.MethodGet, "/v1/players/abc", "", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non numeric id, got %d", rec.Code)
	}
	if rec := doRequest(t, router, http.MethodGet, "/v1/players/1/unknown", "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown resource, got %d", rec.Code)
	}
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, RouterConfig{AdminToken: testAdminToken})
	admin := map[string]string{adminTokenHeader: testAdminToken}

	if rec := doRequest(t, router, http.MethodPost, "/v1/players", `{"name":"Eclipse"}`, nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if rec := doRequest(t, router, http.MethodPost, "/v1/players", `{"name":"Eclipse"}`, map[string]string{adminTokenHeader: "wrong"}); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong token, got %d", rec.Code)
	}

	created := doRequest(t, router, http.MethodPost, "/v1/players", `{"name":"Eclipse"}`, admin)
	if created.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", created.Code, created.Body.String())
	}
	if dup := doRequest(t, router, http.MethodPost, "/v1/players", `{"name":"Eclipse"}`, admin); dup.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate player, got %d", dup.Code)
	}
	if bad := doRequest(t, router, http.MethodPost, "/v1/players", `{"name":""}`, admin); bad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty name, got %d", bad.Code)
	}
	if unknown := doRequest(t, router, http.MethodPost, "/v1/players", `{"name":"X","extra":1}`, admin); unknown.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown fields, got %d", unknown.Code)
	}
}

func TestRouter_AdminRoutesLockedWithoutConfiguredToken(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	rec := doRequest(t, router, http.MethodPost, "/v1/players", `{"name":"Eclipse"}`, map[string]string{adminTokenHeader: "anything"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when no admin token is configured, got %d", rec.Code)
	}
}

func TestRouter_AdminRateLimit(t *testing.T) {
	router := newTestRouter(t, RouterConfig{AdminToken: testAdminToken, AdminRateLimitRPS: 0.001, AdminRateLimitBurst: 1})
	admin := map[string]string{adminTokenHeader: testAdminToken}

	if rec := doRequest(t, router, http.MethodPost, "/v1/players", `{"name":"One"}`, admin); rec.Code != http.StatusCreated {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}
	rec := doRequest(t, router, http.MethodPost, "/v1/players", `{"name":"Two"}`, admin)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}

	if public := doRequest(t, router, http.MethodGet, "/v1/players", "", nil); public.Code != http.StatusOK {
		t.Fatalf("public routes are not rate limited, got %d", public.Code)
	}
}

func TestRouter_AddVictorUpdatesLeaderboard(t *testing.T) {
	router := newTestRouter(t, RouterConfig{AdminToken: testAdminToken})
	admin := map[string]string{adminTokenHeader: testAdminToken}

	rec := doRequest(t, router, http.MethodPost, "/v1/levels/cosmic-cyclone/victors",
		`{"player_name":"Drift","completion_url":"https://youtu.be/drift-cc","completion_date":"2025-01-05"}`, admin)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	dup := doRequest(t, router, http.MethodPost, "/v1/levels/cosmic-cyclone/victors", `{"player_name":"Drift"}`, admin)
	if dup.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate completion, got %d", dup.Code)
	}

	badDate := doRequest(t, router, http.MethodPost, "/v1/levels/solar-flare/victors", `{"player_name":"Drift","completion_date":"05/01/2025"}`, admin)
	if badDate.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", badDate.Code)
	}

	profile := decodeEnvelope[profileDTO](t, doRequest(t, router, http.MethodGet, "/v1/profiles/Drift", "", nil)).Data
	if profile.PointsDisplay != "18.00" {
		t.Fatalf("expected new completion to score, got %+v", profile)
	}
}

func TestRouter_Challenges(t *testing.T) {
	router := newTestRouter(t, RouterConfig{AdminToken: testAdminToken})
	admin := map[string]string{adminTokenHeader: testAdminToken}

	list := decodeEnvelope[[]challengeDTO](t, doRequest(t, router, http.MethodGet, "/v1/challenges", "", nil)).Data
	if len(list) != 2 || !list[0].IsCurrent {
		t.Fatalf("current challenge should be listed first: %+v", list)
	}

	created := doRequest(t, router, http.MethodPost, "/v1/challenges", `{"name":"Void Sprint","month":"April 2025"}`, admin)
	if created.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", created.Code, created.Body.String())
	}
	item := decodeEnvelope[challengeDTO](t, created).Data
	if item.ID != "april-2025-void-sprint" || item.Status != "active" || item.IsCurrent {
		t.Fatalf("unexpected created challenge: %+v", item)
	}

	current := decodeEnvelope[challengeDTO](t, doRequest(t, router, http.MethodPatch, "/v1/challenges/april-2025-void-sprint/set-current", "", admin)).Data
	if !current.IsCurrent {
		t.Fatalf("expected challenge to be current: %+v", current)
	}
	previous := decodeEnvelope[challengeDTO](t, doRequest(t, router, http.MethodGet, "/v1/challenges/march-2025-orbit-run", "", nil)).Data
	if previous.IsCurrent {
		t.Fatalf("previous challenge should no longer be current")
	}

	victor := decodeEnvelope[challengeDTO](t, doRequest(t, router, http.MethodPost, "/v1/challenges/april-2025-void-sprint/victors", `{"name":"Blitz"}`, admin)).Data
	if len(victor.VictorNames) != 1 || victor.VictorNames[0] != "Blitz" {
		t.Fatalf("unexpected victors: %+v", victor.VictorNames)
	}

	updated := decodeEnvelope[challengeDTO](t, doRequest(t, router, http.MethodPut, "/v1/challenges/april-2025-void-sprint", `{"status":"archived"}`, admin)).Data
	if updated.Status != "archived" || updated.Name != "Void Sprint" {
		t.Fatalf("partial update should keep other fields: %+v", updated)
	}
	if bad := doRequest(t, router, http.MethodPut, "/v1/challenges/april-2025-void-sprint", `{"status":"paused"}`, admin); bad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", bad.Code)
	}

	if rec := doRequest(t, router, http.MethodDelete, "/v1/challenges/april-2025-void-sprint", "", admin); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", rec.Code)
	}
	if rec := doRequest(t, router, http.MethodGet, "/v1/challenges/april-2025-void-sprint", "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestRouter_Changelogs(t *testing.T) {
	router := newTestRouter(t, RouterConfig{AdminToken: testAdminToken})
	admin := map[string]string{adminTokenHeader: testAdminToken}

	all := decodeEnvelope[changelogsDTO](t, doRequest(t, router, http.MethodGet, "/v1/changelogs", "", nil)).Data
	if len(all.VersionChanges) != 2 || all.VersionChanges[0].Version != "1.1.0" || len(all.ListChanges) != 2 {
		t.Fatalf("unexpected changelogs: %+v", all)
	}

	created := doRequest(t, router, http.MethodPost, "/v1/changelogs/versions", `{"version":"1.2.0","date":"2025-03-01","description_items":["Stats page"]}`, admin)
	if created.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", created.Code, created.Body.String())
	}
	if dup := doRequest(t, router, http.MethodPost, "/v1/changelogs/versions", `{"version":"1.2.0","date":"2025-03-01","description_items":["Again"]}`, admin); dup.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate version, got %d", dup.Code)
	}

	version := decodeEnvelope[versionChangelogDTO](t, doRequest(t, router, http.MethodGet, "/v1/changelogs/versions/1.2.0", "", nil)).Data
	if version.Date != "2025-03-01" {
		t.Fatalf("unexpected version: %+v", version)
	}

	entry := decodeEnvelope[listChangelogDTO](t, doRequest(t, router, http.MethodPost, "/v1/changelogs/list", `{"date":"2025-03-02","description_items":["Solar Flare moved to #2"]}`, admin)).Data
	if entry.ID == 0 {
		t.Fatalf("expected generated id: %+v", entry)
	}
	if rec := doRequest(t, router, http.MethodGet, "/v1/changelogs/list/not-a-number", "", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad entry id, got %d", rec.Code)
	}
	if rec := doRequest(t, router, http.MethodDelete, "/v1/changelogs/versions/1.2.0", "", admin); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", rec.Code)
	}
	if rec := doRequest(t, router, http.MethodGet, "/v1/changelogs/versions/1.2.0", "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}
