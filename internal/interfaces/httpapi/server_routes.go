package httpapi

import "net/http"

func handle(mux *http.ServeMux, pattern string, h http.Handler) {
	mux.Handle(pattern, withRoute(pattern, h))
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool, metrics *Metrics) {
	handle(mux, "GET /{$}", http.HandlerFunc(handler.Root))
	handle(mux, "GET /healthz", http.HandlerFunc(handler.Healthz))
	handle(mux, "GET /v1", http.HandlerFunc(handler.Welcome))
	if metrics != nil {
		handle(mux, "GET /metrics", metrics.Handler())
	}
	if !swaggerEnabled {
		return
	}

	handle(mux, "GET /openapi.yaml", http.HandlerFunc(handler.OpenAPI))
	handle(mux, "GET /openapi.json", http.HandlerFunc(handler.OpenAPIJSON))
	handle(mux, "GET /docs", http.HandlerFunc(handler.SwaggerUI))
	handle(mux, "GET /docs/", http.HandlerFunc(handler.SwaggerUI))
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	handle(mux, "GET /v1/players", http.HandlerFunc(handler.ListPlayers))
	handle(mux, "GET /v1/players/{playerID}", http.HandlerFunc(handler.GetPlayer))
	// /v1/players/name/{name} and /v1/players/{playerID}/completions overlap for ServeMux.
	handle(mux, "GET /v1/players/{playerID}/{resource}", http.HandlerFunc(handler.playerSubresource))

	handle(mux, "GET /v1/levels", http.HandlerFunc(handler.ListLevels))
	handle(mux, "GET /v1/levels/{levelID}", http.HandlerFunc(handler.GetLevel))
	handle(mux, "GET /v1/levels/{levelID}/victors", http.HandlerFunc(handler.ListLevelVictors))

	handle(mux, "GET /v1/list", http.HandlerFunc(handler.GetList))
	handle(mux, "GET /v1/leaderboard", http.HandlerFunc(handler.GetLeaderboard))
	handle(mux, "GET /v1/leaderboard/summary", http.HandlerFunc(handler.GetLeaderboardSummary))
	handle(mux, "GET /v1/profiles/{name}", http.HandlerFunc(handler.GetProfile))
	handle(mux, "GET /v1/profiles/{name}/timeline", http.HandlerFunc(handler.GetProfileTimeline))
	handle(mux, "GET /v1/compare", http.HandlerFunc(handler.ComparePlayers))
	handle(mux, "GET /v1/compare/players", http.HandlerFunc(handler.ListComparablePlayers))
	handle(mux, "GET /v1/stats", http.HandlerFunc(handler.GetStats))

	handle(mux, "GET /v1/challenges", http.HandlerFunc(handler.ListChallenges))
	handle(mux, "GET /v1/challenges/{challengeID}", http.HandlerFunc(handler.GetChallenge))

	handle(mux, "GET /v1/changelogs", http.HandlerFunc(handler.ListChangelogs))
	handle(mux, "GET /v1/changelogs/versions", http.HandlerFunc(handler.ListVersionChangelogs))
	handle(mux, "GET /v1/changelogs/versions/{version}", http.HandlerFunc(handler.GetVersionChangelog))
	handle(mux, "GET /v1/changelogs/list", http.HandlerFunc(handler.ListListChangelogs))
	handle(mux, "GET /v1/changelogs/list/{entryID}", http.HandlerFunc(handler.GetListChangelog))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, admin adminGuard) {
	handle(mux, "POST /v1/players", admin.wrap(handler.CreatePlayer))

	handle(mux, "POST /v1/levels", admin.wrap(handler.CreateLevel))
	handle(mux, "POST /v1/levels/{levelID}/victors", admin.wrap(handler.AddLevelVictor))

	handle(mux, "POST /v1/challenges", admin.wrap(handler.CreateChallenge))
	handle(mux, "PUT /v1/challenges/{challengeID}", admin.wrap(handler.UpdateChallenge))
	handle(mux, "DELETE /v1/challenges/{challengeID}", admin.wrap(handler.DeleteChallenge))
	handle(mux, "PATCH /v1/challenges/{challengeID}/set-current", admin.wrap(handler.SetCurrentChallenge))
	handle(mux, "POST /v1/challenges/{challengeID}/victors", admin.wrap(handler.AddChallengeVictor))

	handle(mux, "POST /v1/changelogs/versions", admin.wrap(handler.CreateVersionChangelog))
	handle(mux, "DELETE /v1/changelogs/versions/{version}", admin.wrap(handler.DeleteVersionChangelog))
	handle(mux, "POST /v1/changelogs/list", admin.wrap(handler.CreateListChangelog))
	handle(mux, "DELETE /v1/changelogs/list/{entryID}", admin.wrap(handler.DeleteListChangelog))
}
