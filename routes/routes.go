package routes

import (
	"github.com/Dosada05/handball-club-system/handlers"
	"github.com/Dosada05/handball-club-system/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRoutes настраивает все маршруты приложения. Чтение публично,
// мутации требуют аутентификации.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	clubHandler *handlers.ClubHandler,
	seasonHandler *handlers.SeasonHandler,
	teamHandler *handlers.TeamHandler,
	playerHandler *handlers.PlayerHandler,
	matchHandler *handlers.MatchHandler,
	gameEventHandler *handlers.GameEventHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))

	router.Post("/auth/signup", authHandler.SignUp)
	router.Post("/auth/signin", authHandler.SignIn)

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Get("/ws/matches/{matchID}", webSocketHandler.ServeWs)

	router.Route("/clubs", func(r chi.Router) {
		r.Get("/", clubHandler.ListClubsHandler)
		r.Get("/{clubID}", clubHandler.GetClubHandler)
		r.Get("/{clubID}/seasons", seasonHandler.ListClubSeasonsHandler)
		r.Get("/{clubID}/teams", teamHandler.ListClubTeamsHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", clubHandler.CreateClubHandler)
			r.Put("/{clubID}", clubHandler.RenameClubHandler)
			r.Post("/{clubID}/logo", clubHandler.UploadClubLogoHandler)
			r.Delete("/{clubID}", clubHandler.DeleteClubHandler)
		})
	})

	router.Route("/seasons", func(r chi.Router) {
		r.Get("/{seasonID}", seasonHandler.GetSeasonHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", seasonHandler.CreateSeasonHandler)
			r.Put("/{seasonID}", seasonHandler.UpdateSeasonHandler)
			r.Delete("/{seasonID}", seasonHandler.DeleteSeasonHandler)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/{teamID}", teamHandler.GetTeamHandler)
		r.Get("/{teamID}/players", playerHandler.ListTeamPlayersHandler)
		r.Get("/{teamID}/stats/weekly", teamHandler.WeeklyTeamStatsHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", teamHandler.CreateTeamHandler)
			r.Put("/{teamID}", teamHandler.UpdateTeamHandler)
			r.Delete("/{teamID}", teamHandler.DeleteTeamHandler)
		})
	})

	router.Route("/players", func(r chi.Router) {
		r.Get("/{playerID}", playerHandler.GetPlayerHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", playerHandler.CreatePlayerHandler)
			r.Put("/{playerID}", playerHandler.UpdatePlayerHandler)
			r.Post("/{playerID}/photo", playerHandler.UploadPlayerPhotoHandler)
			r.Delete("/{playerID}", playerHandler.DeletePlayerHandler)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/{matchID}", matchHandler.GetMatchHandler)
		r.Get("/season/{seasonID}", matchHandler.ListSeasonMatchesHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", matchHandler.CreateMatchHandler)
			r.Post("/{matchID}/halves/{half}/{moment}", matchHandler.MarkHalfHandler)
			r.Put("/{matchID}/video-calibration", matchHandler.SetVideoCalibrationHandler)
			r.Put("/{matchID}/locks", matchHandler.SetEventLocksHandler)
			r.Post("/{matchID}/finish", matchHandler.FinishMatchHandler)
			r.Put("/{matchID}/score", matchHandler.CorrectScoreHandler)
			r.Delete("/{matchID}", matchHandler.DeleteMatchHandler)
		})
	})

	router.Route("/game-events", func(r chi.Router) {
		r.Get("/match/{matchID}", gameEventHandler.ListMatchGameEventsHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", gameEventHandler.CreateGameEventHandler)
			r.Put("/{eventID}", gameEventHandler.UpdateGameEventHandler)
			r.Patch("/{eventID}", gameEventHandler.UpdateGameEventHandler)
			r.Delete("/{eventID}", gameEventHandler.DeleteGameEventHandler)
		})
	})
}
