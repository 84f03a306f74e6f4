package app

import (
	authAPI "club_backend/internal/api/auth"
	fuAPI "club_backend/internal/api/fu"
	quizAPI "club_backend/internal/api/quiz"
	tournamentAPI "club_backend/internal/api/tournament"
	"club_backend/internal/config"
	"club_backend/internal/config/env"
	"club_backend/internal/middleware"
	"club_backend/internal/repository"
	"club_backend/internal/repository/auth_repo"
	"club_backend/internal/repository/quiz_repo"
	"club_backend/internal/repository/quiz_stats_repo"
	"club_backend/internal/repository/tournament_repo"
	"club_backend/internal/repository/user_repo"
	"club_backend/internal/service"
	"club_backend/internal/service/auth"
	"club_backend/internal/service/quiz"
	"club_backend/internal/service/tournament"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Quiz bits
	quizCfg       config.QuizConfig
	quizRepo      repository.QuizRepository
	quizStatsRepo repository.QuizStatsRepository
	quizServ      service.QuizService
	quizHand      *quizAPI.Handler

	// Fu bits
	fuHand *fuAPI.Handler

	// Tournament bits
	tournamentRepo repository.TournamentRepository
	tournamentServ service.TournamentService
	tournamentHand *tournamentAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) QuizCfg() config.QuizConfig {
	if sp.quizCfg == nil {
		cfg, err := env.NewQuizConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get quiz config: " + err.Error())
		}
		sp.quizCfg = cfg
	}
	return sp.quizCfg
}

func (sp *ServiceProvider) QuizRepository(ctx context.Context) repository.QuizRepository {
	if sp.quizRepo == nil {
		sp.quizRepo = quiz_repo.NewQuizRepository(sp.DBClient(ctx))
	}
	return sp.quizRepo
}

func (sp *ServiceProvider) QuizStatsRepository() repository.QuizStatsRepository {
	if sp.quizStatsRepo == nil {
		sp.quizStatsRepo = quiz_stats_repo.NewQuizStatsRepository()
	}
	return sp.quizStatsRepo
}

func (sp *ServiceProvider) QuizService(ctx context.Context) service.QuizService {
	if sp.quizServ == nil {
		sp.quizServ = quiz.NewQuizService(sp.QuizCfg(), sp.QuizRepository(ctx), sp.QuizStatsRepository(), sp.TXManager(ctx))
	}
	return sp.quizServ
}

func (sp *ServiceProvider) QuizHandler(ctx context.Context) *quizAPI.Handler {
	if sp.quizHand == nil {
		sp.quizHand = quizAPI.NewHandler(quizAPI.HandlerDeps{Serv: sp.QuizService(ctx)})
	}
	return sp.quizHand
}

func (sp *ServiceProvider) FuHandler() *fuAPI.Handler {
	if sp.fuHand == nil {
		sp.fuHand = fuAPI.NewHandler()
	}
	return sp.fuHand
}

func (sp *ServiceProvider) TournamentRepository(ctx context.Context) repository.TournamentRepository {
	if sp.tournamentRepo == nil {
		sp.tournamentRepo = tournament_repo.NewTournamentRepository(sp.DBClient(ctx))
	}
	return sp.tournamentRepo
}

func (sp *ServiceProvider) TournamentService(ctx context.Context) service.TournamentService {
	if sp.tournamentServ == nil {
		sp.tournamentServ = tournament.NewTournamentService(sp.TournamentRepository(ctx), sp.TXManager(ctx))
	}
	return sp.tournamentServ
}

func (sp *ServiceProvider) TournamentHandler(ctx context.Context) *tournamentAPI.Handler {
	if sp.tournamentHand == nil {
		sp.tournamentHand = tournamentAPI.NewHandler(tournamentAPI.HandlerDeps{Serv: sp.TournamentService(ctx)})
	}
	return sp.tournamentHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		requireAuth := middleware.Auth(sp.JWTCfg())

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Quiz endpoints
		quizHandler := sp.QuizHandler(ctx)
		r.Route("/quiz", func(rr chi.Router) {
			rr.Get("/", quizHandler.List)
			rr.Get("/{id}", quizHandler.Get)

			rr.Group(func(protected chi.Router) {
				protected.Use(requireAuth)
				protected.Post("/discard", quizHandler.CreateDiscard)
				protected.Post("/decision", quizHandler.CreateDecision)
				protected.Post("/{id}/responses", quizHandler.Respond)
			})
		})

		// Fu endpoint, called on every form change
		fuHandler := sp.FuHandler()
		r.Post("/fu/calculate", fuHandler.Calculate)

		// Tournament endpoints
		tournamentHandler := sp.TournamentHandler(ctx)
		r.Route("/tournament", func(rr chi.Router) {
			rr.Get("/pairings", tournamentHandler.RoundPairings)

			rr.Group(func(protected chi.Router) {
				protected.Use(requireAuth)
				protected.Post("/pairings", tournamentHandler.CreatePairing)
			})
		})

		sp.router = r
	}

	return sp.router
}
