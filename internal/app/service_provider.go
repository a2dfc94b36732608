package app

import (
	blackjackAPI "casino_bot/internal/api/blackjack"
	duelAPI "casino_bot/internal/api/duel"
	fortuneAPI "casino_bot/internal/api/fortune"
	minesAPI "casino_bot/internal/api/mines"
	rouletteAPI "casino_bot/internal/api/roulette"
	shopAPI "casino_bot/internal/api/shop"
	slotsAPI "casino_bot/internal/api/slots"
	talentsAPI "casino_bot/internal/api/talents"
	userAPI "casino_bot/internal/api/user"
	"casino_bot/internal/config"
	"casino_bot/internal/config/env"
	"casino_bot/internal/notify"
	"casino_bot/internal/repository"
	"casino_bot/internal/repository/blackjack_repo"
	"casino_bot/internal/repository/business_repo"
	"casino_bot/internal/repository/duel_repo"
	"casino_bot/internal/repository/mines_repo"
	"casino_bot/internal/repository/operation_repo"
	"casino_bot/internal/repository/roulette_repo"
	"casino_bot/internal/repository/talent_repo"
	"casino_bot/internal/repository/user_repo"
	"casino_bot/internal/scheduler"
	"casino_bot/internal/service"
	"casino_bot/internal/service/blackjack"
	"casino_bot/internal/service/bonus"
	"casino_bot/internal/service/duel"
	"casino_bot/internal/service/fortune"
	"casino_bot/internal/service/ledger"
	"casino_bot/internal/service/mines"
	"casino_bot/internal/service/roulette"
	"casino_bot/internal/service/shop"
	"casino_bot/internal/service/slots"
	"casino_bot/internal/service/talents"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Game rules
	gameCfg *config.GameConfig

	// Logging and notifications
	logger      *zap.Logger
	telegramCfg config.TelegramConfig
	notifier    notify.Notifier

	// Repositories
	userRepo      repository.UserRepository
	talentRepo    repository.TalentRepository
	businessRepo  repository.BusinessRepository
	operationRepo repository.OperationRepository
	blackjackRepo repository.BlackjackRepository
	minesRepo     repository.MinesRepository
	duelRepo      repository.DuelRepository
	rouletteRepo  repository.RouletteRepository

	// Services
	bonusServ     service.BonusService
	ledgerServ    service.LedgerService
	blackjackServ service.BlackjackService
	minesServ     service.MinesService
	rouletteServ  service.RouletteService
	duelServ      service.DuelService
	talentServ    service.TalentService
	shopServ      service.ShopService
	fortuneServ   service.FortuneService
	slotsServ     service.SlotsService

	// Handlers
	userHand      *userAPI.Handler
	blackjackHand *blackjackAPI.Handler
	minesHand     *minesAPI.Handler
	rouletteHand  *rouletteAPI.Handler
	duelHand      *duelAPI.Handler
	talentsHand   *talentsAPI.Handler
	shopHand      *shopAPI.Handler
	fortuneHand   *fortuneAPI.Handler
	slotsHand     *slotsAPI.Handler

	// Background sweeps
	sched *scheduler.Scheduler

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

func (sp *ServiceProvider) GameCfg() *config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		log, err := zap.NewProduction()
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = log
	}
	return sp.logger
}

func (sp *ServiceProvider) TelegramCfg() config.TelegramConfig {
	if sp.telegramCfg == nil {
		cfg, err := env.NewTelegramConfig()
		if err != nil {
			panic("failed to get telegram config: " + err.Error())
		}
		sp.telegramCfg = cfg
	}
	return sp.telegramCfg
}

func (sp *ServiceProvider) Notifier() notify.Notifier {
	if sp.notifier == nil {
		n, err := notify.NewTelegramNotifier(sp.TelegramCfg().Token(), sp.Logger())
		if err != nil {
			panic("failed to create notifier: " + err.Error())
		}
		sp.notifier = n
	}
	return sp.notifier
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) TalentRepo(ctx context.Context) repository.TalentRepository {
	if sp.talentRepo == nil {
		sp.talentRepo = talent_repo.NewTalentRepository(sp.DBClient(ctx))
	}
	return sp.talentRepo
}

func (sp *ServiceProvider) BusinessRepo(ctx context.Context) repository.BusinessRepository {
	if sp.businessRepo == nil {
		sp.businessRepo = business_repo.NewBusinessRepository(sp.DBClient(ctx))
	}
	return sp.businessRepo
}

func (sp *ServiceProvider) OperationRepo(ctx context.Context) repository.OperationRepository {
	if sp.operationRepo == nil {
		sp.operationRepo = operation_repo.NewOperationRepository(sp.DBClient(ctx))
	}
	return sp.operationRepo
}

func (sp *ServiceProvider) BlackjackRepo(ctx context.Context) repository.BlackjackRepository {
	if sp.blackjackRepo == nil {
		sp.blackjackRepo = blackjack_repo.NewBlackjackRepository(sp.DBClient(ctx))
	}
	return sp.blackjackRepo
}

func (sp *ServiceProvider) MinesRepo(ctx context.Context) repository.MinesRepository {
	if sp.minesRepo == nil {
		sp.minesRepo = mines_repo.NewMinesRepository(sp.DBClient(ctx))
	}
	return sp.minesRepo
}

func (sp *ServiceProvider) DuelRepo(ctx context.Context) repository.DuelRepository {
	if sp.duelRepo == nil {
		sp.duelRepo = duel_repo.NewDuelRepository(sp.DBClient(ctx))
	}
	return sp.duelRepo
}

func (sp *ServiceProvider) RouletteRepo(ctx context.Context) repository.RouletteRepository {
	if sp.rouletteRepo == nil {
		sp.rouletteRepo = roulette_repo.NewRouletteRepository(sp.DBClient(ctx))
	}
	return sp.rouletteRepo
}

func (sp *ServiceProvider) BonusService(ctx context.Context) service.BonusService {
	if sp.bonusServ == nil {
		sp.bonusServ = bonus.NewBonusService(sp.GameCfg(), sp.TalentRepo(ctx), sp.BusinessRepo(ctx))
	}
	return sp.bonusServ
}

func (sp *ServiceProvider) LedgerService(ctx context.Context) service.LedgerService {
	if sp.ledgerServ == nil {
		sp.ledgerServ = ledger.NewLedgerService(
			sp.GameCfg(),
			sp.UserRepo(ctx),
			sp.OperationRepo(ctx),
			sp.TalentRepo(ctx),
			sp.BusinessRepo(ctx),
			sp.BonusService(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.ledgerServ
}

func (sp *ServiceProvider) BlackjackService(ctx context.Context) service.BlackjackService {
	if sp.blackjackServ == nil {
		sp.blackjackServ = blackjack.NewBlackjackService(
			sp.GameCfg(),
			sp.BlackjackRepo(ctx),
			sp.UserRepo(ctx),
			sp.LedgerService(ctx),
			sp.BonusService(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.blackjackServ
}

func (sp *ServiceProvider) MinesService(ctx context.Context) service.MinesService {
	if sp.minesServ == nil {
		sp.minesServ = mines.NewMinesService(
			sp.GameCfg(),
			sp.MinesRepo(ctx),
			sp.UserRepo(ctx),
			sp.LedgerService(ctx),
			sp.BonusService(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.minesServ
}

func (sp *ServiceProvider) RouletteService(ctx context.Context) service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = roulette.NewRouletteService(
			sp.GameCfg(),
			sp.RouletteRepo(ctx),
			sp.UserRepo(ctx),
			sp.LedgerService(ctx),
			sp.BonusService(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) DuelService(ctx context.Context) service.DuelService {
	if sp.duelServ == nil {
		sp.duelServ = duel.NewDuelService(
			sp.GameCfg(),
			sp.DuelRepo(ctx),
			sp.UserRepo(ctx),
			sp.LedgerService(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.duelServ
}

func (sp *ServiceProvider) TalentService(ctx context.Context) service.TalentService {
	if sp.talentServ == nil {
		sp.talentServ = talents.NewTalentService(
			sp.GameCfg(),
			sp.TalentRepo(ctx),
			sp.UserRepo(ctx),
			sp.LedgerService(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.talentServ
}

func (sp *ServiceProvider) ShopService(ctx context.Context) service.ShopService {
	if sp.shopServ == nil {
		sp.shopServ = shop.NewShopService(
			sp.GameCfg(),
			sp.BusinessRepo(ctx),
			sp.TalentRepo(ctx),
			sp.UserRepo(ctx),
			sp.LedgerService(ctx),
			sp.BonusService(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.shopServ
}

func (sp *ServiceProvider) FortuneService(ctx context.Context) service.FortuneService {
	if sp.fortuneServ == nil {
		sp.fortuneServ = fortune.NewFortuneService(
			sp.GameCfg(),
			sp.UserRepo(ctx),
			sp.LedgerService(ctx),
			sp.BonusService(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.fortuneServ
}

func (sp *ServiceProvider) SlotsService(ctx context.Context) service.SlotsService {
	if sp.slotsServ == nil {
		sp.slotsServ = slots.NewSlotsService(
			sp.GameCfg(),
			sp.UserRepo(ctx),
			sp.LedgerService(ctx),
			sp.BonusService(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.slotsServ
}

func (sp *ServiceProvider) Scheduler(ctx context.Context) *scheduler.Scheduler {
	if sp.sched == nil {
		sp.sched = scheduler.New(
			sp.GameCfg().Scheduler,
			sp.RouletteService(ctx),
			sp.LedgerService(ctx),
			sp.ShopService(ctx),
			sp.Notifier(),
			sp.Logger(),
		)
	}
	return sp.sched
}

func (sp *ServiceProvider) UserHandler(ctx context.Context) *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{Serv: sp.LedgerService(ctx)})
	}
	return sp.userHand
}

func (sp *ServiceProvider) BlackjackHandler(ctx context.Context) *blackjackAPI.Handler {
	if sp.blackjackHand == nil {
		sp.blackjackHand = blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{Serv: sp.BlackjackService(ctx)})
	}
	return sp.blackjackHand
}

func (sp *ServiceProvider) MinesHandler(ctx context.Context) *minesAPI.Handler {
	if sp.minesHand == nil {
		sp.minesHand = minesAPI.NewHandler(minesAPI.HandlerDeps{Serv: sp.MinesService(ctx)})
	}
	return sp.minesHand
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{Serv: sp.RouletteService(ctx)})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) DuelHandler(ctx context.Context) *duelAPI.Handler {
	if sp.duelHand == nil {
		sp.duelHand = duelAPI.NewHandler(duelAPI.HandlerDeps{Serv: sp.DuelService(ctx)})
	}
	return sp.duelHand
}

func (sp *ServiceProvider) TalentsHandler(ctx context.Context) *talentsAPI.Handler {
	if sp.talentsHand == nil {
		sp.talentsHand = talentsAPI.NewHandler(talentsAPI.HandlerDeps{Serv: sp.TalentService(ctx)})
	}
	return sp.talentsHand
}

func (sp *ServiceProvider) ShopHandler(ctx context.Context) *shopAPI.Handler {
	if sp.shopHand == nil {
		sp.shopHand = shopAPI.NewHandler(shopAPI.HandlerDeps{Serv: sp.ShopService(ctx)})
	}
	return sp.shopHand
}

func (sp *ServiceProvider) FortuneHandler(ctx context.Context) *fortuneAPI.Handler {
	if sp.fortuneHand == nil {
		sp.fortuneHand = fortuneAPI.NewHandler(fortuneAPI.HandlerDeps{Serv: sp.FortuneService(ctx)})
	}
	return sp.fortuneHand
}

func (sp *ServiceProvider) SlotsHandler(ctx context.Context) *slotsAPI.Handler {
	if sp.slotsHand == nil {
		sp.slotsHand = slotsAPI.NewHandler(slotsAPI.HandlerDeps{Serv: sp.SlotsService(ctx)})
	}
	return sp.slotsHand
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

		// User endpoints
		userHandler := sp.UserHandler(ctx)
		r.Route("/user", func(rr chi.Router) {
			rr.Post("/balance", userHandler.Balance)
			rr.Post("/profile", userHandler.Profile)
			rr.Post("/history", userHandler.History)
			rr.Post("/transfer", userHandler.Transfer)
			rr.Post("/deposit/open", userHandler.OpenDeposit)
			rr.Post("/deposit/claim", userHandler.ClaimDeposit)
			rr.Post("/set-balance", userHandler.SetBalance)
		})

		// Blackjack endpoints
		blackjackHandler := sp.BlackjackHandler(ctx)
		r.Route("/blackjack", func(rr chi.Router) {
			rr.Post("/start", blackjackHandler.Start)
			rr.Post("/hit", blackjackHandler.Hit)
			rr.Post("/stand", blackjackHandler.Stand)
		})

		// Mines endpoints
		minesHandler := sp.MinesHandler(ctx)
		r.Route("/mines", func(rr chi.Router) {
			rr.Post("/start", minesHandler.Start)
			rr.Post("/reveal", minesHandler.Reveal)
			rr.Post("/cashout", minesHandler.Cashout)
		})

		// Roulette endpoints
		rouletteHandler := sp.RouletteHandler(ctx)
		r.Route("/roulette", func(rr chi.Router) {
			rr.Post("/solo", rouletteHandler.Solo)
			rr.Post("/group-bet", rouletteHandler.GroupBet)
		})

		// Duel endpoints
		duelHandler := sp.DuelHandler(ctx)
		r.Route("/duel", func(rr chi.Router) {
			rr.Post("/challenge", duelHandler.Challenge)
			rr.Post("/game", duelHandler.ChooseGame)
			rr.Post("/rounds", duelHandler.ChooseRounds)
			rr.Post("/decline", duelHandler.Decline)
			rr.Post("/turn", duelHandler.Turn)
		})

		// Talent endpoints
		talentsHandler := sp.TalentsHandler(ctx)
		r.Route("/talents", func(rr chi.Router) {
			rr.Post("/list", talentsHandler.List)
			rr.Post("/upgrade", talentsHandler.Upgrade)
		})

		// Shop endpoints
		shopHandler := sp.ShopHandler(ctx)
		r.Route("/shop", func(rr chi.Router) {
			rr.Post("/buy", shopHandler.Buy)
		})

		// Fortune endpoints
		fortuneHandler := sp.FortuneHandler(ctx)
		r.Route("/fortune", func(rr chi.Router) {
			rr.Post("/wheel", fortuneHandler.SpinWheel)
			rr.Post("/case", fortuneHandler.OpenCase)
			rr.Post("/steal", fortuneHandler.Steal)
		})

		// Slots endpoints
		slotsHandler := sp.SlotsHandler(ctx)
		r.Route("/slots", func(rr chi.Router) {
			rr.Post("/spin", slotsHandler.Spin)
		})

		sp.router = r
	}

	return sp.router
}
