package initialize

import (
	"fmt"
	"net/http"
	"time"

	"gateway-portal/app/controllers"
	"gateway-portal/app/db"
	jwtutil "gateway-portal/app/jwt"
	"gateway-portal/app/middleware"
	"gateway-portal/app/models"
	"gateway-portal/app/repo"
	"gateway-portal/app/services"
	"gateway-portal/config"
	"gateway-portal/global"
	"gateway-portal/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Router  http.Handler
	Tickets *services.TicketService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// Connect DB
	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate owned tables
	if err := gdb.AutoMigrate(
		&models.User{}, &models.Gateway{}, &models.MirthMetric{},
		&models.CheckStatusMetric{}, &models.GatewayAction{},
		&models.LogEvent{}, &models.Channel{}, &models.ExportPda{},
		&models.ImportError{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Optional redis KPI cache
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Pass, DB: cfg.Redis.DB})
		global.Rdb = rdb
	}

	// Repos and services
	userRepo := repo.NewUserRepository(gdb)
	gatewayRepo := repo.NewGatewayRepository(gdb)
	actionRepo := repo.NewActionRepository(gdb)
	logRepo := repo.NewLogEventRepository(gdb)
	channelRepo := repo.NewChannelRepository(gdb)

	userSvc := services.NewUserService(userRepo)
	gatewaySvc := services.NewGatewayService(gatewayRepo)
	actionSvc := services.NewActionService(actionRepo, gatewayRepo)
	ingestionSvc := services.NewIngestionService(gdb)
	dashboardSvc := services.NewDashboardService(gdb, rdb, time.Duration(cfg.Redis.KPICacheSec)*time.Second)
	logSvc := services.NewLogEventService(logRepo)
	ticketSvc := services.NewTicketService(nil, cfg.Mantis.URL, cfg.Mantis.APIKey)
	if err := userSvc.EnsureAdmin("admin", "admin123"); err != nil {
		global.Logger.Warn().Err(err).Msg("admin bootstrap failed")
	}

	// Ticketing credentials follow the config file without a restart.
	if err := config.Watch(configPath, func(fresh *config.Config) {
		ticketSvc.SetUpstream(fresh.Mantis.URL, fresh.Mantis.APIKey)
		global.Logger.Info().Msg("config reloaded")
	}); err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	mw := &middleware.Auth{Signer: signer}
	gwAuth := &middleware.GatewayAuth{
		Authenticator: services.NewGatewayAuthService(gatewayRepo),
		Require:       cfg.Ingest.RequireKey,
	}

	ingestCtrl := controllers.NewIngestController(ingestionSvc)
	dashCtrl := controllers.NewDashboardController(dashboardSvc)
	actionCtrl := controllers.NewActionController(actionSvc)
	gatewayCtrl := controllers.NewGatewayController(gatewaySvc)
	logCtrl := controllers.NewLogEventController(logSvc)
	channelCtrl := controllers.NewChannelController(channelRepo)
	ticketCtrl := controllers.NewTicketController(ticketSvc)
	authCtrl := controllers.NewAuthController(userSvc, signer)
	adminCtrl := controllers.NewAdminController(userSvc)

	// Router
	h := router.NewRouter(ingestCtrl, dashCtrl, actionCtrl, gatewayCtrl, logCtrl, channelCtrl, ticketCtrl, authCtrl, adminCtrl, mw, gwAuth)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Tickets: ticketSvc}, nil
}
