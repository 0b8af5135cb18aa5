package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-chatbot/internal/audit"
	"github.com/BruksfildServices01/barber-chatbot/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-chatbot/internal/db"
	"github.com/BruksfildServices01/barber-chatbot/internal/dialogue"
	"github.com/BruksfildServices01/barber-chatbot/internal/logger"
	"github.com/BruksfildServices01/barber-chatbot/internal/routes"
	"github.com/BruksfildServices01/barber-chatbot/internal/schedule"
	"github.com/BruksfildServices01/barber-chatbot/internal/session"
	"github.com/BruksfildServices01/barber-chatbot/internal/telegram"
	"github.com/BruksfildServices01/barber-chatbot/internal/timezone"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.IsProduction())
	defer log.Sync()

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_API_KEY is not set")
	}

	// Trilha de auditoria: log estruturado sempre, Postgres quando houver
	// DATABASE_URL.
	sinks := []audit.Sink{audit.NewZapSink(log)}

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db = dbpkg.NewDB(cfg, log)
		sinks = append(sinks, audit.NewStore(db))
	}

	dispatcher := audit.NewDispatcher(log, sinks...)
	defer dispatcher.Close()

	sessions := session.NewStore()
	ledger := schedule.NewLedger()

	clock := func() time.Time { return timezone.NowIn(cfg.Timezone) }
	engine := dialogue.NewEngine(sessions, ledger, dispatcher, clock)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, ledger, cfg)

	go func() {
		log.Info("reception API running", zap.String("addr", cfg.Addr()))
		if err := r.Run(cfg.Addr()); err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	bot, err := telegram.NewBot(cfg.TelegramToken, engine, log)
	if err != nil {
		log.Fatal("failed to start telegram bot", zap.Error(err))
	}

	log.Info("bot polling", zap.String("timezone", cfg.Timezone))
	bot.Start()
}
