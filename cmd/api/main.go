package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/auth"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/estoque"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/usecase"
	infraexcel "github.com/tiprefeitura/almoxarifado-api/internal/infrastructure/excel"
	infrapdf "github.com/tiprefeitura/almoxarifado-api/internal/infrastructure/pdf"
	"github.com/tiprefeitura/almoxarifado-api/internal/infrastructure/postgres"
	httpRouter "github.com/tiprefeitura/almoxarifado-api/internal/interfaces/http"
	"github.com/tiprefeitura/almoxarifado-api/pkg/config"
	"github.com/tiprefeitura/almoxarifado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// O segredo JWT nunca tem default: sem ele, ninguém sobe o serviço.
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET não definido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do esquema")
	}

	itemRepo := postgres.NewItemRepository(pool)
	entradaRepo := postgres.NewEntradaRepository(pool)
	saidaRepo := postgres.NewSaidaRepository(pool)
	logRepo := postgres.NewLogRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	itemUC := usecase.NewItemUseCase(itemRepo)
	movimentoUC := estoque.NewMovimentacaoUseCase(txRunner, entradaRepo, saidaRepo, cfg.Estoque.PermiteNegativo)
	logUC := usecase.NewLogUseCase(logRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	relatorioUC := usecase.NewRelatorioUseCase(
		itemRepo, entradaRepo, logRepo,
		infrapdf.NewMarotoRelatorioGenerator(),
		infraexcel.NewMovimentacoesExporter(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almoxarifado API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ItemUC:      itemUC,
		MovimentoUC: movimentoUC,
		LogUC:       logUC,
		UsuarioUC:   usuarioUC,
		RelatorioUC: relatorioUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
