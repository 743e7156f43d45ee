package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/auth"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/estoque"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ItemUC      *usecase.ItemUseCase
	MovimentoUC *estoque.MovimentacaoUseCase
	LogUC       *usecase.LogUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	RelatorioUC *usecase.RelatorioUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Itens (protegido)
	itens := protected.Group("/itens")
	itemHandler := NewItemHandler(deps.ItemUC)
	itens.Post("/", itemHandler.Create)
	itens.Get("/", itemHandler.List)
	itens.Get("/:id", itemHandler.GetByID)
	itens.Put("/:id", itemHandler.Update)
	itens.Delete("/:id", itemHandler.Delete)

	// Entradas (protegido)
	entradas := protected.Group("/entradas")
	entradaHandler := NewEntradaHandler(deps.MovimentoUC)
	entradas.Post("/", entradaHandler.Create)
	entradas.Get("/", entradaHandler.List)
	entradas.Get("/:id", entradaHandler.GetByID)
	entradas.Put("/:id", entradaHandler.Update)
	entradas.Delete("/:id", entradaHandler.Delete)

	// Saídas (protegido)
	saidas := protected.Group("/saidas")
	saidaHandler := NewSaidaHandler(deps.MovimentoUC)
	saidas.Post("/", saidaHandler.Create)
	saidas.Get("/", saidaHandler.List)
	saidas.Get("/:id", saidaHandler.GetByID)
	saidas.Put("/:id", saidaHandler.Update)
	saidas.Delete("/:id", saidaHandler.Delete)

	// Logs (protegido, somente leitura)
	logs := protected.Group("/logs")
	logHandler := NewLogHandler(deps.LogUC)
	logs.Get("/", logHandler.List)

	// Relatórios (protegido)
	relatorios := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatorios.Get("/estoque.pdf", relatorioHandler.EstoquePDF)
	relatorios.Get("/movimentacoes.xlsx", relatorioHandler.MovimentacoesXLSX)

	// Usuários: troca da própria senha é de qualquer autenticado;
	// o restante exige administrador.
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	protected.Put("/usuarios/senha", usuarioHandler.UpdateSenha)

	usuarios := protected.Group("/usuarios", RequireAdmin())
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)
}
