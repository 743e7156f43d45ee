package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/dto"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/estoque"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain"
)

// EntradaHandler trata as requisições HTTP de entradas de estoque (protegido).
type EntradaHandler struct {
	uc *estoque.MovimentacaoUseCase
}

// NewEntradaHandler constrói o handler.
func NewEntradaHandler(uc *estoque.MovimentacaoUseCase) *EntradaHandler {
	return &EntradaHandler{uc: uc}
}

// movimentacaoError mapeia os erros do coordenador de movimentações para HTTP.
// Compartilhado pelos handlers de entrada e saída.
func movimentacaoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrItemNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "item não encontrado"})
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimentação não encontrada"})
	case errors.Is(err, domain.ErrEstoqueInsuficiente):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrAjusteInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ADJUSTMENT", Message: err.Error()})
	case errors.Is(err, domain.ErrQuantidadeInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade deve ser maior que zero"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Registrar entrada de estoque
// @Tags         entradas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarEntradaRequest  true  "dados da entrada"
// @Success      201   {object}  dto.EntradaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entradas [post]
func (h *EntradaHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistrarEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.RegistrarEntrada(c.UserContext(), in, GetUsername(c))
	if err != nil {
		return movimentacaoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar entradas
// @Tags         entradas
// @Security     Bearer
// @Produce      json
// @Param        item_id  query  string  false  "filtrar por item"
// @Param        limit    query  int     false  "limite"  default(20)
// @Param        offset   query  int     false  "offset"  default(0)
// @Success      200      {object}  dto.EntradaListResponse
// @Router       /api/entradas [get]
func (h *EntradaHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListarEntradas(c.Query("item_id"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter entrada por ID
// @Tags         entradas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da entrada"
// @Success      200  {object}  dto.EntradaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [get]
func (h *EntradaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.BuscarEntrada(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada não encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar entrada (recalcula o saldo do item)
// @Tags         entradas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da entrada"
// @Param        body  body  dto.EditarEntradaRequest  true  "novos dados"
// @Success      200   {object}  dto.EntradaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [put]
func (h *EntradaHandler) Update(c *fiber.Ctx) error {
	var in dto.EditarEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.EditarEntrada(c.UserContext(), c.Params("id"), in, GetUsername(c))
	if err != nil {
		return movimentacaoError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir entrada (estorna o efeito no saldo)
// @Tags         entradas
// @Security     Bearer
// @Param        id  path  string  true  "ID da entrada"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [delete]
func (h *EntradaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.ExcluirEntrada(c.UserContext(), c.Params("id"), GetUsername(c)); err != nil {
		return movimentacaoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
