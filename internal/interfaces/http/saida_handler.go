package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/dto"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/estoque"
)

// SaidaHandler trata as requisições HTTP de saídas de estoque (protegido).
type SaidaHandler struct {
	uc *estoque.MovimentacaoUseCase
}

// NewSaidaHandler constrói o handler.
func NewSaidaHandler(uc *estoque.MovimentacaoUseCase) *SaidaHandler {
	return &SaidaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar saída de estoque
// @Tags         saidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarSaidaRequest  true  "dados da saída"
// @Success      201   {object}  dto.SaidaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/saidas [post]
func (h *SaidaHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistrarSaidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.RegistrarSaida(c.UserContext(), in, GetUsername(c))
	if err != nil {
		return movimentacaoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar saídas
// @Tags         saidas
// @Security     Bearer
// @Produce      json
// @Param        item_id  query  string  false  "filtrar por item"
// @Param        limit    query  int     false  "limite"  default(20)
// @Param        offset   query  int     false  "offset"  default(0)
// @Success      200      {object}  dto.SaidaListResponse
// @Router       /api/saidas [get]
func (h *SaidaHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListarSaidas(c.Query("item_id"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter saída por ID
// @Tags         saidas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da saída"
// @Success      200  {object}  dto.SaidaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/saidas/{id} [get]
func (h *SaidaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.BuscarSaida(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "saída não encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar saída (recalcula o saldo do item)
// @Tags         saidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da saída"
// @Param        body  body  dto.EditarSaidaRequest  true  "novos dados"
// @Success      200   {object}  dto.SaidaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/saidas/{id} [put]
func (h *SaidaHandler) Update(c *fiber.Ctx) error {
	var in dto.EditarSaidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.EditarSaida(c.UserContext(), c.Params("id"), in, GetUsername(c))
	if err != nil {
		return movimentacaoError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir saída (estorna o efeito no saldo)
// @Tags         saidas
// @Security     Bearer
// @Param        id  path  string  true  "ID da saída"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/saidas/{id} [delete]
func (h *SaidaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.ExcluirSaida(c.UserContext(), c.Params("id"), GetUsername(c)); err != nil {
		return movimentacaoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
