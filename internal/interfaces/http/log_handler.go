package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/dto"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/usecase"
)

// LogHandler expõe a trilha de auditoria (somente leitura).
type LogHandler struct {
	uc *usecase.LogUseCase
}

// NewLogHandler constrói o handler.
func NewLogHandler(uc *usecase.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// List godoc
// @Summary      Listar o histórico de movimentações
// @Description  Trilha de auditoria, da mais recente para a mais antiga.
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "limite"  default(20)
// @Param        offset  query  int  false  "offset"  default(0)
// @Success      200     {object}  dto.LogListResponse
// @Router       /api/logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Listar(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
