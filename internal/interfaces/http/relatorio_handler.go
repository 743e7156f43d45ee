package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/dto"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/usecase"
)

// RelatorioHandler serve os relatórios gerados (PDF e planilha).
type RelatorioHandler struct {
	uc *usecase.RelatorioUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *usecase.RelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// EstoquePDF godoc
// @Summary      Relatório de estoque em PDF
// @Description  Posição atual de todos os itens com valorização pelo último valor de entrada.
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/relatorios/estoque.pdf [get]
func (h *RelatorioHandler) EstoquePDF(c *fiber.Ctx) error {
	pdf, err := h.uc.EstoquePDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estoque.pdf"`)
	return c.Send(pdf)
}

// MovimentacoesXLSX godoc
// @Summary      Histórico de movimentações em XLSX
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/relatorios/movimentacoes.xlsx [get]
func (h *RelatorioHandler) MovimentacoesXLSX(c *fiber.Ctx) error {
	xlsx, err := h.uc.MovimentacoesXLSX()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimentacoes.xlsx"`)
	return c.Send(xlsx)
}
