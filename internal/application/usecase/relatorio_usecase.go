package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
)

// EstoquePDFGenerator porto para a renderização do relatório de estoque.
type EstoquePDFGenerator interface {
	GerarRelatorioEstoque(ctx context.Context, itens []*entity.Item, valores map[string]decimal.Decimal, geradoEm time.Time) ([]byte, error)
}

// MovimentacoesExporter porto para a exportação do histórico em planilha.
type MovimentacoesExporter interface {
	Exportar(logs []*entity.LogMovimentacao) ([]byte, error)
}

// RelatorioUseCase monta os relatórios do almoxarifado: posição de estoque em
// PDF e histórico de movimentações em XLSX.
type RelatorioUseCase struct {
	itemRepo    repository.ItemRepository
	entradaRepo repository.EntradaRepository
	logRepo     repository.LogRepository
	pdfGen      EstoquePDFGenerator
	exporter    MovimentacoesExporter
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(
	itemRepo repository.ItemRepository,
	entradaRepo repository.EntradaRepository,
	logRepo repository.LogRepository,
	pdfGen EstoquePDFGenerator,
	exporter MovimentacoesExporter,
) *RelatorioUseCase {
	return &RelatorioUseCase{
		itemRepo:    itemRepo,
		entradaRepo: entradaRepo,
		logRepo:     logRepo,
		pdfGen:      pdfGen,
		exporter:    exporter,
	}
}

// EstoquePDF gera o PDF da posição atual do estoque, valorizando cada item
// pelo valor unitário da entrada mais recente que o informou.
func (uc *RelatorioUseCase) EstoquePDF(ctx context.Context) ([]byte, error) {
	itens, err := uc.itemRepo.ListAll()
	if err != nil {
		return nil, err
	}
	valores, err := uc.entradaRepo.UltimosValoresUnitarios()
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GerarRelatorioEstoque(ctx, itens, valores, time.Now())
}

// MovimentacoesXLSX exporta o histórico completo de movimentações.
func (uc *RelatorioUseCase) MovimentacoesXLSX() ([]byte, error) {
	logs, err := uc.logRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.exporter.Exportar(logs)
}
