package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiprefeitura/almoxarifado-api/internal/application/usecase"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
)

type capturaPDF struct {
	itens   []*entity.Item
	valores map[string]decimal.Decimal
}

func (g *capturaPDF) GerarRelatorioEstoque(_ context.Context, itens []*entity.Item, valores map[string]decimal.Decimal, _ time.Time) ([]byte, error) {
	g.itens = itens
	g.valores = valores
	return []byte("%PDF-fake"), nil
}

type capturaXLSX struct {
	logs []*entity.LogMovimentacao
}

func (e *capturaXLSX) Exportar(logs []*entity.LogMovimentacao) ([]byte, error) {
	e.logs = logs
	return []byte("PK-fake"), nil
}

func TestRelatorioEstoquePDF(t *testing.T) {
	itemRepo := newFakeItemRepo()
	id := itemRepo.seed("TEC-001", "Teclado USB", 12)
	valores := &fakeEntradaValores{valores: map[string]decimal.Decimal{
		id: decimal.NewFromFloat(89.90),
	}}
	gen := &capturaPDF{}

	uc := usecase.NewRelatorioUseCase(itemRepo, valores, &fakeLogRepo{}, gen, &capturaXLSX{})
	pdf, err := uc.EstoquePDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	require.Len(t, gen.itens, 1)
	assert.Equal(t, "Teclado USB", gen.itens[0].Nome)
	assert.True(t, gen.valores[id].Equal(decimal.NewFromFloat(89.90)))
}

func TestRelatorioMovimentacoesXLSX(t *testing.T) {
	logRepo := &fakeLogRepo{}
	require.NoError(t, logRepo.Append(&entity.LogMovimentacao{Tipo: entity.LogTipoEntrada, ItemNome: "Teclado USB", Delta: 5}))
	require.NoError(t, logRepo.Append(&entity.LogMovimentacao{Tipo: entity.LogTipoSaida, ItemNome: "Teclado USB", Delta: -2}))
	exp := &capturaXLSX{}

	uc := usecase.NewRelatorioUseCase(newFakeItemRepo(), &fakeEntradaValores{}, logRepo, &capturaPDF{}, exp)
	xlsx, err := uc.MovimentacoesXLSX()
	require.NoError(t, err)
	assert.NotEmpty(t, xlsx)

	require.Len(t, exp.logs, 2)
	assert.Equal(t, entity.LogTipoSaida, exp.logs[0].Tipo, "exportação sai do mais recente para o mais antigo")
}
