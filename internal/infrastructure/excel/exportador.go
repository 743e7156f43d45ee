// Package excel exporta o histórico de movimentações em planilha XLSX.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	appusecase "github.com/tiprefeitura/almoxarifado-api/internal/application/usecase"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
)

const planilha = "Movimentações"

var _ appusecase.MovimentacoesExporter = (*MovimentacoesExporter)(nil)

// MovimentacoesExporter implementa usecase.MovimentacoesExporter com excelize.
type MovimentacoesExporter struct{}

// NewMovimentacoesExporter constrói o exportador.
func NewMovimentacoesExporter() *MovimentacoesExporter { return &MovimentacoesExporter{} }

// Exportar gera a planilha com uma linha por registro do histórico e devolve
// os bytes do arquivo.
func (e *MovimentacoesExporter) Exportar(logs []*entity.LogMovimentacao) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(planilha)
	if err != nil {
		return nil, fmt.Errorf("excel: criar planilha: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	cabecalhos := []string{"Data", "Tipo", "Item", "Quantidade", "Detalhe", "Usuário"}
	for i, h := range cabecalhos {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(planilha, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabeçalho: %w", err)
		}
	}

	for linha, l := range logs {
		valores := []interface{}{
			l.Data.Format("02/01/2006 15:04:05"),
			l.Tipo,
			l.ItemNome,
			l.Delta,
			l.Detalhe,
			l.Usuario,
		}
		for coluna, v := range valores {
			cell, _ := excelize.CoordinatesToCellName(coluna+1, linha+2)
			if err := f.SetCellValue(planilha, cell, v); err != nil {
				return nil, fmt.Errorf("excel: linha %d: %w", linha+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: gravar arquivo: %w", err)
	}
	return buf.Bytes(), nil
}
