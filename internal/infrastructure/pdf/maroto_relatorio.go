// Package pdf renderiza o relatório de posição de estoque do almoxarifado.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Almoxarifado — Posição de Estoque │ data de geração │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Código | Item | Quantidade | Valor Unit. | Total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: total de itens / valor total estimado               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appusecase "github.com/tiprefeitura/almoxarifado-api/internal/application/usecase"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
)

var (
	corPrimaria = &props.Color{Red: 0, Green: 90, Blue: 60}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appusecase.EstoquePDFGenerator = (*MarotoRelatorioGenerator)(nil)

// MarotoRelatorioGenerator implementa usecase.EstoquePDFGenerator usando Maroto v2.
type MarotoRelatorioGenerator struct{}

// NewMarotoRelatorioGenerator constrói o gerador.
func NewMarotoRelatorioGenerator() *MarotoRelatorioGenerator { return &MarotoRelatorioGenerator{} }

// GerarRelatorioEstoque gera o PDF e devolve seus bytes. valores traz o valor
// unitário mais recente por item; item sem valor entra com traço.
func (g *MarotoRelatorioGenerator) GerarRelatorioEstoque(
	_ context.Context,
	itens []*entity.Item,
	valores map[string]decimal.Decimal,
	geradoEm time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(geradoEm))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(tabelaHeaderRow())

	totalGeral := decimal.Zero
	for _, item := range itens {
		valor, temValor := valores[item.ID]
		linhaTotal := decimal.Zero
		if temValor {
			linhaTotal = valor.Mul(decimal.NewFromInt(int64(item.Quantidade)))
			totalGeral = totalGeral.Add(linhaTotal)
		}
		m.AddRows(itemRow(item, valor, linhaTotal, temValor))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(rodapeRow(len(itens), totalGeral))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (esq) e data de geração (dir).
func headerRow(geradoEm time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("ALMOXARIFADO — POSIÇÃO DE ESTOQUE", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: corPrimaria, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+geradoEm.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: corCinza,
			}),
		),
	)
}

// tabelaHeaderRow: cabeçalho da tabela de itens.
func tabelaHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: corPrimaria, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Item", 5, align.Left),
		h("Qtd.", 1, align.Center),
		h("Valor Unit.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// itemRow: uma linha por item do catálogo.
func itemRow(item *entity.Item, valor, total decimal.Decimal, temValor bool) core.Row {
	valorStr, totalStr := "—", "—"
	if temValor {
		valorStr = "R$ " + valor.StringFixed(2)
		totalStr = "R$ " + total.StringFixed(2)
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(item.Codigo, props.Text{Size: 8, Top: 1})),
		col.New(5).Add(text.New(item.Nome, props.Text{Size: 8, Top: 1})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantidade), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(2).Add(text.New(valorStr, props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(totalStr, props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

// rodapeRow: totais do relatório.
func rodapeRow(totalItens int, totalGeral decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("%d itens cadastrados", totalItens), props.Text{
				Size: 9, Top: 2, Color: corCinza,
			}),
		),
		col.New(6).Add(
			text.New("Valor total estimado: R$ "+totalGeral.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: corPrimaria,
			}),
		),
	)
}
