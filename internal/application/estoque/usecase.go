package estoque

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/dto"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
)

// MovimentacaoUseCase é o coordenador do ledger: o único escritor da
// quantidade de um item. Toda operação roda numa transação com a linha do
// item bloqueada (SELECT FOR UPDATE), de modo que duas saídas concorrentes
// sobre o mesmo item nunca enxerguem o mesmo saldo.
type MovimentacaoUseCase struct {
	txRunner    TxRunner
	entradaRepo repository.EntradaRepository
	saidaRepo   repository.SaidaRepository

	// permiteNegativo: se falso, edições/estornos de entrada que deixariam a
	// quantidade negativa falham com ErrAjusteInvalido (ESTOQUE_PERMITE_NEGATIVO).
	permiteNegativo bool
}

// NewMovimentacaoUseCase constrói o coordenador. entradaRepo/saidaRepo são os
// adaptadores atados ao pool, usados apenas para leituras fora de transação.
func NewMovimentacaoUseCase(
	txRunner TxRunner,
	entradaRepo repository.EntradaRepository,
	saidaRepo repository.SaidaRepository,
	permiteNegativo bool,
) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{
		txRunner:        txRunner,
		entradaRepo:     entradaRepo,
		saidaRepo:       saidaRepo,
		permiteNegativo: permiteNegativo,
	}
}

// ── Entradas ──────────────────────────────────────────────────────────────────

// RegistrarEntrada persiste, na mesma transação, a entrada, a nova quantidade
// do item e o registro ENTRADA no histórico.
func (uc *MovimentacaoUseCase) RegistrarEntrada(ctx context.Context, in dto.RegistrarEntradaRequest, usuario string) (*dto.EntradaResponse, error) {
	if in.Quantidade <= 0 {
		return nil, domain.ErrQuantidadeInvalida
	}
	now := time.Now()
	entrada := &entity.Entrada{
		ID:          uuid.New().String(),
		ItemID:      in.ItemID,
		NFe:         in.NFe,
		Quantidade:  in.Quantidade,
		DataEntrega: in.DataEntrega,
		Observacao:  in.Observacao,
		CreatedAt:   now,
		CreatedBy:   usuario,
	}
	if in.ValorUnitario != nil {
		entrada.ValorUnitario = *in.ValorUnitario
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		entradaRepo repository.EntradaRepository,
		_ repository.SaidaRepository,
		logRepo repository.LogRepository,
	) error {
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNaoEncontrado
		}
		if err := entradaRepo.Create(entrada); err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantidade(item.ID, item.Quantidade+in.Quantidade); err != nil {
			return err
		}
		return logRepo.Append(&entity.LogMovimentacao{
			ID:       uuid.New().String(),
			Tipo:     entity.LogTipoEntrada,
			ItemNome: item.Nome,
			Delta:    in.Quantidade,
			Detalhe:  "NF-e " + in.NFe,
			Usuario:  usuario,
			Data:     now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toEntradaResponse(entrada), nil
}

// EditarEntrada recalcula a quantidade do item com o delta da edição:
// novaQtd = atual - antiga + nova. Se o resultado ficar negativo e a política
// não permitir, nada é aplicado.
func (uc *MovimentacaoUseCase) EditarEntrada(ctx context.Context, id string, in dto.EditarEntradaRequest, usuario string) (*dto.EntradaResponse, error) {
	if in.Quantidade <= 0 {
		return nil, domain.ErrQuantidadeInvalida
	}
	now := time.Now()
	var entrada *entity.Entrada

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		entradaRepo repository.EntradaRepository,
		_ repository.SaidaRepository,
		logRepo repository.LogRepository,
	) error {
		var err error
		entrada, err = entradaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entrada == nil {
			return domain.ErrNaoEncontrado
		}
		item, err := itemRepo.GetForUpdate(entrada.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNaoEncontrado
		}
		// Relê a entrada já sob o bloqueio da linha do item: a primeira leitura
		// só localiza o item, e outra transação pode ter alterado a movimentação
		// antes de o bloqueio ser obtido.
		entrada, err = entradaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entrada == nil {
			return domain.ErrNaoEncontrado
		}

		delta := in.Quantidade - entrada.Quantidade
		novaQtd := item.Quantidade + delta
		if novaQtd < 0 && !uc.permiteNegativo {
			return fmt.Errorf("%w: item %s ficaria com %d", domain.ErrAjusteInvalido, item.Nome, novaQtd)
		}

		entrada.NFe = in.NFe
		entrada.Quantidade = in.Quantidade
		entrada.DataEntrega = in.DataEntrega
		entrada.Observacao = in.Observacao
		if in.ValorUnitario != nil {
			entrada.ValorUnitario = *in.ValorUnitario
		} else {
			entrada.ValorUnitario = decimal.Zero
		}
		if err := entradaRepo.Update(entrada); err != nil {
			return err
		}
		if delta == 0 {
			// Só metadados mudaram; quantidade intacta, sem registro no histórico.
			return nil
		}
		if err := itemRepo.UpdateQuantidade(item.ID, novaQtd); err != nil {
			return err
		}
		return logRepo.Append(&entity.LogMovimentacao{
			ID:       uuid.New().String(),
			Tipo:     entity.LogTipoCorrecao,
			ItemNome: item.Nome,
			Delta:    delta,
			Detalhe:  "edição de entrada NF-e " + in.NFe,
			Usuario:  usuario,
			Data:     now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toEntradaResponse(entrada), nil
}

// ExcluirEntrada estorna o efeito da entrada (quantidade -= antiga) e remove a
// movimentação. O histórico ganha um registro CORREÇÃO com delta negativo.
func (uc *MovimentacaoUseCase) ExcluirEntrada(ctx context.Context, id, usuario string) error {
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		entradaRepo repository.EntradaRepository,
		_ repository.SaidaRepository,
		logRepo repository.LogRepository,
	) error {
		entrada, err := entradaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entrada == nil {
			return domain.ErrNaoEncontrado
		}
		item, err := itemRepo.GetForUpdate(entrada.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			// Item já removido do catálogo: a movimentação órfã sai sem mexer em saldo.
			return entradaRepo.Delete(id)
		}
		// Relê sob o bloqueio: a quantidade da entrada pode ter sido editada
		// por outra transação entre a primeira leitura e o bloqueio da linha.
		entrada, err = entradaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entrada == nil {
			return domain.ErrNaoEncontrado
		}

		novaQtd := item.Quantidade - entrada.Quantidade
		if novaQtd < 0 && !uc.permiteNegativo {
			return fmt.Errorf("%w: item %s ficaria com %d", domain.ErrAjusteInvalido, item.Nome, novaQtd)
		}
		if err := entradaRepo.Delete(id); err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantidade(item.ID, novaQtd); err != nil {
			return err
		}
		return logRepo.Append(&entity.LogMovimentacao{
			ID:       uuid.New().String(),
			Tipo:     entity.LogTipoCorrecao,
			ItemNome: item.Nome,
			Delta:    -entrada.Quantidade,
			Detalhe:  "estorno de entrada NF-e " + entrada.NFe,
			Usuario:  usuario,
			Data:     now,
		})
	})
}

// ── Saídas ────────────────────────────────────────────────────────────────────

// RegistrarSaida persiste a saída, debita a quantidade e registra SAÍDA no
// histórico. Falha com ErrEstoqueInsuficiente (nomeando o item) se a
// quantidade pedida excede o saldo; nesse caso nada é aplicado.
func (uc *MovimentacaoUseCase) RegistrarSaida(ctx context.Context, in dto.RegistrarSaidaRequest, usuario string) (*dto.SaidaResponse, error) {
	if in.Quantidade <= 0 {
		return nil, domain.ErrQuantidadeInvalida
	}
	now := time.Now()
	saida := &entity.Saida{
		ID:         uuid.New().String(),
		ItemID:     in.ItemID,
		Ticket:     in.Ticket,
		Patrimonio: in.Patrimonio,
		Secretaria: in.Secretaria,
		Quantidade: in.Quantidade,
		DataSaida:  now,
		CreatedAt:  now,
		CreatedBy:  usuario,
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		_ repository.EntradaRepository,
		saidaRepo repository.SaidaRepository,
		logRepo repository.LogRepository,
	) error {
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNaoEncontrado
		}
		if item.Quantidade < in.Quantidade {
			return fmt.Errorf("%w: item %s (disponível %d, pedido %d)",
				domain.ErrEstoqueInsuficiente, item.Nome, item.Quantidade, in.Quantidade)
		}
		if err := saidaRepo.Create(saida); err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantidade(item.ID, item.Quantidade-in.Quantidade); err != nil {
			return err
		}
		return logRepo.Append(&entity.LogMovimentacao{
			ID:       uuid.New().String(),
			Tipo:     entity.LogTipoSaida,
			ItemNome: item.Nome,
			Delta:    -in.Quantidade,
			Detalhe:  "destino " + in.Secretaria,
			Usuario:  usuario,
			Data:     now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toSaidaResponse(saida), nil
}

// EditarSaida credita a quantidade antiga de volta e revalida o saldo contra a
// nova: disponivel = atual + antiga; falha se disponivel < nova.
func (uc *MovimentacaoUseCase) EditarSaida(ctx context.Context, id string, in dto.EditarSaidaRequest, usuario string) (*dto.SaidaResponse, error) {
	if in.Quantidade <= 0 {
		return nil, domain.ErrQuantidadeInvalida
	}
	now := time.Now()
	var saida *entity.Saida

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		_ repository.EntradaRepository,
		saidaRepo repository.SaidaRepository,
		logRepo repository.LogRepository,
	) error {
		var err error
		saida, err = saidaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if saida == nil {
			return domain.ErrNaoEncontrado
		}
		item, err := itemRepo.GetForUpdate(saida.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNaoEncontrado
		}
		// Relê a saída já sob o bloqueio da linha do item, pelo mesmo motivo
		// da edição de entrada.
		saida, err = saidaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if saida == nil {
			return domain.ErrNaoEncontrado
		}

		disponivel := item.Quantidade + saida.Quantidade
		if disponivel < in.Quantidade {
			return fmt.Errorf("%w: item %s (disponível %d, pedido %d)",
				domain.ErrEstoqueInsuficiente, item.Nome, disponivel, in.Quantidade)
		}
		delta := saida.Quantidade - in.Quantidade // efeito no saldo do item

		saida.Ticket = in.Ticket
		saida.Patrimonio = in.Patrimonio
		saida.Secretaria = in.Secretaria
		saida.Quantidade = in.Quantidade
		if err := saidaRepo.Update(saida); err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		if err := itemRepo.UpdateQuantidade(item.ID, disponivel-in.Quantidade); err != nil {
			return err
		}
		return logRepo.Append(&entity.LogMovimentacao{
			ID:       uuid.New().String(),
			Tipo:     entity.LogTipoCorrecao,
			ItemNome: item.Nome,
			Delta:    delta,
			Detalhe:  "edição de saída para " + in.Secretaria,
			Usuario:  usuario,
			Data:     now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toSaidaResponse(saida), nil
}

// ExcluirSaida estorna a retirada: quantidade += antiga, registro CORREÇÃO
// com delta positivo, movimentação removida.
func (uc *MovimentacaoUseCase) ExcluirSaida(ctx context.Context, id, usuario string) error {
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		_ repository.EntradaRepository,
		saidaRepo repository.SaidaRepository,
		logRepo repository.LogRepository,
	) error {
		saida, err := saidaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if saida == nil {
			return domain.ErrNaoEncontrado
		}
		item, err := itemRepo.GetForUpdate(saida.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return saidaRepo.Delete(id)
		}
		// Relê sob o bloqueio para estornar a quantidade vigente, não a lida
		// antes do bloqueio.
		saida, err = saidaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if saida == nil {
			return domain.ErrNaoEncontrado
		}
		if err := saidaRepo.Delete(id); err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantidade(item.ID, item.Quantidade+saida.Quantidade); err != nil {
			return err
		}
		return logRepo.Append(&entity.LogMovimentacao{
			ID:       uuid.New().String(),
			Tipo:     entity.LogTipoCorrecao,
			ItemNome: item.Nome,
			Delta:    saida.Quantidade,
			Detalhe:  "estorno de saída para " + saida.Secretaria,
			Usuario:  usuario,
			Data:     now,
		})
	})
}

// ── Leituras (fora de transação) ──────────────────────────────────────────────

// ListarEntradas lista entradas, opcionalmente filtrando por item.
func (uc *MovimentacaoUseCase) ListarEntradas(itemID string, page dto.PageRequest) (*dto.EntradaListResponse, error) {
	page.DefaultPage()
	entradas, err := uc.entradaRepo.List(itemID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.EntradaListResponse{
		Entradas: make([]dto.EntradaResponse, 0, len(entradas)),
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, e := range entradas {
		out.Entradas = append(out.Entradas, *toEntradaResponse(e))
	}
	return out, nil
}

// BuscarEntrada devolve uma entrada por ID (nil se não existe).
func (uc *MovimentacaoUseCase) BuscarEntrada(id string) (*dto.EntradaResponse, error) {
	entrada, err := uc.entradaRepo.GetByID(id)
	if err != nil || entrada == nil {
		return nil, err
	}
	return toEntradaResponse(entrada), nil
}

// ListarSaidas lista saídas, opcionalmente filtrando por item.
func (uc *MovimentacaoUseCase) ListarSaidas(itemID string, page dto.PageRequest) (*dto.SaidaListResponse, error) {
	page.DefaultPage()
	saidas, err := uc.saidaRepo.List(itemID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SaidaListResponse{
		Saidas: make([]dto.SaidaResponse, 0, len(saidas)),
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, s := range saidas {
		out.Saidas = append(out.Saidas, *toSaidaResponse(s))
	}
	return out, nil
}

// BuscarSaida devolve uma saída por ID (nil se não existe).
func (uc *MovimentacaoUseCase) BuscarSaida(id string) (*dto.SaidaResponse, error) {
	saida, err := uc.saidaRepo.GetByID(id)
	if err != nil || saida == nil {
		return nil, err
	}
	return toSaidaResponse(saida), nil
}

func toEntradaResponse(e *entity.Entrada) *dto.EntradaResponse {
	return &dto.EntradaResponse{
		ID:            e.ID,
		ItemID:        e.ItemID,
		NFe:           e.NFe,
		Quantidade:    e.Quantidade,
		ValorUnitario: e.ValorUnitario,
		DataEntrega:   e.DataEntrega,
		Observacao:    e.Observacao,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
}

func toSaidaResponse(s *entity.Saida) *dto.SaidaResponse {
	return &dto.SaidaResponse{
		ID:         s.ID,
		ItemID:     s.ItemID,
		Ticket:     s.Ticket,
		Patrimonio: s.Patrimonio,
		Secretaria: s.Secretaria,
		Quantidade: s.Quantidade,
		DataSaida:  s.DataSaida,
		CreatedAt:  s.CreatedAt,
		CreatedBy:  s.CreatedBy,
	}
}
