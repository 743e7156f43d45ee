package usecase

import (
	"github.com/tiprefeitura/almoxarifado-api/internal/application/dto"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
)

// LogUseCase leitura do histórico de movimentações (somente leitura; quem
// escreve é o coordenador, dentro de transação).
type LogUseCase struct {
	logRepo repository.LogRepository
}

// NewLogUseCase constrói o caso de uso.
func NewLogUseCase(logRepo repository.LogRepository) *LogUseCase {
	return &LogUseCase{logRepo: logRepo}
}

// Listar devolve o histórico paginado, do mais recente para o mais antigo.
func (uc *LogUseCase) Listar(page dto.PageRequest) (*dto.LogListResponse, error) {
	page.DefaultPage()
	logs, err := uc.logRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.logRepo.Count()
	if err != nil {
		return nil, err
	}
	out := &dto.LogListResponse{
		Logs: make([]dto.LogResponse, 0, len(logs)),
		Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, l := range logs {
		out.Logs = append(out.Logs, dto.LogResponse{
			ID:       l.ID,
			Tipo:     l.Tipo,
			ItemNome: l.ItemNome,
			Delta:    l.Delta,
			Detalhe:  l.Detalhe,
			Usuario:  l.Usuario,
			Data:     l.Data,
		})
	}
	return out, nil
}
