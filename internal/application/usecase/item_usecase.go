package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tiprefeitura/almoxarifado-api/internal/application/dto"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
	"github.com/tiprefeitura/almoxarifado-api/pkg/texto"
)

// ItemUseCase casos de uso do catálogo de itens. Nunca altera quantidade;
// isso é exclusividade do coordenador de movimentações.
type ItemUseCase struct {
	itemRepo repository.ItemRepository
}

// NewItemUseCase constrói o caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo}
}

// Criar cadastra um item com quantidade zero. ErrCodigoDuplicado se o código já existe.
func (uc *ItemUseCase) Criar(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	existente, err := uc.itemRepo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrCodigoDuplicado
	}
	now := time.Now()
	item := &entity.Item{
		ID:         uuid.New().String(),
		Codigo:     in.Codigo,
		Nome:       in.Nome,
		Quantidade: 0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Atualizar muda código/nome. ErrItemNaoEncontrado se ausente;
// ErrCodigoDuplicado se o novo código pertence a outro item.
func (uc *ItemUseCase) Atualizar(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNaoEncontrado
	}
	if in.Codigo != item.Codigo {
		outro, err := uc.itemRepo.GetByCodigo(in.Codigo)
		if err != nil {
			return nil, err
		}
		if outro != nil && outro.ID != id {
			return nil, domain.ErrCodigoDuplicado
		}
	}
	item.Codigo = in.Codigo
	item.Nome = in.Nome
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Excluir remove o item do catálogo. Movimentações antigas ficam órfãs de
// propósito: o histórico guarda o nome do item e continua legível.
func (uc *ItemUseCase) Excluir(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNaoEncontrado
	}
	return uc.itemRepo.Delete(id)
}

// Listar lista itens com paginação. A busca é insensível a acentos.
func (uc *ItemUseCase) Listar(busca string, page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()
	items, err := uc.itemRepo.List(texto.Normalizar(busca), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ItemListResponse{
		Items: make([]dto.ItemResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, item := range items {
		out.Items = append(out.Items, *toItemResponse(item))
	}
	return out, nil
}

// BuscarPorID devolve um item por ID (nil se não existe).
func (uc *ItemUseCase) BuscarPorID(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil || item == nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:         i.ID,
		Codigo:     i.Codigo,
		Nome:       i.Nome,
		Quantidade: i.Quantidade,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}
