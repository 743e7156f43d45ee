package estoque_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/repository"
)

// errFalhaInjetada simula uma falha de infraestrutura no meio da transação.
var errFalhaInjetada = errors.New("falha injetada")

// memStore guarda o estado em memória compartilhado pelos repositórios fake.
// O TxRunner fake serializa as transações com o mutex (equivalente grosseiro
// do SELECT FOR UPDATE) e restaura um snapshot em caso de erro (rollback).
type memStore struct {
	mu       sync.Mutex
	itens    map[string]*entity.Item
	entradas map[string]*entity.Entrada
	saidas   map[string]*entity.Saida
	logs     []*entity.LogMovimentacao

	falharAppendLog bool // quando true, LogRepository.Append devolve errFalhaInjetada
}

func newMemStore() *memStore {
	return &memStore{
		itens:    make(map[string]*entity.Item),
		entradas: make(map[string]*entity.Entrada),
		saidas:   make(map[string]*entity.Saida),
	}
}

// seedItem insere um item direto no estado e devolve o ID.
func (s *memStore) seedItem(codigo, nome string, quantidade int) string {
	id := uuid.NewString()
	s.itens[id] = &entity.Item{ID: id, Codigo: codigo, Nome: nome, Quantidade: quantidade}
	return id
}

func (s *memStore) quantidade(itemID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.itens[itemID]; ok {
		return it.Quantidade
	}
	return -1
}

type memSnapshot struct {
	itens    map[string]*entity.Item
	entradas map[string]*entity.Entrada
	saidas   map[string]*entity.Saida
	logs     []*entity.LogMovimentacao
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		itens:    make(map[string]*entity.Item, len(s.itens)),
		entradas: make(map[string]*entity.Entrada, len(s.entradas)),
		saidas:   make(map[string]*entity.Saida, len(s.saidas)),
		logs:     append([]*entity.LogMovimentacao(nil), s.logs...),
	}
	for id, it := range s.itens {
		c := *it
		snap.itens[id] = &c
	}
	for id, e := range s.entradas {
		c := *e
		snap.entradas[id] = &c
	}
	for id, sa := range s.saidas {
		c := *sa
		snap.saidas[id] = &c
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.itens = snap.itens
	s.entradas = snap.entradas
	s.saidas = snap.saidas
	s.logs = snap.logs
}

// ── TxRunner fake ─────────────────────────────────────────────────────────────

type memTxRunner struct {
	s *memStore
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	entradaRepo repository.EntradaRepository,
	saidaRepo repository.SaidaRepository,
	logRepo repository.LogRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.snapshot()
	err := fn(&memItemRepo{s: r.s}, &memEntradaRepo{s: r.s}, &memSaidaRepo{s: r.s}, &memLogRepo{s: r.s})
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

// ── Repositórios fake ─────────────────────────────────────────────────────────
// Os getters devolvem cópias, como um scan de banco devolveria; escritas
// substituem o registro no estado.

type memItemRepo struct{ s *memStore }

func (r *memItemRepo) Create(item *entity.Item) error {
	c := *item
	r.s.itens[item.ID] = &c
	return nil
}

func (r *memItemRepo) GetByID(id string) (*entity.Item, error) {
	if it, ok := r.s.itens[id]; ok {
		c := *it
		return &c, nil
	}
	return nil, nil
}

func (r *memItemRepo) GetByCodigo(codigo string) (*entity.Item, error) {
	for _, it := range r.s.itens {
		if it.Codigo == codigo {
			c := *it
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *memItemRepo) Update(item *entity.Item) error {
	c := *item
	r.s.itens[item.ID] = &c
	return nil
}

func (r *memItemRepo) UpdateQuantidade(id string, quantidade int) error {
	it, ok := r.s.itens[id]
	if !ok {
		return errors.New("item inexistente")
	}
	it.Quantidade = quantidade
	return nil
}

func (r *memItemRepo) List(string, int, int) ([]*entity.Item, error) {
	return r.ListAll()
}

func (r *memItemRepo) ListAll() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.s.itens))
	for _, it := range r.s.itens {
		c := *it
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return out, nil
}

func (r *memItemRepo) Delete(id string) error {
	delete(r.s.itens, id)
	return nil
}

type memEntradaRepo struct{ s *memStore }

func (r *memEntradaRepo) Create(e *entity.Entrada) error {
	c := *e
	r.s.entradas[e.ID] = &c
	return nil
}

func (r *memEntradaRepo) GetByID(id string) (*entity.Entrada, error) {
	if e, ok := r.s.entradas[id]; ok {
		c := *e
		return &c, nil
	}
	return nil, nil
}

func (r *memEntradaRepo) Update(e *entity.Entrada) error {
	c := *e
	r.s.entradas[e.ID] = &c
	return nil
}

func (r *memEntradaRepo) List(itemID string, _, _ int) ([]*entity.Entrada, error) {
	var out []*entity.Entrada
	for _, e := range r.s.entradas {
		if itemID == "" || e.ItemID == itemID {
			c := *e
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memEntradaRepo) UltimosValoresUnitarios() (map[string]decimal.Decimal, error) {
	ultimos := make(map[string]*entity.Entrada)
	for _, e := range r.s.entradas {
		if !e.ValorUnitario.IsPositive() {
			continue
		}
		if atual, ok := ultimos[e.ItemID]; !ok || e.CreatedAt.After(atual.CreatedAt) {
			ultimos[e.ItemID] = e
		}
	}
	out := make(map[string]decimal.Decimal, len(ultimos))
	for itemID, e := range ultimos {
		out[itemID] = e.ValorUnitario
	}
	return out, nil
}

func (r *memEntradaRepo) Delete(id string) error {
	delete(r.s.entradas, id)
	return nil
}

type memSaidaRepo struct{ s *memStore }

func (r *memSaidaRepo) Create(sa *entity.Saida) error {
	c := *sa
	r.s.saidas[sa.ID] = &c
	return nil
}

func (r *memSaidaRepo) GetByID(id string) (*entity.Saida, error) {
	if sa, ok := r.s.saidas[id]; ok {
		c := *sa
		return &c, nil
	}
	return nil, nil
}

func (r *memSaidaRepo) Update(sa *entity.Saida) error {
	c := *sa
	r.s.saidas[sa.ID] = &c
	return nil
}

func (r *memSaidaRepo) List(itemID string, _, _ int) ([]*entity.Saida, error) {
	var out []*entity.Saida
	for _, sa := range r.s.saidas {
		if itemID == "" || sa.ItemID == itemID {
			c := *sa
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memSaidaRepo) Delete(id string) error {
	delete(r.s.saidas, id)
	return nil
}

type memLogRepo struct{ s *memStore }

func (r *memLogRepo) Append(l *entity.LogMovimentacao) error {
	if r.s.falharAppendLog {
		return errFalhaInjetada
	}
	c := *l
	r.s.logs = append(r.s.logs, &c)
	return nil
}

func (r *memLogRepo) List(limit, offset int) ([]*entity.LogMovimentacao, error) {
	all, _ := r.ListAll()
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *memLogRepo) ListAll() ([]*entity.LogMovimentacao, error) {
	out := make([]*entity.LogMovimentacao, 0, len(r.s.logs))
	for i := len(r.s.logs) - 1; i >= 0; i-- {
		c := *r.s.logs[i]
		out = append(out, &c)
	}
	return out, nil
}

func (r *memLogRepo) Count() (int, error) {
	return len(r.s.logs), nil
}
