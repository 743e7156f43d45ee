package usecase_test

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tiprefeitura/almoxarifado-api/internal/domain/entity"
	"github.com/tiprefeitura/almoxarifado-api/pkg/texto"
)

// fakeItemRepo repositório de itens em memória para os tests de catálogo.
type fakeItemRepo struct {
	itens map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{itens: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) seed(codigo, nome string, quantidade int) string {
	id := uuid.NewString()
	r.itens[id] = &entity.Item{ID: id, Codigo: codigo, Nome: nome, Quantidade: quantidade}
	return id
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	c := *item
	r.itens[item.ID] = &c
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	if it, ok := r.itens[id]; ok {
		c := *it
		return &c, nil
	}
	return nil, nil
}

func (r *fakeItemRepo) GetByCodigo(codigo string) (*entity.Item, error) {
	for _, it := range r.itens {
		if it.Codigo == codigo {
			c := *it
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.GetByID(id) }

func (r *fakeItemRepo) Update(item *entity.Item) error {
	c := *item
	r.itens[item.ID] = &c
	return nil
}

func (r *fakeItemRepo) UpdateQuantidade(id string, quantidade int) error {
	if it, ok := r.itens[id]; ok {
		it.Quantidade = quantidade
	}
	return nil
}

func (r *fakeItemRepo) List(busca string, _, _ int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.itens {
		if busca == "" || strings.Contains(texto.Normalizar(it.Nome), busca) {
			c := *it
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ListAll() ([]*entity.Item, error) { return r.List("", 0, 0) }

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.itens, id)
	return nil
}

// fakeUsuarioRepo repositório de usuários em memória.
type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	c := *u
	r.usuarios[u.ID] = &c
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	if u, ok := r.usuarios[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	c := *u
	r.usuarios[u.ID] = &c
	return nil
}

func (r *fakeUsuarioRepo) UpdateSenha(id, senhaHash string) error {
	if u, ok := r.usuarios[id]; ok {
		u.SenhaHash = senhaHash
	}
	return nil
}

func (r *fakeUsuarioRepo) List(_, _ int) ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Delete(id string) error {
	delete(r.usuarios, id)
	return nil
}

// fakeEntradaValores só responde UltimosValoresUnitarios (relatórios).
type fakeEntradaValores struct {
	valores map[string]decimal.Decimal
}

func (r *fakeEntradaValores) Create(*entity.Entrada) error                  { return nil }
func (r *fakeEntradaValores) GetByID(string) (*entity.Entrada, error)       { return nil, nil }
func (r *fakeEntradaValores) Update(*entity.Entrada) error                  { return nil }
func (r *fakeEntradaValores) List(string, int, int) ([]*entity.Entrada, error) {
	return nil, nil
}
func (r *fakeEntradaValores) UltimosValoresUnitarios() (map[string]decimal.Decimal, error) {
	return r.valores, nil
}
func (r *fakeEntradaValores) Delete(string) error { return nil }

// fakeLogRepo histórico em memória, mais recente primeiro nas listagens.
type fakeLogRepo struct {
	logs []*entity.LogMovimentacao
}

func (r *fakeLogRepo) Append(l *entity.LogMovimentacao) error {
	c := *l
	r.logs = append(r.logs, &c)
	return nil
}

func (r *fakeLogRepo) List(limit, offset int) ([]*entity.LogMovimentacao, error) {
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

func (r *fakeLogRepo) ListAll() ([]*entity.LogMovimentacao, error) {
	out := make([]*entity.LogMovimentacao, 0, len(r.logs))
	for i := len(r.logs) - 1; i >= 0; i-- {
		c := *r.logs[i]
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeLogRepo) Count() (int, error) { return len(r.logs), nil }
