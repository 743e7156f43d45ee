package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrItemNaoEncontrado    = errors.New("item não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrCodigoDuplicado      = errors.New("código já cadastrado")
	ErrUsernameJaExiste     = errors.New("username já cadastrado")
	ErrQuantidadeInvalida   = errors.New("quantidade inválida")
	ErrEstoqueInsuficiente  = errors.New("estoque insuficiente")
	ErrAjusteInvalido       = errors.New("ajuste deixaria o estoque negativo")
	ErrNaoAutorizado        = errors.New("não autorizado")
	ErrAcessoNegado         = errors.New("acesso negado")
	ErrSenhaIncorreta       = errors.New("senha incorreta")
)
