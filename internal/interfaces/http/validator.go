package http

import "github.com/go-playground/validator/v10"

// validate é a instância compartilhada do validator para os DTOs anotados
// com tags `validate`.
var validate = validator.New()
