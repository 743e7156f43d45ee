package texto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tiprefeitura/almoxarifado-api/pkg/texto"
)

func TestNormalizar(t *testing.T) {
	assert.Equal(t, "caneta azul", texto.Normalizar("Caneta Azul"))
	assert.Equal(t, "lapis", texto.Normalizar("  LÁPIS  "))
	assert.Equal(t, "grampeador", texto.Normalizar("GRAMPEADOR"))
	assert.Equal(t, "papel sulfite a4", texto.Normalizar("Papel Sulfite A4"))
	assert.Equal(t, "cafe", texto.Normalizar("Café"))
	assert.Equal(t, "acucar", texto.Normalizar("Açúcar"))
	assert.Equal(t, "", texto.Normalizar("   "))
}
