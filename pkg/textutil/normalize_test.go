package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-ledger/pkg/textutil"
)

func TestFold_QuitaTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "cafe con leche", textutil.Fold("Café con Leche"))
	assert.Equal(t, "jabon liquido", textutil.Fold("JABÓN LÍQUIDO"))
	assert.Equal(t, "algodon esteril", textutil.Fold("Algodón estéril"))
}

func TestFold_ColapsaEspacios(t *testing.T) {
	assert.Equal(t, "cafe con leche", textutil.Fold("  cafe   CON  leche "))
}

func TestFold_EquivalenciaDeVariantes(t *testing.T) {
	assert.Equal(t, textutil.Fold("Café con Leche"), textutil.Fold("cafe  CON leche"),
		"variantes con tildes, mayúsculas y espacios pliegan al mismo valor")
}

func TestFold_EniePliegaEnEne(t *testing.T) {
	// U+00F1 descompone en n + virgulilla combinable, que el plegado elimina.
	assert.Equal(t, "manana", textutil.Fold("Mañana"))
}

func TestFoldContains(t *testing.T) {
	assert.True(t, textutil.FoldContains("Algodón estéril", "ALGODON"))
	assert.True(t, textutil.FoldContains("Jabón líquido", "liquido"))
	assert.False(t, textutil.FoldContains("Gasas", "algodon"))
}
