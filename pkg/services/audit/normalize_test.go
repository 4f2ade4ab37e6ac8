package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaxID(t *testing.T) {
	assert.Equal(t, "12345678000199", normalizeTaxID("12.345.678/0001-99"))
	assert.Equal(t, "12345678000199", normalizeTaxID("12345678000199"))
	assert.Equal(t, "", normalizeTaxID("n/a"))
	assert.Equal(t, "", normalizeTaxID(""))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "cabocat5e", normalizeKey("CABO CAT-5e"))
	assert.Equal(t, "pn1", normalizeKey(" PN/1 "))
	assert.Equal(t, "", normalizeKey("--//--"))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "10", formatQuantity(10))
	assert.Equal(t, "2.5", formatQuantity(2.5))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1000.00", formatMoney(1000))
	assert.Equal(t, "999.97", formatMoney(999.97))
}
