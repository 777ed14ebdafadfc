package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	present := Some("25/12/2024")
	absent := None[string]()

	assert.Equal(t, "25/12/2024", present.String())
	assert.Equal(t, NotFoundLabel, absent.String())
	assert.Equal(t, "", absent.OrElse(""))
	assert.Equal(t, "", Some("").String())
	assert.True(t, Some("").Present())
}

func TestOptionalJSON(t *testing.T) {
	rec := ContractRecord{
		Contractor: Some(Contractor{Name: "Maria Silva", NationalID: "1", TaxID: "2"}),
		TotalValue: Some("250,00"),
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"contratante": {"nome": "Maria Silva", "rg": "1", "cpf": "2"},
		"contratado": null,
		"produtosContratados": null,
		"valorTotalPedido": "250,00",
		"dataPagamento": null,
		"dataEvento": null,
		"localEvento": null
	}`, string(data))

	var back ContractRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rec, back)
}
