package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/pedidos/internal/excel"
	"github.com/nurpe/pedidos/internal/pdf"
)

func writeContract(t *testing.T, dir string) string {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetFont("Helvetica", "", 10)
	doc.AddPage()
	for _, line := range []string{
		"CONTRATANTE: Sr(a) Maria Silva, brasileiro(a), RG: 12.345.678-9 e CPF: 123.456.789-00, residente",
		"PRODUTOS CONTRATADOS",
		"2 Bolo de Chocolate 50,00 100,00",
		"CLÁUSULA 2",
		"O valor total de R$ 100,00",
	} {
		doc.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	path := filepath.Join(dir, "contrato.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestRootCommandJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeContract(t, dir)
	xlsxPath := filepath.Join(dir, "dados.xlsx")
	receiptPath := filepath.Join(dir, "recibo.pdf")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{path, "--json", "--xlsx", xlsxPath, "--receipt", receiptPath})
	require.NoError(t, cmd.Execute())

	var out output
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "Maria Silva", out.Draft.ClienteNome)
	assert.Equal(t, 2, out.Draft.Quantidade)
	assert.False(t, out.Record.EventDate.Present())

	assert.FileExists(t, xlsxPath)
	receipt, err := os.ReadFile(receiptPath)
	require.NoError(t, err)
	text, err := pdf.ExtractText(bytes.NewReader(receipt))
	require.NoError(t, err)
	assert.Contains(t, text, "Maria Silva")
}

func TestRootCommandSummary(t *testing.T) {
	path := writeContract(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "Contratante: Maria Silva (RG 12.345.678-9, CPF 123.456.789-00)")
	assert.Contains(t, stdout.String(), "Contratado: Não encontrado")
	assert.Contains(t, stdout.String(), "Total dos Itens: R$ 100,00\n")
	assert.Contains(t, stdout.String(), "Quantidade: 2")
}

func TestRootCommandWriteFailures(t *testing.T) {
	dir := t.TempDir()
	path := writeContract(t, dir)
	missingDir := filepath.Join(dir, "nao-existe")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{
			name: "spreadsheet",
			args: []string{path, "--xlsx", filepath.Join(missingDir, "dados.xlsx")},
			want: excel.ErrWriteFailure,
		},
		{
			name: "receipt",
			args: []string{path, "--receipt", filepath.Join(missingDir, "recibo.pdf")},
			want: pdf.ErrWriteFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := newRootCmd(&stdout, &stderr)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRootCommandMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nada.pdf")})

	err := cmd.Execute()
	assert.ErrorIs(t, err, pdf.ErrSourceNotFound)
}
