package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nurpe/pedidos/internal/config"
	"github.com/nurpe/pedidos/internal/contract"
	"github.com/nurpe/pedidos/internal/model"
)

type TextExtractor func(path string) (string, error)

type ContractExporter interface {
	GenerateContract(rec model.ContractRecord) ([]byte, error)
}

type ContractService struct {
	extract   TextExtractor
	exporter  ContractExporter
	uploadDir string
	log       zerolog.Logger
}

type ExtractResult struct {
	Record model.ContractRecord `json:"dadosExtraidos"`
	Draft  model.OrderDraft     `json:"pedidoPreenchido"`
}

func NewContractService(extract TextExtractor, exporter ContractExporter, cfg *config.Config, log zerolog.Logger) *ContractService {
	return &ContractService{
		extract:   extract,
		exporter:  exporter,
		uploadDir: cfg.Upload.Dir,
		log:       log,
	}
}

// ValidateFileName accepts PDF file names only.
func ValidateFileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: nenhum arquivo enviado", ErrInvalidInput)
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return fmt.Errorf("%w: tipo de arquivo não permitido, envie um PDF", ErrInvalidInput)
	}
	return nil
}

// ExtractUpload stores an uploaded contract in its own temporary file, runs
// the extraction on it and removes the file afterwards.
func (s *ContractService) ExtractUpload(ctx context.Context, r io.Reader, fileName string) (*ExtractResult, error) {
	if err := ValidateFileName(fileName); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.uploadDir, "contrato-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", path).Msg("failed to remove uploaded contract")
		}
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("store upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	return s.ExtractDraft(ctx, path, filepath.Base(fileName))
}

// ExtractDraft reads the contract at path and maps it to a pedido draft.
// fileName is the name shown in the draft notes.
func (s *ContractService) ExtractDraft(ctx context.Context, path, fileName string) (*ExtractResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := s.extract(path)
	if err != nil {
		return nil, err
	}

	rec := contract.Parse(text)
	s.logMisses(rec, fileName)

	draft, err := contract.MapDraft(rec, fileName)
	if err != nil {
		return nil, err
	}
	return &ExtractResult{Record: rec, Draft: draft}, nil
}

func (s *ContractService) ExportRecord(rec model.ContractRecord) ([]byte, error) {
	return s.exporter.GenerateContract(rec)
}

func (s *ContractService) logMisses(rec model.ContractRecord, fileName string) {
	var missing []string
	if !rec.Contractor.Present() {
		missing = append(missing, "contratante")
	}
	if !rec.ContractedParty.Present() {
		missing = append(missing, "contratado")
	}
	if len(rec.LineItems) == 0 {
		missing = append(missing, "produtos")
	}
	if !rec.TotalValue.Present() {
		missing = append(missing, "valorTotal")
	}
	if !rec.PaymentDate.Present() {
		missing = append(missing, "dataPagamento")
	}
	if !rec.EventDate.Present() {
		missing = append(missing, "dataEvento")
	}
	if !rec.EventLocation.Present() {
		missing = append(missing, "localEvento")
	}
	if len(missing) == 0 {
		return
	}
	s.log.Debug().
		Str("file", fileName).
		Strs("missing", missing).
		Msg("contract fields not found")
}
