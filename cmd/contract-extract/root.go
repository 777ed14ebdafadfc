package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nurpe/pedidos/internal/contract"
	"github.com/nurpe/pedidos/internal/excel"
	"github.com/nurpe/pedidos/internal/model"
	"github.com/nurpe/pedidos/internal/pdf"
)

type options struct {
	xlsxPath    string
	receiptPath string
	asJSON      bool
	verbose     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "contract-extract <contrato.pdf>",
		Short: "Extract order data from a contract PDF",
		Long: `Reads a contract PDF, prints the extracted fields and the pedido draft,
and optionally writes the contract spreadsheet and the delivery receipt.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).
				Level(level).With().Timestamp().Logger()
			return run(args[0], opts, stdout, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.xlsxPath, "xlsx", "", "write the extracted contract data to this .xlsx file")
	flags.StringVar(&opts.receiptPath, "receipt", "", "write a delivery receipt PDF to this file")
	flags.BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details")
	return cmd
}

type output struct {
	Record model.ContractRecord `json:"dadosExtraidos"`
	Draft  model.OrderDraft     `json:"pedidoPreenchido"`
}

func run(path string, opts options, stdout io.Writer, log zerolog.Logger) error {
	text, err := pdf.ExtractTextFile(path)
	if err != nil {
		return err
	}
	log.Debug().Str("file", path).Int("chars", len(text)).Msg("text extracted")

	rec := contract.Parse(text)
	draft, err := contract.MapDraft(rec, filepath.Base(path))
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output{Record: rec, Draft: draft}); err != nil {
			return err
		}
	} else {
		printSummary(stdout, rec, draft)
	}

	if opts.xlsxPath != "" {
		data, err := excel.NewGenerator().GenerateContract(rec)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.xlsxPath, data, 0o644); err != nil {
			return fmt.Errorf("%w: %w", excel.ErrWriteFailure, err)
		}
		log.Info().Str("file", opts.xlsxPath).Msg("spreadsheet written")
	}

	if opts.receiptPath != "" {
		data, err := pdf.NewGenerator().GenerateReceipt(contract.MapReceipt(rec, time.Now()))
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.receiptPath, data, 0o644); err != nil {
			return fmt.Errorf("%w: %w", pdf.ErrWriteFailure, err)
		}
		log.Info().Str("file", opts.receiptPath).Msg("receipt written")
	}
	return nil
}

func printSummary(w io.Writer, rec model.ContractRecord, draft model.OrderDraft) {
	contractor, hasContractor := rec.Contractor.Get()
	contracted, hasContracted := rec.ContractedParty.Get()

	fmt.Fprintln(w, "--- Dados extraídos ---")
	if hasContractor {
		fmt.Fprintf(w, "Contratante: %s (RG %s, CPF %s)\n", contractor.Name, contractor.NationalID, contractor.TaxID)
	} else {
		fmt.Fprintf(w, "Contratante: %s\n", model.NotFoundLabel)
	}
	if hasContracted {
		fmt.Fprintf(w, "Contratado: %s (CNPJ %s)\n", contracted.CompanyName, contracted.CompanyTaxID)
	} else {
		fmt.Fprintf(w, "Contratado: %s\n", model.NotFoundLabel)
	}
	fmt.Fprintf(w, "Valor Total do Pedido: %s\n", rec.TotalValue.OrElse(model.NotFoundLabel))
	fmt.Fprintf(w, "Data de Pagamento: %s\n", rec.PaymentDate.OrElse(model.NotFoundLabel))
	fmt.Fprintf(w, "Data do Evento: %s\n", rec.EventDate.OrElse(model.NotFoundLabel))
	fmt.Fprintf(w, "Local do Evento: %s\n", rec.EventLocation.OrElse(model.NotFoundLabel))

	fmt.Fprintln(w, "Produtos Contratados:")
	if len(rec.LineItems) == 0 {
		fmt.Fprintln(w, "  Nenhum produto encontrado.")
	}
	for _, item := range rec.LineItems {
		fmt.Fprintf(w, "  %s x %s | unit %s | total %s\n", item.Quantity, item.Description, item.UnitValue, item.TotalValue)
	}
	if len(rec.LineItems) > 0 {
		fmt.Fprintf(w, "Total dos Itens: R$ %s\n", contract.FormatAmount(contract.Aggregate(rec.LineItems).ItemsTotal))
	}

	fmt.Fprintln(w, "--- Pedido ---")
	fmt.Fprintf(w, "Cliente: %s\n", draft.ClienteNome)
	fmt.Fprintf(w, "Quantidade: %d\n", draft.Quantidade)
	fmt.Fprintf(w, "Sabores: %s\n", draft.Sabores)
	fmt.Fprintf(w, "Observações: %s\n", draft.Observacoes)
}
