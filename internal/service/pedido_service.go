package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gorm.io/gorm"

	"github.com/nurpe/pedidos/internal/config"
	"github.com/nurpe/pedidos/internal/model"
)

type PedidoStore interface {
	Create(ctx context.Context, p model.Pedido) (*model.Pedido, error)
	GetByID(ctx context.Context, id int64) (*model.Pedido, error)
	List(ctx context.Context, filter model.PedidoFilter) ([]model.Pedido, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Pedido, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type PedidoService struct {
	repo          PedidoStore
	validStatuses []string
}

type CreatePedidoInput struct {
	ClienteNome              string
	DataEvento               string
	DataRetirada             string
	HorarioRetirada          string
	TipoPedido               string
	Quantidade               int
	Sabores                  string
	TipoEmbalagem            string
	Observacoes              string
	ClienteRG                string
	ClienteCPF               string
	NomeContratado           string
	CNPJContratado           string
	ValorTotalPedidoContrato string
	DataPagamentoContrato    string
	LocalEvento              string
	ProdutosContratadosJSON  string
	Principal                model.Principal
}

// UpdatePedidoInput carries the fields to change; nil fields are left as is.
type UpdatePedidoInput struct {
	ClienteNome              *string
	DataEvento               *string
	DataRetirada             *string
	HorarioRetirada          *string
	TipoPedido               *string
	Quantidade               *int
	Sabores                  *string
	TipoEmbalagem            *string
	Observacoes              *string
	Status                   *string
	ClienteRG                *string
	ClienteCPF               *string
	NomeContratado           *string
	CNPJContratado           *string
	ValorTotalPedidoContrato *string
	DataPagamentoContrato    *string
	LocalEvento              *string
	ProdutosContratadosJSON  *string
}

func NewPedidoService(repo PedidoStore, cfg *config.Config) *PedidoService {
	return &PedidoService{
		repo:          repo,
		validStatuses: cfg.Pedidos.ValidStatuses,
	}
}

func (s *PedidoService) Create(ctx context.Context, input CreatePedidoInput) (*model.Pedido, error) {
	required := map[string]string{
		"clienteNome":     input.ClienteNome,
		"dataEvento":      input.DataEvento,
		"tipoPedido":      input.TipoPedido,
		"dataRetirada":    input.DataRetirada,
		"horarioRetirada": input.HorarioRetirada,
	}
	var missing []string
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if input.Quantidade <= 0 {
		missing = append(missing, "quantidade")
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, fmt.Errorf("%w: campos obrigatórios faltando: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	if input.Principal.UserID == 0 {
		return nil, ErrPermissionDenied
	}

	produtos := input.ProdutosContratadosJSON
	if strings.TrimSpace(produtos) == "" {
		produtos = "[]"
	}

	return s.repo.Create(ctx, model.Pedido{
		UserID:                   input.Principal.UserID,
		ClienteNome:              strings.TrimSpace(input.ClienteNome),
		DataEvento:               input.DataEvento,
		DataRetirada:             input.DataRetirada,
		HorarioRetirada:          input.HorarioRetirada,
		TipoPedido:               input.TipoPedido,
		Quantidade:               input.Quantidade,
		Sabores:                  input.Sabores,
		TipoEmbalagem:            input.TipoEmbalagem,
		Observacoes:              input.Observacoes,
		Status:                   model.PedidoStatusPending,
		ClienteRG:                input.ClienteRG,
		ClienteCPF:               input.ClienteCPF,
		NomeContratado:           input.NomeContratado,
		CNPJContratado:           input.CNPJContratado,
		ValorTotalPedidoContrato: input.ValorTotalPedidoContrato,
		DataPagamentoContrato:    input.DataPagamentoContrato,
		LocalEvento:              input.LocalEvento,
		ProdutosContratadosJSON:  produtos,
	})
}

func (s *PedidoService) List(ctx context.Context, filter model.PedidoFilter) ([]model.Pedido, error) {
	pedidos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if pedidos == nil {
		pedidos = []model.Pedido{}
	}
	return pedidos, nil
}

func (s *PedidoService) Get(ctx context.Context, id int64) (*model.Pedido, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *PedidoService) Update(ctx context.Context, id int64, input UpdatePedidoInput) (*model.Pedido, error) {
	if input.Status != nil && !slices.Contains(s.validStatuses, *input.Status) {
		return nil, fmt.Errorf("%w: status inválido %q", ErrInvalidInput, *input.Status)
	}
	if input.Quantidade != nil && *input.Quantidade <= 0 {
		return nil, fmt.Errorf("%w: quantidade deve ser positiva", ErrInvalidInput)
	}
	if input.ClienteNome != nil && strings.TrimSpace(*input.ClienteNome) == "" {
		return nil, fmt.Errorf("%w: clienteNome não pode ser vazio", ErrInvalidInput)
	}

	if fields := updateFields(input); len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, notFound(err)
		}
	}
	return s.Get(ctx, id)
}

func (s *PedidoService) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id))
}

func updateFields(input UpdatePedidoInput) map[string]interface{} {
	fields := make(map[string]interface{})
	setString := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	setString("cliente_nome", input.ClienteNome)
	setString("data_evento", input.DataEvento)
	setString("data_retirada", input.DataRetirada)
	setString("horario_retirada", input.HorarioRetirada)
	setString("tipo_pedido", input.TipoPedido)
	setString("sabores", input.Sabores)
	setString("tipo_embalagem", input.TipoEmbalagem)
	setString("observacoes", input.Observacoes)
	setString("status", input.Status)
	setString("cliente_rg", input.ClienteRG)
	setString("cliente_cpf", input.ClienteCPF)
	setString("nome_contratado", input.NomeContratado)
	setString("cnpj_contratado", input.CNPJContratado)
	setString("valor_total_pedido_contrato", input.ValorTotalPedidoContrato)
	setString("data_pagamento_contrato", input.DataPagamentoContrato)
	setString("local_evento", input.LocalEvento)
	setString("produtos_contratados_json", input.ProdutosContratadosJSON)
	if input.Quantidade != nil {
		fields["quantidade"] = *input.Quantidade
	}
	return fields
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
