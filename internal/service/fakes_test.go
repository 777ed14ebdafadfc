package service

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/pedidos/internal/model"
)

type fakePedidoStore struct {
	nextID  int64
	pedidos map[int64]model.Pedido
	updates []map[string]interface{}
}

func newFakePedidoStore(pedidos ...model.Pedido) *fakePedidoStore {
	s := &fakePedidoStore{pedidos: make(map[int64]model.Pedido)}
	for _, p := range pedidos {
		s.pedidos[p.ID] = p
		if p.ID > s.nextID {
			s.nextID = p.ID
		}
	}
	return s
}

func (s *fakePedidoStore) Create(_ context.Context, p model.Pedido) (*model.Pedido, error) {
	s.nextID++
	p.ID = s.nextID
	p.CreatedAt = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	s.pedidos[p.ID] = p
	return &p, nil
}

func (s *fakePedidoStore) GetByID(_ context.Context, id int64) (*model.Pedido, error) {
	p, ok := s.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (s *fakePedidoStore) List(_ context.Context, filter model.PedidoFilter) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range s.pedidos {
		if filter.Cliente != "" && !strings.Contains(strings.ToLower(p.ClienteNome), strings.ToLower(filter.Cliente)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *fakePedidoStore) ListByIDs(_ context.Context, ids []int64) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, id := range ids {
		if p, ok := s.pedidos[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePedidoStore) Update(_ context.Context, id int64, fields map[string]interface{}) error {
	p, ok := s.pedidos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.updates = append(s.updates, fields)
	if v, ok := fields["status"].(string); ok {
		p.Status = v
	}
	if v, ok := fields["cliente_nome"].(string); ok {
		p.ClienteNome = v
	}
	if v, ok := fields["quantidade"].(int); ok {
		p.Quantidade = v
	}
	s.pedidos[id] = p
	return nil
}

func (s *fakePedidoStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.pedidos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.pedidos, id)
	return nil
}

type fakeUserStore struct {
	users map[string]model.User
}

func (s *fakeUserStore) Create(_ context.Context, email, passwordHash string) (*model.User, error) {
	if s.users == nil {
		s.users = make(map[string]model.User)
	}
	if _, taken := s.users[email]; taken {
		return nil, gorm.ErrDuplicatedKey
	}
	u := model.User{ID: int64(len(s.users) + 1), Email: email, PasswordHash: passwordHash}
	s.users[email] = u
	return &u, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(user model.User) (string, time.Time, error) {
	return "token-" + user.Email, time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), nil
}

type fakeStats struct {
	counts  []int64
	calls   [][2]time.Time
	product *model.RankedValue
	client  *model.RankedValue
}

func (s *fakeStats) CountCreatedBetween(_ context.Context, from, to time.Time) (int64, error) {
	s.calls = append(s.calls, [2]time.Time{from, to})
	idx := len(s.calls) - 1
	if idx < len(s.counts) {
		return s.counts[idx], nil
	}
	return 0, nil
}

func (s *fakeStats) TopProduct(context.Context) (*model.RankedValue, error) { return s.product, nil }

func (s *fakeStats) TopClient(context.Context) (*model.RankedValue, error) { return s.client, nil }

type recordingSheets struct {
	got []model.Pedido
}

func (r *recordingSheets) GeneratePedidos(pedidos []model.Pedido) ([]byte, error) {
	r.got = pedidos
	return []byte("xlsx"), nil
}

type recordingReceipts struct {
	got model.DeliveryReceipt
}

func (r *recordingReceipts) GenerateReceipt(doc model.DeliveryReceipt) ([]byte, error) {
	r.got = doc
	return []byte("%PDF"), nil
}
