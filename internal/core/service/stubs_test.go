package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/orderdesk/orders-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory store shared by the client and order stubs, so HasOrders sees
// orders created through the order repository.
// ---------------------------------------------------------------------------

type memDB struct {
	clients map[string]*domain.Client
	orders  map[string]*domain.Order
	seq     int
	err     error // if set, every call returns it

	clientWrites int
	orderWrites  int
}

func newMemDB() *memDB {
	return &memDB{
		clients: make(map[string]*domain.Client),
		orders:  make(map[string]*domain.Order),
	}
}

func (db *memDB) nextID(prefix string) string {
	db.seq++
	return fmt.Sprintf("%s%d", prefix, db.seq)
}

type stubClientRepo struct{ db *memDB }

func (r stubClientRepo) List(context.Context) ([]*domain.Client, error) {
	if r.db.err != nil {
		return nil, r.db.err
	}
	out := make([]*domain.Client, 0, len(r.db.clients))
	for _, c := range r.db.clients {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	if r.db.err != nil {
		return nil, r.db.err
	}
	c, ok := r.db.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r stubClientRepo) Create(_ context.Context, c *domain.Client) error {
	if r.db.err != nil {
		return r.db.err
	}
	c.ID = r.db.nextID("c")
	clone := *c
	r.db.clients[c.ID] = &clone
	r.db.clientWrites++
	return nil
}

func (r stubClientRepo) Update(_ context.Context, c *domain.Client) error {
	if r.db.err != nil {
		return r.db.err
	}
	clone := *c
	r.db.clients[c.ID] = &clone
	r.db.clientWrites++
	return nil
}

func (r stubClientRepo) Delete(_ context.Context, id string) error {
	if r.db.err != nil {
		return r.db.err
	}
	delete(r.db.clients, id)
	r.db.clientWrites++
	return nil
}

func (r stubClientRepo) Exists(_ context.Context, id string) (bool, error) {
	if r.db.err != nil {
		return false, r.db.err
	}
	_, ok := r.db.clients[id]
	return ok, nil
}

func (r stubClientRepo) HasOrders(_ context.Context, id string) (bool, error) {
	if r.db.err != nil {
		return false, r.db.err
	}
	for _, o := range r.db.orders {
		if o.ClientID == id {
			return true, nil
		}
	}
	return false, nil
}

type stubOrderRepo struct{ db *memDB }

func (r stubOrderRepo) List(context.Context) ([]*domain.Order, error) {
	if r.db.err != nil {
		return nil, r.db.err
	}
	out := make([]*domain.Order, 0, len(r.db.orders))
	for _, o := range r.db.orders {
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}

func (r stubOrderRepo) ListByClient(_ context.Context, clientID string) ([]*domain.Order, error) {
	if r.db.err != nil {
		return nil, r.db.err
	}
	var out []*domain.Order
	for _, o := range r.db.orders {
		if o.ClientID == clientID {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if r.db.err != nil {
		return nil, r.db.err
	}
	o, ok := r.db.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if r.db.err != nil {
		return r.db.err
	}
	o.ID = r.db.nextID("o")
	clone := *o
	r.db.orders[o.ID] = &clone
	r.db.orderWrites++
	return nil
}

func (r stubOrderRepo) Update(_ context.Context, o *domain.Order) error {
	if r.db.err != nil {
		return r.db.err
	}
	clone := *o
	r.db.orders[o.ID] = &clone
	r.db.orderWrites++
	return nil
}

func (r stubOrderRepo) Delete(_ context.Context, id string) error {
	if r.db.err != nil {
		return r.db.err
	}
	delete(r.db.orders, id)
	r.db.orderWrites++
	return nil
}

// ---------------------------------------------------------------------------
// Idempotency store stub
// ---------------------------------------------------------------------------

type stubIdempotency struct {
	keys      map[string]string
	lookupErr error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]string)}
}

func (s *stubIdempotency) Lookup(_ context.Context, scope, key string) (string, error) {
	if s.lookupErr != nil {
		return "", s.lookupErr
	}
	return s.keys[scope+"/"+key], nil
}

func (s *stubIdempotency) Remember(_ context.Context, scope, key, orderID string) error {
	s.keys[scope+"/"+key] = orderID
	return nil
}
