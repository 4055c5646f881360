package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/orderdesk/orders-api/internal/core/domain"
	"github.com/orderdesk/orders-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func seedClient(db *memDB) string {
	c := &domain.Client{Name: "Acme", Email: "ops@acme.io"}
	_ = stubClientRepo{db}.Create(context.Background(), c)
	return c.ID
}

func newTestOrderService(db *memDB, idem ports.IdempotencyStore) *OrderService {
	return NewOrderService(stubOrderRepo{db}, stubClientRepo{db}, idem, discardLogger)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestOrderService_Create_Success(t *testing.T) {
	db := newMemDB()
	clientID := seedClient(db)
	svc := newTestOrderService(db, nil)

	dto, err := svc.Create(context.Background(), ports.CreateOrderInput{
		ClientID: clientID,
		Total:    decimal.RequireFromString("50.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.ID == "" || dto.ClientID != clientID {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if !dto.Total.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected total 50, got %s", dto.Total)
	}
	if dto.OrderedAt.IsZero() {
		t.Error("OrderedAt must be set")
	}
	if dto.Replayed {
		t.Error("fresh order must not be flagged as replay")
	}
}

func TestOrderService_Create_RoundsTotal(t *testing.T) {
	db := newMemDB()
	clientID := seedClient(db)
	svc := newTestOrderService(db, nil)

	dto, err := svc.Create(context.Background(), ports.CreateOrderInput{ClientID: clientID, Total: decimal.RequireFromString("19.999")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.Total.String() != "20" {
		t.Fatalf("expected total rounded to 20, got %s", dto.Total)
	}
}

func TestOrderService_Create_UnknownClient(t *testing.T) {
	db := newMemDB()
	svc := newTestOrderService(db, nil)

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{ClientID: "999", Total: decimal.RequireFromString("50.00")})
	if !errors.Is(err, domain.ErrReferencedEntityNotFound) {
		t.Fatalf("expected ErrReferencedEntityNotFound, got %v", err)
	}
	if db.orderWrites != 0 {
		t.Fatal("nothing should be written")
	}
}

func TestOrderService_Create_RejectsNonPositiveTotal(t *testing.T) {
	db := newMemDB()
	clientID := seedClient(db)
	svc := newTestOrderService(db, nil)

	for _, total := range []string{"-5.00", "0", "0.004", "123456789012345678901234567890123456.78"} {
		_, err := svc.Create(context.Background(), ports.CreateOrderInput{ClientID: clientID, Total: decimal.RequireFromString(total)})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("total %s: expected ErrInvalidAmount, got %v", total, err)
		}
	}
	if db.orderWrites != 0 {
		t.Fatal("nothing should be written")
	}
}

func TestOrderService_Create_IdempotentReplay(t *testing.T) {
	db := newMemDB()
	clientID := seedClient(db)
	idem := newStubIdempotency()
	svc := newTestOrderService(db, idem)

	in := ports.CreateOrderInput{ClientID: clientID, Total: decimal.NewFromInt(10), IdempotencyKey: "key-1"}
	first, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	if second.ID != first.ID || !second.Replayed {
		t.Fatalf("expected replay of %s, got %+v", first.ID, second)
	}
	if db.orderWrites != 1 {
		t.Fatalf("expected exactly one write, got %d", db.orderWrites)
	}
}

func TestOrderService_Create_IdempotencyKeyScopedPerUser(t *testing.T) {
	db := newMemDB()
	clientID := seedClient(db)
	svc := newTestOrderService(db, newStubIdempotency())

	in := ports.CreateOrderInput{UserID: "u1", ClientID: clientID, Total: decimal.NewFromInt(10), IdempotencyKey: "key-1"}
	first, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	in.UserID = "u2"
	other, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("second user create: %v", err)
	}
	if other.Replayed || other.ID == first.ID {
		t.Fatalf("key of another user must not replay, got %+v", other)
	}
	if db.orderWrites != 2 {
		t.Fatalf("expected two writes, got %d", db.orderWrites)
	}
}

func TestOrderService_Create_IdempotencyKeyReusedForDifferentOrder(t *testing.T) {
	db := newMemDB()
	a := seedClient(db)
	b := seedClient(db)
	svc := newTestOrderService(db, newStubIdempotency())

	in := ports.CreateOrderInput{UserID: "u1", ClientID: a, Total: decimal.NewFromInt(10), IdempotencyKey: "key-1"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	for name, changed := range map[string]ports.CreateOrderInput{
		"other client": {UserID: "u1", ClientID: b, Total: decimal.NewFromInt(10), IdempotencyKey: "key-1"},
		"other total":  {UserID: "u1", ClientID: a, Total: decimal.NewFromInt(11), IdempotencyKey: "key-1"},
	} {
		_, err := svc.Create(context.Background(), changed)
		if !errors.Is(err, domain.ErrIdempotencyKeyReused) {
			t.Fatalf("%s: expected ErrIdempotencyKeyReused, got %v", name, err)
		}
	}
	if db.orderWrites != 1 {
		t.Fatalf("expected exactly one write, got %d", db.orderWrites)
	}

	// The same request with an equivalent total still replays.
	in.Total = decimal.RequireFromString("10.001")
	again, err := svc.Create(context.Background(), in)
	if err != nil || !again.Replayed {
		t.Fatalf("expected replay, got %+v, %v", again, err)
	}
}

func TestOrderService_Create_IdempotencyLookupFailureStillCreates(t *testing.T) {
	db := newMemDB()
	clientID := seedClient(db)
	idem := newStubIdempotency()
	idem.lookupErr = errors.New("redis down")
	svc := newTestOrderService(db, idem)

	dto, err := svc.Create(context.Background(), ports.CreateOrderInput{ClientID: clientID, Total: decimal.NewFromInt(10), IdempotencyKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.Replayed {
		t.Fatal("lookup failure must be treated as a miss")
	}
}

func TestOrderService_Create_StoreError(t *testing.T) {
	db := newMemDB()
	clientID := seedClient(db)
	svc := newTestOrderService(db, nil)
	db.err = errors.New("db down")

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{ClientID: clientID, Total: decimal.NewFromInt(10)})
	if err == nil || errors.Is(err, domain.ErrBusinessRule) {
		t.Fatalf("expected unexpected-category error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update / Delete / reads
// ---------------------------------------------------------------------------

func TestOrderService_Update(t *testing.T) {
	db := newMemDB()
	clientID := seedClient(db)
	svc := newTestOrderService(db, nil)
	created, _ := svc.Create(context.Background(), ports.CreateOrderInput{ClientID: clientID, Total: decimal.NewFromInt(10)})

	if err := svc.Update(context.Background(), created.ID, ports.UpdateOrderInput{Total: decimal.RequireFromString("150.00")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := svc.Get(context.Background(), created.ID)
	if !got.Total.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected total 150, got %s", got.Total)
	}
}

func TestOrderService_Update_RejectsNonPositiveTotal(t *testing.T) {
	db := newMemDB()
	clientID := seedClient(db)
	svc := newTestOrderService(db, nil)
	created, _ := svc.Create(context.Background(), ports.CreateOrderInput{ClientID: clientID, Total: decimal.NewFromInt(10)})
	writes := db.orderWrites

	for _, total := range []string{"0", "0.001", "123456789012345678901234567890123456.78"} {
		err := svc.Update(context.Background(), created.ID, ports.UpdateOrderInput{Total: decimal.RequireFromString(total)})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("total %s: expected ErrInvalidAmount, got %v", total, err)
		}
	}
	if db.orderWrites != writes {
		t.Fatal("nothing should be written")
	}
	got, _ := svc.Get(context.Background(), created.ID)
	if !got.Total.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("total must be unchanged, got %s", got.Total)
	}
}

func TestOrderService_Update_NotFound(t *testing.T) {
	svc := newTestOrderService(newMemDB(), nil)

	err := svc.Update(context.Background(), "missing", ports.UpdateOrderInput{Total: decimal.NewFromInt(1)})
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_Delete(t *testing.T) {
	db := newMemDB()
	clientID := seedClient(db)
	svc := newTestOrderService(db, nil)
	created, _ := svc.Create(context.Background(), ports.CreateOrderInput{ClientID: clientID, Total: decimal.NewFromInt(10)})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestOrderService_ListByClient(t *testing.T) {
	db := newMemDB()
	a := seedClient(db)
	b := seedClient(db)
	svc := newTestOrderService(db, nil)

	_, _ = svc.Create(context.Background(), ports.CreateOrderInput{ClientID: a, Total: decimal.NewFromInt(100)})
	_, _ = svc.Create(context.Background(), ports.CreateOrderInput{ClientID: a, Total: decimal.NewFromInt(200)})
	_, _ = svc.Create(context.Background(), ports.CreateOrderInput{ClientID: b, Total: decimal.NewFromInt(300)})

	got, err := svc.ListByClient(context.Background(), a)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders for client %s, got %d", a, len(got))
	}
	for _, o := range got {
		if o.ClientID != a {
			t.Fatalf("foreign order in result: %+v", o)
		}
	}

	all, _ := svc.List(context.Background())
	if len(all) != 3 {
		t.Fatalf("expected 3 orders in total, got %d", len(all))
	}
}
