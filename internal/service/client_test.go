package service

import (
	"context"
	"errors"
	"testing"

	"github.com/buildrite/buildrite/internal/domain"
)

func TestClientService_Create_StampsTenant(t *testing.T) {
	svc := NewClientService(newMockClientStore())
	ctx := context.Background()

	// The payload claims another tenant; the resolved tenant wins.
	c := &domain.Client{TenantID: 99, Name: "Acme Builders", Email: "info@acme.test"}
	if err := svc.Create(ctx, 1, c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.TenantID != 1 {
		t.Fatalf("expected tenant 1, got %d", c.TenantID)
	}
	if c.Type != domain.ClientIndividual {
		t.Fatalf("expected default type individual, got %s", c.Type)
	}
	if !c.IsActive {
		t.Fatal("expected new client to be active")
	}
}

func TestClientService_CrossTenantInvisible(t *testing.T) {
	store := newMockClientStore()
	svc := NewClientService(store)
	ctx := context.Background()

	c := &domain.Client{Name: "Acme Builders", Email: "info@acme.test"}
	if err := svc.Create(ctx, 1, c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Tenant 2 sees nothing: get is a 404-shaped error, not a denial.
	if _, err := svc.GetByID(ctx, c.ID, 2); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, c.ID, 2, c); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound on update, got %v", err)
	}
	if err := svc.Delete(ctx, c.ID, 2); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound on delete, got %v", err)
	}

	list, err := svc.List(ctx, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list for tenant 2, got %d", len(list))
	}

	// The owning tenant still sees it.
	got, err := svc.GetByID(ctx, c.ID, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Name != "Acme Builders" {
		t.Fatalf("unexpected client %q", got.Name)
	}
}

func TestClientService_DeleteIdempotence(t *testing.T) {
	svc := NewClientService(newMockClientStore())
	ctx := context.Background()

	c := &domain.Client{Name: "Acme Builders", Email: "info@acme.test"}
	_ = svc.Create(ctx, 1, c)

	if err := svc.Delete(ctx, c.ID, 1); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(ctx, c.ID, 1); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("second delete: expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_DeleteInUse(t *testing.T) {
	store := newMockClientStore()
	svc := NewClientService(store)
	ctx := context.Background()

	c := &domain.Client{Name: "Acme Builders", Email: "info@acme.test"}
	_ = svc.Create(ctx, 1, c)
	store.inUse[c.ID] = true

	if err := svc.Delete(ctx, c.ID, 1); !errors.Is(err, ErrClientInUse) {
		t.Fatalf("expected ErrClientInUse, got %v", err)
	}
}

func TestClientService_UpdateKeepsIdentity(t *testing.T) {
	svc := NewClientService(newMockClientStore())
	ctx := context.Background()

	c := &domain.Client{Name: "Acme Builders", Email: "info@acme.test"}
	_ = svc.Create(ctx, 1, c)

	in := &domain.Client{
		ID:       777, // ignored
		TenantID: 99,  // ignored
		Name:     "Acme Construction",
		Email:    "new@acme.test",
		Type:     domain.ClientBusiness,
		IsActive: true,
	}
	updated, err := svc.Update(ctx, c.ID, 1, in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.ID != c.ID || updated.TenantID != 1 {
		t.Fatalf("identity changed: id=%d tenant=%d", updated.ID, updated.TenantID)
	}
	if updated.Name != "Acme Construction" || updated.Type != domain.ClientBusiness {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if !updated.UpdatedAt.After(c.CreatedAt) && !updated.UpdatedAt.Equal(c.CreatedAt) {
		t.Fatal("expected updated_at to advance")
	}
}
