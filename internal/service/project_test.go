package service

import (
	"context"
	"errors"
	"testing"

	"github.com/buildrite/buildrite/internal/domain"
)

func setupProjectTest(t *testing.T) (*ProjectService, *mockClientStore, *domain.Client) {
	t.Helper()
	clientStore := newMockClientStore()
	svc := NewProjectService(newMockProjectStore(), clientStore)

	client := &domain.Client{TenantID: 1, Name: "Acme Builders", Email: "info@acme.test", IsActive: true}
	_ = clientStore.Create(context.Background(), client)
	return svc, clientStore, client
}

func TestProjectService_Create(t *testing.T) {
	svc, _, client := setupProjectTest(t)
	ctx := context.Background()

	p := &domain.Project{Name: "Warehouse", ClientID: client.ID}
	if err := svc.Create(ctx, 1, p); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.TenantID != 1 {
		t.Fatalf("expected tenant 1, got %d", p.TenantID)
	}
	if p.Status != domain.ProjectPlanning {
		t.Fatalf("expected default status planning, got %s", p.Status)
	}
}

func TestProjectService_Create_ClientFromOtherTenant(t *testing.T) {
	svc, _, client := setupProjectTest(t)

	// Same client id, but resolved tenant is 2: the client reads as
	// absent.
	p := &domain.Project{Name: "Warehouse", ClientID: client.ID}
	if err := svc.Create(context.Background(), 2, p); !errors.Is(err, ErrProjectClient) {
		t.Fatalf("expected ErrProjectClient, got %v", err)
	}
}

func TestProjectService_Update_ClientChangeValidated(t *testing.T) {
	svc, clientStore, client := setupProjectTest(t)
	ctx := context.Background()

	p := &domain.Project{Name: "Warehouse", ClientID: client.ID}
	if err := svc.Create(ctx, 1, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Switching to a client owned by another tenant is rejected.
	other := &domain.Client{TenantID: 2, Name: "Rival Corp", Email: "x@rival.test"}
	_ = clientStore.Create(ctx, other)

	in := &domain.Project{Name: "Warehouse", ClientID: other.ID, Status: domain.ProjectInProgress}
	if _, err := svc.Update(ctx, p.ID, 1, in); !errors.Is(err, ErrProjectClient) {
		t.Fatalf("expected ErrProjectClient, got %v", err)
	}

	// Keeping the same client skips re-validation and applies fields.
	in.ClientID = client.ID
	updated, err := svc.Update(ctx, p.ID, 1, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.ProjectInProgress {
		t.Fatalf("expected in_progress, got %s", updated.Status)
	}
}

func TestProjectService_ListActive(t *testing.T) {
	svc, _, client := setupProjectTest(t)
	ctx := context.Background()

	for _, st := range []domain.ProjectStatus{
		domain.ProjectPlanning,
		domain.ProjectInProgress,
		domain.ProjectOnHold,
		domain.ProjectCompleted,
		domain.ProjectCancelled,
	} {
		p := &domain.Project{Name: string(st), ClientID: client.ID, Status: st}
		if err := svc.Create(ctx, 1, p); err != nil {
			t.Fatalf("create %s: %v", st, err)
		}
	}

	active, err := svc.ListActive(ctx, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("expected 3 active projects, got %d", len(active))
	}
	for _, p := range active {
		if p.Status == domain.ProjectCompleted || p.Status == domain.ProjectCancelled {
			t.Fatalf("terminal status %s leaked into active list", p.Status)
		}
	}
}
