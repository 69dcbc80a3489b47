package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/anthropics/goap-engine/internal/domain"
)

func TestPlanCacheRepo_MissThenPutThenGet(t *testing.T) {
	dir := t.TempDir()
	db, err := NewDB(filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	defer db.Close()

	repo := &PlanCacheRepo{}
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, db, "nonexistent-key")
	if err != nil {
		t.Fatalf("Get miss: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss, got hit")
	}

	plan := domain.ActionPlan{
		Actions:     []string{"A"},
		Transitions: []string{"t1"},
		TotalSteps:  1,
		TotalCost:   1.0,
		FinalState:  []domain.VariableValue{{VariableID: "x", Value: domain.Int64(10)}},
		Status:      domain.StatusFound,
	}

	if err := repo.Put(ctx, db, "key-1", plan); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := repo.Get(ctx, db, "key-1")
	if err != nil {
		t.Fatalf("Get hit: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit, got miss")
	}
	if got.Status != domain.StatusFound {
		t.Errorf("Status = %v, want FOUND", got.Status)
	}
	if got.TotalCost != 1.0 {
		t.Errorf("TotalCost = %v, want 1.0", got.TotalCost)
	}
	if len(got.FinalState) != 1 || got.FinalState[0].VariableID != "x" {
		t.Errorf("FinalState = %+v, want [{x ...}]", got.FinalState)
	}
	if !domain.Equal(got.FinalState[0].Value, domain.Int64(10)) {
		t.Errorf("FinalState[0].Value = %+v, want Int64(10)", got.FinalState[0].Value)
	}
}

func TestPlanCacheRepo_PutOverwrites(t *testing.T) {
	dir := t.TempDir()
	db, err := NewDB(filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	defer db.Close()

	repo := &PlanCacheRepo{}
	ctx := context.Background()

	first := domain.ActionPlan{Status: domain.StatusUnreachable}
	if err := repo.Put(ctx, db, "key-1", first); err != nil {
		t.Fatalf("Put first: %v", err)
	}

	second := domain.ActionPlan{Status: domain.StatusFound, TotalCost: 5}
	if err := repo.Put(ctx, db, "key-1", second); err != nil {
		t.Fatalf("Put second: %v", err)
	}

	got, ok, err := repo.Get(ctx, db, "key-1")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Status != domain.StatusFound || got.TotalCost != 5 {
		t.Errorf("got %+v, want overwritten FOUND/5", got)
	}
}
