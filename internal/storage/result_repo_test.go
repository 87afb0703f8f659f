package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewResultRepo(t *testing.T) {
	repo := NewResultRepo(newTestDB(t))
	if repo == nil {
		t.Fatal("NewResultRepo() returned nil")
	}
}

func TestResultRepo_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewResultRepo(newTestDB(t))

	result := &Result{
		ProjectName:   "Substation A",
		JobNumber:     "J-1",
		LoadTagNumber: "P-101",
		Parameters:    `{"load_current":10}`,
		Prompt:        "What conductor size?",
		Model:         "test-model",
		Status:        "success",
		Message:       "4 AWG",
	}
	if err := repo.Insert(ctx, result); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if result.ID == "" {
		t.Fatal("Insert() did not assign an ID")
	}
	if result.CreatedAt.IsZero() {
		t.Fatal("Insert() did not assign CreatedAt")
	}

	got, err := repo.GetByID(ctx, result.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Message != "4 AWG" || got.Prompt != result.Prompt || got.Parameters != result.Parameters {
		t.Errorf("GetByID() = %+v, want %+v", got, result)
	}
	if !got.CreatedAt.Equal(result.CreatedAt) {
		t.Errorf("GetByID() CreatedAt = %v, want %v", got.CreatedAt, result.CreatedAt)
	}
}

func TestResultRepo_GetByID_NotFound(t *testing.T) {
	repo := NewResultRepo(newTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestResultRepo_ListRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewResultRepo(newTestDB(t))

	base := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		r := &Result{
			CreatedAt: base.Add(time.Duration(i) * 500 * time.Millisecond),
			JobNumber: string(rune('A' + i)),
			Status:    "success",
		}
		if err := repo.Insert(ctx, r); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	tests := []struct {
		name      string
		limit     int
		wantCount int
		wantFirst string
	}{
		{name: "newest first", limit: 3, wantCount: 3, wantFirst: "E"},
		{name: "default limit", limit: 0, wantCount: 5, wantFirst: "E"},
		{name: "capped limit", limit: 1000, wantCount: 5, wantFirst: "E"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListRecent(ctx, tt.limit)
			if err != nil {
				t.Fatalf("ListRecent() error = %v", err)
			}
			if len(got) != tt.wantCount {
				t.Fatalf("ListRecent() returned %d results, want %d", len(got), tt.wantCount)
			}
			if got[0].JobNumber != tt.wantFirst {
				t.Errorf("ListRecent() first = %q, want %q", got[0].JobNumber, tt.wantFirst)
			}
			for i := 1; i < len(got); i++ {
				if got[i].CreatedAt.After(got[i-1].CreatedAt) {
					t.Errorf("ListRecent() not ordered newest first at %d", i)
				}
			}
		})
	}
}

func TestResultRepo_ListRecent_Empty(t *testing.T) {
	got, err := NewResultRepo(newTestDB(t)).ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ListRecent() = %v, want empty", got)
	}
}
