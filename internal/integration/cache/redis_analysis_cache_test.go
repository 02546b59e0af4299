package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func sampleAnalysis() *entity.BudgetAnalysis {
	return &entity.BudgetAnalysis{
		CurrentMonth: entity.MonthlyData{
			Month:            "March 2026",
			Income:           decimal.NewFromInt(5000),
			Expenses:         decimal.NewFromInt(3200),
			Balance:          decimal.NewFromInt(1800),
			TransactionCount: 14,
		},
		SavingsRate: 36,
		Insights: []entity.Insight{
			{Kind: entity.InsightSuccess, Title: "Great Savings!"},
		},
	}
}

func TestRedisAnalysisCache_RoundTrip(t *testing.T) {
	client, _ := newTestCache(t)
	cache := NewRedisAnalysisCache(client, time.Minute)

	ctx := context.Background()
	userID := uuid.New()
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	if err := cache.Set(ctx, userID, month, sampleAnalysis()); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := cache.Get(ctx, userID, month)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil after Set()")
	}
	if got.CurrentMonth.Month != "March 2026" {
		t.Errorf("month = %q, want %q", got.CurrentMonth.Month, "March 2026")
	}
	if !got.CurrentMonth.Balance.Equal(decimal.NewFromInt(1800)) {
		t.Errorf("balance = %s, want 1800", got.CurrentMonth.Balance)
	}
	if len(got.Insights) != 1 || got.Insights[0].Title != "Great Savings!" {
		t.Errorf("insights not preserved: %+v", got.Insights)
	}
}

func TestRedisAnalysisCache_MissReturnsNil(t *testing.T) {
	client, _ := newTestCache(t)
	cache := NewRedisAnalysisCache(client, time.Minute)

	got, err := cache.Get(context.Background(), uuid.New(), time.Now())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %+v, want nil on miss", got)
	}
}

func TestRedisAnalysisCache_InvalidateUser(t *testing.T) {
	client, _ := newTestCache(t)
	cache := NewRedisAnalysisCache(client, time.Minute)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	for _, month := range []time.Time{march, april} {
		if err := cache.Set(ctx, userID, month, sampleAnalysis()); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}
	if err := cache.Set(ctx, otherID, march, sampleAnalysis()); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := cache.InvalidateUser(ctx, userID); err != nil {
		t.Fatalf("InvalidateUser() error = %v", err)
	}

	for _, month := range []time.Time{march, april} {
		got, err := cache.Get(ctx, userID, month)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != nil {
			t.Errorf("analysis for %s still cached after invalidation", month.Format("2006-01"))
		}
	}

	// Other users keep their entries.
	got, err := cache.Get(ctx, otherID, march)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Error("invalidation removed another user's entry")
	}
}

func TestRedisAnalysisCache_EntriesExpire(t *testing.T) {
	client, mr := newTestCache(t)
	cache := NewRedisAnalysisCache(client, time.Minute)

	ctx := context.Background()
	userID := uuid.New()
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	if err := cache.Set(ctx, userID, month, sampleAnalysis()); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, userID, month)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Error("entry survived past its TTL")
	}
}
