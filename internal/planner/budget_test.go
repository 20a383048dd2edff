package planner

import (
	"testing"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/shopspring/decimal"
)

func d(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func entry(category models.BudgetCategory, planned, committed, paid int64) models.BudgetEntry {
	return models.BudgetEntry{
		Category:  category,
		Planned:   d(planned),
		Committed: d(committed),
		Paid:      d(paid),
	}
}

func findCategory(t *testing.T, cats []models.CategoryBudget, want models.BudgetCategory) models.CategoryBudget {
	t.Helper()
	for _, cb := range cats {
		if cb.Category == want {
			return cb
		}
	}
	t.Fatalf("category %s not found in summary", want)
	return models.CategoryBudget{}
}

func TestSummarizeByCategory_OverrunScenario(t *testing.T) {
	entries := []models.BudgetEntry{
		entry(models.CategoryVenue, 100000, 120000, 50000),
	}

	cats := SummarizeByCategory(entries)
	if len(cats) != 1 {
		t.Fatalf("got %d categories, want 1", len(cats))
	}

	venue := findCategory(t, cats, models.CategoryVenue)
	if !venue.Pending.Equal(d(70000)) {
		t.Errorf("pending = %s, want 70000", venue.Pending)
	}
	if !venue.Delta.Equal(d(20000)) {
		t.Errorf("delta = %s, want 20000", venue.Delta)
	}
	if !venue.IsOverBudget {
		t.Error("IsOverBudget = false, want true")
	}

	summary := SummarizeEvent(cats, d(100000))
	if !summary.Overrun.Equal(d(20000)) {
		t.Errorf("overrun = %s, want 20000", summary.Overrun)
	}
	if summary.Health != models.HealthOverBudget {
		t.Errorf("health = %s, want over-budget", summary.Health)
	}
}

func TestSummarizeByCategory_PendingNeverNegative(t *testing.T) {
	//переплата по одной записи не должна съедать долг по другой
	entries := []models.BudgetEntry{
		entry(models.CategoryCatering, 50000, 50000, 80000), //переплата
		entry(models.CategoryCatering, 50000, 50000, 10000), //долг 40000
	}

	cats := SummarizeByCategory(entries)
	catering := findCategory(t, cats, models.CategoryCatering)
	if !catering.Pending.Equal(d(40000)) {
		t.Errorf("pending = %s, want 40000 (переплата клампится по записям)", catering.Pending)
	}
	if catering.Pending.IsNegative() {
		t.Error("pending отрицательный")
	}
}

func TestSummarizeByCategory_UnknownCategoryGoesToMiscellaneous(t *testing.T) {
	entries := []models.BudgetEntry{
		entry("fireworks", 0, 5000, 0),
		entry(models.CategoryMiscellaneous, 0, 1000, 0),
	}

	cats := SummarizeByCategory(entries)
	if len(cats) != 1 {
		t.Fatalf("got %d categories, want 1 (miscellaneous)", len(cats))
	}
	misc := findCategory(t, cats, models.CategoryMiscellaneous)
	if misc.EntryCount != 2 {
		t.Errorf("entry count = %d, want 2", misc.EntryCount)
	}
	if !misc.Committed.Equal(d(6000)) {
		t.Errorf("committed = %s, want 6000", misc.Committed)
	}
}

func TestSummarizeByCategory_OrderIndependentAndIdempotent(t *testing.T) {
	forward := []models.BudgetEntry{
		entry(models.CategoryVenue, 100, 200, 50),
		entry(models.CategoryFlowers, 30, 20, 20),
		entry(models.CategoryVenue, 50, 50, 0),
	}
	reversed := []models.BudgetEntry{forward[2], forward[1], forward[0]}

	a := SummarizeByCategory(forward)
	b := SummarizeByCategory(reversed)
	c := SummarizeByCategory(forward) //повторный вызов, скрытого состояния нет

	if len(a) != len(b) || len(a) != len(c) {
		t.Fatalf("lengths differ: %d %d %d", len(a), len(b), len(c))
	}
	for i := range a {
		for name, pair := range map[string][2]decimal.Decimal{
			"planned":   {a[i].Planned, b[i].Planned},
			"committed": {a[i].Committed, b[i].Committed},
			"paid":      {a[i].Paid, b[i].Paid},
			"pending":   {a[i].Pending, c[i].Pending},
		} {
			if !pair[0].Equal(pair[1]) {
				t.Errorf("category %s: %s differs between runs", a[i].Category, name)
			}
		}
	}
}

func TestSummarizeEvent_RollupConsistency(t *testing.T) {
	entries := []models.BudgetEntry{
		entry(models.CategoryVenue, 100000, 120000, 50000),
		entry(models.CategoryCatering, 80000, 60000, 60000),
		entry(models.CategoryFlowers, 10000, 12000, 0),
	}

	cats := SummarizeByCategory(entries)
	summary := SummarizeEvent(cats, d(500000))

	var committed decimal.Decimal
	for _, cb := range cats {
		committed = committed.Add(cb.Committed)
	}
	if !summary.Committed.Equal(committed) {
		t.Errorf("summary.Committed = %s, сумма категорий = %s", summary.Committed, committed)
	}
}

func TestSummarizeEvent_EmptyInputNoCeiling(t *testing.T) {
	summary := SummarizeEvent(SummarizeByCategory(nil), decimal.Zero)

	for name, got := range map[string]decimal.Decimal{
		"planned":   summary.Planned,
		"committed": summary.Committed,
		"paid":      summary.Paid,
		"pending":   summary.Pending,
		"overrun":   summary.Overrun,
	} {
		if !got.IsZero() {
			t.Errorf("%s = %s, want 0", name, got)
		}
	}
	if summary.Health != models.HealthOnTrack {
		t.Errorf("health = %s, want on-track", summary.Health)
	}
}

func TestSummarizeEvent_NoCeilingWithCommitted(t *testing.T) {
	cats := SummarizeByCategory([]models.BudgetEntry{entry(models.CategoryVenue, 0, 1000, 0)})
	summary := SummarizeEvent(cats, decimal.Zero)

	if summary.Health != models.HealthOverBudget {
		t.Errorf("health = %s, want over-budget (обязательства без потолка)", summary.Health)
	}
	if !summary.Overrun.IsZero() {
		t.Errorf("overrun = %s, want 0 (без потолка не сигналим сумму)", summary.Overrun)
	}
}

func TestSummarizeEvent_AtRisk(t *testing.T) {
	tests := []struct {
		name        string
		entries     []models.BudgetEntry
		totalBudget int64
		want        models.HealthStatus
	}{
		{
			name:        "utilization on threshold",
			entries:     []models.BudgetEntry{entry(models.CategoryVenue, 100000, 90000, 0)},
			totalBudget: 100000,
			want:        models.HealthAtRisk,
		},
		{
			name:        "utilization under threshold",
			entries:     []models.BudgetEntry{entry(models.CategoryVenue, 100000, 89999, 0)},
			totalBudget: 100000,
			want:        models.HealthOnTrack,
		},
		{
			name: "category overrun while total under ceiling",
			entries: []models.BudgetEntry{
				entry(models.CategoryFlowers, 1000, 2000, 0),
			},
			totalBudget: 100000,
			want:        models.HealthAtRisk,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := SummarizeEvent(SummarizeByCategory(tt.entries), d(tt.totalBudget))
			if summary.Health != tt.want {
				t.Errorf("health = %s, want %s", summary.Health, tt.want)
			}
		})
	}
}

func TestComputeCostDrivers_RankingAndStableTies(t *testing.T) {
	cats := []models.CategoryBudget{
		{Category: models.CategoryFlowers, Committed: d(500)},
		{Category: models.CategoryVenue, Committed: d(9000)},
		{Category: models.CategoryMakeup, Committed: d(500)}, //равен flowers, должен остаться после него
		{Category: models.CategoryCatering, Committed: d(7000)},
	}

	drivers := ComputeCostDrivers(cats, 3)
	if len(drivers) != 3 {
		t.Fatalf("got %d drivers, want 3", len(drivers))
	}
	if drivers[0].Category != models.CategoryVenue || drivers[1].Category != models.CategoryCatering {
		t.Errorf("top-2 = %s, %s; want venue, catering", drivers[0].Category, drivers[1].Category)
	}
	if drivers[2].Category != models.CategoryFlowers {
		t.Errorf("при равных суммах порядок входа должен сохраняться, got %s", drivers[2].Category)
	}
}

func TestGenerateBudgetAlerts_RedBeforeAmberRankedOrder(t *testing.T) {
	entries := []models.BudgetEntry{
		entry(models.CategoryFlowers, 1000, 2000, 0),  //перерасход 1000
		entry(models.CategoryVenue, 50000, 90000, 0),  //перерасход 40000, committed выше
		entry(models.CategoryCatering, 30000, 30000, 0), //ровно по плану, алерта нет
	}

	cats := SummarizeByCategory(entries)
	summary := SummarizeEvent(cats, d(100000))
	alerts := GenerateBudgetAlerts(summary, cats)

	if len(alerts) != 3 {
		t.Fatalf("got %d alerts, want 3 (red + 2 amber)", len(alerts))
	}
	if alerts[0].Severity != models.SeverityRed {
		t.Errorf("первый алерт %s, want red", alerts[0].Severity)
	}
	if alerts[1].Category == nil || *alerts[1].Category != models.CategoryVenue {
		t.Error("первый amber должен быть по venue (наибольший committed)")
	}
	if alerts[2].Category == nil || *alerts[2].Category != models.CategoryFlowers {
		t.Error("второй amber должен быть по flowers")
	}
}

func TestGenerateBudgetAlerts_EmptyInput(t *testing.T) {
	summary := SummarizeEvent(nil, decimal.Zero)
	alerts := GenerateBudgetAlerts(summary, nil)
	if len(alerts) != 0 {
		t.Errorf("got %d alerts для пустого события, want 0", len(alerts))
	}
}
