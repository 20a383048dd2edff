// Package planner чистое ядро агрегации: превращает сырые строки бюджета и
// гостей в сводки для отображения. Без I/O, без часов, без скрытого состояния.
package planner

import (
	"fmt"
	"sort"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/shopspring/decimal"
)

// RiskUtilization доля потолка бюджета, после которой статус at-risk.
// Значение 0.9 унаследовано от продуктовой логики, бизнесом не подтверждено.
var RiskUtilization = decimal.NewFromFloat(0.9)

// MinOverrunForAlert минимальный перерасход по категории для amber-алерта,
// нулевые дельты не шумят
var MinOverrunForAlert = decimal.Zero

// SummarizeByCategory группирует записи по категориям и считает суммы.
// Категории без записей в выводе не синтезируются - пустые строки решает каллер.
// Порядок вывода - канонический порядок категорий, от порядка входа не зависит.
func SummarizeByCategory(entries []models.BudgetEntry) []models.CategoryBudget {
	byCategory := make(map[models.BudgetCategory]*models.CategoryBudget)

	for _, entry := range entries {
		//неизвестная категория уходит в miscellaneous, не теряем запись
		category := models.ParseBudgetCategory(string(entry.Category))

		cb, ok := byCategory[category]
		if !ok {
			cb = &models.CategoryBudget{Category: category}
			byCategory[category] = cb
		}

		cb.EntryCount++
		cb.Planned = cb.Planned.Add(entry.Planned)
		cb.Committed = cb.Committed.Add(entry.Committed)
		cb.Paid = cb.Paid.Add(entry.Paid)
		//pending копится по записям, чтобы переплата по одной не съедала долг по другой
		cb.Pending = cb.Pending.Add(entry.Pending())
	}

	var result []models.CategoryBudget
	for _, category := range models.BudgetCategories {
		cb, ok := byCategory[category]
		if !ok {
			continue
		}
		cb.Delta = cb.Committed.Sub(cb.Planned)
		cb.IsOverBudget = cb.Committed.GreaterThan(cb.Planned)
		result = append(result, *cb)
	}

	return result
}

// SummarizeEvent сводка по событию целиком поверх категорийных сумм.
// totalBudget = 0 значит потолок не задан: overrun не сигналим, не делим на ноль.
func SummarizeEvent(categories []models.CategoryBudget, totalBudget decimal.Decimal) models.BudgetSummary {
	summary := models.BudgetSummary{TotalBudget: totalBudget}

	anyCategoryOver := false
	for _, cb := range categories {
		summary.Planned = summary.Planned.Add(cb.Planned)
		summary.Committed = summary.Committed.Add(cb.Committed)
		summary.Paid = summary.Paid.Add(cb.Paid)
		summary.Pending = summary.Pending.Add(cb.Pending)
		if cb.IsOverBudget {
			anyCategoryOver = true
		}
	}

	if totalBudget.GreaterThan(decimal.Zero) {
		overrun := summary.Committed.Sub(totalBudget)
		if overrun.IsPositive() {
			summary.Overrun = overrun
		} else {
			summary.Overrun = decimal.Zero
		}

		switch {
		case summary.Committed.GreaterThan(totalBudget):
			summary.Health = models.HealthOverBudget
		case anyCategoryOver || summary.Committed.GreaterThanOrEqual(totalBudget.Mul(RiskUtilization)):
			//сравнение с порогом умножением, деления и NaN тут не бывает
			summary.Health = models.HealthAtRisk
		default:
			summary.Health = models.HealthOnTrack
		}
		return summary
	}

	//потолка нет: любые обязательства = over-budget, пустое событие = on-track
	summary.Overrun = decimal.Zero
	if summary.Committed.GreaterThan(decimal.Zero) {
		summary.Health = models.HealthOverBudget
	} else {
		summary.Health = models.HealthOnTrack
	}
	return summary
}

// ComputeCostDrivers топ категорий по убыванию обязательств.
// Сортировка стабильная: равные суммы сохраняют входной порядок.
func ComputeCostDrivers(categories []models.CategoryBudget, topN int) []models.CostDriver {
	drivers := make([]models.CostDriver, 0, len(categories))
	for _, cb := range categories {
		drivers = append(drivers, models.CostDriver{
			Category: cb.Category,
			Planned:  cb.Planned,
			Current:  cb.Committed,
			Delta:    cb.Delta,
		})
	}

	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].Current.GreaterThan(drivers[j].Current)
	})

	if topN > 0 && topN < len(drivers) {
		drivers = drivers[:topN]
	}
	return drivers
}

// GenerateBudgetAlerts алерты для организатора: красный по событию целиком,
// янтарные по категориям с перерасходом. Красные раньше янтарных, янтарные
// в порядке ранга категории по обязательствам.
func GenerateBudgetAlerts(summary models.BudgetSummary, categories []models.CategoryBudget) []models.BudgetAlert {
	var alerts []models.BudgetAlert

	if summary.Health == models.HealthOverBudget {
		alerts = append(alerts, models.BudgetAlert{
			Severity: models.SeverityRed,
			Message:  "Бюджет события превышен",
			Impact:   "+" + summary.Overrun.String(),
			Link:     "budget",
		})
	}

	//обходим в порядке ранга, а не в порядке входа
	for _, driver := range ComputeCostDrivers(categories, 0) {
		if !driver.Delta.GreaterThan(MinOverrunForAlert) {
			continue
		}
		category := driver.Category
		alerts = append(alerts, models.BudgetAlert{
			Severity: models.SeverityAmber,
			Category: &category,
			Message:  fmt.Sprintf("Перерасход по категории %s", category),
			Impact:   "+" + driver.Delta.String(),
			Link:     "budget#" + string(category),
		})
	}

	return alerts
}
