package planner

import (
	"fmt"
	"math"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/shopspring/decimal"
)

// пороги цвета доли подтверждений, как и RiskUtilization - унаследованные
// значения, бизнесом не подтверждены
const (
	RateGreenMin = 70
	RateAmberMin = 40
)

// ReminderWindowDays за сколько дней до события низкая доля подтверждений
// становится красным алертом
const ReminderWindowDays = 14

// CalculateGuestCosts прогноз расходов от числа подтвержденных гостей.
// Комнаты и места в трансфере приходят уже посчитанными: правило заселения -
// политика вызывающего, прожектор только умножает на ставки.
func CalculateGuestCosts(confirmed int, rc models.RateConfig) models.CostImpact {
	if confirmed < 0 {
		confirmed = 0
	}

	impact := models.CostImpact{
		Catering:  rc.CateringPerHead.Mul(decimal.NewFromInt(int64(confirmed))),
		Rooms:     rc.RoomCostPerNight.Mul(decimal.NewFromInt(int64(clampNonNegative(rc.RoomsNeeded)))),
		Transport: rc.TransportCostPerSeat.Mul(decimal.NewFromInt(int64(clampNonNegative(rc.TransportSeats)))),
	}
	impact.Total = impact.Catering.Add(impact.Rooms).Add(impact.Transport)
	return impact
}

// CalculateConfirmationRate доля подтвердивших в процентах с цветом.
// Ноль гостей это не ошибка: 0% и зеленый.
func CalculateConfirmationRate(confirmed, total int) models.ConfirmationRate {
	if total <= 0 || confirmed < 0 {
		return models.ConfirmationRate{Rate: 0, Color: models.RateGreen}
	}

	rate := int(math.Round(100 * float64(confirmed) / float64(total)))
	//грязные данные (подтвердивших больше чем гостей) не выводят долю за 100
	if rate > 100 {
		rate = 100
	}

	switch {
	case rate >= RateGreenMin:
		return models.ConfirmationRate{Rate: rate, Color: models.RateGreen}
	case rate >= RateAmberMin:
		return models.ConfirmationRate{Rate: rate, Color: models.RateAmber}
	default:
		return models.ConfirmationRate{Rate: rate, Color: models.RateRed}
	}
}

// ProjectPendingImpact сколько добавится расходов если все pending гости
// подтвердятся. Считаем только дельту, уже подтвержденные не учитываются
// повторно.
func ProjectPendingImpact(pending int, rc models.RateConfig) decimal.Decimal {
	if pending < 0 {
		pending = 0
	}

	impact := rc.CateringPerHead.Mul(decimal.NewFromInt(int64(pending)))
	impact = impact.Add(rc.RoomCostPerNight.Mul(decimal.NewFromInt(int64(clampNonNegative(rc.PendingRoomsDelta)))))
	impact = impact.Add(rc.TransportCostPerSeat.Mul(decimal.NewFromInt(int64(clampNonNegative(rc.PendingSeatsDelta)))))
	return impact
}

// GenerateGuestAlerts алерты по гостям: незаселенные иногородние, неназначенные
// трансферы, низкая доля подтверждений близко к дате. daysUntil приходит от
// вызывающего, часов внутри нет.
func GenerateGuestAlerts(stats models.GuestStats, daysUntil int) []models.GuestAlert {
	var alerts []models.GuestAlert

	rate := CalculateConfirmationRate(stats.Accepted, stats.Total)
	if rate.Color == models.RateRed && daysUntil >= 0 && daysUntil <= ReminderWindowDays {
		alerts = append(alerts, models.GuestAlert{
			Severity: models.SeverityRed,
			Message:  "Мало подтверждений перед событием",
			Impact:   fmt.Sprintf("подтвердили %d%%, осталось дней: %d", rate.Rate, daysUntil),
			Link:     "guests",
		})
	}

	if unassigned := stats.RoomsRequired - stats.RoomsAssigned; unassigned > 0 {
		alerts = append(alerts, models.GuestAlert{
			Severity: models.SeverityAmber,
			Message:  "Иногородним гостям не назначены комнаты",
			Impact:   fmt.Sprintf("без комнаты: %d", unassigned),
			Link:     "guests#rooms",
		})
	}

	if unassigned := stats.PickupsRequired - stats.PickupsAssigned; unassigned > 0 {
		alerts = append(alerts, models.GuestAlert{
			Severity: models.SeverityAmber,
			Message:  "Гостям не назначен трансфер",
			Impact:   fmt.Sprintf("без трансфера: %d", unassigned),
			Link:     "guests#pickups",
		})
	}

	return alerts
}

// CollectGuestStats счетчики по списку гостей для сводок и алертов
func CollectGuestStats(guests []models.Guest) models.GuestStats {
	var stats models.GuestStats

	for _, g := range guests {
		stats.Total++

		switch g.RSVPStatus {
		case models.RSVPAccepted:
			stats.Accepted++
			stats.PlusOnes += g.PlusOnes
		case models.RSVPDeclined:
			stats.Declined++
		case models.RSVPMaybe:
			stats.Maybe++
		default:
			stats.Pending++
		}

		if g.IsOutstation {
			stats.Outstation++
		}
		//отказавшимся комнаты и трансфер не нужны
		if g.RSVPStatus == models.RSVPDeclined {
			continue
		}
		if g.NeedsRoom {
			stats.RoomsRequired++
			if g.RoomAssigned {
				stats.RoomsAssigned++
			}
		}
		if g.NeedsPickup {
			stats.PickupsRequired++
			if g.PickupAssigned {
				stats.PickupsAssigned++
			}
		}
	}

	return stats
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
