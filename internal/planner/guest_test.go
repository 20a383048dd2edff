package planner

import (
	"testing"

	"github.com/alligatorO15/wed-planner/internal/models"
)

func TestCalculateGuestCosts_CateringOnly(t *testing.T) {
	rc := models.RateConfig{CateringPerHead: d(1500)}

	impact := CalculateGuestCosts(10, rc)
	if !impact.Catering.Equal(d(15000)) {
		t.Errorf("catering = %s, want 15000", impact.Catering)
	}
	if !impact.Total.Equal(d(15000)) {
		t.Errorf("total = %s, want 15000", impact.Total)
	}
	if !impact.Rooms.IsZero() || !impact.Transport.IsZero() {
		t.Error("rooms/transport должны быть нулевыми без ставок")
	}
}

func TestCalculateGuestCosts_ZeroGuestsZeroCost(t *testing.T) {
	rc := models.RateConfig{
		CateringPerHead:      d(1500),
		RoomCostPerNight:     d(3000),
		TransportCostPerSeat: d(500),
	}

	if total := CalculateGuestCosts(0, rc).Total; !total.IsZero() {
		t.Errorf("total = %s, want 0 (нет гостей - нет расходов)", total)
	}
}

func TestCalculateGuestCosts_AllComponents(t *testing.T) {
	rc := models.RateConfig{
		CateringPerHead:      d(1500),
		RoomCostPerNight:     d(3000),
		TransportCostPerSeat: d(500),
		RoomsNeeded:          5, //посчитано вызывающим по правилу заселения
		TransportSeats:       8,
	}

	impact := CalculateGuestCosts(20, rc)
	if !impact.Catering.Equal(d(30000)) {
		t.Errorf("catering = %s, want 30000", impact.Catering)
	}
	if !impact.Rooms.Equal(d(15000)) {
		t.Errorf("rooms = %s, want 15000", impact.Rooms)
	}
	if !impact.Transport.Equal(d(4000)) {
		t.Errorf("transport = %s, want 4000", impact.Transport)
	}
	if !impact.Total.Equal(d(49000)) {
		t.Errorf("total = %s, want 49000", impact.Total)
	}
}

func TestCalculateConfirmationRate(t *testing.T) {
	tests := []struct {
		name      string
		confirmed int
		total     int
		wantRate  int
		wantColor models.RateColor
	}{
		{"zero guests is not a failure", 0, 0, 0, models.RateGreen},
		{"green boundary inclusive", 7, 10, 70, models.RateGreen},
		{"amber band", 5, 10, 50, models.RateAmber},
		{"amber boundary inclusive", 4, 10, 40, models.RateAmber},
		{"red band", 3, 10, 30, models.RateRed},
		{"rounding", 2, 3, 67, models.RateAmber},
		{"all confirmed", 10, 10, 100, models.RateGreen},
		{"confirmed above total clamps to 100", 12, 10, 100, models.RateGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateConfirmationRate(tt.confirmed, tt.total)
			if got.Rate != tt.wantRate {
				t.Errorf("rate = %d, want %d", got.Rate, tt.wantRate)
			}
			if got.Color != tt.wantColor {
				t.Errorf("color = %s, want %s", got.Color, tt.wantColor)
			}
		})
	}
}

func TestProjectPendingImpact_OnlyDelta(t *testing.T) {
	rc := models.RateConfig{
		CateringPerHead:   d(1500),
		RoomCostPerNight:  d(3000),
		PendingRoomsDelta: 2, //комнаты только под pending, без уже заселенных
	}

	impact := ProjectPendingImpact(4, rc)
	//4*1500 + 2*3000, подтвержденные не учитываются повторно
	if !impact.Equal(d(12000)) {
		t.Errorf("pending impact = %s, want 12000", impact)
	}

	if !ProjectPendingImpact(0, models.RateConfig{CateringPerHead: d(1500)}).IsZero() {
		t.Error("нулевой pending должен давать нулевую дельту")
	}
}

func TestGenerateGuestAlerts(t *testing.T) {
	tests := []struct {
		name       string
		stats      models.GuestStats
		daysUntil  int
		wantCount  int
		wantFirst  models.AlertSeverity
	}{
		{
			name: "rooms unassigned",
			stats: models.GuestStats{
				Total: 10, Accepted: 9,
				RoomsRequired: 4, RoomsAssigned: 1,
			},
			daysUntil: 60,
			wantCount: 1,
			wantFirst: models.SeverityAmber,
		},
		{
			name: "pickups unassigned",
			stats: models.GuestStats{
				Total: 10, Accepted: 9,
				PickupsRequired: 3, PickupsAssigned: 0,
			},
			daysUntil: 60,
			wantCount: 1,
			wantFirst: models.SeverityAmber,
		},
		{
			name:      "low confirmations close to event",
			stats:     models.GuestStats{Total: 10, Accepted: 2},
			daysUntil: 7,
			wantCount: 1,
			wantFirst: models.SeverityRed,
		},
		{
			name:      "low confirmations far from event - no red",
			stats:     models.GuestStats{Total: 10, Accepted: 2},
			daysUntil: ReminderWindowDays + 1,
			wantCount: 0,
		},
		{
			name:      "event already passed - no red",
			stats:     models.GuestStats{Total: 10, Accepted: 2},
			daysUntil: -1,
			wantCount: 0,
		},
		{
			name:      "empty event",
			stats:     models.GuestStats{},
			daysUntil: 7,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := GenerateGuestAlerts(tt.stats, tt.daysUntil)
			if len(alerts) != tt.wantCount {
				t.Fatalf("got %d alerts, want %d", len(alerts), tt.wantCount)
			}
			if tt.wantCount > 0 && alerts[0].Severity != tt.wantFirst {
				t.Errorf("severity = %s, want %s", alerts[0].Severity, tt.wantFirst)
			}
		})
	}
}

func TestCollectGuestStats(t *testing.T) {
	guests := []models.Guest{
		{RSVPStatus: models.RSVPAccepted, PlusOnes: 2, IsOutstation: true, NeedsRoom: true, RoomAssigned: true},
		{RSVPStatus: models.RSVPAccepted, NeedsPickup: true},
		{RSVPStatus: models.RSVPDeclined, IsOutstation: true, NeedsRoom: true}, //отказался - комната не нужна
		{RSVPStatus: models.RSVPMaybe, PlusOnes: 1},
		{RSVPStatus: models.RSVPPending, NeedsRoom: true},
	}

	stats := CollectGuestStats(guests)

	if stats.Total != 5 || stats.Accepted != 2 || stats.Declined != 1 || stats.Maybe != 1 || stats.Pending != 1 {
		t.Errorf("счетчики статусов: %+v", stats)
	}
	if stats.PlusOnes != 2 {
		t.Errorf("plus ones = %d, want 2 (только у подтвердивших)", stats.PlusOnes)
	}
	if stats.Outstation != 2 {
		t.Errorf("outstation = %d, want 2", stats.Outstation)
	}
	if stats.RoomsRequired != 2 {
		t.Errorf("rooms required = %d, want 2 (отказавшиеся не считаются)", stats.RoomsRequired)
	}
	if stats.RoomsAssigned != 1 {
		t.Errorf("rooms assigned = %d, want 1", stats.RoomsAssigned)
	}
	if stats.PickupsRequired != 1 {
		t.Errorf("pickups required = %d, want 1", stats.PickupsRequired)
	}
}
