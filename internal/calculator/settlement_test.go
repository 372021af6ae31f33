package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/receiptsplit/internal/models"
)

func TestComputeSettlement(t *testing.T) {
	tests := []struct {
		name         string
		lines        []models.LineItem
		participants []string
		total        float64
		wantErr      bool
		validateFunc func(t *testing.T, s *Settlement)
	}{
		{
			name:         "raw total equals bill total",
			lines:        []models.LineItem{equalLine(80, "Alice", "Bob")},
			participants: []string{"Alice", "Bob"},
			total:        80,
			validateFunc: func(t *testing.T, s *Settlement) {
				assert.InDelta(t, 1.0, s.ScaleFactor, 1e-12)
				assert.Equal(t, 40.0, s.Amounts["Alice"])
				assert.Equal(t, 40.0, s.Amounts["Bob"])
			},
		},
		{
			name: "global discount scales every share",
			lines: []models.LineItem{
				equalLine(220, "Alice"),
				equalLine(110, "Bob"),
			},
			participants: []string{"Alice", "Bob"},
			total:        297,
			validateFunc: func(t *testing.T, s *Settlement) {
				// raw 330, k = 0.9: Alice 220 -> 198, Bob 110 -> 99
				assert.InDelta(t, 0.9, s.ScaleFactor, 1e-12)
				assert.InDelta(t, 330.0, s.RawTotal, 1e-9)
				assert.Equal(t, 198.0, s.Amounts["Alice"])
				assert.Equal(t, 99.0, s.Amounts["Bob"])
			},
		},
		{
			name: "discount lines reduce shares before scaling",
			lines: []models.LineItem{
				equalLine(60, "Alice", "Bob"),
				equalLine(40, "Bob"),
				equalLine(-10, "Alice", "Bob"),
			},
			participants: []string{"Alice", "Bob"},
			total:        90,
			validateFunc: func(t *testing.T, s *Settlement) {
				// Alice 30 - 5 = 25, Bob 30 + 40 - 5 = 65
				assert.InDelta(t, 1.0, s.ScaleFactor, 1e-12)
				assert.Equal(t, 25.0, s.Amounts["Alice"])
				assert.Equal(t, 65.0, s.Amounts["Bob"])
			},
		},
		{
			name: "custom split within tolerance",
			lines: []models.LineItem{
				customLine("Cake", 100, map[string]string{"Alice": "33.33", "Bob": "33.33", "Charlie": "33.33"}),
			},
			participants: []string{"Alice", "Bob", "Charlie"},
			total:        100,
			validateFunc: func(t *testing.T, s *Settlement) {
				var sum float64
				for _, amount := range s.Amounts {
					sum += amount
				}
				assert.InDelta(t, 100.0, sum, 0.011)
				assert.Equal(t, 33.33, s.Amounts["Alice"])
			},
		},
		{
			name:         "participant with no lines gets zero",
			lines:        []models.LineItem{equalLine(10, "Alice")},
			participants: []string{"Alice", "Bob"},
			total:        10,
			validateFunc: func(t *testing.T, s *Settlement) {
				assert.Equal(t, 10.0, s.Amounts["Alice"])
				require.Contains(t, s.Amounts, "Bob")
				assert.Equal(t, 0.0, s.Amounts["Bob"])
			},
		},
		{
			name:         "no participants should error",
			lines:        []models.LineItem{equalLine(10, "Alice")},
			participants: []string{},
			total:        10,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ComputeSettlement(tt.lines, tt.participants, tt.total)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			if tt.validateFunc != nil {
				tt.validateFunc(t, s)
			}
		})
	}
}

func TestComputeSettlement_CompletenessGate(t *testing.T) {
	lines := []models.LineItem{
		equalLine(30, "Alice"),
		ToggleMembership(equalLine(20, "Bob"), "Bob"),
	}
	lines[1].Label = "Nachos"

	s, err := ComputeSettlement(lines, []string{"Alice", "Bob"}, 50)

	assert.Nil(t, s, "no partial settlement")
	var incomplete *IncompleteAllocationError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, "Nachos", incomplete.Label)
}

func TestComputeSettlement_RejectsUnbalancedCustomLine(t *testing.T) {
	lines := []models.LineItem{
		customLine("Wine", 40, map[string]string{"Alice": "10", "Bob": "5"}),
	}

	s, err := ComputeSettlement(lines, []string{"Alice", "Bob"}, 40)

	assert.Nil(t, s)
	var invalid *InvalidCustomAllocationError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "Wine", invalid.Label)
	assert.Equal(t, 40.0, invalid.Amount)
}

func TestComputeSettlement_DegenerateTotals(t *testing.T) {
	lines := []models.LineItem{
		equalLine(0, "Alice", "Bob"),
		customLine("Free", 0, map[string]string{"Alice": ""}),
	}

	s, err := ComputeSettlement(lines, []string{"Alice", "Bob"}, 25)

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrDegenerateTotals)
}

func TestComputeSettlement_SumsToAuthoritativeTotal(t *testing.T) {
	people := []string{"Alice", "Bob", "Charlie"}
	receipts := []models.Receipt{
		{
			Items: []models.Item{
				{Name: "Coriander", Price: models.Number(17)},
				{Name: "Milk", Price: models.Number(146)},
				{Name: "Yogurt", Price: models.Number(60)},
			},
			Taxes:    []models.Tax{{Name: "Handling Fee", Amount: models.Number(10.5)}},
			Discount: models.Discount{Kind: models.DiscountPercentage, Value: models.Number(7)},
		},
	}
	lines := Aggregate(receipts, people)
	lines[1] = ToggleMembership(lines[1], "Charlie")
	lines[2] = ToggleAllMembership(lines[2], people)
	lines[2] = ToggleMembership(lines[2], "Bob")

	total := CombinedTotal(receipts)
	s, err := ComputeSettlement(lines, people, total)
	require.NoError(t, err)

	var sum float64
	for _, b := range s.Breakdown() {
		sum += b.Amount
	}
	assert.InDelta(t, total, sum, 0.02)
}

func TestSettlement_BreakdownFollowsParticipantOrder(t *testing.T) {
	people := []string{"Zed", "Alice", "Mia"}
	s, err := ComputeSettlement([]models.LineItem{equalLine(30, people...)}, people, 30)
	require.NoError(t, err)

	breakdown := s.Breakdown()
	require.Len(t, breakdown, 3)
	for i, p := range people {
		assert.Equal(t, p, breakdown[i].Person)
		assert.Equal(t, 10.0, breakdown[i].Amount)
	}
}
