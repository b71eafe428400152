package shipping

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAggregateGroupsByFirstSeenOrder(t *testing.T) {
	cheese := decimal.NewFromFloat(0.2)
	tv := decimal.NewFromFloat(5.0)
	units := []Unit{
		{Name: "Cheese", WeightKG: cheese},
		{Name: "TV", WeightKG: tv},
		{Name: "Cheese", WeightKG: cheese},
	}

	rows, total := Aggregate(units)
	if len(rows) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(rows))
	}
	if rows[0].Name != "Cheese" || rows[1].Name != "TV" {
		t.Fatalf("groups must keep first-seen order, got %+v", rows)
	}
	if !rows[0].WeightKG.Equal(decimal.NewFromFloat(0.4)) {
		t.Fatalf("cheese group weight want 0.4 got %s", rows[0].WeightKG)
	}
	if !rows[1].WeightKG.Equal(tv) {
		t.Fatalf("tv group weight want 5 got %s", rows[1].WeightKG)
	}
	if !total.Equal(decimal.NewFromFloat(5.4)) {
		t.Fatalf("total weight want 5.4 got %s", total)
	}
}

func TestAggregateEmpty(t *testing.T) {
	rows, total := Aggregate(nil)
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
	if !total.IsZero() {
		t.Fatalf("expected zero total, got %s", total)
	}
}
