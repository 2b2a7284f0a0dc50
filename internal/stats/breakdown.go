package stats

import (
	"github.com/iliyamo/property-management/internal/model"
	"github.com/iliyamo/property-management/internal/snapshot"
)

// BreakdownKind tags a PaymentStatusBreakdown result. The two placeholder
// kinds exist for the empty pie-chart states: their chart slices carry a
// sentinel value of 1 that is a drawing hint, not a count. Keeping the
// tag explicit stops downstream code from misreading the sentinel.
type BreakdownKind int

const (
	// BreakdownCounts means Paid/Unpaid hold real tenant counts.
	BreakdownCounts BreakdownKind = iota
	// BreakdownNoTenants means the manager has tenants but none active.
	BreakdownNoTenants
	// BreakdownNoPayment means there are no tenants at all.
	BreakdownNoPayment
)

// PaymentStatusBreakdown categorizes each active tenant as paid (at least
// one completed payment) or not.
type PaymentStatusBreakdown struct {
	Kind   BreakdownKind `json:"kind"`
	Paid   int           `json:"paid"`
	Unpaid int           `json:"unpaid"`
}

// ChartSlice is one wedge of the dashboard pie chart.
type ChartSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PaymentBreakdown buckets active tenants by whether any completed
// payment exists for them. Zero tenants and zero active tenants map to
// the placeholder kinds.
func PaymentBreakdown(payments []snapshot.Payment, tenants []snapshot.Tenant) PaymentStatusBreakdown {
	if len(tenants) == 0 {
		return PaymentStatusBreakdown{Kind: BreakdownNoPayment}
	}

	hasCompleted := make(map[uint64]bool, len(tenants))
	for _, p := range payments {
		if p.Status == model.PaymentStatusCompleted {
			hasCompleted[p.TenantID] = true
		}
	}

	b := PaymentStatusBreakdown{Kind: BreakdownCounts}
	active := 0
	for _, t := range tenants {
		if t.Status != model.TenantStatusActive {
			continue
		}
		active++
		if hasCompleted[t.ID] {
			b.Paid++
		} else {
			b.Unpaid++
		}
	}
	if active == 0 {
		return PaymentStatusBreakdown{Kind: BreakdownNoTenants}
	}
	return b
}

// ChartSlices renders the breakdown in the exact shape the pie chart
// expects. Placeholder kinds produce a single slice with value 1; real
// counts produce only the non-empty categories.
func (b PaymentStatusBreakdown) ChartSlices() []ChartSlice {
	switch b.Kind {
	case BreakdownNoPayment:
		return []ChartSlice{{Name: "No Payment", Value: 1}}
	case BreakdownNoTenants:
		return []ChartSlice{{Name: "No Tenants", Value: 1}}
	}
	out := make([]ChartSlice, 0, 2)
	if b.Paid > 0 {
		out = append(out, ChartSlice{Name: "Paid", Value: b.Paid})
	}
	if b.Unpaid > 0 {
		out = append(out, ChartSlice{Name: "No Payment", Value: b.Unpaid})
	}
	return out
}
