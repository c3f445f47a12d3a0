// Package stats derives per-technician reporting from the invoice history.
// Everything here is pure and recomputed on every read: there is no cached or
// persisted state of its own.
package stats

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/abdalahsamh/New-cashir/internal/invoice"
)

// Unattributed is the grouping key for invoices whose barber name is blank.
const Unattributed = "—"

// DefaultTopServices is the breakdown length shown in the financial report.
const DefaultTopServices = 3

// ServiceTotal is the cumulative revenue of one service across invoices.
type ServiceTotal struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Technician aggregates one barber's invoices.
//
// TotalRevenue sums each invoice's pre-discount subtotal (the stored "total"
// field), and Services accumulates pre-discount line-item prices, so the two
// figures diverge from the after-discount takings whenever discounts were
// applied. That mismatch is inherited behavior and is kept as-is.
type Technician struct {
	Count        int             `json:"count"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	Services     []ServiceTotal  `json:"services"`
}

// barberKey normalizes a barber name for grouping: trimmed, with blank names
// collapsed into the Unattributed sentinel.
func barberKey(name string) string {
	if k := strings.TrimSpace(name); k != "" {
		return k
	}
	return Unattributed
}

// OrderCounts groups the invoices by barber and counts them.
func OrderCounts(invoices []invoice.Invoice) map[string]int {
	counts := make(map[string]int)
	for _, inv := range invoices {
		counts[barberKey(inv.Barber)]++
	}
	return counts
}

// Financial builds the per-barber financial report. Service revenue inside
// each Technician keeps first-encounter order so that revenue ties rank by
// appearance.
func Financial(invoices []invoice.Invoice) map[string]Technician {
	type acc struct {
		tech  Technician
		index map[string]int
	}
	accs := make(map[string]*acc)

	for _, inv := range invoices {
		key := barberKey(inv.Barber)
		a, ok := accs[key]
		if !ok {
			a = &acc{
				tech:  Technician{TotalRevenue: decimal.Zero},
				index: make(map[string]int),
			}
			accs[key] = a
		}

		a.tech.Count++
		a.tech.TotalRevenue = a.tech.TotalRevenue.Add(inv.Subtotal)

		for _, item := range inv.Services {
			i, seen := a.index[item.Name]
			if !seen {
				i = len(a.tech.Services)
				a.index[item.Name] = i
				a.tech.Services = append(a.tech.Services, ServiceTotal{
					Name:    item.Name,
					Revenue: decimal.Zero,
				})
			}
			a.tech.Services[i].Revenue = a.tech.Services[i].Revenue.Add(item.Price)
		}
	}

	out := make(map[string]Technician, len(accs))
	for key, a := range accs {
		out[key] = a.tech
	}
	return out
}

// TopServices returns the n highest-revenue services, descending. The sort is
// stable: ties keep the input (first-encounter) order. n <= 0 falls back to
// DefaultTopServices.
func TopServices(services []ServiceTotal, n int) []ServiceTotal {
	if n <= 0 {
		n = DefaultTopServices
	}

	top := make([]ServiceTotal, len(services))
	copy(top, services)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue.GreaterThan(top[j].Revenue)
	})

	if len(top) > n {
		top = top[:n]
	}
	return top
}

// FilterByBarber restricts the invoice set to one barber: exact match on the
// trimmed name, with Unattributed matching blank names. An empty filter is
// the identity.
func FilterByBarber(invoices []invoice.Invoice, name string) []invoice.Invoice {
	if name == "" {
		return invoices
	}

	var out []invoice.Invoice
	for _, inv := range invoices {
		if barberKey(inv.Barber) == name {
			out = append(out, inv)
		}
	}
	return out
}
