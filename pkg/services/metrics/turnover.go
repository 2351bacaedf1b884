package metrics

import "github.com/retail-tools/ledger-atlas/pkg/models/domain"

// costMarginFallback approximates unit cost as a share of sale price
// when the sold product no longer exists in inventory.
const costMarginFallback = 0.7

// InventoryTurnover measures how fast stock converts into sales: cost
// of goods sold over current inventory value, plus the implied days to
// sell through the shelf.
func InventoryTurnover(sales []domain.Sale, products []domain.Product) domain.Turnover {
	byID := make(map[string]domain.Product, len(products))
	var inventoryValue float64
	for _, p := range products {
		byID[p.ID] = p
		inventoryValue += p.Quantity * p.PurchasePrice
	}

	var cogs float64
	for _, s := range sales {
		for _, item := range s.Items {
			if p, ok := byID[item.ProductID]; ok {
				cogs += p.PurchasePrice * item.Quantity
			} else {
				cogs += item.Price * costMarginFallback * item.Quantity
			}
		}
	}

	t := domain.Turnover{COGS: cogs, InventoryValue: inventoryValue}
	if inventoryValue != 0 {
		t.Ratio = cogs / inventoryValue
	}
	if t.Ratio != 0 {
		t.DaysToSell = 365 / t.Ratio
	}
	return t
}
