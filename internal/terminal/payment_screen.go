package terminal

import (
	"context"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
)

// paymentsScreen 列出所有付款與每位客戶的合計
func (c *Console) paymentsScreen(ctx context.Context) error {
	c.clearScreen()
	c.println("=== Pagamentos ===")

	rows, err := c.svc.Payments.ListAllWithCustomer(ctx)
	if err != nil {
		return c.report(err, "list payments")
	}
	if len(rows) == 0 {
		c.println("Nenhum pagamento registrado.")
		return c.pause()
	}

	// 依第一次出現的順序列出合計
	customers := make([]model.Customer, 0)
	seen := make(map[uint]bool)
	for _, row := range rows {
		c.printf("%s - %s - %s\n", row.Customer.Name, row.Payment.Type, money(row.Payment.Amount))
		if !seen[row.Customer.ID] {
			seen[row.Customer.ID] = true
			customers = append(customers, row.Customer)
		}
	}

	c.println()
	for _, customer := range customers {
		total, err := c.svc.Payments.TotalFor(ctx, customer.ID)
		if err != nil {
			return c.report(err, "total payments")
		}
		c.printf("Total %s: %s\n", customer.Name, money(total))
	}
	return c.pause()
}
