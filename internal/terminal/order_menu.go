package terminal

import (
	"context"
	"strings"
)

func (c *Console) orderMenu(ctx context.Context) error {
	for {
		c.clearScreen()
		c.println("=== Pedidos ===")
		c.println("1. Fazer pedido")
		c.println("2. Listar pedidos do cliente")
		c.println("3. Voltar")
		choice, err := c.readLine("Escolha uma opção: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.placeOrder(ctx)
		case "2":
			err = c.listCustomerOrders(ctx)
		case "3":
			return nil
		default:
			c.println("Opção inválida.")
			err = c.hold()
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) placeOrder(ctx context.Context) error {
	taxID, err := c.readRequired("CPF do cliente: ")
	if err != nil {
		return err
	}
	customer, err := c.svc.Customers.GetByTaxID(ctx, taxID)
	if err != nil {
		return c.report(err, "find customer")
	}

	available, err := c.svc.Stock.ListInStock(ctx)
	if err != nil {
		return c.report(err, "list stock items")
	}
	if len(available) == 0 {
		c.println("Nenhum produto em estoque.")
	} else {
		c.println("Produtos disponíveis:")
		for _, item := range available {
			c.printf("  %s (%d)\n", item.Name, item.Quantity)
		}
	}

	line, err := c.readLine("Produtos (separados por vírgula): ")
	if err != nil {
		return err
	}
	order, err := c.svc.Orders.PlaceOrder(ctx, customer.ID, splitProducts(line))
	if err != nil {
		return c.report(err, "place order")
	}

	c.println("Pedido registrado.")
	c.println(order.Receipt(customer.TaxID))
	c.printf("Comanda: %s\n", order.Label)
	c.printf("Total: %s\n", money(order.Total))
	return c.pause()
}

func (c *Console) listCustomerOrders(ctx context.Context) error {
	taxID, err := c.readRequired("CPF do cliente: ")
	if err != nil {
		return err
	}
	customer, err := c.svc.Customers.GetByTaxID(ctx, taxID)
	if err != nil {
		return c.report(err, "find customer")
	}

	orders, err := c.svc.Orders.ListOrdersForCustomer(ctx, customer.ID)
	if err != nil {
		return c.report(err, "list orders")
	}
	if len(orders) == 0 {
		c.println("Nenhum pedido para este cliente.")
		return c.pause()
	}

	for _, order := range orders {
		names := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			names = append(names, item.ProductName)
		}
		c.printf("%s - %s - %s - %s\n",
			order.Label, order.OrderDate.Format(dateLayout), money(order.Total), strings.Join(names, ", "))
	}
	return c.pause()
}
