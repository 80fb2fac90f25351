package terminal

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
)

func (c *Console) stockMenu(ctx context.Context) error {
	for {
		c.clearScreen()
		c.println("=== Estoque ===")
		c.println("1. Adicionar")
		c.println("2. Alterar")
		c.println("3. Remover")
		c.println("4. Listar")
		c.println("5. Voltar")
		choice, err := c.readLine("Escolha uma opção: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.addStockItem(ctx)
		case "2":
			err = c.alterStockItem(ctx)
		case "3":
			err = c.removeStockItem(ctx)
		case "4":
			err = c.listStockItems(ctx)
		case "5":
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

func (c *Console) addStockItem(ctx context.Context) error {
	name, err := c.readRequired("Nome do produto: ")
	if err != nil {
		return err
	}
	qty, err := c.readInt("Quantidade: ")
	if err != nil {
		return err
	}
	price, err := c.readDecimal("Preço unitário: ")
	if err != nil {
		return err
	}

	if _, err := c.svc.Stock.Create(ctx, name, qty, price); err != nil {
		return c.report(err, "create stock item")
	}
	c.println("Produto adicionado ao estoque.")
	return c.hold()
}

func (c *Console) alterStockItem(ctx context.Context) error {
	name, err := c.readRequired("Nome do produto: ")
	if err != nil {
		return err
	}
	if _, err := c.svc.Stock.Get(ctx, name); err != nil {
		return c.report(err, "find stock item")
	}

	c.println("Deixe em branco para manter o valor atual.")
	var patch model.StockPatch
	if patch.Name, err = c.readOptional("Novo nome: "); err != nil {
		return err
	}
	if patch.Quantity, err = c.readOptionalInt("Nova quantidade: "); err != nil {
		return err
	}
	if patch.UnitPrice, err = c.readOptionalDecimal("Novo preço unitário: "); err != nil {
		return err
	}

	if _, err := c.svc.Stock.Update(ctx, name, patch); err != nil {
		return c.report(err, "update stock item")
	}
	c.println("Produto alterado com sucesso.")
	return c.hold()
}

func (c *Console) removeStockItem(ctx context.Context) error {
	name, err := c.readRequired("Nome do produto: ")
	if err != nil {
		return err
	}
	if err := c.svc.Stock.Remove(ctx, name); err != nil {
		return c.report(err, "remove stock item")
	}
	c.println("Produto removido do estoque.")
	return c.hold()
}

func (c *Console) listStockItems(ctx context.Context) error {
	items, err := c.svc.Stock.List(ctx)
	if err != nil {
		return c.report(err, "list stock items")
	}
	if len(items) == 0 {
		c.println("Estoque vazio.")
		return c.pause()
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNome\tQuantidade\tPreço unitário")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", item.ID, item.Name, item.Quantity, money(item.UnitPrice))
	}
	w.Flush()
	return c.pause()
}
