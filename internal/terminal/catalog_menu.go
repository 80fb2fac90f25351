package terminal

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
)

func (c *Console) catalogMenu(ctx context.Context) error {
	for {
		c.clearScreen()
		c.println("=== Cardápio ===")
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
			err = c.addMenuItem(ctx)
		case "2":
			err = c.alterMenuItem(ctx)
		case "3":
			err = c.removeMenuItem(ctx)
		case "4":
			err = c.listMenuItems(ctx)
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

func (c *Console) addMenuItem(ctx context.Context) error {
	name, err := c.readRequired("Nome do item: ")
	if err != nil {
		return err
	}
	price, err := c.readDecimal("Preço: ")
	if err != nil {
		return err
	}

	if _, err := c.svc.Menu.Create(ctx, name, price); err != nil {
		return c.report(err, "create menu item")
	}
	c.println("Item adicionado ao cardápio.")
	return c.hold()
}

func (c *Console) alterMenuItem(ctx context.Context) error {
	name, err := c.readRequired("Nome do item: ")
	if err != nil {
		return err
	}
	if _, err := c.svc.Menu.Get(ctx, name); err != nil {
		return c.report(err, "find menu item")
	}

	c.println("Deixe em branco para manter o valor atual.")
	var patch model.MenuPatch
	if patch.Name, err = c.readOptional("Novo nome: "); err != nil {
		return err
	}
	if patch.Price, err = c.readOptionalDecimal("Novo preço: "); err != nil {
		return err
	}

	if _, err := c.svc.Menu.Update(ctx, name, patch); err != nil {
		return c.report(err, "update menu item")
	}
	c.println("Item alterado com sucesso.")
	return c.hold()
}

func (c *Console) removeMenuItem(ctx context.Context) error {
	name, err := c.readRequired("Nome do item: ")
	if err != nil {
		return err
	}
	if err := c.svc.Menu.Remove(ctx, name); err != nil {
		return c.report(err, "remove menu item")
	}
	c.println("Item removido do cardápio.")
	return c.hold()
}

func (c *Console) listMenuItems(ctx context.Context) error {
	items, err := c.svc.Menu.List(ctx)
	if err != nil {
		return c.report(err, "list menu items")
	}
	if len(items) == 0 {
		c.println("Cardápio vazio.")
		return c.pause()
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNome\tPreço")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\n", item.ID, item.Name, money(item.Price))
	}
	w.Flush()
	return c.pause()
}
