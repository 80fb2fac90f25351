package terminal

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
)

func (c *Console) customerMenu(ctx context.Context) error {
	for {
		c.clearScreen()
		c.println("=== Cliente ===")
		c.println("1. Adicionar")
		c.println("2. Alterar")
		c.println("3. Remover")
		c.println("4. Listar")
		c.println("5. Registrar pagamento")
		c.println("6. Voltar")
		choice, err := c.readLine("Escolha uma opção: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.addCustomer(ctx)
		case "2":
			err = c.alterCustomer(ctx)
		case "3":
			err = c.removeCustomer(ctx)
		case "4":
			err = c.listCustomers(ctx)
		case "5":
			err = c.registerPayment(ctx)
		case "6":
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

func (c *Console) addCustomer(ctx context.Context) error {
	var (
		customer model.Customer
		err      error
	)
	if customer.Name, err = c.readRequired("Nome: "); err != nil {
		return err
	}
	if customer.TaxID, err = c.readRequired("CPF: "); err != nil {
		return err
	}
	if customer.Age, err = c.readInt("Idade: "); err != nil {
		return err
	}
	if customer.BirthDate, err = c.readDate("Data de nascimento (DD/MM/AAAA): "); err != nil {
		return err
	}

	if err := c.svc.Customers.Create(ctx, &customer); err != nil {
		return c.report(err, "create customer")
	}
	c.println("Cliente adicionado com sucesso.")
	return c.hold()
}

// CPF 不可修改
func (c *Console) alterCustomer(ctx context.Context) error {
	taxID, err := c.readRequired("CPF do cliente: ")
	if err != nil {
		return err
	}
	if _, err := c.svc.Customers.GetByTaxID(ctx, taxID); err != nil {
		return c.report(err, "find customer")
	}

	c.println("Deixe em branco para manter o valor atual.")
	var patch model.CustomerPatch
	if patch.Name, err = c.readOptional("Nome: "); err != nil {
		return err
	}
	if patch.Age, err = c.readOptionalInt("Idade: "); err != nil {
		return err
	}
	if patch.BirthDate, err = c.readOptionalDate("Data de nascimento (DD/MM/AAAA): "); err != nil {
		return err
	}

	if _, err := c.svc.Customers.Update(ctx, taxID, patch); err != nil {
		return c.report(err, "update customer")
	}
	c.println("Cliente alterado com sucesso.")
	return c.hold()
}

func (c *Console) removeCustomer(ctx context.Context) error {
	taxID, err := c.readRequired("CPF do cliente: ")
	if err != nil {
		return err
	}
	if err := c.svc.Customers.Remove(ctx, taxID); err != nil {
		return c.report(err, "remove customer")
	}
	c.println("Cliente removido com sucesso.")
	return c.hold()
}

func (c *Console) listCustomers(ctx context.Context) error {
	customers, err := c.svc.Customers.List(ctx)
	if err != nil {
		return c.report(err, "list customers")
	}
	if len(customers) == 0 {
		c.println("Nenhum cliente cadastrado.")
		return c.pause()
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNome\tCPF\tIdade\tNascimento")
	for _, customer := range customers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			customer.ID, customer.Name, customer.TaxID, customer.Age, customer.BirthDate.Format(dateLayout))
	}
	w.Flush()
	return c.pause()
}

// registerPayment 以客戶 ID 選擇客戶
func (c *Console) registerPayment(ctx context.Context) error {
	customers, err := c.svc.Customers.List(ctx)
	if err != nil {
		return c.report(err, "list customers")
	}
	if len(customers) == 0 {
		c.println("Nenhum cliente cadastrado.")
		return c.hold()
	}
	for _, customer := range customers {
		c.printf("%d - %s\n", customer.ID, customer.Name)
	}

	customerID, err := c.readUint("ID do cliente: ")
	if err != nil {
		return err
	}
	paymentType, err := c.readLine("Tipo de pagamento: ")
	if err != nil {
		return err
	}
	amount, err := c.readDecimal("Valor: ")
	if err != nil {
		return err
	}

	if _, err := c.svc.Payments.Record(ctx, customerID, paymentType, amount); err != nil {
		return c.report(err, "record payment")
	}
	c.println("Pagamento registrado com sucesso.")
	return c.hold()
}
