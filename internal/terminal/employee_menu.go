package terminal

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
)

func (c *Console) employeeMenu(ctx context.Context) error {
	for {
		c.clearScreen()
		c.println("=== Funcionário ===")
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
			err = c.addEmployee(ctx)
		case "2":
			err = c.alterEmployee(ctx)
		case "3":
			err = c.removeEmployee(ctx)
		case "4":
			err = c.listEmployees(ctx)
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

func (c *Console) addEmployee(ctx context.Context) error {
	var (
		e   model.Employee
		err error
	)
	if e.Name, err = c.readRequired("Nome: "); err != nil {
		return err
	}
	if e.TaxID, err = c.readRequired("CPF: "); err != nil {
		return err
	}
	if e.Age, err = c.readInt("Idade: "); err != nil {
		return err
	}
	if e.BirthDate, err = c.readDate("Data de nascimento (DD/MM/AAAA): "); err != nil {
		return err
	}
	if e.Role, err = c.readRequired("Cargo: "); err != nil {
		return err
	}
	if e.Salary, err = c.readDecimal("Salário: "); err != nil {
		return err
	}

	if err := c.svc.Employees.Create(ctx, &e); err != nil {
		return c.report(err, "create employee")
	}
	c.println("Funcionário adicionado com sucesso.")
	return c.hold()
}

func (c *Console) alterEmployee(ctx context.Context) error {
	taxID, err := c.readRequired("CPF do funcionário: ")
	if err != nil {
		return err
	}
	if _, err := c.svc.Employees.GetByTaxID(ctx, taxID); err != nil {
		return c.report(err, "find employee")
	}

	c.println("Deixe em branco para manter o valor atual.")
	var patch model.EmployeePatch
	if patch.Name, err = c.readOptional("Nome: "); err != nil {
		return err
	}
	if patch.Age, err = c.readOptionalInt("Idade: "); err != nil {
		return err
	}
	if patch.BirthDate, err = c.readOptionalDate("Data de nascimento (DD/MM/AAAA): "); err != nil {
		return err
	}
	if patch.Role, err = c.readOptional("Cargo: "); err != nil {
		return err
	}
	if patch.Salary, err = c.readOptionalDecimal("Salário: "); err != nil {
		return err
	}

	if _, err := c.svc.Employees.Update(ctx, taxID, patch); err != nil {
		return c.report(err, "update employee")
	}
	c.println("Funcionário alterado com sucesso.")
	return c.hold()
}

func (c *Console) removeEmployee(ctx context.Context) error {
	taxID, err := c.readRequired("CPF do funcionário: ")
	if err != nil {
		return err
	}
	if err := c.svc.Employees.Remove(ctx, taxID); err != nil {
		return c.report(err, "remove employee")
	}
	c.println("Funcionário removido com sucesso.")
	return c.hold()
}

func (c *Console) listEmployees(ctx context.Context) error {
	employees, err := c.svc.Employees.List(ctx)
	if err != nil {
		return c.report(err, "list employees")
	}
	if len(employees) == 0 {
		c.println("Nenhum funcionário cadastrado.")
		return c.pause()
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNome\tCPF\tIdade\tNascimento\tCargo\tSalário")
	for _, e := range employees {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
			e.ID, e.Name, e.TaxID, e.Age, e.BirthDate.Format(dateLayout), e.Role, money(e.Salary))
	}
	w.Flush()
	return c.pause()
}
