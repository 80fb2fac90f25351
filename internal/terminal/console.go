package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/restaurant/internal/service"
	"github.com/rs/zerolog"
)

const (
	// 暫時的固定帳密, 不是正式的驗證機制
	placeholderLogin    = "ADMIN"
	placeholderPassword = "ADMIN"

	exitCountdown = 3
	clearSequence = "\033[H\033[2J"
)

type Services struct {
	Customers service.ICustomerService
	Employees service.IEmployeeService
	Menu      service.IMenuService
	Stock     service.IStockService
	Orders    service.IOrderService
	Payments  service.IPaymentService
}

type Console struct {
	in     *bufio.Reader
	out    io.Writer
	svc    Services
	logger *zerolog.Logger
	clear  bool
	sleep  func(time.Duration)
}

type Option func(*Console)

func WithClearScreen(clear bool) Option {
	return func(c *Console) {
		c.clear = clear
	}
}

func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Console) {
		c.sleep = sleep
	}
}

func NewConsole(in io.Reader, out io.Writer, svc Services, logger *zerolog.Logger, opts ...Option) *Console {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		svc:    svc,
		logger: logger,
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run 登入後進入主選單, 選擇 Sair 或輸入結束(EOF)時回傳 nil
func (c *Console) Run(ctx context.Context) error {
	err := c.run(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (c *Console) run(ctx context.Context) error {
	if err := c.login(ctx); err != nil {
		return err
	}
	c.logger.Info().Msg("operator logged in")
	return c.mainMenu(ctx)
}

func (c *Console) login(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.clearScreen()
		c.println("=== Restaurante ===")
		user, err := c.readLine("Login: ")
		if err != nil {
			return err
		}
		pass, err := c.readLine("Senha: ")
		if err != nil {
			return err
		}
		if strings.EqualFold(user, placeholderLogin) && strings.EqualFold(pass, placeholderPassword) {
			return nil
		}
		c.logger.Warn().Str("login", user).Msg("login rejected")
		c.println("Login inválido. Tente novamente.")
		if err := c.hold(); err != nil {
			return err
		}
	}
}

func (c *Console) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.clearScreen()
		c.println("=== Menu de Gerenciamento ===")
		c.println("1. Funcionário")
		c.println("2. Cliente")
		c.println("3. Cardápio")
		c.println("4. Estoque")
		c.println("5. Pagamentos")
		c.println("6. Pedidos")
		c.println("7. Sair")
		choice, err := c.readLine("Escolha uma opção: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.employeeMenu(ctx)
		case "2":
			err = c.customerMenu(ctx)
		case "3":
			err = c.catalogMenu(ctx)
		case "4":
			err = c.stockMenu(ctx)
		case "5":
			err = c.paymentsScreen(ctx)
		case "6":
			err = c.orderMenu(ctx)
		case "7":
			c.exit()
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

func (c *Console) exit() {
	for i := exitCountdown; i > 0; i-- {
		c.printf("Encerrando em %d segundos...\n", i)
		c.sleep(time.Second)
	}
}

func (c *Console) clearScreen() {
	if c.clear {
		fmt.Fprint(c.out, clearSequence)
	}
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// hold 會清除畫面時先暫停, 讓訊息停留到下一次重繪
func (c *Console) hold() error {
	if !c.clear {
		return nil
	}
	return c.pause()
}

// pause 等待 Enter, 讓列表停留在畫面上
func (c *Console) pause() error {
	_, err := c.readLine("Pressione Enter para continuar...")
	return err
}
