package terminal

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "02/01/2006"

// readLine 回傳去除空白的一行, 輸入結束且沒有資料時回傳 io.EOF
func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) readRequired(prompt string) (string, error) {
	for {
		s, err := c.readLine(prompt)
		if err != nil || s != "" {
			return s, err
		}
		c.println("Campo obrigatório.")
	}
}

func (c *Console) readInt(prompt string) (int, error) {
	for {
		s, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		c.println("Número inválido.")
	}
}

func (c *Console) readUint(prompt string) (uint, error) {
	for {
		s, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			return uint(n), nil
		}
		c.println("Número inválido.")
	}
}

func (c *Console) readDecimal(prompt string) (decimal.Decimal, error) {
	for {
		s, err := c.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		if d, err := parseDecimal(s); err == nil {
			return d, nil
		}
		c.println("Valor inválido.")
	}
}

func (c *Console) readDate(prompt string) (time.Time, error) {
	for {
		s, err := c.readLine(prompt)
		if err != nil {
			return time.Time{}, err
		}
		if t, err := time.Parse(dateLayout, s); err == nil {
			return t, nil
		}
		c.println("Data inválida. Use o formato DD/MM/AAAA.")
	}
}

// 以下 optional 版本: 空白代表保留原值, 回傳 nil

func (c *Console) readOptional(prompt string) (*string, error) {
	s, err := c.readLine(prompt)
	if err != nil || s == "" {
		return nil, err
	}
	return &s, nil
}

func (c *Console) readOptionalInt(prompt string) (*int, error) {
	for {
		s, err := c.readLine(prompt)
		if err != nil || s == "" {
			return nil, err
		}
		if n, err := strconv.Atoi(s); err == nil {
			return &n, nil
		}
		c.println("Número inválido.")
	}
}

func (c *Console) readOptionalDecimal(prompt string) (*decimal.Decimal, error) {
	for {
		s, err := c.readLine(prompt)
		if err != nil || s == "" {
			return nil, err
		}
		if d, err := parseDecimal(s); err == nil {
			return &d, nil
		}
		c.println("Valor inválido.")
	}
}

func (c *Console) readOptionalDate(prompt string) (*time.Time, error) {
	for {
		s, err := c.readLine(prompt)
		if err != nil || s == "" {
			return nil, err
		}
		if t, err := time.Parse(dateLayout, s); err == nil {
			return &t, nil
		}
		c.println("Data inválida. Use o formato DD/MM/AAAA.")
	}
}

// parseDecimal 接受 "10.5" 與 "10,5"
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.Replace(s, ",", ".", 1))
}

func splitProducts(s string) []string {
	names := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func money(d decimal.Decimal) string {
	return "R$" + d.StringFixed(2)
}
