package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"godict/appliance"
	"godict/config"
	"godict/datastruct/dict"
	"godict/inventory"
	"godict/utils"
)

// Menu 终端交互菜单 输入输出可注入便于测试
type Menu struct {
	inv      *inventory.Inventory
	loader   *inventory.Loader
	filename string
	in       *bufio.Scanner
	out      io.Writer
}

func New(inv *inventory.Inventory, loader *inventory.Loader, filename string, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		inv:      inv,
		loader:   loader,
		filename: filename,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run 菜单主循环 直到用户选择保存退出或输入耗尽
func (m *Menu) Run() error {
	for {
		m.printMenu()
		choice, ok := m.readInt("Enter option: ")
		if !ok {
			// 输入耗尽 直接退出不落盘
			return nil
		}
		switch choice {
		case 1:
			m.checkout()
		case 2:
			m.findByBrand()
		case 3:
			m.displayByType()
		case 4:
			m.randomList()
		case 5:
			return m.saveAndExit()
		default:
			fmt.Fprintln(m.out, "Invalid option, please try again.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Welcome to Modern Appliances!")
	fmt.Fprintln(m.out, "How may we assist you?")
	fmt.Fprintln(m.out, "1 - Check out appliance")
	fmt.Fprintln(m.out, "2 - Find appliances by brand")
	fmt.Fprintln(m.out, "3 - Display appliances by type")
	fmt.Fprintln(m.out, "4 - Produce random appliance list")
	fmt.Fprintln(m.out, "5 - Save & exit")
}

func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) readInt(prompt string) (int, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}

func (m *Menu) checkout() {
	itemNumber, ok := m.readLine("Enter the item number of an appliance: ")
	if !ok {
		return
	}
	item, err := m.inv.Checkout(itemNumber)
	switch {
	case err == nil:
		fmt.Fprintf(m.out, "Appliance \"%s\" has been checked out.\n", itemNumber)
		zap.L().Info("appliance checked out", zap.String("item", item.Info().ShortString()))
	case errors.Is(err, dict.ErrNotFound):
		fmt.Fprintln(m.out, "No appliances found with that item number.")
	case errors.Is(err, inventory.ErrOutOfStock):
		fmt.Fprintln(m.out, "The appliance is not available to be checked out.")
	default:
		fmt.Fprintf(m.out, "Checkout failed: %v\n", err)
	}
}

func (m *Menu) findByBrand() {
	brand, ok := m.readLine("Enter brand to search for: ")
	if !ok {
		return
	}
	fmt.Fprintln(m.out, "Matching appliances:")
	m.printItems(m.inv.FindByBrand(brand))
}

func (m *Menu) displayByType() {
	fmt.Fprintln(m.out, "Appliance Types")
	fmt.Fprintln(m.out, "1 - Refrigerators")
	fmt.Fprintln(m.out, "2 - Vacuums")
	fmt.Fprintln(m.out, "3 - Microwaves")
	fmt.Fprintln(m.out, "4 - Dishwashers")
	choice, ok := m.readInt("Enter type of appliance: ")
	if !ok {
		return
	}
	switch choice {
	case 1:
		doors, ok := m.readInt("Enter number of doors: 2 (double door), 3 (three doors) or 4 (four doors): ")
		if !ok {
			return
		}
		fmt.Fprintln(m.out, "Matching refrigerators:")
		m.printItems(m.inv.FindRefrigerators(doors))
	case 2:
		voltage, ok := m.readInt("Enter battery voltage: 18 V or 24 V: ")
		if !ok {
			return
		}
		fmt.Fprintln(m.out, "Matching vacuums:")
		m.printItems(m.inv.FindVacuums(voltage))
	case 3:
		room, ok := m.readLine("Room where microwave will be placed: K (kitchen) or W (work site): ")
		if !ok {
			return
		}
		fmt.Fprintln(m.out, "Matching microwaves:")
		m.printItems(m.inv.FindMicrowaves(utils.FirstUpper(room)))
	case 4:
		rating, ok := m.readLine("Enter the sound rating of the dishwasher: Qt (Quietest), Qr (Quieter), Qu (Quiet) or M (Moderate): ")
		if !ok {
			return
		}
		fmt.Fprintln(m.out, "Matching dishwashers:")
		m.printItems(m.inv.FindDishwashers(rating))
	default:
		fmt.Fprintln(m.out, "Invalid appliance type.")
	}
}

func (m *Menu) randomList() {
	limit, ok := m.readInt("Enter number of appliances: ")
	if !ok {
		return
	}
	if limit < 0 {
		fmt.Fprintln(m.out, "Please enter a non-negative number.")
		return
	}
	if max := config.Conf.RandomListLimit; max > 0 && limit > max {
		fmt.Fprintf(m.out, "Limiting list to %d appliances.\n", max)
		limit = max
	}
	fmt.Fprintln(m.out, "Random appliances:")
	m.printItems(m.inv.RandomList(limit))
}

func (m *Menu) printItems(items []appliance.Item) {
	if len(items) == 0 {
		fmt.Fprintln(m.out, "No appliances found.")
		return
	}
	for _, item := range items {
		fmt.Fprintln(m.out)
		fmt.Fprint(m.out, item.Describe())
	}
}

func (m *Menu) saveAndExit() error {
	if err := m.loader.Save(m.filename, m.inv); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Saved %d appliances. Goodbye!\n", m.inv.Len())
	return nil
}
