package appliance

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind 家电类型 由货号首位数字决定
type Kind int

const (
	KindUnknown Kind = iota
	KindRefrigerator
	KindVacuum
	KindMicrowave
	KindDishwasher
)

func (k Kind) String() string {
	switch k {
	case KindRefrigerator:
		return "Refrigerator"
	case KindVacuum:
		return "Vacuum"
	case KindMicrowave:
		return "Microwave"
	case KindDishwasher:
		return "Dishwasher"
	default:
		return "Unknown"
	}
}

// KindOf 1=冰箱 2=吸尘器 3=微波炉 4|5=洗碗机
func KindOf(itemNumber string) Kind {
	if itemNumber == "" {
		return KindUnknown
	}
	switch itemNumber[0] {
	case '1':
		return KindRefrigerator
	case '2':
		return KindVacuum
	case '3':
		return KindMicrowave
	case '4', '5':
		return KindDishwasher
	default:
		return KindUnknown
	}
}

// Item 库存条目的统一接口 四种家电都实现它
type Item interface {
	Info() *Appliance
	// Describe 面向终端展示的多行描述
	Describe() string
	// FileFormat 持久化时按分号拼接的一行
	FileFormat() string
}

// Appliance 所有家电共有的字段与行为
type Appliance struct {
	ItemNumber string
	Brand      string
	Quantity   int
	Wattage    int
	Color      string
	Price      float64
}

func (a *Appliance) validate() error {
	if strings.TrimSpace(a.ItemNumber) == "" {
		return errors.New("item number must not be empty")
	}
	if strings.TrimSpace(a.Brand) == "" {
		return errors.New("brand must not be empty")
	}
	if a.Quantity < 0 {
		return errors.New("quantity must not be negative")
	}
	if a.Wattage < 0 {
		return errors.New("wattage must not be negative")
	}
	if strings.TrimSpace(a.Color) == "" {
		return errors.New("color must not be empty")
	}
	if a.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

func (a *Appliance) Info() *Appliance {
	return a
}

func (a *Appliance) Kind() Kind {
	return KindOf(a.ItemNumber)
}

func (a *Appliance) IsAvailable() bool {
	return a.Quantity > 0
}

// Checkout 售出一件 库存为0时返回false
func (a *Appliance) Checkout() bool {
	if a.Quantity > 0 {
		a.Quantity--
		return true
	}
	return false
}

func (a *Appliance) AvailabilityStatus() string {
	switch a.Quantity {
	case 0:
		return "Out of Stock"
	case 1:
		return "1 item available"
	default:
		return fmt.Sprintf("%d items available", a.Quantity)
	}
}

// ShortString 一行简述 用于日志
func (a *Appliance) ShortString() string {
	return fmt.Sprintf("%s [%s] - %s (%s)", a.Kind(), a.ItemNumber, a.Brand, a.AvailabilityStatus())
}

// describeCommon 公共字段的展示骨架 类型专属字段由各自的Describe补充
func (a *Appliance) describeCommon(builder *strings.Builder) {
	fmt.Fprintf(builder, "Item Number: %s\n", a.ItemNumber)
	fmt.Fprintf(builder, "Brand: %s\n", a.Brand)
	fmt.Fprintf(builder, "Quantity: %d\n", a.Quantity)
	fmt.Fprintf(builder, "Wattage: %d watts\n", a.Wattage)
	fmt.Fprintf(builder, "Color: %s\n", a.Color)
	fmt.Fprintf(builder, "Price: $%.2f\n", a.Price)
}

// fileFormatCommon 公共字段的文件格式前缀
func (a *Appliance) fileFormatCommon() []string {
	return []string{
		a.ItemNumber,
		a.Brand,
		fmt.Sprintf("%d", a.Quantity),
		fmt.Sprintf("%d", a.Wattage),
		a.Color,
		formatPrice(a.Price),
	}
}

// formatPrice 小数位去尾 与原始文件格式保持一致
func formatPrice(price float64) string {
	s := fmt.Sprintf("%.2f", price)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
