package appliance

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	minDoors = 2
	maxDoors = 4
)

// Refrigerator 冰箱 货号以1开头
type Refrigerator struct {
	Appliance
	Doors  int
	Height int // 英寸
	Width  int // 英寸
}

func NewRefrigerator(base Appliance, doors, height, width int) (*Refrigerator, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	if KindOf(base.ItemNumber) != KindRefrigerator {
		return nil, errors.Errorf("refrigerator item number must start with '1', got %s", base.ItemNumber)
	}
	if doors < minDoors || doors > maxDoors {
		return nil, errors.Errorf("number of doors must be between %d and %d, got %d", minDoors, maxDoors, doors)
	}
	if height <= 0 || width <= 0 {
		return nil, errors.New("height and width must be positive")
	}
	return &Refrigerator{
		Appliance: base,
		Doors:     doors,
		Height:    height,
		Width:     width,
	}, nil
}

func (r *Refrigerator) DoorType() string {
	switch r.Doors {
	case 2:
		return "Double Door"
	case 3:
		return "Three Doors"
	case 4:
		return "Four Doors"
	default:
		return "Unknown Configuration"
	}
}

func (r *Refrigerator) Describe() string {
	var builder strings.Builder
	r.describeCommon(&builder)
	fmt.Fprintf(&builder, "Number of Doors: %d (%s)\n", r.Doors, r.DoorType())
	fmt.Fprintf(&builder, "Height: %d inches\n", r.Height)
	fmt.Fprintf(&builder, "Width: %d inches\n", r.Width)
	return builder.String()
}

func (r *Refrigerator) FileFormat() string {
	fields := append(r.fileFormatCommon(),
		fmt.Sprintf("%d", r.Doors),
		fmt.Sprintf("%d", r.Height),
		fmt.Sprintf("%d", r.Width),
	)
	return strings.Join(fields, ";")
}
