package appliance

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	RoomKitchen  = 'K'
	RoomWorkSite = 'W'
)

// Microwave 微波炉 货号以3开头 安装位置K=厨房 W=工地
type Microwave struct {
	Appliance
	Capacity float64 // 立方英尺
	RoomType byte
}

func NewMicrowave(base Appliance, capacity float64, roomType byte) (*Microwave, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	if KindOf(base.ItemNumber) != KindMicrowave {
		return nil, errors.Errorf("microwave item number must start with '3', got %s", base.ItemNumber)
	}
	if capacity <= 0 {
		return nil, errors.New("capacity must be positive")
	}
	if roomType != RoomKitchen && roomType != RoomWorkSite {
		return nil, errors.Errorf("room type must be 'K' or 'W', got %q", roomType)
	}
	return &Microwave{
		Appliance: base,
		Capacity:  capacity,
		RoomType:  roomType,
	}, nil
}

func (m *Microwave) RoomTypeDescription() string {
	switch m.RoomType {
	case RoomKitchen:
		return "Kitchen"
	case RoomWorkSite:
		return "Work Site"
	default:
		return "Unknown"
	}
}

func (m *Microwave) Describe() string {
	var builder strings.Builder
	m.describeCommon(&builder)
	fmt.Fprintf(&builder, "Capacity: %.1f cu. ft.\n", m.Capacity)
	fmt.Fprintf(&builder, "Room Type: %s\n", m.RoomTypeDescription())
	return builder.String()
}

func (m *Microwave) FileFormat() string {
	fields := append(m.fileFormatCommon(),
		fmt.Sprintf("%.1f", m.Capacity),
		string(m.RoomType),
	)
	return strings.Join(fields, ";")
}
