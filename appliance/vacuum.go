package appliance

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	lowVoltage  = 18
	highVoltage = 24
)

// Vacuum 吸尘器 货号以2开头 电池电压仅支持18V和24V
type Vacuum struct {
	Appliance
	Grade          string // Residential / Commercial
	BatteryVoltage int
}

func NewVacuum(base Appliance, grade string, batteryVoltage int) (*Vacuum, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	if KindOf(base.ItemNumber) != KindVacuum {
		return nil, errors.Errorf("vacuum item number must start with '2', got %s", base.ItemNumber)
	}
	if strings.TrimSpace(grade) == "" {
		return nil, errors.New("grade must not be empty")
	}
	if batteryVoltage != lowVoltage && batteryVoltage != highVoltage {
		return nil, errors.Errorf("battery voltage must be %d or %d, got %d", lowVoltage, highVoltage, batteryVoltage)
	}
	return &Vacuum{
		Appliance:      base,
		Grade:          grade,
		BatteryVoltage: batteryVoltage,
	}, nil
}

func (v *Vacuum) VoltageDescription() string {
	switch v.BatteryVoltage {
	case lowVoltage:
		return "Low Power - Light Cleaning"
	case highVoltage:
		return "High Power - Heavy Duty"
	default:
		return "Unknown"
	}
}

func (v *Vacuum) Describe() string {
	var builder strings.Builder
	v.describeCommon(&builder)
	fmt.Fprintf(&builder, "Grade: %s\n", v.Grade)
	fmt.Fprintf(&builder, "Battery Voltage: %dV (%s)\n", v.BatteryVoltage, v.VoltageDescription())
	return builder.String()
}

func (v *Vacuum) FileFormat() string {
	fields := append(v.fileFormatCommon(),
		v.Grade,
		fmt.Sprintf("%d", v.BatteryVoltage),
	)
	return strings.Join(fields, ";")
}
