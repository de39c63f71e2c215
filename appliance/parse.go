package appliance

import (
	"strconv"

	"github.com/pkg/errors"

	"godict/utils"
)

const fieldSeparator = ";"

// ParseLine 解析数据文件中的一行
// 公共前缀: ItemNumber;Brand;Quantity;Wattage;Color;Price 类型专属字段跟在其后
func ParseLine(line string) (Item, error) {
	parts := utils.SplitFields(line, fieldSeparator)
	if len(parts) < 8 {
		return nil, errors.Errorf("expected at least 8 fields, got %d", len(parts))
	}
	quantity, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, errors.Wrap(err, "invalid quantity")
	}
	wattage, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, errors.Wrap(err, "invalid wattage")
	}
	price, err := strconv.ParseFloat(parts[5], 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid price")
	}
	base := Appliance{
		ItemNumber: parts[0],
		Brand:      parts[1],
		Quantity:   quantity,
		Wattage:    wattage,
		Color:      parts[4],
		Price:      price,
	}

	switch KindOf(base.ItemNumber) {
	case KindRefrigerator:
		// ...;NumberOfDoors;Height;Width
		if len(parts) != 9 {
			return nil, errors.Errorf("refrigerator line expects 9 fields, got %d", len(parts))
		}
		doors, err := strconv.Atoi(parts[6])
		if err != nil {
			return nil, errors.Wrap(err, "invalid number of doors")
		}
		height, err := strconv.Atoi(parts[7])
		if err != nil {
			return nil, errors.Wrap(err, "invalid height")
		}
		width, err := strconv.Atoi(parts[8])
		if err != nil {
			return nil, errors.Wrap(err, "invalid width")
		}
		return NewRefrigerator(base, doors, height, width)
	case KindVacuum:
		// ...;Grade;BatteryVoltage
		if len(parts) != 8 {
			return nil, errors.Errorf("vacuum line expects 8 fields, got %d", len(parts))
		}
		voltage, err := strconv.Atoi(parts[7])
		if err != nil {
			return nil, errors.Wrap(err, "invalid battery voltage")
		}
		return NewVacuum(base, parts[6], voltage)
	case KindMicrowave:
		// ...;Capacity;RoomType
		if len(parts) != 8 {
			return nil, errors.Errorf("microwave line expects 8 fields, got %d", len(parts))
		}
		capacity, err := strconv.ParseFloat(parts[6], 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid capacity")
		}
		return NewMicrowave(base, capacity, utils.FirstUpper(parts[7]))
	case KindDishwasher:
		// ...;Feature;SoundRating
		if len(parts) != 8 {
			return nil, errors.Errorf("dishwasher line expects 8 fields, got %d", len(parts))
		}
		return NewDishwasher(base, parts[6], parts[7])
	default:
		return nil, errors.Errorf("unknown appliance type for item number %s", base.ItemNumber)
	}
}
