package appliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRefrigerator(t *testing.T) {
	item, err := ParseLine("170901234;Samsung;10;250;white;899.99;3;65;30")
	require.Nil(t, err)
	fridge, ok := item.(*Refrigerator)
	require.True(t, ok)
	assert.Equal(t, "170901234", fridge.ItemNumber)
	assert.Equal(t, "Samsung", fridge.Brand)
	assert.Equal(t, 10, fridge.Quantity)
	assert.Equal(t, 250, fridge.Wattage)
	assert.Equal(t, "white", fridge.Color)
	assert.Equal(t, 899.99, fridge.Price)
	assert.Equal(t, 3, fridge.Doors)
	assert.Equal(t, 65, fridge.Height)
	assert.Equal(t, 30, fridge.Width)
	assert.Equal(t, KindRefrigerator, fridge.Kind())
}

func TestParseVacuum(t *testing.T) {
	item, err := ParseLine("263788703;Dyson;5;350;red;599.5;Residential;18")
	require.Nil(t, err)
	vacuum, ok := item.(*Vacuum)
	require.True(t, ok)
	assert.Equal(t, "Residential", vacuum.Grade)
	assert.Equal(t, 18, vacuum.BatteryVoltage)
}

func TestParseMicrowave(t *testing.T) {
	item, err := ParseLine("383477937;Panasonic;0;1100;silver;229;1.2;k")
	require.Nil(t, err)
	microwave, ok := item.(*Microwave)
	require.True(t, ok)
	assert.Equal(t, 1.2, microwave.Capacity)
	// 小写房间类型归一化为大写
	assert.Equal(t, byte(RoomKitchen), microwave.RoomType)
	assert.False(t, microwave.IsAvailable())
}

func TestParseDishwasher(t *testing.T) {
	item, err := ParseLine("587065284;Bosch;8;1800;stainless steel;749;Clean with Steam;Qt")
	require.Nil(t, err)
	dishwasher, ok := item.(*Dishwasher)
	require.True(t, ok)
	assert.Equal(t, "Clean with Steam", dishwasher.Feature)
	assert.Equal(t, "Qt", dishwasher.SoundRating)
	assert.Equal(t, "Quietest", dishwasher.SoundRatingDescription())
}

func TestParseBadLines(t *testing.T) {
	cases := []string{
		"",
		"170901234;Samsung;10",                               // 字段不足
		"170901234;Samsung;ten;250;white;899.99;3;65;30",     // 数量非数字
		"170901234;Samsung;10;250;white;899.99;5;65;30",      // 门数超范围
		"263788703;Dyson;5;350;red;599.5;Residential;20",     // 非法电压
		"383477937;Panasonic;0;1100;silver;229;1.2;X",        // 非法房间类型
		"587065284;Bosch;8;1800;steel;749;Steam;Zz",          // 非法噪音等级
		"987065284;Acme;8;1800;steel;749;whatever;extra",     // 未知类型
		"170901234;Samsung;-1;250;white;899.99;3;65;30",      // 负库存
		"263788703;;5;350;red;599.5;Residential;18",          // 品牌为空
	}
	for _, line := range cases {
		_, err := ParseLine(line)
		assert.NotNil(t, err, "line %q should not parse", line)
	}
}

func TestFileFormatRoundTrip(t *testing.T) {
	lines := []string{
		"170901234;Samsung;10;250;white;899.99;3;65;30",
		"263788703;Dyson;5;350;red;599.5;Residential;18",
		"383477937;Panasonic;0;1100;silver;229;1.2;K",
		"587065284;Bosch;8;1800;stainless steel;749;Clean with Steam;Qt",
	}
	for _, line := range lines {
		item, err := ParseLine(line)
		require.Nil(t, err)
		assert.Equal(t, line, item.FileFormat())
	}
}
