package appliance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindRefrigerator, KindOf("170901234"))
	assert.Equal(t, KindVacuum, KindOf("263788703"))
	assert.Equal(t, KindMicrowave, KindOf("383477937"))
	assert.Equal(t, KindDishwasher, KindOf("487065284"))
	assert.Equal(t, KindDishwasher, KindOf("587065284"))
	assert.Equal(t, KindUnknown, KindOf("987065284"))
	assert.Equal(t, KindUnknown, KindOf(""))
}

func TestCheckout(t *testing.T) {
	item, err := ParseLine("263788703;Dyson;2;350;red;599.5;Residential;18")
	require.Nil(t, err)
	info := item.Info()
	assert.True(t, info.IsAvailable())
	assert.True(t, info.Checkout())
	assert.True(t, info.Checkout())
	assert.Equal(t, 0, info.Quantity)
	// 库存为0后无法售出 且库存不会变成负数
	assert.False(t, info.Checkout())
	assert.Equal(t, 0, info.Quantity)
	assert.Equal(t, "Out of Stock", info.AvailabilityStatus())
}

func TestAvailabilityStatus(t *testing.T) {
	a := &Appliance{ItemNumber: "101", Brand: "B", Quantity: 1, Color: "white"}
	assert.Equal(t, "1 item available", a.AvailabilityStatus())
	a.Quantity = 5
	assert.Equal(t, "5 items available", a.AvailabilityStatus())
}

func TestDescribe(t *testing.T) {
	item, err := ParseLine("170901234;Samsung;10;250;white;899.99;3;65;30")
	require.Nil(t, err)
	desc := item.Describe()
	assert.True(t, strings.Contains(desc, "Item Number: 170901234"))
	assert.True(t, strings.Contains(desc, "Price: $899.99"))
	assert.True(t, strings.Contains(desc, "Number of Doors: 3 (Three Doors)"))
}

func TestShortString(t *testing.T) {
	item, err := ParseLine("587065284;Bosch;8;1800;steel;749;Clean with Steam;Qt")
	require.Nil(t, err)
	short := item.Info().ShortString()
	assert.Equal(t, "Dishwasher [587065284] - Bosch (8 items available)", short)
}
