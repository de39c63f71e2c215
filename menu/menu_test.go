package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godict/config"
	"godict/inventory"
)

const menuSample = `170901234;Samsung;10;250;white;899.99;3;65;30
263788703;Dyson;5;350;red;599.5;Residential;18
587065284;Bosch;8;1800;steel;749;Clean with Steam;Qt
`

func newTestMenu(t *testing.T, script string) (*Menu, *bytes.Buffer, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fs, "appliances.txt", []byte(menuSample), 0644))
	inv, err := inventory.NewBasicInventoryWithCapacity(8)
	require.Nil(t, err)
	loader := inventory.NewLoader(fs)
	_, err = loader.Load("appliances.txt", inv)
	require.Nil(t, err)
	out := &bytes.Buffer{}
	m := New(inv, loader, "appliances.txt", strings.NewReader(script), out)
	return m, out, fs
}

func TestMenuCheckoutAndExit(t *testing.T) {
	m, out, fs := newTestMenu(t, "1\n170901234\n5\n")
	assert.Nil(t, m.Run())
	output := out.String()
	assert.Contains(t, output, "has been checked out")
	assert.Contains(t, output, "Goodbye!")

	// 保存后的文件反映新库存
	saved, err := afero.ReadFile(fs, "appliances.txt")
	require.Nil(t, err)
	assert.Contains(t, string(saved), "170901234;Samsung;9;")
}

func TestMenuCheckoutMissingItem(t *testing.T) {
	m, out, _ := newTestMenu(t, "1\n000000000\n5\n")
	assert.Nil(t, m.Run())
	assert.Contains(t, out.String(), "No appliances found with that item number.")
}

func TestMenuFindByBrand(t *testing.T) {
	m, out, _ := newTestMenu(t, "2\ndyson\n5\n")
	assert.Nil(t, m.Run())
	output := out.String()
	assert.Contains(t, output, "Item Number: 263788703")
	assert.Contains(t, output, "Brand: Dyson")
}

func TestMenuDisplayByType(t *testing.T) {
	m, out, _ := newTestMenu(t, "3\n1\n3\n5\n")
	assert.Nil(t, m.Run())
	output := out.String()
	assert.Contains(t, output, "Number of Doors: 3 (Three Doors)")
}

func TestMenuDishwasherFilter(t *testing.T) {
	m, out, _ := newTestMenu(t, "3\n4\nQt\n5\n")
	assert.Nil(t, m.Run())
	assert.Contains(t, out.String(), "Sound Rating: Qt (Quietest)")
}

func TestMenuRandomList(t *testing.T) {
	m, out, _ := newTestMenu(t, "4\n2\n5\n")
	assert.Nil(t, m.Run())
	// 输出恰好包含2条家电描述
	assert.Equal(t, 2, strings.Count(out.String(), "Item Number: "))
}

func TestMenuRandomListCappedByConfig(t *testing.T) {
	old := config.Conf.RandomListLimit
	defer func() { config.Conf.RandomListLimit = old }()
	config.Conf.RandomListLimit = 2

	m, out, _ := newTestMenu(t, "4\n5\n5\n")
	assert.Nil(t, m.Run())
	output := out.String()
	assert.Contains(t, output, "Limiting list to 2 appliances.")
	assert.Equal(t, 2, strings.Count(output, "Item Number: "))
}

func TestMenuInvalidOption(t *testing.T) {
	m, out, _ := newTestMenu(t, "9\nabc\n5\n")
	assert.Nil(t, m.Run())
	output := out.String()
	assert.Contains(t, output, "Invalid option")
	assert.Contains(t, output, "Please enter a number.")
}

func TestMenuEOFExitsWithoutSaving(t *testing.T) {
	m, _, fs := newTestMenu(t, "1\n170901234\n")
	assert.Nil(t, m.Run())
	// 没有走保存分支 文件保持原样
	saved, err := afero.ReadFile(fs, "appliances.txt")
	require.Nil(t, err)
	assert.Contains(t, string(saved), "170901234;Samsung;10;")
}
