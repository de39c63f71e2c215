package inventory

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"godict/appliance"
	"godict/config"
	"godict/datastruct/dict"
	"godict/interface/datastruct"
)

// ErrOutOfStock 库存为0时结账失败
var ErrOutOfStock = errors.New("out of stock")

// Inventory 家电库存 货号->家电 key唯一性由字典保证
type Inventory struct {
	items datastruct.Dict[string, appliance.Item]
}

// NewInventory 创建并发安全的库存实例
func NewInventory() *Inventory {
	return &Inventory{
		items: dict.NewConcurrentDict[appliance.Item](config.Conf.ShardCount),
	}
}

// NewBasicInventory 创建非并发安全的库存实例 容量提示取自配置
func NewBasicInventory() (*Inventory, error) {
	return NewBasicInventoryWithCapacity(config.Conf.DictCapacity)
}

// NewBasicInventoryWithCapacity 容量提示只影响预分配 负数返回非法参数错误
func NewBasicInventoryWithCapacity(capacity int32) (*Inventory, error) {
	items, err := dict.NewLinearDictWithCapacity[string, appliance.Item](capacity)
	if err != nil {
		return nil, err
	}
	return &Inventory{items: items}, nil
}

// Add 入库 货号重复时返回dict.ErrDuplicateKey
func (inv *Inventory) Add(item appliance.Item) error {
	return inv.items.Insert(item.Info().ItemNumber, item)
}

func (inv *Inventory) Get(itemNumber string) (appliance.Item, error) {
	return inv.items.Lookup(itemNumber)
}

func (inv *Inventory) Contains(itemNumber string) bool {
	exists, _ := inv.items.ContainsKey(itemNumber)
	return exists
}

func (inv *Inventory) Len() int32 {
	return inv.items.Len()
}

func (inv *Inventory) IsEmpty() bool {
	return inv.items.IsEmpty()
}

func (inv *Inventory) Clear() {
	inv.items.Clear()
}

// Checkout 售出一件并把新库存写回字典
// 扣减通过共享指针直接生效 Update回写是为了值语义的后端也能看到新库存
// 扣减本身不在字典分段锁内 并发结账同一货号需由调用方串行化
func (inv *Inventory) Checkout(itemNumber string) (appliance.Item, error) {
	item, err := inv.items.Lookup(itemNumber)
	if err != nil {
		return nil, err
	}
	if !item.Info().Checkout() {
		return nil, errors.Wrap(ErrOutOfStock, itemNumber)
	}
	if _, err := inv.items.Update(itemNumber, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove 下架 返回被移除的家电
func (inv *Inventory) Remove(itemNumber string) (appliance.Item, error) {
	return inv.items.Remove(itemNumber)
}

// filter 收集满足条件的家电 结果按货号排序保证展示稳定
func (inv *Inventory) filter(keep func(item appliance.Item) bool) []appliance.Item {
	var result []appliance.Item
	inv.items.ForEach(func(key string, item appliance.Item) bool {
		if keep(item) {
			result = append(result, item)
		}
		return true
	})
	sort.Slice(result, func(i, j int) bool {
		return result[i].Info().ItemNumber < result[j].Info().ItemNumber
	})
	return result
}

// All 全量快照 按货号排序
func (inv *Inventory) All() []appliance.Item {
	return inv.filter(func(item appliance.Item) bool { return true })
}

// FindByBrand 按品牌查找 不区分大小写
func (inv *Inventory) FindByBrand(brand string) []appliance.Item {
	return inv.filter(func(item appliance.Item) bool {
		return strings.EqualFold(item.Info().Brand, brand)
	})
}

// FindRefrigerators doors为0时返回全部冰箱
func (inv *Inventory) FindRefrigerators(doors int) []appliance.Item {
	return inv.filter(func(item appliance.Item) bool {
		fridge, ok := item.(*appliance.Refrigerator)
		return ok && (doors == 0 || fridge.Doors == doors)
	})
}

// FindVacuums voltage为0时返回全部吸尘器
func (inv *Inventory) FindVacuums(voltage int) []appliance.Item {
	return inv.filter(func(item appliance.Item) bool {
		vacuum, ok := item.(*appliance.Vacuum)
		return ok && (voltage == 0 || vacuum.BatteryVoltage == voltage)
	})
}

// FindMicrowaves roomType为0时返回全部微波炉
func (inv *Inventory) FindMicrowaves(roomType byte) []appliance.Item {
	return inv.filter(func(item appliance.Item) bool {
		microwave, ok := item.(*appliance.Microwave)
		return ok && (roomType == 0 || microwave.RoomType == roomType)
	})
}

// FindDishwashers soundRating为空时返回全部洗碗机
func (inv *Inventory) FindDishwashers(soundRating string) []appliance.Item {
	return inv.filter(func(item appliance.Item) bool {
		dishwasher, ok := item.(*appliance.Dishwasher)
		return ok && (soundRating == "" || dishwasher.SoundRating == soundRating)
	})
}

// RandomList 随机挑选最多limit件家电 limit不为正时返回空
func (inv *Inventory) RandomList(limit int) []appliance.Item {
	if limit <= 0 {
		return nil
	}
	keys := inv.items.Keys()
	rand.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	if limit > len(keys) {
		limit = len(keys)
	}
	result := make([]appliance.Item, 0, limit)
	for _, key := range keys[:limit] {
		item, err := inv.items.Lookup(key)
		if err != nil {
			continue
		}
		result = append(result, item)
	}
	return result
}

func (inv *Inventory) String() string {
	return inv.items.String()
}
