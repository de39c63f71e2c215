package datastruct

import "fmt"

// Consumer 用于遍历字典， 如果返回false则终止遍历
type Consumer[K comparable, V any] func(key K, val V) bool

// Dict 字典ADT的统一接口 key唯一且不可为空 value可以为空
// 所有修改操作要么完整生效要么完全不生效 失败不会破坏字典实例本身
type Dict[K comparable, V any] interface {
	// Insert 插入新键值对 key已存在时返回重复键错误
	Insert(key K, val V) error
	// Remove 删除key对应的键值对 返回被删除的value key不存在时返回未找到错误
	Remove(key K) (V, error)
	// Update 原地替换key对应的value 返回旧的value key不存在时返回未找到错误
	Update(key K, newVal V) (V, error)
	// Lookup 查询key对应的value 纯查询 key不存在时返回未找到错误
	Lookup(key K) (V, error)
	// ContainsKey 判断key是否存在 key不存在是正常结果而不是错误
	ContainsKey(key K) (bool, error)
	Len() int32
	IsEmpty() bool
	Clear()
	// Keys 返回所有key的快照 与内部存储相互独立
	Keys() []K
	// Values 返回所有value的快照 未发生修改时与Keys()按下标一一对应
	Values() []V
	ForEach(consumer Consumer[K, V])
	fmt.Stringer
}
