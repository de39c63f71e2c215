package dict

import (
	"fmt"
	"reflect"
	"strings"

	"godict/interface/datastruct"
)

const defaultCapacity = 10

// LinearDict 基于两条平行切片实现的字典 keys[i]与values[i]永远配对
// 两条切片长度永远相等 key之间两两不相等 查找为线性扫描
type LinearDict[K comparable, V any] struct {
	keys   []K
	values []V
	equals func(a, b K) bool // 为nil时使用==比较
}

func NewLinearDict[K comparable, V any]() *LinearDict[K, V] {
	d, _ := NewLinearDictWithCapacity[K, V](defaultCapacity)
	return d
}

// NewLinearDictWithCapacity capacity只影响预分配 不影响行为 负数视为非法参数
func NewLinearDictWithCapacity[K comparable, V any](capacity int32) (*LinearDict[K, V], error) {
	if capacity < 0 {
		return nil, NewInvalidArgumentError(fmt.Sprintf("capacity must be >= 0, got %d", capacity))
	}
	return &LinearDict[K, V]{
		keys:   make([]K, 0, capacity),
		values: make([]V, 0, capacity),
	}, nil
}

// NewLinearDictWithEquals 使用自定义相等函数代替== 用于key类型自带等价关系的场景
func NewLinearDictWithEquals[K comparable, V any](equals func(a, b K) bool) *LinearDict[K, V] {
	return &LinearDict[K, V]{
		keys:   make([]K, 0, defaultCapacity),
		values: make([]V, 0, defaultCapacity),
		equals: equals,
	}
}

// isNilKey key为空指针/空接口等可空类型时返回true 值类型永远返回false
func isNilKey(key any) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Chan, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}

func (d *LinearDict[K, V]) checkKey(key K) error {
	if isNilKey(key) {
		return NewInvalidArgumentError("key must not be nil")
	}
	return nil
}

func (d *LinearDict[K, V]) keyEquals(a, b K) bool {
	if d.equals != nil {
		return d.equals(a, b)
	}
	return a == b
}

// indexOf 线性扫描 返回key所在下标 不存在返回-1
func (d *LinearDict[K, V]) indexOf(key K) int {
	for i, k := range d.keys {
		if d.keyEquals(key, k) {
			return i
		}
	}
	return -1
}

func (d *LinearDict[K, V]) Insert(key K, val V) error {
	if d == nil {
		panic("LinearDict is nil")
	}
	if err := d.checkKey(key); err != nil {
		return err
	}
	if d.indexOf(key) >= 0 {
		return NewDuplicateKeyError(key)
	}
	d.keys = append(d.keys, key)
	d.values = append(d.values, val)
	return nil
}

func (d *LinearDict[K, V]) Remove(key K) (V, error) {
	if d == nil {
		panic("LinearDict is nil")
	}
	var zero V
	if err := d.checkKey(key); err != nil {
		return zero, err
	}
	idx := d.indexOf(key)
	if idx < 0 {
		return zero, NewNotFoundError(key)
	}
	val := d.values[idx]
	// 两条切片在同一下标删除 维持配对关系
	d.keys = append(d.keys[:idx], d.keys[idx+1:]...)
	d.values = append(d.values[:idx], d.values[idx+1:]...)
	return val, nil
}

func (d *LinearDict[K, V]) Update(key K, newVal V) (V, error) {
	if d == nil {
		panic("LinearDict is nil")
	}
	var zero V
	if err := d.checkKey(key); err != nil {
		return zero, err
	}
	idx := d.indexOf(key)
	if idx < 0 {
		return zero, NewNotFoundError(key)
	}
	old := d.values[idx]
	d.values[idx] = newVal
	return old, nil
}

func (d *LinearDict[K, V]) Lookup(key K) (V, error) {
	if d == nil {
		panic("LinearDict is nil")
	}
	var zero V
	if err := d.checkKey(key); err != nil {
		return zero, err
	}
	idx := d.indexOf(key)
	if idx < 0 {
		return zero, NewNotFoundError(key)
	}
	return d.values[idx], nil
}

func (d *LinearDict[K, V]) ContainsKey(key K) (bool, error) {
	if d == nil {
		panic("LinearDict is nil")
	}
	if err := d.checkKey(key); err != nil {
		return false, err
	}
	return d.indexOf(key) >= 0, nil
}

func (d *LinearDict[K, V]) Len() int32 {
	if d == nil {
		panic("LinearDict is nil")
	}
	return int32(len(d.keys))
}

func (d *LinearDict[K, V]) IsEmpty() bool {
	return d.Len() == 0
}

func (d *LinearDict[K, V]) Clear() {
	if d == nil {
		panic("LinearDict is nil")
	}
	equals := d.equals
	*d = *NewLinearDict[K, V]()
	d.equals = equals
}

func (d *LinearDict[K, V]) Keys() []K {
	if d == nil {
		panic("LinearDict is nil")
	}
	result := make([]K, len(d.keys))
	copy(result, d.keys)
	return result
}

func (d *LinearDict[K, V]) Values() []V {
	if d == nil {
		panic("LinearDict is nil")
	}
	result := make([]V, len(d.values))
	copy(result, d.values)
	return result
}

func (d *LinearDict[K, V]) ForEach(consumer datastruct.Consumer[K, V]) {
	if d == nil {
		panic("LinearDict is nil")
	}
	for i, key := range d.keys {
		if continues := consumer(key, d.values[i]); !continues {
			return
		}
	}
}

// String 渲染为{k1=v1, k2=v2} 空字典渲染为{} 空value渲染为<nil>
func (d *LinearDict[K, V]) String() string {
	if d == nil {
		panic("LinearDict is nil")
	}
	var builder strings.Builder
	builder.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%v=%v", key, d.values[i]))
	}
	builder.WriteByte('}')
	return builder.String()
}
