package dict

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"godict/interface/datastruct"
	"godict/lib/hash"
)

const minMapSize = 16

// ConcurrentDict 分段加锁的并发安全字典 key固定为string 编译期即保证key非空
// 对外契约与LinearDict一致 供多goroutine共享同一份数据的调用方使用
type ConcurrentDict[V any] struct {
	table      []*shard[V] // 分段
	count      int32       // key总数
	shardCount int32       // 分段数量 相当于并发度 一个分段会有一把锁
}

type shard[V any] struct {
	m     map[string]V // golang内置的map
	mutex sync.RWMutex // 读写锁
}

func computeCapacity(size int32) int32 {
	if size <= minMapSize {
		return minMapSize
	}
	n := size - 1
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	if n < 0 {
		return math.MaxInt32
	}
	return n + 1
}

func NewConcurrentDict[V any](shardCount int32) *ConcurrentDict[V] {
	shardCount = computeCapacity(shardCount)
	table := make([]*shard[V], shardCount)
	for i := int32(0); i < shardCount; i++ {
		table[i] = &shard[V]{
			m: make(map[string]V),
		}
	}
	return &ConcurrentDict[V]{
		table:      table,
		shardCount: shardCount,
	}
}

// spread 根据hashCode返回table的索引
func (d *ConcurrentDict[V]) spread(hashCode int32) int32 {
	if d == nil {
		zap.L().Panic("ConcurrentDict is nil")
	}
	return (d.shardCount - 1) & hashCode
}

func (d *ConcurrentDict[V]) getShard(hashCode int32) *shard[V] {
	if d == nil {
		zap.L().Panic("ConcurrentDict is nil")
	}
	index := d.spread(hashCode)
	return d.table[index]
}

func (d *ConcurrentDict[V]) Insert(key string, val V) error {
	s := d.getShard(hash.Fnv32(key))
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.m[key]; ok {
		return NewDuplicateKeyError(key)
	}
	s.m[key] = val
	d.addCount()
	return nil
}

func (d *ConcurrentDict[V]) Remove(key string) (V, error) {
	s := d.getShard(hash.Fnv32(key))
	s.mutex.Lock()
	defer s.mutex.Unlock()
	val, ok := s.m[key]
	if !ok {
		var zero V
		return zero, NewNotFoundError(key)
	}
	delete(s.m, key)
	d.decreaseCount()
	return val, nil
}

func (d *ConcurrentDict[V]) Update(key string, newVal V) (V, error) {
	s := d.getShard(hash.Fnv32(key))
	s.mutex.Lock()
	defer s.mutex.Unlock()
	old, ok := s.m[key]
	if !ok {
		var zero V
		return zero, NewNotFoundError(key)
	}
	s.m[key] = newVal
	return old, nil
}

func (d *ConcurrentDict[V]) Lookup(key string) (V, error) {
	s := d.getShard(hash.Fnv32(key))
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	val, ok := s.m[key]
	if !ok {
		var zero V
		return zero, NewNotFoundError(key)
	}
	return val, nil
}

func (d *ConcurrentDict[V]) ContainsKey(key string) (bool, error) {
	s := d.getShard(hash.Fnv32(key))
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	_, ok := s.m[key]
	return ok, nil
}

func (d *ConcurrentDict[V]) Len() int32 {
	if d == nil {
		zap.L().Panic("ConcurrentDict is nil")
	}
	return atomic.LoadInt32(&d.count)
}

func (d *ConcurrentDict[V]) IsEmpty() bool {
	return d.Len() == 0
}

func (d *ConcurrentDict[V]) Clear() {
	*d = *NewConcurrentDict[V](d.shardCount)
}

func (d *ConcurrentDict[V]) addCount() int32 {
	if d == nil {
		zap.L().Panic("ConcurrentDict is nil")
	}
	return atomic.AddInt32(&d.count, 1)
}

func (d *ConcurrentDict[V]) decreaseCount() int32 {
	if d == nil {
		zap.L().Panic("ConcurrentDict is nil")
	}
	return atomic.AddInt32(&d.count, -1)
}

// snapshot 合并所有分段后按key排序 保证同一状态下Keys与Values按下标配对
func (d *ConcurrentDict[V]) snapshot() ([]string, []V) {
	if d == nil {
		zap.L().Panic("ConcurrentDict is nil")
	}
	merged := make(map[string]V, d.Len())
	for _, s := range d.table {
		s.mutex.RLock()
		for key, val := range s.m {
			merged[key] = val
		}
		s.mutex.RUnlock()
	}
	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	values := make([]V, len(keys))
	for i, key := range keys {
		values[i] = merged[key]
	}
	return keys, values
}

func (d *ConcurrentDict[V]) Keys() []string {
	keys, _ := d.snapshot()
	return keys
}

func (d *ConcurrentDict[V]) Values() []V {
	_, values := d.snapshot()
	return values
}

func (d *ConcurrentDict[V]) ForEach(consumer datastruct.Consumer[string, V]) {
	if d == nil {
		zap.L().Panic("ConcurrentDict is nil")
	}
	// 返回false要终止整个遍历 不只是当前分段
	stopped := false
	for _, s := range d.table {
		s.mutex.RLock()
		func() {
			defer s.mutex.RUnlock()
			for key, val := range s.m {
				if continues := consumer(key, val); !continues {
					stopped = true
					return
				}
			}
		}()
		if stopped {
			return
		}
	}
}

func (d *ConcurrentDict[V]) String() string {
	keys, values := d.snapshot()
	var builder strings.Builder
	builder.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%v=%v", key, values[i]))
	}
	builder.WriteByte('}')
	return builder.String()
}
