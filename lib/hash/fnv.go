package hash

const (
	fnvPrime32 = uint32(16777619)
	fnvBasis32 = uint32(2166136261)
)

// Fnv32 32位FNV-1a哈希 用于分段字典的分片定位
func Fnv32(key string) int32 {
	h := fnvBasis32
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= fnvPrime32
	}
	return int32(h)
}
