package benchmarkRoutines

import (
	"testing"
)

func DoBenchmarkOfPut(b *testing.B, factoryFunc mapFactoryFunc, initialCapacity uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(initialCapacity)

	keys := generateKeys(keyAmount, keyType)

	currentCount := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Put(keys[currentCount], i)
		currentCount++
		if currentCount >= keyAmount {
			b.StopTimer()
			m = factoryFunc(initialCapacity)
			currentCount = 0
			b.StartTimer()
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfRePut(b *testing.B, factoryFunc mapFactoryFunc, initialCapacity uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(initialCapacity)

	keys := generateKeys(keyAmount, keyType)
	for i := uint64(0); i < keyAmount; i++ {
		m.Put(keys[i], i+1)
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Put(keys[currentIdx], i)
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGet(b *testing.B, factoryFunc mapFactoryFunc, initialCapacity uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(initialCapacity)

	keys := generateKeys(keyAmount, keyType)
	for i := uint64(0); i < keyAmount; i++ {
		m.Put(keys[i], i)
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGetMiss(b *testing.B, factoryFunc mapFactoryFunc, initialCapacity uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(initialCapacity)

	keys := generateKeys(keyAmount, keyType)

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfRemove(b *testing.B, factoryFunc mapFactoryFunc, initialCapacity uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(initialCapacity)
	keys := generateKeys(keyAmount, keyType)

	currentIdx := uint64(0)
	for i := 0; i < b.N; i++ {
		if currentIdx == 0 {
			b.StopTimer()
			for j := uint64(0); j < keyAmount; j++ {
				m.Put(keys[j], j)
			}
			b.StartTimer()
		}

		m.Remove(keys[currentIdx])

		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}
