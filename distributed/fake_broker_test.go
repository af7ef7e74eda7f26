package distributed

import (
	"context"
	"strings"
	"sync"

	"github.com/lixenwraith/turbocow/broker"
)

// fakeBroker is an in-memory broker.Broker used to test the
// coordinator/worker/display logic without a real Redis instance.
type fakeBroker struct {
	mu       sync.Mutex
	lists    map[string][][]byte
	kv       map[string][]byte
	counters map[string]int64
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{
		lists:    map[string][][]byte{},
		kv:       map[string][]byte{},
		counters: map[string]int64{},
	}
}

func (f *fakeBroker) LPush(ctx context.Context, key string, values ...[]byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Real LPUSH key v1 v2 v3 is equivalent to three successive single
	// LPUSHes in argument order, so the final head-to-tail order is
	// v3,v2,v1: each later argument ends up closer to the head.
	for _, v := range values {
		f.lists[key] = append([][]byte{v}, f.lists[key]...)
	}
	return nil
}

func (f *fakeBroker) RPopN(ctx context.Context, key string, n int) ([][]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.lists[key]
	if n > len(list) {
		n = len(list)
	}
	if n <= 0 {
		return nil, nil
	}
	tail := list[len(list)-n:]
	out := make([][]byte, len(tail))
	copy(out, tail)
	f.lists[key] = list[:len(list)-n]
	return out, nil
}

func (f *fakeBroker) LLen(ctx context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.lists[key])), nil
}

func (f *fakeBroker) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.kv[key]
	return v, ok, nil
}

func (f *fakeBroker) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kv[key] = value
	return nil
}

func (f *fakeBroker) Incr(ctx context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters[key]++
	return f.counters[key], nil
}

func (f *fakeBroker) ScanDeletePrefix(ctx context.Context, prefix string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k := range f.lists {
		if strings.HasPrefix(k, prefix) {
			delete(f.lists, k)
		}
	}
	for k := range f.kv {
		if strings.HasPrefix(k, prefix) {
			delete(f.kv, k)
		}
	}
	for k := range f.counters {
		if strings.HasPrefix(k, prefix) {
			delete(f.counters, k)
		}
	}
	return nil
}

func (f *fakeBroker) Close() error { return nil }

var _ broker.Broker = (*fakeBroker)(nil)
