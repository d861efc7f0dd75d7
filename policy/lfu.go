package policy

import "container/heap"

// lfu implements the LFU eviction policy: a min-heap on access frequency,
// with a monotonic sequence counter breaking ties in favor of the
// least-recently-touched key.
type lfu struct {
	items map[string]*lfuItem
	heap  *lfuHeap
	clock int64
}

type lfuItem struct {
	key   string
	freq  int
	seq   int64
	index int
}

// NewLFU constructs an empty LFU policy.
func NewLFU() Policy {
	h := &lfuHeap{}
	heap.Init(h)
	return &lfu{
		items: make(map[string]*lfuItem),
		heap:  h,
	}
}

func (p *lfu) OnAdd(_ View, key string) {
	p.clock++
	item := &lfuItem{key: key, freq: 1, seq: p.clock}
	heap.Push(p.heap, item)
	p.items[key] = item
}

func (p *lfu) OnUpdate(_ View, key string) {
	p.touch(key)
}

func (p *lfu) OnAccess(_ View, key string) {
	p.touch(key)
}

func (p *lfu) touch(key string) {
	item, ok := p.items[key]
	if !ok {
		return
	}
	p.clock++
	item.freq++
	item.seq = p.clock
	heap.Fix(p.heap, item.index)
}

func (p *lfu) OnDelete(_ View, key string) {
	item, ok := p.items[key]
	if !ok {
		return
	}
	heap.Remove(p.heap, item.index)
	delete(p.items, key)
}

func (p *lfu) SelectEvictionKey(_ View) (string, bool) {
	if p.heap.Len() == 0 {
		return "", false
	}
	return (*p.heap)[0].key, true
}

func (p *lfu) Reset() {
	p.items = make(map[string]*lfuItem)
	h := &lfuHeap{}
	heap.Init(h)
	p.heap = h
	p.clock = 0
}

// lfuHeap orders by frequency ascending, then by sequence ascending (the
// older — less recently touched — entry sorts first and is evicted first).
type lfuHeap []*lfuItem

func (h lfuHeap) Len() int { return len(h) }

func (h lfuHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}

func (h lfuHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *lfuHeap) Push(x any) {
	item := x.(*lfuItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *lfuHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
