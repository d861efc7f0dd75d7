package policy

import "container/list"

// lru implements the LRU eviction policy: a doubly-linked recency order
// where the tail is most-recently-used and the head is the next victim.
type lru struct {
	order *list.List
	elems map[string]*list.Element
}

// NewLRU constructs an empty LRU policy.
func NewLRU() Policy {
	return &lru{
		order: list.New(),
		elems: make(map[string]*list.Element),
	}
}

func (p *lru) OnAdd(_ View, key string) {
	p.elems[key] = p.order.PushBack(key)
}

func (p *lru) OnUpdate(_ View, key string) {
	p.touch(key)
}

func (p *lru) OnAccess(_ View, key string) {
	p.touch(key)
}

func (p *lru) touch(key string) {
	if elem, ok := p.elems[key]; ok {
		p.order.MoveToBack(elem)
	}
}

func (p *lru) OnDelete(_ View, key string) {
	if elem, ok := p.elems[key]; ok {
		p.order.Remove(elem)
		delete(p.elems, key)
	}
}

func (p *lru) SelectEvictionKey(_ View) (string, bool) {
	front := p.order.Front()
	if front == nil {
		return "", false
	}
	return front.Value.(string), true
}

func (p *lru) Reset() {
	p.order.Init()
	p.elems = make(map[string]*list.Element)
}
