package policy

import "container/list"

// fifo implements the FIFO eviction policy: insertion order is the only
// order that matters, reads and updates never reshuffle it.
type fifo struct {
	order *list.List
	elems map[string]*list.Element
}

// NewFIFO constructs an empty FIFO policy.
func NewFIFO() Policy {
	return &fifo{
		order: list.New(),
		elems: make(map[string]*list.Element),
	}
}

func (p *fifo) OnAdd(_ View, key string) {
	p.elems[key] = p.order.PushBack(key)
}

func (p *fifo) OnUpdate(_ View, _ string) {}

func (p *fifo) OnAccess(_ View, _ string) {}

func (p *fifo) OnDelete(_ View, key string) {
	if elem, ok := p.elems[key]; ok {
		p.order.Remove(elem)
		delete(p.elems, key)
	}
}

func (p *fifo) SelectEvictionKey(_ View) (string, bool) {
	front := p.order.Front()
	if front == nil {
		return "", false
	}
	return front.Value.(string), true
}

func (p *fifo) Reset() {
	p.order.Init()
	p.elems = make(map[string]*list.Element)
}
