package textmeasure

import (
	"container/list"
	"sync"

	"golang.org/x/image/font"
)

// faceLRU is a thread-safe bounded cache of font.Face objects keyed by a
// caller-supplied string, adapted from the teacher's internal/render
// fontLRU: same eviction policy (doubly linked list, oldest evicted first),
// generalized so textmeasure isn't coupled to the teacher's global
// package-level instance.
type faceLRU struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

type faceLRUEntry struct {
	key  string
	face font.Face
}

func newFaceLRU(capacity int) *faceLRU {
	if capacity < 1 {
		capacity = 1
	}
	return &faceLRU{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *faceLRU) get(key string) (font.Face, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		return el.Value.(*faceLRUEntry).face, true
	}
	return nil, false
}

func (c *faceLRU) put(key string, face font.Face) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		el.Value.(*faceLRUEntry).face = face
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		if oldest != nil {
			ent := oldest.Value.(*faceLRUEntry)
			if closer, ok := ent.face.(interface{ Close() error }); ok {
				_ = closer.Close()
			}
			delete(c.items, ent.key)
			c.order.Remove(oldest)
		}
	}

	el := c.order.PushBack(&faceLRUEntry{key: key, face: face})
	c.items[key] = el
}

// defaultFaceCache backs every Font created through this package. A
// capacity of 32 matches the teacher's own default (internal/render's
// fontCache = newFontLRU(32)).
var defaultFaceCache = newFaceLRU(32)

// SetFaceCacheCapacity replaces the package-wide face cache with one of
// the given capacity, releasing every currently cached face.
func SetFaceCacheCapacity(capacity int) {
	defaultFaceCache = newFaceLRU(capacity)
}
