package cachedtree_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/fantom-foundation-labs/aatree/aatree"
	"github.com/fantom-foundation-labs/aatree/cachedtree"
)

type intNode struct {
	aatree.Links[intNode]
	Key int
}

type intComparator struct{}

func (intComparator) Compare(a, b *intNode) int {
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	default:
		return 0
	}
}

func newPopulatedTree(keys ...int) *aatree.Tree[intNode, *intNode] {
	tree := aatree.New[intNode, *intNode](intComparator{})
	for _, k := range keys {
		tree.Insert(&intNode{Key: k})
	}
	return tree
}

func TestSearchHitsCacheOnSecondLookup(t *testing.T) {
	tree := newPopulatedTree(1, 2, 3)
	cache := cachedtree.New[intNode, *intNode, int](tree, 2, func(n *intNode) int { return n.Key })

	first, err := cache.Search(&intNode{Key: 2})
	if err != nil || first == nil || first.Key != 2 {
		t.Fatalf("unexpected result: %v, %v", first, err)
	}

	tree.Delete(&intNode{Key: 2})

	second, err := cache.Search(&intNode{Key: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != first {
		t.Fatalf("expected cached hit to return the same node identity after underlying delete")
	}
}

func TestSearchMissReturnsNilWithoutError(t *testing.T) {
	tree := newPopulatedTree(1, 2, 3)
	cache := cachedtree.New[intNode, *intNode, int](tree, 2, func(n *intNode) int { return n.Key })

	got, err := cache.Search(&intNode{Key: 99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing key, got %v", got)
	}
}

func TestSearchAfterCloseReturnsErrClosed(t *testing.T) {
	tree := newPopulatedTree(1)
	cache := cachedtree.New[intNode, *intNode, int](tree, 2, func(n *intNode) int { return n.Key })
	cache.Close()

	if _, err := cache.Search(&intNode{Key: 1}); err != cachedtree.ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestInvalidateForcesFreshLookup(t *testing.T) {
	tree := newPopulatedTree(1, 2, 3)
	cache := cachedtree.New[intNode, *intNode, int](tree, 2, func(n *intNode) int { return n.Key })

	cache.Search(&intNode{Key: 2})
	cache.Invalidate()
	tree.Delete(&intNode{Key: 2})

	got, err := cache.Search(&intNode{Key: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected invalidated cache to observe the delete, got %v", got)
	}
}

func TestEvictionNotifiesAtCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tree := newPopulatedTree(1, 2, 3)
	cache := cachedtree.New[intNode, *intNode, int](tree, 2, func(n *intNode) int { return n.Key })

	notifier := cachedtree.NewMockEvictionNotifier[int](ctrl)
	notifier.EXPECT().OnEvict(1)
	cache.SetEvictionNotifier(notifier)

	cache.Search(&intNode{Key: 1})
	cache.Search(&intNode{Key: 2})
	cache.Search(&intNode{Key: 3}) // evicts key 1, the least recently used
}

func TestGetMemoryFootprintReportsChildren(t *testing.T) {
	tree := newPopulatedTree(1, 2, 3)
	cache := cachedtree.New[intNode, *intNode, int](tree, 2, func(n *intNode) int { return n.Key })
	cache.Search(&intNode{Key: 1})

	mf := cache.GetMemoryFootprint()
	if mf.GetChild("lru") == nil || mf.GetChild("tree") == nil {
		t.Fatalf("expected both lru and tree children in footprint")
	}
	if mf.Total() == 0 {
		t.Fatalf("expected non-zero footprint")
	}
}
