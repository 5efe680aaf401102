package event

import (
	"runtime"
	"sync"
	"testing"
)

func TestInboxTryRecvEmpty(t *testing.T) {
	var in Inbox

	_, ok := in.TryRecv()
	if ok {
		t.Fatalf("TryRecv() ok = true, want false")
	}
}

func TestInboxTryPostFull(t *testing.T) {
	var in Inbox

	for i := 0; i < inboxSlots; i++ {
		if ok := in.TryPost(Char('a')); !ok {
			t.Fatalf("TryPost() ok = false at slot %d, want true", i)
		}
	}
	if ok := in.TryPost(Char('b')); ok {
		t.Fatalf("TryPost() ok = true when full, want false")
	}
	if ok := in.Post(Char('c')); ok {
		t.Fatalf("Post() ok = true when full, want false")
	}
	if got := in.Dropped(); got != 1 {
		t.Fatalf("Dropped() = %d, want 1", got)
	}
	if got := in.Dropped(); got != 0 {
		t.Fatalf("Dropped() after reset = %d, want 0", got)
	}

	for i := 0; i < inboxSlots; i++ {
		if _, ok := in.TryRecv(); !ok {
			t.Fatalf("TryRecv() ok = false at slot %d, want true", i)
		}
	}
}

func TestInboxDrainPreservesOrder(t *testing.T) {
	var in Inbox
	in.Post(Resize(800, 600))
	in.Post(Focus(false))
	in.Post(Iconify(true))

	var kinds []Kind
	n := in.Drain(func(ev Event) { kinds = append(kinds, ev.Kind) })
	if n != 3 {
		t.Fatalf("Drain() = %d, want 3", n)
	}
	want := []Kind{KindResize, KindFocus, KindIconify}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("Drain() order[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
	if in.Len() != 0 {
		t.Fatalf("Len() = %d after drain, want 0", in.Len())
	}
}

func TestInboxDrainLeavesReentrantPosts(t *testing.T) {
	var in Inbox
	in.Post(Close())

	n := in.Drain(func(ev Event) {
		in.Post(Focus(true))
	})
	if n != 1 {
		t.Fatalf("Drain() = %d, want 1", n)
	}
	if in.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 event left for the next drain", in.Len())
	}
}

func TestInboxConcurrentProducers(t *testing.T) {
	oldProcs := runtime.GOMAXPROCS(1)
	defer runtime.GOMAXPROCS(oldProcs)

	const (
		producers = 4
		perProd   = 2_000
		total     = producers * perProd
	)

	var in Inbox

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(producers)
	for producerID := 0; producerID < producers; producerID++ {
		go func(producerID int) {
			defer wg.Done()
			<-start
			for i := 0; i < perProd; i++ {
				ev := Resize(producerID*perProd+i, 0)
				for !in.TryPost(ev) {
					runtime.Gosched()
				}
			}
		}(producerID)
	}
	close(start)

	seen := make([]bool, total)
	for got := 0; got < total; {
		ev, ok := in.TryRecv()
		if !ok {
			runtime.Gosched()
			continue
		}
		id := ev.Width
		if id >= total {
			t.Fatalf("TryRecv() id = %d, want < %d", id, total)
		}
		if seen[id] {
			t.Fatalf("TryRecv() duplicate id %d", id)
		}
		seen[id] = true
		got++
	}

	wg.Wait()
}

func TestKindString(t *testing.T) {
	if got := KindIconify.String(); got != "iconify" {
		t.Fatalf("KindIconify.String() = %q", got)
	}
	if got := Kind(200).String(); got != "unknown" {
		t.Fatalf("Kind(200).String() = %q", got)
	}
}
