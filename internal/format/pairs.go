package format

type recordKind uint8

const (
	recPair recordKind = iota + 1
	recComment
	recOrphan
)

// record is one entry of a paired layout: a key/value pair, a comment-like
// item on its own, or a key without a value.
type record struct {
	kind  recordKind
	key   Item // recPair
	value Item // recPair
	item  Item // recComment, recOrphan
}

// buildPairs pairs items left to right.
//
// Standalone comments between a key and its value move before the pair. A key
// with a trailing comment followed by a plain item hands the comment out as a
// record of its own and pairs with that item; followed by anything else it
// stays an orphan.
func buildPairs(items []Item) []record {
	var (
		out     []record
		pending *Item
		held    []Item
	)
	flushHeld := func() {
		for _, h := range held {
			out = append(out, record{kind: recComment, item: h})
		}
		held = held[:0]
	}

	for i := 0; i < len(items); i++ {
		it := items[i]
		if it.commentLike() {
			if pending != nil {
				held = append(held, it)
			} else {
				out = append(out, record{kind: recComment, item: it})
			}
			continue
		}
		if pending != nil {
			flushHeld()
			out = append(out, record{kind: recPair, key: *pending, value: it})
			pending = nil
			continue
		}
		if it.Trailing != nil {
			if i+1 < len(items) && !items[i+1].commentLike() {
				out = append(out, record{kind: recComment, item: Item{Elem: it.Trailing}})
				key := it
				key.Trailing = nil
				out = append(out, record{kind: recPair, key: key, value: items[i+1]})
				i++
				continue
			}
			out = append(out, record{kind: recOrphan, item: it})
			continue
		}
		pending = &items[i]
	}
	if pending != nil {
		out = append(out, record{kind: recOrphan, item: *pending})
	}
	flushHeld()
	return out
}
