package router

import (
	"slices"
	"sort"
)

// A StagedList holds items partitioned by an integer stage. Lower stages
// order before higher stages; within a stage, insertion order is kept.
// The zero value is an empty list ready for use.
type StagedList[T any] struct {
	entries []stagedEntry[T]
}

type stagedEntry[T any] struct {
	stage int
	item  T
}

// Append inserts items at the given stage. Each item lands after every
// existing item with the same or a smaller stage and before any item with a
// greater stage.
func (l *StagedList[T]) Append(stage int, items ...T) {
	if len(items) == 0 {
		return
	}

	at := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].stage > stage
	})

	add := make([]stagedEntry[T], len(items))
	for i, item := range items {
		add[i] = stagedEntry[T]{stage: stage, item: item}
	}

	l.entries = slices.Insert(l.entries, at, add...)
}

// Ordered returns the items in canonical order: by stage ascending, ties by
// insertion order. The returned slice is a copy.
func (l *StagedList[T]) Ordered() []T {
	if l == nil || len(l.entries) == 0 {
		return nil
	}

	out := make([]T, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.item
	}

	return out
}

// Len returns the number of items in the list.
func (l *StagedList[T]) Len() int {
	if l == nil {
		return 0
	}

	return len(l.entries)
}

// Empty reports whether the list holds no items.
func (l *StagedList[T]) Empty() bool {
	return l.Len() == 0
}

// MergeStaged merges the given lists into a single slice ordered by stage
// only. When items from different lists share a stage, every item from the
// earlier list comes before those of the later list; within one list,
// insertion order is preserved. Nil lists are skipped.
func MergeStaged[T any](lists ...*StagedList[T]) []T {
	total := 0
	for _, l := range lists {
		total += l.Len()
	}
	if total == 0 {
		return nil
	}

	out := make([]T, 0, total)
	heads := make([]int, len(lists))

	for len(out) < total {
		best := -1
		for i, l := range lists {
			if l == nil || heads[i] >= len(l.entries) {
				continue
			}
			// Strict comparison keeps the merge stable: on a stage
			// tie the earliest list wins.
			if best < 0 || l.entries[heads[i]].stage < lists[best].entries[heads[best]].stage {
				best = i
			}
		}
		out = append(out, lists[best].entries[heads[best]].item)
		heads[best]++
	}

	return out
}
