package bins

import (
	"fmt"
	"sort"
)

// UniqueGroup is one bucket of Unique: the shared key value and the
// items that produced it.
type UniqueGroup[T any] struct {
	Value any
	Items []T
}

// uniqueKey is the sortable form of an extracted key: numeric keys order
// numerically and precede text keys, text keys order lexically.
type uniqueKey struct {
	num   float64
	str   string
	isNum bool
}

func (k uniqueKey) less(other uniqueKey) bool {
	if k.isNum != other.isNum {
		return k.isNum
	}
	if k.isNum {
		return k.num < other.num
	}

	return k.str < other.str
}

// Unique bins all equal values together, so every bucket is unique:
// a stable sort by extracted key followed by a group-by. Numeric keys
// compare numerically (so int 2 and float 2.0 share a bucket), all other
// keys by their string form. A nil key groups the items themselves.
// Buckets are ordered by ascending key, numbers before text; items keep
// their input order within a bucket.
func Unique[T any](items []T, key Key[T]) []UniqueGroup[T] {
	type keyed struct {
		item T
		raw  any
		k    uniqueKey
	}

	entries := make([]keyed, 0, len(items))
	for _, item := range items {
		raw := any(item)
		if key != nil {
			raw = key(item)
		}
		e := keyed{item: item, raw: raw}
		if num, ok := coerce(raw); ok {
			e.k = uniqueKey{num: num, isNum: true}
		} else {
			e.k = uniqueKey{str: fmt.Sprint(raw)}
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].k.less(entries[j].k) })

	var groups []UniqueGroup[T]
	for i, e := range entries {
		if i > 0 && e.k == entries[i-1].k {
			groups[len(groups)-1].Items = append(groups[len(groups)-1].Items, e.item)
			continue
		}
		groups = append(groups, UniqueGroup[T]{Value: e.raw, Items: []T{e.item}})
	}

	return groups
}

// Membership groups items into caller-defined ranges. Unlike Split, the
// ranges may overlap or leave gaps, so one item can appear in several
// groups or in none. Both range ends are inclusive. Every range yields a
// group, even an empty one, in the order given; items keep their input
// order within a group.
func Membership[T any](items []T, ranges []Interval, key Key[T]) []Group[T] {
	groups := make([]Group[T], 0, len(ranges))
	for i, r := range ranges {
		g := Group[T]{Index: i + 1, Interval: r}
		for _, item := range items {
			raw := any(item)
			if key != nil {
				raw = key(item)
			}
			v, ok := coerce(raw)
			if ok && r.Low <= v && v <= r.High {
				g.Items = append(g.Items, item)
			}
		}
		groups = append(groups, g)
	}

	return groups
}
