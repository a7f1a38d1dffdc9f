// SPDX-License-Identifier: MIT

// Package keyindex buckets arbitrary group keys by value.
//
// Group keys are produced by user functions and may be non-comparable
// (lookup.Tuple, lookup.Set, ...), so they cannot be Go map keys directly.
// Each key is hashed with xxHash64 over a canonical encoding; keys sharing a
// hash are told apart with lookup.Equal. A hash shared by unequal keys is a
// collision: it is counted, never an error.
package keyindex

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/dimgroup/lookup"
)

// Index maps distinct keys to the ordered positions they were added at.
// Keys are numbered in order of first appearance.
type Index struct {
	byHash     map[uint64][]int // hash -> key ids sharing it
	keys       []any            // key id -> key
	positions  [][]int          // key id -> positions
	collisions int
}

// New creates an empty Index sized for about sizeHint distinct keys.
func New(sizeHint int) *Index {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Index{
		byHash:    make(map[uint64][]int, sizeHint),
		keys:      make([]any, 0, sizeHint),
		positions: make([][]int, 0, sizeHint),
	}
}

// Add records pos under key and returns the key id.
func (ix *Index) Add(key any, pos int) int {
	id := ix.Intern(key)
	ix.positions[id] = append(ix.positions[id], pos)

	return id
}

// Intern returns the id of key, registering it without a position when new.
func (ix *Index) Intern(key any) int {
	h := Hash(key)
	ids := ix.byHash[h]
	for _, id := range ids {
		if lookup.Equal(ix.keys[id], key) {
			return id
		}
	}
	if len(ids) > 0 {
		ix.collisions++
	}
	id := len(ix.keys)
	ix.keys = append(ix.keys, key)
	ix.positions = append(ix.positions, []int{})
	ix.byHash[h] = append(ids, id)

	return id
}

// Len returns the number of distinct keys.
func (ix *Index) Len() int { return len(ix.keys) }

// Keys returns the distinct keys in order of first appearance.
func (ix *Index) Keys() []any { return append([]any(nil), ix.keys...) }

// Positions returns the positions recorded for key id, in insertion order.
func (ix *Index) Positions(id int) []int { return ix.positions[id] }

// Collisions returns how many distinct keys landed on an already used hash.
func (ix *Index) Collisions() int { return ix.collisions }

// Hash returns the xxHash64 of the canonical encoding of v. Values that
// lookup.Equal considers equal hash identically.
func Hash(v any) uint64 {
	d := xxhash.New()
	encode(d, v)

	return d.Sum64()
}

// encode writes a type tag followed by a canonical rendering of v.
// Numbers of every kind share one tag so 1, int64(1) and 1.0 coincide.
func encode(d *xxhash.Digest, v any) {
	var buf [8]byte
	switch x := v.(type) {
	case nil:
		_, _ = d.WriteString("n;")
	case string:
		_, _ = d.WriteString("s" + strconv.Itoa(len(x)) + ":" + x)
	case bool:
		_, _ = d.WriteString("b" + strconv.FormatBool(x))
	case time.Time:
		binary.LittleEndian.PutUint64(buf[:], uint64(x.UnixNano()))
		_, _ = d.WriteString("t")
		_, _ = d.Write(buf[:])
	case lookup.Tuple:
		encodeSeq(d, "T", x)
	case lookup.Set:
		encodeSeq(d, "S", x)
	case lookup.Interval:
		_, _ = d.WriteString("I" + strconv.Itoa(int(x.Bounds)))
		encode(d, x.Lo)
		encode(d, x.Hi)
	case lookup.Residues:
		_, _ = d.WriteString("R" + strconv.Itoa(x.Cycle))
		for _, r := range x.Values {
			_, _ = d.WriteString("," + strconv.Itoa(r))
		}
	default:
		if f, err := lookup.ToFloat(v); err == nil {
			if f == 0 {
				f = 0 // fold -0
			}
			if math.IsNaN(f) {
				_, _ = d.WriteString("fNaN")
				return
			}
			_, _ = d.WriteString("f" + strconv.FormatFloat(f, 'g', -1, 64))
			return
		}
		_, _ = d.WriteString(fmt.Sprintf("?%T:%v", v, v))
	}
}

func encodeSeq(d *xxhash.Digest, tag string, items []any) {
	_, _ = d.WriteString(tag + strconv.Itoa(len(items)) + "(")
	for _, it := range items {
		encode(d, it)
		_, _ = d.WriteString(";")
	}
	_, _ = d.WriteString(")")
}
