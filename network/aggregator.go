/*
Package network implements the per-pair bond aggregator (C6) and the
hydrogen-bond realism filter (C7). The aggregator buckets bonds by
residue pair and kind, keeping each bucket's front element the best seen
so far without fully sorting the rest; three projections turn that
structure into a flat bond list for the graph builder.
*/
package network

import "github.com/polyrin/rin/bond"

// PairKey is the canonical, order-independent key for a residue pair:
// the two residue ids concatenated in lexicographic order.
func PairKey(a, b string) string {
	if a <= b {
		return a + "|" + b
	}
	return b + "|" + a
}

// kindOrder is GetAll's documented concatenation order (spec §4.6):
// hydrogens, ss, vdw, pication, pipistack, ionic, generic.
var kindOrder = [...]bond.Kind{
	bond.HydrogenKind,
	bond.SSKind,
	bond.VdWKind,
	bond.PiCationKind,
	bond.PiPiKind,
	bond.IonicKind,
	bond.GenericKind,
}

// symmetricKinds are vdw, pi-pi stacking, and the generic contact map:
// each is found by searching one feature list against itself, so the
// pipeline visits every unordered pair from both sides and pushes both
// orderings. Their sub-lists are capped at one entry so those repeated
// pushes can't duplicate the edge; every other kind's sub-list can hold several bonds for the
// same pair (e.g. several hydrogen bonds between the same two
// residues), so it is never capped.
func isSymmetricKind(k bond.Kind) bool {
	return k == bond.VdWKind || k == bond.PiPiKind || k == bond.GenericKind
}

type pairBucket struct {
	kinds [7][]bond.Bond
}

// Aggregator is the C6 pair-bond bucket store.
type Aggregator struct {
	pairOrder []string
	buckets   map[string]*pairBucket
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{buckets: make(map[string]*pairBucket)}
}

// Push inserts a bond into its pair's per-kind sub-list, applying the
// best-front push rule of spec §4.6: if the sub-list is empty or b is
// Less than its current front, b becomes the new front; otherwise b is
// appended. Symmetric kinds (vdw, pipi, generic) never grow past one
// entry: a second push for the same pair only replaces the front if the
// new bond is better.
func (agg *Aggregator) Push(b bond.Bond) {
	idA, idB := b.ResidueIDs()
	key := PairKey(idA, idB)

	bucket, ok := agg.buckets[key]
	if !ok {
		bucket = &pairBucket{}
		agg.buckets[key] = bucket
		agg.pairOrder = append(agg.pairOrder, key)
	}

	list := bucket.kinds[b.Kind()]

	if isSymmetricKind(b.Kind()) {
		if len(list) == 0 {
			bucket.kinds[b.Kind()] = []bond.Bond{b}
		} else if bond.Less(b, list[0]) {
			list[0] = b
		}
		return
	}

	if len(list) == 0 || bond.Less(b, list[0]) {
		bucket.kinds[b.Kind()] = append([]bond.Bond{b}, list...)
	} else {
		bucket.kinds[b.Kind()] = append(list, b)
	}
}

// GetAll concatenates every sub-list of every pair, grouped by kind in
// the fixed order hydrogens, ss, vdw, pication, pipistack, ionic,
// generic; within a kind, pairs appear in first-push order and each
// pair's own sub-list appears as Push left it: best bond first, the rest
// in the order the prepend/append rule produced, not sorted by energy.
func (agg *Aggregator) GetAll() []bond.Bond {
	var out []bond.Bond
	for _, k := range kindOrder {
		for _, key := range agg.pairOrder {
			out = append(out, agg.buckets[key].kinds[k]...)
		}
	}
	return out
}

// GetMultiple returns, for each pair in first-push order, the front
// bond of every non-empty sub-list (up to seven per pair), in the fixed
// kind order.
func (agg *Aggregator) GetMultiple() []bond.Bond {
	var out []bond.Bond
	for _, key := range agg.pairOrder {
		bucket := agg.buckets[key]
		for _, k := range kindOrder {
			if list := bucket.kinds[k]; len(list) > 0 {
				out = append(out, list[0])
			}
		}
	}
	return out
}

// GetOne returns, for each pair in first-push order, the single best
// bond across all seven sub-lists by the bond ordering — comparing only
// each sub-list's front is sufficient since the front is always that
// sub-list's minimum.
func (agg *Aggregator) GetOne() []bond.Bond {
	var out []bond.Bond
	for _, key := range agg.pairOrder {
		bucket := agg.buckets[key]
		var best bond.Bond
		for _, k := range kindOrder {
			list := bucket.kinds[k]
			if len(list) == 0 {
				continue
			}
			if best == nil || bond.Less(list[0], best) {
				best = list[0]
			}
		}
		if best != nil {
			out = append(out, best)
		}
	}
	return out
}
