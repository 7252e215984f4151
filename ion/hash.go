// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package ion

import (
	"github.com/dchest/siphash"
)

// quoteCacheEntry records both the hash bucket's original text
// and its decision, so a siphash collision between two distinct
// symbols degrades to a cache miss instead of returning the
// wrong verdict for the colliding symbol.
type quoteCacheEntry struct {
	text   string
	quoted bool
}

// quoteCache memoizes the needsQuotes decision for symbol text
// a writer sees repeatedly -- field names and annotations in
// particular tend to repeat heavily across a stream of
// similarly shaped values. Symbol text is hashed with siphash
// into the bucket key rather than used as the map key directly,
// following the bucketing pattern sneller's zion package uses
// to assign symbols to shards.
type quoteCache struct {
	seed0, seed1 uint64
	entries      map[uint64]quoteCacheEntry
}

func newQuoteCache(seed uint64) *quoteCache {
	return &quoteCache{
		seed0:   seed,
		seed1:   seed ^ 0x5bd1e995,
		entries: make(map[uint64]quoteCacheEntry),
	}
}

func (c *quoteCache) needsQuotes(sym string) bool {
	h := siphash.Hash(c.seed0, c.seed1, []byte(sym))
	if e, ok := c.entries[h]; ok && e.text == sym {
		return e.quoted
	}
	v := needsQuotes(sym)
	if len(c.entries) < 4096 {
		c.entries[h] = quoteCacheEntry{text: sym, quoted: v}
	}
	return v
}
