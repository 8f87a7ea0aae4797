// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package machine

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
)

// table is a persistent sorted map used for each component of the machine
// state.  Updating a table never modifies it, but instead returns a new table
// which shares structure with the original.  The zero value is an empty table.
type table[K cmp.Ordered, V comparable] struct {
	items *immutable.SortedMap[K, V]
}

// ordered compares keys according to their natural ordering.
type ordered[K cmp.Ordered] struct{}

func (ordered[K]) Compare(a, b K) int {
	return cmp.Compare(a, b)
}

func (p table[K, V]) get(key K) (V, bool) {
	var empty V
	//
	if p.items == nil {
		return empty, false
	}
	//
	return p.items.Get(key)
}

func (p table[K, V]) set(key K, value V) table[K, V] {
	var items = p.items
	//
	if items == nil {
		items = immutable.NewSortedMap[K, V](ordered[K]{})
	}
	//
	return table[K, V]{items.Set(key, value)}
}

func (p table[K, V]) remove(key K) table[K, V] {
	if p.items == nil {
		return p
	}
	//
	return table[K, V]{p.items.Delete(key)}
}

func (p table[K, V]) size() uint {
	if p.items == nil {
		return 0
	}
	//
	return uint(p.items.Len())
}

// each visits all entries of this table in ascending key order.
func (p table[K, V]) each(fn func(K, V)) {
	if p.items == nil {
		return
	}
	//
	for iter := p.items.Iterator(); !iter.Done(); {
		k, v, _ := iter.Next()
		fn(k, v)
	}
}

func (p table[K, V]) keys() []K {
	var keys = make([]K, 0, p.size())
	//
	p.each(func(k K, _ V) {
		keys = append(keys, k)
	})
	//
	return keys
}

// toMap copies this table into a freshly allocated Go map.
func (p table[K, V]) toMap() map[K]V {
	var items = make(map[K]V, p.size())
	//
	p.each(func(k K, v V) {
		items[k] = v
	})
	//
	return items
}

func (p table[K, V]) equals(other table[K, V]) bool {
	if p.size() != other.size() {
		return false
	} else if p.items == other.items {
		return true
	}
	//
	equal := true
	//
	p.each(func(k K, v V) {
		if w, ok := other.get(k); !ok || w != v {
			equal = false
		}
	})
	//
	return equal
}

func (p table[K, V]) String() string {
	var (
		builder strings.Builder
		first   = true
	)
	//
	builder.WriteString("{")
	//
	p.each(func(k K, v V) {
		if !first {
			builder.WriteString(",")
		}
		//
		first = false
		//
		builder.WriteString(fmt.Sprintf("%v:%v", k, v))
	})
	//
	builder.WriteString("}")
	//
	return builder.String()
}

func tableOf[K cmp.Ordered, V comparable](items map[K]V) table[K, V] {
	var t table[K, V]
	//
	for k, v := range items {
		t = t.set(k, v)
	}
	//
	return t
}
