/**
 * Copyright (c) 2024 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

// Package numlist expands textual resource-identifier lists such as
// "1,3,5-8,10,0x10-12" into numeric arrays. Ranges are inclusive and keep
// the direction they were written in, so "20-18" counts downward.
package numlist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCapacityExceeded reports a specification implying more elements than a
// fixed-capacity destination can hold.
var ErrCapacityExceeded = errors.New("too many list entries")

func hexPrefixed(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func parseDigits(token, digits string, base int) (uint64, error) {
	if digits == "" {
		return 0, fmt.Errorf("cannot convert %q to unsigned number: empty numeric field", token)
	}
	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to unsigned number: %w", token, err)
	}
	return n, nil
}

// ParseUint64 converts a single token into a 64-bit unsigned number.
// A "0x" or "0X" prefix selects hexadecimal, anything else is decimal.
// The whole token must be numeric; surrounding whitespace is the caller's
// business and is not trimmed here.
func ParseUint64(s string) (uint64, error) {
	if hexPrefixed(s) {
		return parseDigits(s, s[2:], 16)
	}
	return parseDigits(s, s, 10)
}

// expandList splits spec on commas, expands every token or A-B range and
// feeds the values to emit in expansion order. An empty field anywhere in
// the spec is rejected. A range end without its own base prefix inherits
// hexadecimal from a "0x"-prefixed start, so "0x10-12" reads as 0x10-0x12.
func expandList(spec string, emit func(uint64) error) error {
	for _, token := range strings.Split(spec, ",") {
		if token == "" {
			return fmt.Errorf("empty field in list %q", spec)
		}

		startStr, endStr, isRange := strings.Cut(token, "-")
		start, err := ParseUint64(startStr)
		if err != nil {
			return err
		}

		end := start
		if isRange {
			if hexPrefixed(startStr) && !hexPrefixed(endStr) {
				end, err = parseDigits(endStr, endStr, 16)
			} else {
				end, err = ParseUint64(endStr)
			}
			if err != nil {
				return err
			}
		}

		// Emit before testing for the endpoint so that ranges touching
		// 0 or MaxUint64 cannot wrap around.
		if start <= end {
			for n := start; ; n++ {
				if err := emit(n); err != nil {
					return err
				}
				if n == end {
					break
				}
			}
		} else {
			for n := start; ; n-- {
				if err := emit(n); err != nil {
					return err
				}
				if n == end {
					break
				}
			}
		}
	}
	return nil
}

// ParseListInto expands spec into the caller-supplied buffer tab and returns
// the number of elements written. The buffer length is a hard cap: a spec
// implying more elements than len(tab) is an error, never a silent
// truncation. Elements already written stay in place when an error is
// returned.
func ParseListInto(spec string, tab []uint64) (uint, error) {
	var index uint
	max := uint(len(tab))

	err := expandList(spec, func(n uint64) error {
		if index >= max {
			return fmt.Errorf("list %q: %w (maximum %d)", spec, ErrCapacityExceeded, max)
		}
		tab[index] = n
		index++
		return nil
	})
	return index, err
}

// ParseListAlloc expands spec into a buffer it owns and grows on demand.
// It returns the final buffer and the element count; the buffer length is
// the final capacity, at least the count, and every slot past the count
// reads as zero. Ownership of the buffer passes to the caller.
func ParseListAlloc(spec string) ([]uint64, uint, error) {
	var list List
	err := expandList(spec, func(n uint64) error {
		list.Append(n)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return list.Buffer(), list.Count(), nil
}

// Grow returns a buffer with at least double the capacity recorded in
// *elemCount (minimum one element), the first *elemCount elements of tab
// preserved at their offsets and every new slot zero-initialized.
// *elemCount is updated to the new capacity.
func Grow[T any](tab []T, elemCount *uint) []T {
	newCount := *elemCount * 2
	if newCount == 0 {
		newCount = 1
	}

	grown := make([]T, newCount)
	copy(grown, tab[:*elemCount])
	*elemCount = newCount
	return grown
}

// List is a growable list of unsigned numbers. The zero value is an empty
// list ready for use. Capacity only grows, and slots past Count always read
// as zero.
type List struct {
	tab   []uint64
	cap   uint
	count uint
}

// Append adds n at the end of the list, growing the buffer when full.
func (l *List) Append(n uint64) {
	if l.count == l.cap {
		l.tab = Grow(l.tab, &l.cap)
	}
	l.tab[l.count] = n
	l.count++
}

// Count returns the number of appended elements.
func (l *List) Count() uint {
	return l.count
}

// Values returns the appended elements in insertion order.
func (l *List) Values() []uint64 {
	return l.tab[:l.count]
}

// Buffer returns the whole underlying buffer, capacity included.
func (l *List) Buffer() []uint64 {
	return l.tab
}

// FormatList renders ids back into list notation, folding runs of
// consecutive ascending values into A-B ranges. Insertion order is kept.
func FormatList(ids []uint64) string {
	if len(ids) == 0 {
		return ""
	}

	var sb strings.Builder
	first, last := ids[0], ids[0]

	flush := func() {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		if first == last {
			sb.WriteString(strconv.FormatUint(first, 10))
		} else {
			fmt.Fprintf(&sb, "%d-%d", first, last)
		}
	}

	for _, id := range ids[1:] {
		if id == last+1 && last != ^uint64(0) {
			last = id
			continue
		}
		flush()
		first, last = id, id
	}
	flush()
	return sb.String()
}
