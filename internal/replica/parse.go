package replica

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseIDL parses a comma-separated string of configuration indices and
// ranges into an IDL, e.g. "100-103,150,200-205". Unlike a CLI row/column
// selector this is 1-based *and* kept 1-based: configuration indices are a
// physical label (the Monte-Carlo trajectory number), not a slice offset.
func ParseIDL(input string) (IDL, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("replica: empty idl string")
	}

	indexSet := make(map[int]bool)
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.Contains(part, "-") {
			bounds := strings.SplitN(part, "-", 2)
			if len(bounds) != 2 {
				return nil, fmt.Errorf("replica: invalid range %q", part)
			}
			start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
			if err != nil {
				return nil, fmt.Errorf("replica: invalid range start in %q: %w", part, err)
			}
			end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err != nil {
				return nil, fmt.Errorf("replica: invalid range end in %q: %w", part, err)
			}
			if start < 1 || end < start {
				return nil, fmt.Errorf("replica: invalid range %q", part)
			}
			for i := start; i <= end; i++ {
				indexSet[i] = true
			}
			continue
		}

		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("replica: invalid index %q: %w", part, err)
		}
		if idx < 1 {
			return nil, fmt.Errorf("replica: indices must be positive, got %d", idx)
		}
		indexSet[idx] = true
	}

	indices := make([]int, 0, len(indexSet))
	for idx := range indexSet {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	return NewIDL(indices)
}

// FormatIDL renders an IDL back to the compact range notation ParseIDL
// accepts, collapsing runs of consecutive indices.
func FormatIDL(idl IDL) string {
	indices := idl.Slice()
	if len(indices) == 0 {
		return ""
	}

	var parts []string
	start := indices[0]
	prev := indices[0]
	flush := func(end int) {
		if start == end {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start, end))
		}
	}
	for _, idx := range indices[1:] {
		if idx == prev+1 {
			prev = idx
			continue
		}
		flush(prev)
		start, prev = idx, idx
	}
	flush(prev)

	return strings.Join(parts, ",")
}
