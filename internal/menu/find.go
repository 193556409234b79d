package menu

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FindSubmenu resolves query to a submenu by exact name, exact label, or a
// fuzzy match over names and labels. When nothing matches the error carries
// the closest candidate as a suggestion.
func (t *Tree) FindSubmenu(query string) (NodeID, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return t.root, nil
	}
	if id, ok := t.names[q]; ok && t.nodes[id].Kind() == KindSubmenu {
		return id, nil
	}

	var (
		keys  []string
		ids   []NodeID
		exact = NoNode
	)
	t.Walk(func(id NodeID, _ int) {
		n := &t.nodes[id]
		if n.Kind() != KindSubmenu {
			return
		}
		label := strings.TrimSpace(n.Label)
		if exact == NoNode && strings.EqualFold(label, q) {
			exact = id
		}
		if n.Name != "" {
			keys = append(keys, n.Name)
			ids = append(ids, id)
		}
		keys = append(keys, label)
		ids = append(ids, id)
	})
	if exact != NoNode {
		return exact, nil
	}

	ranks := fuzzy.RankFindNormalizedFold(q, keys)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ids[ranks[0].OriginalIndex], nil
	}
	if hint := closest(q, keys); hint != "" {
		return NoNode, fmt.Errorf("unknown submenu %q (did you mean %q?)", q, hint)
	}
	return NoNode, fmt.Errorf("unknown submenu %q", q)
}

func closest(q string, candidates []string) string {
	best := ""
	bestDist := -1
	lq := strings.ToLower(q)
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(lq, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > len(q)/2+1 {
		return ""
	}
	return best
}
