package ej309plot

import "strconv"

// ZAIDGroup is the set of energy deposits recorded for one ZAID.
type ZAIDGroup struct {
	ZAID   float64
	Label  string
	Energy []float64
}

// Groups partitions the events by ZAID value, in order of first
// appearance. Each group is labelled with the shortest decimal form of
// its ZAID, so 1001 and 1001.0 share the label "1001".
func (e *EnergyRecords) Groups() []ZAIDGroup {
	var groups []ZAIDGroup
	index := make(map[float64]int)
	for i, zaid := range e.ZAID {
		j, ok := index[zaid]
		if !ok {
			j = len(groups)
			index[zaid] = j
			groups = append(groups, ZAIDGroup{ZAID: zaid, Label: ZAIDLabel(zaid)})
		}
		groups[j].Energy = append(groups[j].Energy, e.Energy[i])
	}
	return groups
}

// ZAIDLabel formats a ZAID for display.
func ZAIDLabel(zaid float64) string {
	return strconv.FormatFloat(zaid, 'g', -1, 64)
}

// SelectGroups returns the groups whose ZAID is listed in zaids,
// keeping their original order. An empty list selects every group.
func SelectGroups(groups []ZAIDGroup, zaids []float64) []ZAIDGroup {
	if len(zaids) == 0 {
		return groups
	}
	keep := make(map[float64]bool, len(zaids))
	for _, z := range zaids {
		keep[z] = true
	}
	var out []ZAIDGroup
	for _, g := range groups {
		if keep[g.ZAID] {
			out = append(out, g)
		}
	}
	return out
}
