/*
missing.go - Clients absent from the visit log

PURPOSE:
  The roster lists who should be visited; the visit log lists who was. The
  difference is the coverage gap. "Not visited" legitimately means two
  different things, so both semantics exist under explicit names and callers
  must pick one:

    NeverScheduled - client has no visit row at all (any status)
    NeverCompleted - client has no visit row with status "Realizado"

SEE ALSO:
  - sla.go: Recency for clients that DO appear in the log
*/
package reconcile

import "sort"

// MissingSemantic selects what counts as "visited".
type MissingSemantic string

const (
	// NeverScheduled treats any visit row, regardless of status, as visited.
	NeverScheduled MissingSemantic = "never_scheduled"
	// NeverCompleted treats only realized visits as visited.
	NeverCompleted MissingSemantic = "never_completed"
)

// MissingClients returns the sorted names of roster clients with no
// qualifying visit. A non-empty responsibleCode restricts both the roster
// and the visit set to that responsible before differencing.
func MissingClients(clients ClientTable, visits VisitTable, responsibleCode string, semantic MissingSemantic) []string {
	visited := make(map[string]bool)
	for _, v := range visits {
		if responsibleCode != "" && v.ResponsibleCode != responsibleCode {
			continue
		}
		if semantic == NeverCompleted && v.Status != StatusRealized {
			continue
		}
		visited[v.ClientName] = true
	}

	missing := make(map[string]bool)
	for _, c := range clients {
		if responsibleCode != "" && c.ResponsibleCode != responsibleCode {
			continue
		}
		if !visited[c.ClientName] {
			missing[c.ClientName] = true
		}
	}

	out := make([]string, 0, len(missing))
	for name := range missing {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
