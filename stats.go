package jsua

import "strings"

// Stats holds a bitmask of Stat values observed during a parse. A Stat
// constant c is represented by the bit 1<<c.
type Stats uint32

// has reports whether stat is set in s.
func (s Stats) has(stat Stat) bool {
	return s&(1<<stat) != 0
}

// set returns s with stat set.
func (s Stats) set(stat Stat) Stats {
	return s | 1<<stat
}

// list returns the set Stat values in ascending order.
func (s Stats) list() []Stat {
	var out []Stat
	for i := Stat(0); i < numStat; i++ {
		if s.has(i) {
			out = append(out, i)
		}
	}
	return out
}

func (s Stats) String() string {
	if s == 0 {
		return "0"
	}
	var buf strings.Builder
	for i := Stat(0); i < numStat; i++ {
		if s&(1<<i) == 0 {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('|')
		}
		buf.WriteString(i.String())
	}
	return buf.String()
}

// Stat identifies one kind of diagnostic occurrence a Parser records.
// None of these affect parsing behavior or the emitted event sequence;
// they exist purely so a caller watching a log-tailing or sampling feed
// can tell how often the heuristic parts of the system were exercised.
type Stat byte

const (
	// StatSyncedInString records that the synchronization preamble
	// decided the starting offset was inside a string literal.
	StatSyncedInString Stat = iota

	// StatCommaResolvedArray records a root-level Unknown frame
	// resolving to Array via the two-comma heuristic.
	StatCommaResolvedArray

	// StatColonResolvedObject records a root-level Unknown frame
	// resolving to Object via a colon.
	StatColonResolvedObject

	// StatRootCloseAbsorbed records a close bracket popping against the
	// root Unknown frame rather than a matching open.
	StatRootCloseAbsorbed

	// StatLeadingZero records a number with a leading zero digit.
	StatLeadingZero

	// StatSurrogateEscape records a \u escape whose hex value falls in
	// the UTF-16 surrogate range, passed through raw.
	StatSurrogateEscape

	numStat
)

var statNames = []string{
	StatSyncedInString:      "SyncedInString",
	StatCommaResolvedArray:  "CommaResolvedArray",
	StatColonResolvedObject: "ColonResolvedObject",
	StatRootCloseAbsorbed:   "RootCloseAbsorbed",
	StatLeadingZero:         "LeadingZero",
	StatSurrogateEscape:     "SurrogateEscape",
}

func (s Stat) String() string {
	if int(s) < len(statNames) {
		return statNames[s]
	}
	return "Stat(?)"
}
