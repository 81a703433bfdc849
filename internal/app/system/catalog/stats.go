package catalog

// TotalEstimatedTime is the headline duration shown on the table of
// contents. Estimated times are free-form labels, so the total is authored
// rather than computed.
const TotalEstimatedTime = "20+ hours"

// Summary holds the figures shown above the table of contents.
type Summary struct {
	Chapters  int
	Topics    int
	TotalTime string
	Featured  int
}

// Stats summarizes entries.
func Stats(entries []LessonDescriptor) Summary {
	s := Summary{Chapters: len(entries), TotalTime: TotalEstimatedTime}
	for _, d := range entries {
		s.Topics += len(d.Topics)
		if d.Featured {
			s.Featured++
		}
	}
	return s
}

// Featured returns the featured entries in declaration order.
func Featured() []LessonDescriptor {
	var out []LessonDescriptor
	for _, d := range All() {
		if d.Featured {
			out = append(out, d)
		}
	}
	return out
}
