package present

import "timeline-backend/internal/domains/entry/model"

// MonthLayout is the label of a month bucket, e.g. "March 2024".
const MonthLayout = "January 2006"

// Group is one month bucket of the timeline.
type Group struct {
	Label   string
	Entries []model.Entry
}

// GroupByMonth buckets entries by calendar month. Buckets appear in the order
// their first entry appears in the input, and entries keep their input order.
func GroupByMonth(entries []model.Entry) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, e := range entries {
		label := e.Date.Format(MonthLayout)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}
