package rest

import (
	"net/url"
	"strings"

	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// encodeQuery renders a filter and order in the PostgREST dialect:
// "col=eq.value" per filter pair and "order=a.desc,b.asc".
func encodeQuery(filter ports.Filter, order ports.Order) url.Values {
	q := url.Values{}
	for _, col := range filter.Columns() {
		q.Set(col, "eq."+filter[col])
	}
	if len(order) > 0 {
		keys := make([]string, len(order))
		for i, s := range order {
			dir := "asc"
			if s.Descending {
				dir = "desc"
			}
			keys[i] = s.Column + "." + dir
		}
		q.Set("order", strings.Join(keys, ","))
	}
	return q
}
