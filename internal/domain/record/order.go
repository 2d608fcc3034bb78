package record

import "sort"

// CreatedAtField orders by insertion time instead of a stored field.
const CreatedAtField = "created_at"

// Order is an optional select ordering.
type Order struct {
	Field string
	Desc  bool
}

// Sort orders records in place. A nil order keeps the input order.
// Records missing the field go last regardless of direction; ties keep input order.
func Sort(recs []Record, o *Order) {
	if o == nil || o.Field == "" {
		return
	}

	if o.Field == CreatedAtField {
		sort.SliceStable(recs, func(i, j int) bool {
			if o.Desc {
				return recs[i].createdAt > recs[j].createdAt
			}
			return recs[i].createdAt < recs[j].createdAt
		})
		return
	}

	sort.SliceStable(recs, func(i, j int) bool {
		vi, oki := recs[i].fields[o.Field]
		vj, okj := recs[j].fields[o.Field]
		switch {
		case !oki:
			return false
		case !okj:
			return true
		case o.Desc:
			return vi > vj
		default:
			return vi < vj
		}
	})
}
