package ledger

import "sort"

// Listings are ordered by display label, ties by id, so the order never
// depends on map iteration.

func SortedJournals(journals map[string]*Journal) []*Journal {
	out := make([]*Journal, 0, len(journals))
	for _, j := range journals {
		if j != nil {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		return less(out[i].Label(), out[i].ID, out[k].Label(), out[k].ID)
	})
	return out
}

func SortedAccounts(accounts map[string]*Account) []*Account {
	out := make([]*Account, 0, len(accounts))
	for _, a := range accounts {
		if a != nil {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		return less(out[i].Label(), out[i].ID, out[k].Label(), out[k].ID)
	})
	return out
}

func SortedTransactions(transactions map[string]*Transaction) []*Transaction {
	out := make([]*Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t != nil {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		return less(out[i].Label(), out[i].ID, out[k].Label(), out[k].ID)
	})
	return out
}

// SortedChanges orders changes by their label, which needs the journal's
// accounts to resolve account names.
func SortedChanges(changes map[string]*AccountChange, accounts map[string]*Account) []*AccountChange {
	out := make([]*AccountChange, 0, len(changes))
	for _, c := range changes {
		if c != nil {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		return less(out[i].Label(accounts), out[i].ID, out[k].Label(accounts), out[k].ID)
	})
	return out
}

func less(labelA, idA, labelB, idB string) bool {
	if labelA == labelB {
		return idA < idB
	}
	return labelA < labelB
}
