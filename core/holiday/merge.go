package holiday

import "fmt"

// Combine merges holiday packs into one canonical holiday list.
//
// Packs are iterated in the given order. The first record seen for a
// (name, date) key fixes every identity field: category (inherited from the
// owning pack), info, remove, and outOfOffice are never overwritten by a
// later pack declaring the same key. Only the location list accumulates:
// on a key collision it is replaced with the sorted, deduplicated union of
// the existing and incoming labels.
//
// An empty location list is preserved as empty, meaning the holiday applies
// everywhere. Output order is first-insertion order, so the result is
// deterministic for a deterministic pack order. A record with no name fails
// fast with ErrMalformedRecord.
func Combine(packs []Pack) ([]Holiday, error) {
	index := make(map[Key]int)
	combined := make([]Holiday, 0)

	for _, pack := range packs {
		for _, record := range pack.Holidays {
			if record.Name == "" {
				return nil, fmt.Errorf("%w: pack %s contains a holiday with no name", ErrMalformedRecord, pack.ID)
			}
			key := record.Key()

			if i, ok := index[key]; ok {
				combined[i].Locations = MergeLocations(combined[i].Locations, record.Locations)
				continue
			}

			merged := record
			merged.Category = pack.Category
			merged.Locations = MergeLocations(nil, record.Locations)
			index[key] = len(combined)
			combined = append(combined, merged)
		}
	}

	return combined, nil
}

// Categories returns the distinct pack categories in first-seen order.
// The calendar adapter translates this set into whatever event filter the
// store requires.
func Categories(packs []Pack) []string {
	seen := make(map[string]struct{}, len(packs))
	var categories []string
	for _, pack := range packs {
		if _, ok := seen[pack.Category]; ok {
			continue
		}
		seen[pack.Category] = struct{}{}
		categories = append(categories, pack.Category)
	}
	return categories
}
