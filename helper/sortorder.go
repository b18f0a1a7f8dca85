package helper

// MergeSortOrder reconciles a saved ordering with the current item set:
// saved ids that still exist keep their order, items the saved order has
// never seen are appended in default order, and removed ids drop out.
func MergeSortOrder(saved, defaults []string) []string {
	inDefaults := make(map[string]bool, len(defaults))
	for _, id := range defaults {
		inDefaults[id] = true
	}
	inSaved := make(map[string]bool, len(saved))

	merged := make([]string, 0, len(defaults))
	for _, id := range saved {
		if inDefaults[id] && !inSaved[id] {
			merged = append(merged, id)
			inSaved[id] = true
		}
	}
	for _, id := range defaults {
		if !inSaved[id] {
			merged = append(merged, id)
			inSaved[id] = true
		}
	}
	return merged
}
