package analysis

import "github.com/mgrube/employerstocks/internal/models"

// ResultSet is the ordered snapshot list for one source.
type ResultSet []models.Snapshot

// Aggregate returns both source sets plus their intersection. The common
// set is deduplicated by identity key, ordered by first appearance in setA,
// and for each key carries whichever side's snapshot is more complete.
func Aggregate(setA, setB ResultSet) (ResultSet, ResultSet, ResultSet) {
	byKeyB := make(map[string]models.Snapshot, len(setB))
	for _, snap := range setB {
		key := IdentityKey(snap)
		if existing, ok := byKeyB[key]; !ok || moreComplete(snap, existing) {
			byKeyB[key] = snap
		}
	}

	var common ResultSet
	seen := make(map[string]struct{})
	for _, a := range setA {
		key := IdentityKey(a)
		if _, done := seen[key]; done {
			continue
		}
		b, ok := byKeyB[key]
		if !ok {
			continue
		}
		seen[key] = struct{}{}
		if moreComplete(b, a) {
			common = append(common, b)
		} else {
			common = append(common, a)
		}
	}
	return setA, setB, common
}

func moreComplete(a, b models.Snapshot) bool {
	aOK, bOK := a.Status == models.StatusOK, b.Status == models.StatusOK
	if aOK != bOK {
		return aOK
	}
	return populatedFields(a) > populatedFields(b)
}

func populatedFields(s models.Snapshot) int {
	n := 0
	for _, set := range []bool{
		s.Ticker != "",
		s.ShortName != "",
		s.Price != nil,
		s.Sector != "",
		s.Industry != "",
		s.MarketCap != nil,
		s.PERatio != nil,
	} {
		if set {
			n++
		}
	}
	return n
}
