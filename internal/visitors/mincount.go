package visitors

import "fastx/pkg/api"

// MinCount drops records with fewer than N matches.
type MinCount struct{ N int }

func (v MinCount) Visit(r api.MatchRecordV1) (bool, api.MatchRecordV1, error) {
	return r.Count >= v.N, r, nil
}
