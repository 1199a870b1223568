package visitors

import "fastx/pkg/api"

// PassThrough returns the record unchanged.
type PassThrough struct{}

func (PassThrough) Visit(r api.MatchRecordV1) (keep bool, out api.MatchRecordV1, err error) {
	return true, r, nil
}
