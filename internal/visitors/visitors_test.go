package visitors

import (
	"testing"

	"fastx/pkg/api"
)

func TestMinCount(t *testing.T) {
	v := MinCount{N: 2}
	if keep, _, _ := v.Visit(api.MatchRecordV1{Count: 1}); keep {
		t.Fatal("count 1 must be dropped")
	}
	if keep, r, _ := v.Visit(api.MatchRecordV1{Count: 2, Pattern: "p"}); !keep || r.Pattern != "p" {
		t.Fatal("count 2 must be kept unchanged")
	}
	if keep, _, _ := (PassThrough{}).Visit(api.MatchRecordV1{}); !keep {
		t.Fatal("pass-through must keep")
	}
}
