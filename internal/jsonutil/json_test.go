package jsonutil

import (
	"bytes"
	"testing"
)

func TestEncodeLines(t *testing.T) {
	var b bytes.Buffer
	type row struct {
		N int `json:"n"`
	}
	if err := EncodeLines(&b, []row{{1}, {2}}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if b.String() != "{\"n\":1}\n{\"n\":2}\n" {
		t.Fatalf("got %q", b.String())
	}
	b.Reset()
	if err := EncodePretty(&b, row{3}); err != nil || b.String() != "{\n  \"n\": 3\n}\n" {
		t.Fatalf("pretty = %q, %v", b.String(), err)
	}
}
