package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.." // module root
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	outer := []string{
		"fastx/internal/appcore", "fastx/internal/app", "fastx/internal/appshell",
		"fastx/internal/cli", "fastx/internal/clibase", "fastx/cmd/",
	}
	with := func(extra ...string) []string { return append(append([]string(nil), outer...), extra...) }

	// The parsing core stays free of matching and presentation code.
	parsing := with("fastx/internal/pipeline", "fastx/internal/engine", "fastx/internal/matchbuf",
		"fastx/internal/writers", "fastx/internal/output", "fastx/internal/indexstore")

	bans := map[string][]string{
		"fastx/internal/fileio":     parsing,
		"fastx/internal/lkup":       parsing,
		"fastx/internal/seqset":     parsing,
		"fastx/internal/fasta":      parsing,
		"fastx/internal/fastq":      parsing,
		"fastx/internal/matchbuf":   with("fastx/internal/pipeline", "fastx/internal/engine", "fastx/internal/writers", "fastx/internal/output"),
		"fastx/internal/engine":     with("fastx/internal/pipeline", "fastx/internal/writers", "fastx/internal/output"),
		"fastx/internal/pipeline":   with("fastx/internal/writers", "fastx/internal/output"),
		"fastx/internal/writers":    with("fastx/internal/pipeline", "fastx/internal/engine"),
		"fastx/internal/output":     with("fastx/internal/pipeline"),
		"fastx/internal/indexstore": with(),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "fastx/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "fastx/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
