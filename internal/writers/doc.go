// Package writers turns match records into serialized outputs.
//
//   - Writers own all presentation knowledge (TSV, JSON, JSONL).
//   - Engine stays domain-only; pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
