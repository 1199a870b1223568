// Package engine scans subject sequences for a fixed list of probes and
// reports every hit into a matchbuf.Buffer. It never imports app, writers,
// cli, or pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types.
package engine
