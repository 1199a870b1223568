// Package pipeline scans a stream of subject sequences with a Scanner on a
// pool of workers and hands back one merged match buffer per subject, in
// input order.
//
// Long subjects are cut into chunks scanned independently; each chunk gets
// its own matchbuf.Buffer and the collector folds them into the subject's
// buffer with AppendAndFlush, in chunk order. The only contract to
// implement is Scanner, which keeps the pipeline testable with fakes.
package pipeline
