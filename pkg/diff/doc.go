// Package diff implements delta synchronization over fixed-size chunks. An
// old file is partitioned into chunks and fingerprinted into a Signature
// table keyed by weak rolling hash. A new file is scanned byte-by-byte
// against that table to produce a compact delta of literal bytes and chunk
// references, and the delta is applied against the table to reconstruct the
// new file exactly.
package diff
