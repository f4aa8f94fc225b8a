// Package rolling provides the weak rolling checksums used for chunk
// matching: byte-wise Adler-32 and Fletcher-32 variants that can slide their
// window forward one byte at a time in constant time.
package rolling
