// Package compress provides the entropy-coder codecs ALICE-Text treats as a
// black box: a per-column or monolithic byte blob goes in, a compressed
// byte blob comes out, and the reverse.
//
// Four algorithms are available: AlgorithmZstd (default, best ratio),
// AlgorithmS2 (low latency), AlgorithmLZ4 (fastest decompression), and
// AlgorithmNone (passthrough, for isolating columnar encoding size in
// tests). Zstd additionally takes a Level (fast/balanced/best) controlling
// its internal compression level.
package compress
