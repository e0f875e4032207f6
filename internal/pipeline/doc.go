// Package pipeline runs one design job end to end: load the gene FASTA,
// design spacers, hand them to the off-target matcher through a Runner,
// aggregate its hit table, and write the report.
//
// The only contract to implement is seqmap.Runner; tests swap in a fake
// that writes a result table directly.
package pipeline
