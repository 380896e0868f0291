// Package seqio reads reference and query sequences from FASTA or plain
// text files and writes gapped alignment rows back out as FASTA.
//
// FASTA parsing and formatting go through biogo's fasta reader and writer;
// records come back as align.Sequence values whose Symbols are the raw
// letters of the record, case preserved.
package seqio
