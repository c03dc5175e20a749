// Package jieba implements Chinese word segmentation and part-of-speech
// tagging: a prefix-frequency dictionary, a DAG builder, a max-probability
// route solver, and two Hidden Markov Model Viterbi decoders (a 4-state
// BMES tagger for recovering out-of-vocabulary words, and a joint
// BMES×POS tagger for the same purpose when part-of-speech output is
// wanted).
//
// A Tokenizer owns one dictionary, one user-tag table and one force-split
// set. The zero value is not usable; construct one with NewTokenizer or
// NewDefaultTokenizer.
package jieba
