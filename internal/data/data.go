// Package data embeds the default dictionary shipped with this module
// so NewDefaultTokenizer works without a runtime-supplied path.
package data

import _ "embed"

// DefaultDict is a curated, representative subset of a jieba-style
// dictionary: common words, the package's own worked examples, and
// their prefixes. It is not the full upstream dictionary.
//
//go:embed dict.txt
var DefaultDict string
