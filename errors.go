package jieba

import "fmt"

// DictionaryParseError reports a malformed line encountered while loading
// a dictionary or user dictionary file. It names the source and the
// 1-based line number, per spec: the load fails but any previously
// loaded state is left untouched.
type DictionaryParseError struct {
	File string
	Line int
	Text string
}

func (e *DictionaryParseError) Error() string {
	return fmt.Sprintf("jieba: malformed dictionary entry in %s at line %d: %q", e.File, e.Line, e.Text)
}

// FileNotFoundError is returned by SetDictionary when given a path that
// does not exist. The tokenizer's state is unchanged.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("jieba: file does not exist: %s", e.Path)
}

// InputTypeError mirrors the original implementation's rejection of
// non-unicode input. Go's string type is always decoded text, so no
// operation in this package has a raw-byte entry point to return it from;
// it is kept for API parity with callers porting code from the original.
type InputTypeError struct{}

func (e *InputTypeError) Error() string {
	return "jieba: the input parameter should be unicode"
}

// UnsupportedPlatformError mirrors the original implementation's parallel
// mode refusing to run on platforms without fork/multiprocessing support.
// Goroutine-based CutLines has no such restriction, so nothing in this
// package currently returns it; it is kept for API parity.
type UnsupportedPlatformError struct {
	Feature string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("jieba: unsupported on this platform: %s", e.Feature)
}
