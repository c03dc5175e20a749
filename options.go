package jieba

import "github.com/rs/zerolog"

// Option configures a Tokenizer at construction time.
type Option func(*Tokenizer)

// WithLogger attaches a logger used for load timing, cache diagnostics
// and non-fatal warnings — a cache write failure, for instance, is
// logged and otherwise swallowed rather than raised to the caller.
func WithLogger(l zerolog.Logger) Option {
	return func(tk *Tokenizer) { tk.logger = l }
}

// WithoutHMM disables HMM-assisted OOV recovery for this Tokenizer
// regardless of the useHMM argument passed to Cut/PosCut and their
// aliases — a per-instance kill switch, distinct from the per-call flag.
func WithoutHMM() Option {
	return func(tk *Tokenizer) { tk.defaultHMM = false }
}

// WithCacheDir overrides the directory used for the on-disk prefix-dict
// cache. An empty dir disables the cache entirely.
func WithCacheDir(dir string) Option {
	return func(tk *Tokenizer) { tk.cacheDir = dir; tk.cacheDirSet = true }
}

// WithHMMModel overrides the default embedded 4-state HMM parameters.
func WithHMMModel(m hmm4Model) Option {
	return func(tk *Tokenizer) { tk.hmm = m }
}

// WithJointModel overrides the default embedded joint BMES×POS model used
// by the POS tagger for OOV recovery.
func WithJointModel(m hmmJointModel) Option {
	return func(tk *Tokenizer) { tk.joint = m }
}
