package jieba

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mengwang/jieba-go/internal/data"
)

// Regexes driving the mode-split in Cut/PosCut: CJK runs are segmented,
// everything else is classified as whitespace or carried through as-is.
var (
	reHanDefault  = regexp.MustCompile(`[\p{Han}a-zA-Z0-9+#&._%\-]+`)
	reSkipDefault = regexp.MustCompile(`(\r\n|\s)`)
	reHanCutAll   = regexp.MustCompile(`\p{Han}+`)
	reSkipCutAll  = regexp.MustCompile(`[^a-zA-Z0-9+#\n]`)

	reUserDict = regexp.MustCompile(`^(.+?)(?: ([0-9]+))?(?: ([a-z]+))?$`)
	reEng      = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	reNum      = regexp.MustCompile(`^[0-9]+\.?[0-9]*$`)
)

// Tokenizer owns one prefix dictionary, one HMM model pair, and the
// mutable state (cache directory, logger) that segmentation and
// tagging read from.
type Tokenizer struct {
	dict  *pfdict
	hmm   hmm4Model
	joint hmmJointModel

	logger      zerolog.Logger
	defaultHMM  bool
	cacheDir    string
	cacheDirSet bool

	initMu      sync.Mutex
	initialized bool
	dictSource  string // "" means the embedded default
}

// NewTokenizer constructs a Tokenizer backed by the dictionary file at
// path. The path is checked to exist immediately, returning an error
// instead of the teacher's constructor-time log.Fatal; the file itself
// is not parsed until the first query.
func NewTokenizer(path string, opts ...Option) (*Tokenizer, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &FileNotFoundError{Path: path}
	}
	tk := newTokenizerBase(opts...)
	tk.dictSource = path
	return tk, nil
}

// NewDefaultTokenizer constructs a Tokenizer backed by the dictionary
// embedded in this module.
func NewDefaultTokenizer(opts ...Option) *Tokenizer {
	return newTokenizerBase(opts...)
}

func newTokenizerBase(opts ...Option) *Tokenizer {
	tk := &Tokenizer{
		dict:       newPFDict(),
		hmm:        defaultHMM4(),
		joint:      defaultHMMJoint(),
		logger:     newDiscardLogger(),
		defaultHMM: true,
	}
	for _, o := range opts {
		o(tk)
	}
	return tk
}

// DefaultTokenizer is a process-wide convenience instance, analogous to
// the original's module-level default tokenizer. Prefer an explicit
// Tokenizer value in library code.
var DefaultTokenizer = NewDefaultTokenizer()

// ensureInitialized lazily loads the dictionary. Loading is serialized
// by initMu; it never calls back into itself, so a plain (non-reentrant)
// mutex is sufficient even though Cut/PosCut/AddWord all funnel through
// it on first use.
func (tk *Tokenizer) ensureInitialized() error {
	tk.initMu.Lock()
	defer tk.initMu.Unlock()
	if tk.initialized {
		return nil
	}

	var r io.Reader
	var name string
	if tk.dictSource == "" {
		r = strings.NewReader(data.DefaultDict)
		name = "<embedded default dictionary>"
	} else {
		if tk.tryLoadCacheLocked() {
			tk.initialized = true
			return nil
		}
		f, err := os.Open(tk.dictSource)
		if err != nil {
			return errors.Wrapf(err, "jieba: opening dictionary %s", tk.dictSource)
		}
		defer f.Close()
		r = f
		name = tk.dictSource
	}

	if err := tk.dict.loadLines(r, name); err != nil {
		return err
	}
	if tk.dictSource != "" {
		tk.writeCacheLocked()
	}
	tk.initialized = true
	tk.logger.Debug().Str("source", name).Int("total", tk.dict.getTotal()).Msg("prefix dict built")
	return nil
}

// SetDictionary hot-swaps the backing dictionary file. A nonexistent
// path returns FileNotFoundError synchronously and leaves the
// tokenizer's current state untouched.
func (tk *Tokenizer) SetDictionary(path string) error {
	if _, err := os.Stat(path); err != nil {
		return &FileNotFoundError{Path: path}
	}
	tk.initMu.Lock()
	tk.dictSource = path
	tk.initialized = false
	tk.initMu.Unlock()
	return nil
}

// AddWord adds or updates a dictionary entry. A nil freq triggers
// SuggestFreq-style computation so the word survives segmentation
// intact.
func (tk *Tokenizer) AddWord(word string, freq *int, tag string) int {
	_ = tk.ensureInitialized()
	cut := func(s string, hmm bool) []string { return tk.Cut(s, false, hmm) }
	return tk.dict.addWord(word, freq, tag, cut)
}

// DelWord removes word from the dictionary (equivalent to
// AddWord(word, 0, "")); any segmentation that would have produced word
// as a unit now yields its characters.
func (tk *Tokenizer) DelWord(word string) {
	zero := 0
	tk.AddWord(word, &zero, "")
}

// SuggestFreq computes the frequency that would force wordOrSegs to be
// segmented as requested. Pass a single string to force it to cut out as
// one word, or multiple strings to force that exact split.
// If tune is true, the result is also installed via AddWord.
func (tk *Tokenizer) SuggestFreq(tune bool, wordOrSegs ...string) int {
	_ = tk.ensureInitialized()
	var f int
	if len(wordOrSegs) == 1 {
		cut := func(s string, hmm bool) []string { return tk.Cut(s, false, hmm) }
		f = tk.dict.suggestFreqWord(wordOrSegs[0], cut)
	} else {
		f = tk.dict.suggestFreqSegments(wordOrSegs)
	}
	if tune {
		word := strings.Join(wordOrSegs, "")
		tk.AddWord(word, &f, "")
	}
	return f
}

// LoadUserDict merges a user dictionary into the live dictionary via
// AddWord, so ForceSplit and user-tag semantics apply.
func (tk *Tokenizer) LoadUserDict(r io.Reader, sourceName string) error {
	_ = tk.ensureInitialized()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if lineno == 1 {
			line = strings.TrimPrefix(line, "\U0000FEFF")
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := reUserDict.FindStringSubmatch(line)
		if m == nil {
			return &DictionaryParseError{File: sourceName, Line: lineno, Text: line}
		}
		word := m[1]
		var freqPtr *int
		if strings.TrimSpace(m[2]) != "" {
			f, err := strconv.Atoi(strings.TrimSpace(m[2]))
			if err != nil {
				return &DictionaryParseError{File: sourceName, Line: lineno, Text: line}
			}
			freqPtr = &f
		}
		tag := strings.TrimSpace(m[3])
		tk.AddWord(word, freqPtr, tag)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "jieba: reading user dictionary %s", sourceName)
	}
	return nil
}

// LoadUserDictFile is a convenience wrapper around LoadUserDict for a
// path on disk.
func (tk *Tokenizer) LoadUserDictFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "jieba: opening user dictionary %s", path)
	}
	defer f.Close()
	return tk.LoadUserDict(f, path)
}

// --- segmentation orchestrator ---

// Cut segments sentence into words. cutAll selects full-mode; otherwise
// accurate mode is used, optionally assisted by the HMM (useHMM).
func (tk *Tokenizer) Cut(sentence string, cutAll bool, useHMM bool) []string {
	_ = tk.ensureInitialized()
	useHMM = useHMM && tk.defaultHMM

	reHan, reSkip := reHanDefault, reSkipDefault
	if cutAll {
		reHan, reSkip = reHanCutAll, reSkipCutAll
	}

	var words []string
	for _, blk := range splitKeep(reHan, sentence) {
		if blk == "" {
			continue
		}
		if isFullMatch(reHan, blk) {
			words = append(words, tk.cutBlock(blk, cutAll, useHMM)...)
			continue
		}
		for _, x := range splitKeep(reSkip, blk) {
			if x == "" {
				continue
			}
			switch {
			case isFullMatch(reSkip, x):
				words = append(words, x)
			case cutAll:
				words = append(words, x)
			default:
				for _, r := range x {
					words = append(words, string(r))
				}
			}
		}
	}
	return words
}

func (tk *Tokenizer) cutBlock(blk string, cutAll, useHMM bool) []string {
	runes := []rune(blk)
	dag := buildDAG(tk.dict, runes)
	if cutAll {
		return cutAllDAG(runes, dag)
	}
	route := solveRoute(tk.dict, runes, dag)
	if !useHMM {
		return cutDAGNoHMM(runes, route)
	}
	return cutDAGHMM(tk.dict, runes, route, recoverOOV(tk.hmm))
}

// CutAll is Cut(sentence, true, false) — full mode never uses the HMM.
func (tk *Tokenizer) CutAll(sentence string) []string {
	return tk.Cut(sentence, true, false)
}

// CutForSearch additionally emits every in-dictionary 2-gram and 3-gram
// of each accurate-mode word, before the word itself.
func (tk *Tokenizer) CutForSearch(sentence string, useHMM bool) []string {
	var out []string
	for _, w := range tk.Cut(sentence, false, useHMM) {
		out = append(out, tk.searchGrams(w)...)
		out = append(out, w)
	}
	return out
}

func (tk *Tokenizer) searchGrams(w string) []string {
	runes := []rune(w)
	n := len(runes)
	var out []string
	if n > 2 {
		for i := 0; i < n-1; i++ {
			gram := string(runes[i : i+2])
			if f, ok := tk.dict.get(gram); ok && f > 0 {
				out = append(out, gram)
			}
		}
	}
	if n > 3 {
		for i := 0; i < n-2; i++ {
			gram := string(runes[i : i+3])
			if f, ok := tk.dict.get(gram); ok && f > 0 {
				out = append(out, gram)
			}
		}
	}
	return out
}

// Token is a (word, start, end) triple with code-point offsets.
type Token struct {
	Word  string
	Start int
	End   int
}

// Tokenize yields (word, start, end) triples with Unicode code-point
// offsets. mode is "default" or "search".
func (tk *Tokenizer) Tokenize(sentence string, mode string, useHMM bool) []Token {
	var out []Token
	start := 0
	for _, w := range tk.Cut(sentence, false, useHMM) {
		runes := []rune(w)
		width := len(runes)
		if mode == "search" {
			for _, gram := range tk.searchGrams(w) {
				gw := len([]rune(gram))
				if pos := indexOfGram(runes, []rune(gram)); pos >= 0 {
					out = append(out, Token{gram, start + pos, start + pos + gw})
				}
			}
		}
		out = append(out, Token{w, start, start + width})
		start += width
	}
	return out
}

// indexOfGram finds the first rune-index of sub within runes.
func indexOfGram(runes, sub []rune) int {
	n, m := len(runes), len(sub)
	for i := 0; i+m <= n; i++ {
		match := true
		for j := 0; j < m; j++ {
			if runes[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// LCut is the eager alias kept for parity with the original API surface;
// Cut in this port is already eager, so LCut is just Cut.
func (tk *Tokenizer) LCut(sentence string, cutAll, useHMM bool) []string {
	return tk.Cut(sentence, cutAll, useHMM)
}

// LCutForSearch is the eager alias for CutForSearch.
func (tk *Tokenizer) LCutForSearch(sentence string, useHMM bool) []string {
	return tk.CutForSearch(sentence, useHMM)
}

// --- POS tagger orchestrator ---

// PosCut segments sentence and tags each resulting word. Known words
// take their dictionary tag (user tags override main-dictionary tags);
// unknown Han runs are tagged by the joint HMM; non-Han runs get "m"
// (numeric), "eng" (alphanumeric) or "x" (anything else).
func (tk *Tokenizer) PosCut(sentence string, useHMM bool) []Pair {
	_ = tk.ensureInitialized()
	useHMM = useHMM && tk.defaultHMM
	var out []Pair
	for _, blk := range splitKeep(reHanDefault, sentence) {
		if blk == "" {
			continue
		}
		if isFullMatch(reHanDefault, blk) {
			out = append(out, tk.posCutBlock(blk, useHMM)...)
			continue
		}
		for _, x := range splitKeep(reSkipDefault, blk) {
			if x == "" {
				continue
			}
			if isFullMatch(reSkipDefault, x) {
				out = append(out, Pair{x, "x"})
				continue
			}
			out = append(out, Pair{x, tk.fallbackTag(x)})
		}
	}
	return out
}

// PosLCut is the eager alias for PosCut.
func (tk *Tokenizer) PosLCut(sentence string, useHMM bool) []Pair {
	return tk.PosCut(sentence, useHMM)
}

func (tk *Tokenizer) posCutBlock(blk string, useHMM bool) []Pair {
	runes := []rune(blk)
	dag := buildDAG(tk.dict, runes)
	route := solveRoute(tk.dict, runes, dag)
	if !useHMM {
		return tk.posCutDAGNoHMM(runes, route)
	}
	return tk.posCutDAGHMM(runes, route)
}

func (tk *Tokenizer) posCutDAGNoHMM(runes []rune, route map[int]routeNode) []Pair {
	var out []Pair
	var buf []rune
	n := len(runes)
	flush := func() {
		if len(buf) == 0 {
			return
		}
		out = append(out, Pair{string(buf), tk.fallbackTag(string(buf))})
		buf = nil
	}
	for x := 0; x < n; {
		y := route[x].end + 1
		word := runes[x:y]
		if len(word) == 1 && isASCIIAlnum(word[0]) {
			buf = append(buf, word...)
		} else {
			flush()
			out = append(out, Pair{string(word), tk.tagFor(string(word))})
		}
		x = y
	}
	flush()
	return out
}

func (tk *Tokenizer) posCutDAGHMM(runes []rune, route map[int]routeNode) []Pair {
	var out []Pair
	var buf []rune
	n := len(runes)
	flush := func() {
		if len(buf) == 0 {
			return
		}
		switch {
		case len(buf) == 1:
			out = append(out, Pair{string(buf), tk.tagFor(string(buf))})
		case hasPositiveFreq(tk.dict, buf):
			for _, r := range buf {
				out = append(out, Pair{string(r), tk.tagFor(string(r))})
			}
		default:
			for _, p := range posRecoverOOV(tk.joint)(buf) {
				if tk.dict.isForceSplit(p.Word) {
					for _, r := range p.Word {
						out = append(out, Pair{string(r), tk.tagFor(string(r))})
					}
				} else {
					out = append(out, p)
				}
			}
		}
		buf = nil
	}
	for x := 0; x < n; {
		y := route[x].end + 1
		word := runes[x:y]
		if y-x == 1 {
			buf = append(buf, word...)
		} else {
			flush()
			out = append(out, Pair{string(word), tk.tagFor(string(word))})
		}
		x = y
	}
	flush()
	return out
}

// tagFor resolves the tag for a word produced while walking the DAG
// inside a Han-matched block: its dictionary tag if it has one, or the
// plain catch-all "x" otherwise. The numeric/alphanumeric fallback in
// fallbackTag does not apply to an untagged word or character found
// inside a Han-matched block.
func (tk *Tokenizer) tagFor(word string) string {
	if t, ok := tk.dict.wordTag(word); ok {
		return t
	}
	return "x"
}

// fallbackTag classifies a run as numeric, alphanumeric, or the
// catch-all "x". It tags the runs outside the Han regex match (e.g.
// punctuation) and, in the no-HMM tagger, the glued run of single ASCII
// letters/digits found inside a Han-matched block.
func (tk *Tokenizer) fallbackTag(s string) string {
	switch {
	case reNum.MatchString(s):
		return "m"
	case reEng.MatchString(s):
		return "eng"
	default:
		return "x"
	}
}

// --- shared regex helpers ---

// splitKeep splits s on re, keeping the matched separators as their own
// elements (equivalent to Python's re.split with a capturing group).
func splitKeep(re *regexp.Regexp, s string) []string {
	idx := re.FindAllStringIndex(s, -1)
	if idx == nil {
		return []string{s}
	}
	var out []string
	prev := 0
	for _, p := range idx {
		if p[0] > prev {
			out = append(out, s[prev:p[0]])
		}
		out = append(out, s[p[0]:p[1]])
		prev = p[1]
	}
	if prev < len(s) {
		out = append(out, s[prev:])
	}
	return out
}

func isFullMatch(re *regexp.Regexp, s string) bool {
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
