package jieba

import (
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
)

// On-disk prefix-dictionary cache, so a large dictionary file only gets
// parsed once per machine. Layout:
//
//	magic   uint32
//	version uint32
//	srcSize int64   (source file size, for staleness check)
//	srcMod  int64   (source mtime, unix nanoseconds)
//	total   int64
//	entries uint32
//	then, repeated `entries` times:
//	  keyLen uint16, key []byte (UTF-8), freq varint
//
// A cache write failure is logged and otherwise ignored, never raised to
// the caller; a missing, stale or corrupt cache is treated the same as a
// cold start.
const (
	cacheMagic   uint32 = 0x4a494542 // "JIEB"
	cacheVersion uint32 = 1
)

// cachePath returns the path this tokenizer's dictionary cache would
// live at, or "" if caching is disabled (WithCacheDir("")).
func (tk *Tokenizer) cachePath() string {
	if tk.cacheDirSet && tk.cacheDir == "" {
		return ""
	}
	dir := tk.cacheDir
	if dir == "" {
		dir = os.TempDir()
	}
	sum := sha1.Sum([]byte(tk.dictSource))
	return filepath.Join(dir, "jieba-cache-"+hex.EncodeToString(sum[:])+".bin")
}

// tryLoadCacheLocked attempts to populate tk.dict from the on-disk
// cache. Called with initMu already held. Returns false on any miss or
// mismatch, in which case the caller falls back to parsing dictSource.
func (tk *Tokenizer) tryLoadCacheLocked() bool {
	path := tk.cachePath()
	if path == "" {
		return false
	}
	srcInfo, err := os.Stat(tk.dictSource)
	if err != nil {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var hdr struct {
		Magic, Version uint32
		SrcSize        int64
		SrcMod         int64
		Total          int64
		Entries        uint32
	}
	if err := binary.Read(f, binary.LittleEndian, &hdr); err != nil {
		return false
	}
	if hdr.Magic != cacheMagic || hdr.Version != cacheVersion {
		return false
	}
	if hdr.SrcSize != srcInfo.Size() || hdr.SrcMod != srcInfo.ModTime().UnixNano() {
		return false
	}

	br := newByteReader(f)
	freq := make(map[string]int, hdr.Entries)
	for i := uint32(0); i < hdr.Entries; i++ {
		var keyLen uint16
		if err := binary.Read(f, binary.LittleEndian, &keyLen); err != nil {
			return false
		}
		keyBuf := make([]byte, keyLen)
		if _, err := io.ReadFull(f, keyBuf); err != nil {
			return false
		}
		v, err := binary.ReadVarint(br)
		if err != nil {
			return false
		}
		freq[string(keyBuf)] = int(v)
	}

	tk.dict.mu.Lock()
	tk.dict.freq = freq
	tk.dict.total = int(hdr.Total)
	tk.dict.tag = make(map[string]string)
	tk.dict.mu.Unlock()
	tk.logger.Debug().Str("cache", path).Msg("prefix dict loaded from cache")
	return true
}

// writeCacheLocked persists tk.dict to its cache path via a scoped temp
// file and an atomic rename, mirroring the scratch-file-then-move
// pattern the cache format note calls for. Failures are logged at Warn
// and otherwise swallowed — a cache is an optimization, not a
// correctness requirement.
func (tk *Tokenizer) writeCacheLocked() {
	path := tk.cachePath()
	if path == "" {
		return
	}
	srcInfo, err := os.Stat(tk.dictSource)
	if err != nil {
		return
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "jieba-cache-*.tmp")
	if err != nil {
		tk.logger.Warn().Err(err).Msg("cache write failed: create temp file")
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := tk.writeCacheTo(tmp, srcInfo); err != nil {
		tmp.Close()
		tk.logger.Warn().Err(err).Msg("cache write failed")
		return
	}
	if err := tmp.Close(); err != nil {
		tk.logger.Warn().Err(err).Msg("cache write failed: close temp file")
		return
	}
	if err := os.Rename(tmpPath, path); err != nil {
		tk.logger.Warn().Err(err).Msg("cache write failed: rename")
	}
}

func (tk *Tokenizer) writeCacheTo(w io.Writer, srcInfo os.FileInfo) error {
	tk.dict.mu.RLock()
	defer tk.dict.mu.RUnlock()

	hdr := struct {
		Magic, Version uint32
		SrcSize        int64
		SrcMod         int64
		Total          int64
		Entries        uint32
	}{
		Magic:   cacheMagic,
		Version: cacheVersion,
		SrcSize: srcInfo.Size(),
		SrcMod:  srcInfo.ModTime().UnixNano(),
		Total:   int64(tk.dict.total),
		Entries: uint32(len(tk.dict.freq)),
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return err
	}

	varintBuf := make([]byte, binary.MaxVarintLen64)
	for key, freq := range tk.dict.freq {
		if err := binary.Write(w, binary.LittleEndian, uint16(len(key))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, key); err != nil {
			return err
		}
		n := binary.PutVarint(varintBuf, int64(freq))
		if _, err := w.Write(varintBuf[:n]); err != nil {
			return err
		}
	}
	return nil
}

// byteReader adapts an io.Reader to io.ByteReader for binary.ReadVarint.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func newByteReader(r io.Reader) *byteReader { return &byteReader{r: r} }

func (b *byteReader) ReadByte() (byte, error) {
	_, err := io.ReadFull(b.r, b.buf[:])
	return b.buf[0], err
}
