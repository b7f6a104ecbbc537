// Package tags implements the tag artifact algorithms: merging many per-crate
// tag files into one and discovering re-exported crates from a library's own
// tags.
package tags

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cargotags/cargotags/internal/core/domain"
	"go.trai.ch/zerr"
)

// viHeader is the pseudo-tag preamble of a merged vi tags file. Input headers
// are dropped and this one written instead so repeated merges are
// byte-identical regardless of which ctags build produced the inputs.
const viHeader = "!_TAG_FILE_FORMAT\t2\t/extended format; --format=1 will not append ;\" to lines/\n" +
	"!_TAG_FILE_SORTED\t1\t/0=unsorted, 1=sorted, 2=foldcase/\n"

// sectionStart delimits per-file regions in the emacs format.
const sectionStart = "\x0c\n"

// Merge combines the entries of all input artifacts into one deduplicated
// artifact at dest. Entries are the union of the inputs with exact duplicates
// removed, emitted in a deterministic order (symbol order for vi, file-grouped
// order for emacs), so merging the same inputs in any order yields the same
// bytes. The destination is written to a temporary file first and moved into
// place, so a concurrent reader never sees a partial artifact.
func Merge(kind domain.TagsKind, inputs []string, dest string) error {
	var (
		out []byte
		err error
	)
	switch kind {
	case domain.KindVi:
		out, err = mergeVi(inputs)
	case domain.KindEmacs:
		out, err = mergeEmacs(inputs)
	default:
		err = zerr.With(zerr.Wrap(domain.ErrUnknownTagsKind, ""), "kind", string(kind))
	}
	if err != nil {
		return err
	}

	return writeAtomic(dest, out)
}

// mergeVi unions plain tag lines. The vi format is line-oriented: one entry
// per line, sorted by symbol name so editors can binary-search.
func mergeVi(inputs []string) ([]byte, error) {
	seen := make(map[string]struct{})
	var entries []string

	for _, input := range inputs {
		data, err := readArtifact(input)
		if err != nil {
			return nil, err
		}
		if bytes.HasPrefix(data, []byte(sectionStart)) {
			return nil, mergeErr(input, "emacs artifact passed to a vi merge")
		}

		for line := range strings.Lines(string(data)) {
			line = strings.TrimSuffix(line, "\n")
			if line == "" || strings.HasPrefix(line, "!_TAG_") {
				continue
			}
			if _, dup := seen[line]; dup {
				continue
			}
			seen[line] = struct{}{}
			entries = append(entries, line)
		}
	}

	sort.Strings(entries)

	var buf bytes.Buffer
	buf.WriteString(viHeader)
	for _, entry := range entries {
		buf.WriteString(entry)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// mergeEmacs unions per-file sections. Simple concatenation would break the
// format: every section carries the byte length of its entry block, so the
// sections are re-grouped per file and the lengths recomputed.
func mergeEmacs(inputs []string) ([]byte, error) {
	type section struct {
		seen    map[string]struct{}
		entries []string
	}
	files := make(map[string]*section)

	for _, input := range inputs {
		data, err := readArtifact(input)
		if err != nil {
			return nil, err
		}
		if len(data) > 0 && !bytes.HasPrefix(data, []byte(sectionStart)) {
			return nil, mergeErr(input, "vi artifact passed to an emacs merge")
		}

		for _, chunk := range strings.Split(string(data), sectionStart) {
			if chunk == "" {
				continue
			}
			header, body, _ := strings.Cut(chunk, "\n")
			name, _, ok := strings.Cut(header, ",")
			if !ok {
				return nil, mergeErr(input, "malformed section header")
			}

			sec := files[name]
			if sec == nil {
				sec = &section{seen: make(map[string]struct{})}
				files[name] = sec
			}
			for line := range strings.Lines(body) {
				line = strings.TrimSuffix(line, "\n")
				if line == "" {
					continue
				}
				if _, dup := sec.seen[line]; dup {
					continue
				}
				sec.seen[line] = struct{}{}
				sec.entries = append(sec.entries, line)
			}
		}
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	for _, name := range names {
		sec := files[name]
		sort.Strings(sec.entries)

		var body bytes.Buffer
		for _, entry := range sec.entries {
			body.WriteString(entry)
			body.WriteByte('\n')
		}

		buf.WriteString(sectionStart)
		fmt.Fprintf(&buf, "%s,%d\n", name, body.Len())
		buf.Write(body.Bytes())
	}
	return buf.Bytes(), nil
}

func readArtifact(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMergeFailed, err.Error()), "input", path)
	}
	return data, nil
}

func mergeErr(input, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrMergeFailed, reason), "input", input)
}

// writeAtomic writes data next to dest and renames it into place.
func writeAtomic(dest string, data []byte) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".cargotags-*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMergeFailed, err.Error()), "dest", dest)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(domain.ErrMergeFailed, err.Error()), "dest", dest)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(domain.ErrMergeFailed, err.Error()), "dest", dest)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(domain.ErrMergeFailed, err.Error()), "dest", dest)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(domain.ErrMergeFailed, err.Error()), "dest", dest)
	}
	return nil
}
