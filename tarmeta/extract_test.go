package tarmeta

import (
	"archive/tar"
	"bytes"
	"io"
	"testing"
	"time"
)

func buildTar(t *testing.T, entries func(tw *tar.Writer)) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	entries(tw)
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func drainAll(t *testing.T, x *Extractor) []*FileMetadata {
	t.Helper()
	var out []*FileMetadata
	for {
		m, err := x.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, m)
	}
	return out
}

// TestExtractorNames checks that a plain tar with a directory, two
// regular files, and another directory produces metadata in archive
// order with names intact.
func TestExtractorNames(t *testing.T) {
	mtime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	raw := buildTar(t, func(tw *tar.Writer) {
		for _, e := range []struct {
			name string
			typ  byte
			size int64
		}{
			{"src/", tar.TypeDir, 0},
			{"src/zinfo.rs", tar.TypeReg, 11},
			{"src/main.rs", tar.TypeReg, 7},
			{"src/testdata/", tar.TypeDir, 0},
		} {
			h := &tar.Header{
				Name:     e.name,
				Typeflag: e.typ,
				Size:     e.size,
				Mode:     0644,
				ModTime:  mtime,
			}
			if err := tw.WriteHeader(h); err != nil {
				t.Fatal(err)
			}
			if e.size > 0 {
				if _, err := tw.Write(bytes.Repeat([]byte("x"), int(e.size))); err != nil {
					t.Fatal(err)
				}
			}
		}
	})

	x := NewExtractor(bytes.NewReader(raw))
	got := drainAll(t, x)

	want := []string{"src/", "src/zinfo.rs", "src/main.rs", "src/testdata/"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("entry %d: Name = %q, want %q", i, got[i].Name, name)
		}
	}
	if got[0].Type != TypeDir || got[3].Type != TypeDir {
		t.Errorf("expected entries 0 and 3 to be directories")
	}
	if got[1].Type != TypeReg || got[1].UncompressedSize != 11 {
		t.Errorf("entry 1: Type=%v Size=%d, want reg/11", got[1].Type, got[1].UncompressedSize)
	}
}

// TestExtractorOffsetsIncrease checks UncompressedOffset tracks the payload
// start of each entry, strictly increasing across entries with content.
func TestExtractorOffsetsIncrease(t *testing.T) {
	raw := buildTar(t, func(tw *tar.Writer) {
		for _, body := range []string{"hello", "a longer payload here"} {
			h := &tar.Header{
				Name:     "f",
				Typeflag: tar.TypeReg,
				Size:     int64(len(body)),
				Mode:     0644,
			}
			if err := tw.WriteHeader(h); err != nil {
				t.Fatal(err)
			}
			if _, err := tw.Write([]byte(body)); err != nil {
				t.Fatal(err)
			}
		}
	})

	x := NewExtractor(bytes.NewReader(raw))
	got := drainAll(t, x)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[1].UncompressedOffset <= got[0].UncompressedOffset {
		t.Errorf("entry 1 offset %d not > entry 0 offset %d", got[1].UncompressedOffset, got[0].UncompressedOffset)
	}
	if got[0].UncompressedOffset == 0 {
		t.Errorf("entry 0 offset should be past its 512-byte header, got 0")
	}
}

// TestExtractorEmptyLinkName checks an entry with no link target serializes
// LinkName as an empty string, not some sentinel.
func TestExtractorEmptyLinkName(t *testing.T) {
	raw := buildTar(t, func(tw *tar.Writer) {
		h := &tar.Header{Name: "plain", Typeflag: tar.TypeReg, Size: 0, Mode: 0644}
		if err := tw.WriteHeader(h); err != nil {
			t.Fatal(err)
		}
	})
	x := NewExtractor(bytes.NewReader(raw))
	got := drainAll(t, x)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].LinkName != "" {
		t.Errorf("LinkName = %q, want empty", got[0].LinkName)
	}
}

// TestExtractorSymlink checks link entries carry their target and the
// hardlink/symlink tokens map correctly.
func TestExtractorSymlink(t *testing.T) {
	raw := buildTar(t, func(tw *tar.Writer) {
		if err := tw.WriteHeader(&tar.Header{
			Name: "real", Typeflag: tar.TypeReg, Size: 3, Mode: 0644,
		}); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte("abc")); err != nil {
			t.Fatal(err)
		}
		if err := tw.WriteHeader(&tar.Header{
			Name: "link", Typeflag: tar.TypeSymlink, Linkname: "real", Mode: 0777,
		}); err != nil {
			t.Fatal(err)
		}
	})
	x := NewExtractor(bytes.NewReader(raw))
	got := drainAll(t, x)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[1].Type != TypeSymlink || got[1].LinkName != "real" {
		t.Errorf("entry 1: Type=%v LinkName=%q, want symlink/real", got[1].Type, got[1].LinkName)
	}
}

// TestExtractorXattrs checks PAX SCHILY.xattr.* records are flattened into
// XAttrs with the namespace prefix stripped, and non-xattr PAX records
// (like size/mtime overrides) are not leaked into the map.
func TestExtractorXattrs(t *testing.T) {
	raw := buildTar(t, func(tw *tar.Writer) {
		h := &tar.Header{
			Name:     "f",
			Typeflag: tar.TypeReg,
			Size:     1,
			Mode:     0644,
			PAXRecords: map[string]string{
				"SCHILY.xattr.user.comment": "hello world",
				"SCHILY.xattr.security.foo": "bar",
			},
		}
		if err := tw.WriteHeader(h); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte("x")); err != nil {
			t.Fatal(err)
		}
	})
	x := NewExtractor(bytes.NewReader(raw))
	got := drainAll(t, x)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].XAttrs["user.comment"] != "hello world" {
		t.Errorf("XAttrs[user.comment] = %q, want %q", got[0].XAttrs["user.comment"], "hello world")
	}
	if got[0].XAttrs["security.foo"] != "bar" {
		t.Errorf("XAttrs[security.foo] = %q, want %q", got[0].XAttrs["security.foo"], "bar")
	}
	if len(got[0].XAttrs) != 2 {
		t.Errorf("len(XAttrs) = %d, want 2", len(got[0].XAttrs))
	}
}

// TestExtractorDeviceNumbers checks DevMajor/DevMinor are only populated for
// char and block entries, left zero otherwise.
func TestExtractorDeviceNumbers(t *testing.T) {
	raw := buildTar(t, func(tw *tar.Writer) {
		if err := tw.WriteHeader(&tar.Header{
			Name: "dev", Typeflag: tar.TypeChar, Devmajor: 5, Devminor: 1, Mode: 0644,
		}); err != nil {
			t.Fatal(err)
		}
		if err := tw.WriteHeader(&tar.Header{
			Name: "reg", Typeflag: tar.TypeReg, Mode: 0644,
		}); err != nil {
			t.Fatal(err)
		}
	})
	x := NewExtractor(bytes.NewReader(raw))
	got := drainAll(t, x)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].DevMajor != 5 || got[0].DevMinor != 1 {
		t.Errorf("char entry: DevMajor=%d DevMinor=%d, want 5/1", got[0].DevMajor, got[0].DevMinor)
	}
	if got[1].DevMajor != 0 || got[1].DevMinor != 0 {
		t.Errorf("reg entry: DevMajor=%d DevMinor=%d, want 0/0", got[1].DevMajor, got[1].DevMinor)
	}
}

// TestExtractorUserGroupPresence checks HasUserName/HasGroupName are true
// when the tar header carries a non-empty name and false when it carries none.
func TestExtractorUserGroupPresence(t *testing.T) {
	raw := buildTar(t, func(tw *tar.Writer) {
		if err := tw.WriteHeader(&tar.Header{
			Name: "f", Typeflag: tar.TypeReg, Mode: 0644, Uname: "alice", Gname: "staff",
		}); err != nil {
			t.Fatal(err)
		}
		if err := tw.WriteHeader(&tar.Header{
			Name: "g", Typeflag: tar.TypeReg, Mode: 0644,
		}); err != nil {
			t.Fatal(err)
		}
	})
	x := NewExtractor(bytes.NewReader(raw))
	got := drainAll(t, x)
	if !got[0].HasUserName || got[0].UserName != "alice" {
		t.Errorf("entry 0: HasUserName=%v UserName=%q, want true/alice", got[0].HasUserName, got[0].UserName)
	}
	if got[1].HasUserName || got[1].HasGroupName {
		t.Errorf("entry 1: expected no uname/gname, got HasUserName=%v HasGroupName=%v", got[1].HasUserName, got[1].HasGroupName)
	}
}
