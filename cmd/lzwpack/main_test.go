package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akeane/lzwpack/lzwfile"
)

func TestCompressUncompressFile(t *testing.T) {
	for _, format := range []lzwfile.Format{lzwfile.Checked, lzwfile.Classic} {
		dir := t.TempDir()
		path := filepath.Join(dir, "sample.txt")
		text := "TOBEORNOTTOBEORTOBEORNOT"
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			t.Fatal(err)
		}

		out, err := compressFile(path, format)
		if err != nil {
			t.Fatalf("%s: %v", format.Name(), err)
		}
		if out != path+lzwExt {
			t.Fatalf("%s: compressed to %s", format.Name(), out)
		}

		// Remove the original to prove uncompress recreates it.
		if err := os.Remove(path); err != nil {
			t.Fatal(err)
		}
		back, err := uncompressFile(out)
		if err != nil {
			t.Fatalf("%s: %v", format.Name(), err)
		}
		if back != path {
			t.Fatalf("%s: uncompressed to %s, want %s", format.Name(), back, path)
		}
		got, err := os.ReadFile(back)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != text {
			t.Errorf("%s: got %q, want %q", format.Name(), got, text)
		}
	}
}

func TestUncompressWithoutSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.bin")
	if err := os.WriteFile(path, []byte("abab abab"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := compressFile(path, lzwfile.Checked)
	if err != nil {
		t.Fatal(err)
	}

	// A compressed file without the .lzw suffix is overwritten in place.
	stray := filepath.Join(dir, "stray")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stray, data, 0644); err != nil {
		t.Fatal(err)
	}
	back, err := uncompressFile(stray)
	if err != nil {
		t.Fatal(err)
	}
	if back != stray {
		t.Fatalf("uncompressed to %s, want %s", back, stray)
	}
	got, err := os.ReadFile(stray)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abab abab" {
		t.Errorf("got %q", got)
	}
}

func TestUncompressCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.lzw")
	// Classic layout with a one-entry table and a code the decoder
	// can never resolve.
	if err := os.WriteFile(path, []byte{0, 'a', 0x00, 0, 0xFF, 0xFF}, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := uncompressFile(path); err == nil {
		t.Fatal("corrupt input should fail")
	}
	if _, err := os.Stat(filepath.Join(dir, "bad")); !os.IsNotExist(err) {
		t.Error("no output should be written for corrupt input")
	}
}

func TestCompressMissingFile(t *testing.T) {
	if _, err := compressFile(filepath.Join(t.TempDir(), "nope.txt"), lzwfile.Checked); err == nil {
		t.Fatal("missing input should fail")
	}
}
