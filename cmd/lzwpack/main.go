// Command lzwpack compresses a text file into a .lzw container, or
// reverses the process.
//
//	lzwpack -c notes.txt        writes notes.txt.lzw
//	lzwpack -u notes.txt.lzw    writes notes.txt
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/akeane/lzwpack"
	"github.com/akeane/lzwpack/logging"
	"github.com/akeane/lzwpack/lzwfile"
)

const lzwExt = ".lzw"

var (
	compressPath   string
	uncompressPath string
	verbose        bool
	quiet          bool
	classic        bool
)

func init() {
	flag.StringVar(&compressPath, "c", "", "compress `file` to file"+lzwExt)
	flag.StringVar(&compressPath, "compress", "", "long form of -c")
	flag.StringVar(&uncompressPath, "u", "", "uncompress `file`, stripping the "+lzwExt+" suffix")
	flag.StringVar(&uncompressPath, "uncompress", "", "long form of -u")
	flag.BoolVar(&verbose, "v", false, "print per-pass diagnostics to stderr")
	flag.BoolVar(&verbose, "verbose", false, "long form of -v")
	flag.BoolVar(&quiet, "q", false, "suppress progress output")
	flag.BoolVar(&quiet, "quiet", false, "long form of -q")
	flag.BoolVar(&classic, "classic", false, "write the classic 1-byte-table layout instead of the checked one")
}

// compressFile encodes the text in path and writes the container next
// to it, returning the output path.
func compressFile(path string, format lzwfile.Format) (string, error) {
	out := path + lzwExt
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	codes, table, err := lzwpack.Encode(string(data))
	if err != nil {
		return "", err
	}
	packed, err := format.Marshal(nil, table, codes)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(out, packed, 0644); err != nil {
		return "", err
	}
	logging.Trace.Printf("%s: %d bytes in, %d bytes out (%s layout)", path, len(data), len(packed), format.Name())
	return out, nil
}

// uncompressFile reverses compressFile, sniffing the container layout.
// The output overwrites the input when the suffix is absent.
func uncompressFile(path string) (string, error) {
	out := strings.TrimSuffix(path, lzwExt)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	format := lzwfile.Detect(data)
	logging.Trace.Printf("%s: %s layout, %d bytes", path, format.Name(), len(data))
	table, codes, err := format.Unmarshal(data)
	if err != nil {
		return "", err
	}
	text, err := lzwpack.Decode(codes, table)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		return "", err
	}
	return out, nil
}

func main() {
	flag.Parse()

	if verbose && quiet {
		logging.Error.Println("-v and -q are mutually exclusive")
		os.Exit(2)
	}
	if (compressPath == "") == (uncompressPath == "") {
		logging.Error.Println("exactly one of -c and -u is required")
		flag.Usage()
		os.Exit(2)
	}
	logging.SetVerbose(verbose)
	logging.SetQuiet(quiet)

	format := lzwfile.Checked
	if classic {
		format = lzwfile.Classic
	}

	var err error
	if compressPath != "" {
		logging.Info.Printf("compressing %s to %s ...", compressPath, compressPath+lzwExt)
		_, err = compressFile(compressPath, format)
	} else {
		logging.Info.Printf("uncompressing %s to %s ...", uncompressPath, strings.TrimSuffix(uncompressPath, lzwExt))
		_, err = uncompressFile(uncompressPath)
	}
	if err != nil {
		logging.Error.Println(err)
		os.Exit(1)
	}
	logging.Info.Println("done")
}
