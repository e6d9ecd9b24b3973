// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package charset guesses the byte encoding of text files and decodes them
// into UTF-8 strings.
package charset

import (
	"os"
	"sort"
	"strings"

	"github.com/saintfish/chardet"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// UTF8 is the name reported for empty or undetectable input.
const UTF8 = "UTF-8"

// Guess is one candidate encoding with a confidence between 0 and 100.
type Guess struct {
	Name       string
	Confidence int
}

// DetectFile reads path and returns its candidate encodings, best first.
func DetectFile(path string) ([]Guess, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}
	return Detect(data), nil
}

// Detect returns the candidate encodings of data, best first. It never
// returns an empty slice.
func Detect(data []byte) []Guess {
	if len(data) == 0 {
		return []Guess{{Name: UTF8, Confidence: 100}}
	}

	results, err := chardet.NewTextDetector().DetectAll(data)
	if err != nil || len(results) == 0 {
		return []Guess{{Name: UTF8, Confidence: 0}}
	}

	guesses := make([]Guess, 0, len(results))
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		if seen[r.Charset] {
			continue
		}
		seen[r.Charset] = true
		guesses = append(guesses, Guess{Name: r.Charset, Confidence: r.Confidence})
	}

	sort.SliceStable(guesses, func(i, j int) bool {
		return guesses[i].Confidence > guesses[j].Confidence
	})

	return guesses
}

// Decode converts data from the named encoding into a UTF-8 string. Byte
// order marks are consumed for the unicode encodings.
func Decode(data []byte, name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Errorf("decoding as %s: %w", name, err)
	}

	return string(out), nil
}

// Lookup resolves an encoding name as reported by the detector.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	switch key {
	case "", "utf-8", "utf8", "ascii", "us-ascii":
		return unicode.UTF8BOM, nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16be", "utf-16":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case "utf-32le":
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM), nil
	case "utf-32be", "utf-32":
		return utf32.UTF32(utf32.BigEndian, utf32.UseBOM), nil
	case "gb-18030":
		key = "gb18030"
	}

	if enc, err := htmlindex.Get(key); err == nil {
		return enc, nil
	}

	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil || enc == nil {
		return nil, errors.Errorf("unsupported encoding %q", name)
	}

	return enc, nil
}
