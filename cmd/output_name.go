// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"unicode/utf8"

	gunzip "github.com/hashicorp/go-gunzip"
)

// init prepares the filename restriction regex
func init() {
	namingRestrictions = []nameRestriction{
		{"empty name", regexp.MustCompile(`^$`)},
		{"current directory", regexp.MustCompile(`^\.$`)},
		{"parent directory", regexp.MustCompile(`^\.\.$`)},
		{"maximum length 255", regexp.MustCompile(`^.{256,}$`)},
		{"limit to first 255 ascii characters", regexp.MustCompile(`[^\x00-\xFF]`)},
		{"exclude line break, feed and tab", regexp.MustCompile(`[\x0a\x0d\x09]`)},
	}

	if runtime.GOOS != "windows" {

		// regex with invalid unix filesystem characters, allowing unicode (128-255), excluding following character: / null byte backslash
		namingRestrictions = append(namingRestrictions,
			nameRestriction{"invalid character in filename (unix): null byte, slash, backslash", regexp.MustCompile(`[\x00/\\]`)},
		)

	}

	if runtime.GOOS == "windows" {

		// https://docs.microsoft.com/en-us/windows/win32/fileio/naming-a-file
		namingRestrictions = append(namingRestrictions, nameRestriction{
			"invalid characters (windows)", regexp.MustCompile(`[\x00-\x1f<>:"/\\|?*]`),
		})

		// known reserved names on windows, "(?i)" is case-insensitive
		namingRestrictions = append(namingRestrictions,
			nameRestriction{"reserved name", regexp.MustCompile(`^(?i)CON$`)},
			nameRestriction{"reserved name", regexp.MustCompile(`^(?i)PRN$`)},
			nameRestriction{"reserved name", regexp.MustCompile(`^(?i)AUX$`)},
			nameRestriction{"reserved name", regexp.MustCompile(`^(?i)NUL$`)},
			nameRestriction{"reserved name", regexp.MustCompile(`^(?i)COM[0-9]+$`)},
			nameRestriction{"reserved name", regexp.MustCompile(`^(?i)LPT[0-9]+$`)},
			nameRestriction{"reserved name", regexp.MustCompile(`^(\s|\.)+$`)})
	}

}

// nameRestriction is a struct that contains the name of the restriction and the regex to check for it
type nameRestriction struct {
	RestrictionName string
	Regex           *regexp.Regexp
}

// namingRestrictions is a list of restrictions for filenames, depending on the operating system
var namingRestrictions []nameRestriction

const (
	// defaultDecompressionName is the default name for the decompressed content
	defaultDecompressionName = "gunzip-decompressed-content"

	// defaultDecompressedSuffix is the suffix for the decompressed content if
	// the filename does not end with a gzip file extension
	defaultDecompressedSuffix = "decompressed"
)

// determineOutputName determines the name of the file that receives the decompressed
// content of inputName. An input from STDIN has an empty inputName.
func determineOutputName(inputName string) string {

	// is the input a file?
	if len(inputName) == 0 {
		return defaultDecompressionName
	}
	inputName = filepath.Base(inputName)

	// start with the input name
	newName := inputName
	lower := strings.ToLower(inputName)

	// remove file extension, a tgz is a tar archive after decompression
	if ext := fmt.Sprintf(".%s", gunzip.FileExtensionTarGzip); strings.HasSuffix(lower, ext) {
		newName = fmt.Sprintf("%s.tar", newName[:len(newName)-len(ext)])
	} else if ext := fmt.Sprintf(".%s", gunzip.FileExtensionGzip); strings.HasSuffix(lower, ext) {
		newName = newName[:len(newName)-len(ext)]
	}

	// check if file extension has been removed, if not, add a suffix
	if newName == inputName {
		newName = fmt.Sprintf("%s.%s", inputName, defaultDecompressedSuffix)
	}

	// check newName is a valid utf8 string
	if !utf8.ValidString(newName) {
		return defaultDecompressionName
	}

	// check if the new filename is valid and does not violate
	// any restrictions for the operating system
	for _, restriction := range namingRestrictions {
		if restriction.Regex.FindStringIndex(newName) != nil {
			return defaultDecompressionName
		}
	}

	return newName
}
