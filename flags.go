// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package gunzip

import "strings"

// Method is the compression method stored in the third header byte.
type Method uint8

// MethodDeflate is the only compression method defined for gzip.
const MethodDeflate Method = 8

// Flags is the bitset stored in the fourth header byte.
type Flags uint8

const (
	// FlagText marks the payload as probably ASCII text. It has no effect on decoding.
	FlagText Flags = 1 << iota

	// FlagMultipart marks a member that continues in another member. RFC 1952 assigns
	// this bit to FHCRC; both variants are rejected.
	FlagMultipart

	// FlagExtra marks the presence of the extra field.
	FlagExtra

	// FlagName marks the presence of the zero-terminated original file name.
	FlagName

	// FlagComment marks the presence of the zero-terminated file comment.
	FlagComment
)

// flagsReserved are the bits without a defined meaning.
const flagsReserved Flags = 0xe0

// Has returns true if all bits of f are set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Reserved returns the reserved bits that are set.
func (fl Flags) Reserved() Flags {
	return fl & flagsReserved
}

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagText, "FTEXT"},
	{FlagMultipart, "FMULTIPART"},
	{FlagExtra, "FEXTRA"},
	{FlagName, "FNAME"},
	{FlagComment, "FCOMMENT"},
}

// String returns the names of the set flags joined by "|".
func (fl Flags) String() string {
	if fl == 0 {
		return "none"
	}
	var names []string
	for _, fn := range flagNames {
		if fl.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	if r := fl.Reserved(); r != 0 {
		names = append(names, "reserved")
	}
	return strings.Join(names, "|")
}
