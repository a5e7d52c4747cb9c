// Package numeric defines the scalar kinds of the point-field family and
// their order-preserving fixed-width codec.
//
// A Value is a tagged, allocation-free numeric scalar. Encode/Decode map
// values to byte sequences whose unsigned lexicographic order matches the
// numeric order of the source values, which is what makes encoded points
// range-searchable by a plain byte-comparing index.
package numeric
