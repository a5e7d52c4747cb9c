// Package index defines the point-query surface of the underlying range
// search index and provides an in-memory implementation for tests and
// embedded use.
//
// The real index structure (BKD tree construction, compression, disk layout)
// is an external collaborator; this package only fixes the contract the
// query layer builds against: exact, range and set queries over encoded
// points.
package index

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
)

// Query is an executable point query. Execution yields the matching doc IDs
// as a bitmap. The returned bitmap is owned by the caller.
type Query interface {
	// Field returns the field the query runs against.
	Field() string
	// Execute runs the query.
	Execute(ctx context.Context) (*roaring.Bitmap, error)
	// String returns a readable description for logs and error messages.
	String() string
}

// Factory constructs queries over encoded points. Encoded byte slices must
// be the order-preserving fixed-width form produced by the numeric codec;
// the factory compares them byte-wise and never decodes.
type Factory interface {
	// NewExactQuery matches documents whose encoded value equals encoded.
	NewExactQuery(field string, encoded []byte) Query
	// NewRangeQuery matches the closed interval [lowEncoded, highEncoded].
	// An interval with lowEncoded > highEncoded is legal and matches nothing.
	NewRangeQuery(field string, lowEncoded, highEncoded []byte) Query
	// NewSetQuery matches documents whose encoded value equals any member.
	NewSetQuery(field string, encoded [][]byte) Query
}
