// Package mimeversion implements the MIME-Version header field described in
// RFC 2045 section 4. A Version is a pair of small integers written on the
// wire as "<major>.<minor>", almost always "1.0":
//
//	MIME-Version: 1.0
//
// Version satisfies header.Typed and *Version satisfies
// header.TypedParser[Version], so it can be read from and written to a
// header.Header with header.GetTyped and header.SetTyped, or with the Get and
// Set helpers here. The package registers itself with header.Register on
// import so that header.ParseNamed can find it by field name.
package mimeversion
