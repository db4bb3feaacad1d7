// Package header holds an email message header: an ordered list of fields,
// looked up by case-insensitive name, that round-trips the original bytes when
// nothing has been changed.
//
// Low-level access goes through Base and the field.Field objects it stores.
// Most code will want Header instead, which adds string accessors and typed
// accessors. A typed header value is any type implementing Typed (to name and
// format itself) and, through a pointer, TypedParser (to parse itself from the
// Raw occurrences of its field). GetTyped and SetTyped move those values in
// and out of a Header and cache the parsed result.
package header
