// Package form decodes buffered request bodies into structured parameter
// sources: a multi-valued field map and a file map for uploads.
//
// Two content types are understood, application/x-www-form-urlencoded and
// multipart/form-data. Anything else decodes to empty results, leaving
// interpretation to the handler. The whole body is buffered in memory;
// uploads are not streamed to disk.
//
// Decoding is deliberately tolerant: individual multipart parts that lack a
// header/content divider are skipped, and URL-encoded pairs that fail
// percent-decoding keep their raw bytes. The only fatal condition is a
// multipart content type without a boundary parameter (ErrMalformedBody),
// because such a body cannot be split at all.
package form
