// Package store abstracts the persistence medium for serialized matrices.
//
// What:
//
//   - Store is a minimal named-blob interface: Load and Save by name.
//   - FileStore keeps blobs as plain files under a base directory.
//   - S3Store keeps blobs as objects in an S3 bucket (aws-sdk-go), with a
//     small LRU memo of recently loaded objects.
//
// Why:
//
//   - The codec package only understands the text format; where the bytes
//     live (local disk, object storage) is a separate concern, swapped by
//     handing a different Store to codec.Load / codec.Save.
//
// Errors:
//
//   - Every backend failure is wrapped with ErrStorage, so callers can tell
//     storage-access failures apart from codec.ErrFormat via errors.Is.
package store
