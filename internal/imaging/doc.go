// Package imaging turns encoded image bytes into the flat brightness buffer
// consumed by the ASCII converter.
//
// The package covers three steps of the pipeline:
//
//   - Loading: decoding PNG, JPEG, GIF, BMP, TIFF and WebP payloads from raw
//     bytes, data URIs or files, and reporting basic metadata.
//   - Cropping: extracting a rectangular Region before conversion.
//   - Downsampling: resizing to exactly cols x rows with nearest-neighbor
//     sampling, flattening transparency onto an opaque background, converting
//     to single-channel luminance and extracting the raw pixels.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with the origin at the
// top-left corner. For regions, (X1,Y1) is inclusive and (X2,Y2) is exclusive.
//
// # Buffer Layout
//
// Downsample returns a row-major []uint8 of length rows*cols. Pixel (x, y) of
// the resized image lives at index y*cols + x. A buffer of any other length is
// reported as ErrUnexpectedBufferSize and never truncated or padded.
//
// # Thread Safety
//
// All functions are stateless and safe to call concurrently. Each call works
// on its own buffers.
package imaging
