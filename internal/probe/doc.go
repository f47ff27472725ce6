// Package probe opens source textures and reads their headers.
//
// Decoders are chosen by file extension rather than by sniffing magic bytes:
// TGA has no reliable signature, so content sniffing could hand a PNG to the
// TGA decoder or the other way round. Supported extensions are tga, png, bmp
// and tif.
//
// Orientation is whatever the format decoder applies. TGA stores its origin
// corner in the image descriptor and the decoder flips accordingly; the other
// formats have a fixed top-left origin.
package probe
