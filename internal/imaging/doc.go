// Package imaging prepares source images for an overlay.
//
// It loads and caches images, fits them to an overlay viewport, darkens
// them so annotations stand out, and derives simple color labels that can
// be shown with a label graphic.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Rectangles include their
// Min corner and exclude their Max corner, as image.Rectangle does.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The other functions are stateless
// and never modify their input image.
package imaging
