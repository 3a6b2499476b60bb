// Package graphic defines the annotations drawn on top of an image overlay.
//
// A Graphic draws itself onto a Canvas once per frame. The package ships
// three graphics:
//
//   - TextGraphic: one recognized word, its bounding box and its text
//   - LabelGraphic: a list of image labels stacked upward from the viewport anchor
//   - DetectionGraphic: object boxes with captions fitted to the box width
//
// Graphics hold a non-owning reference to their Overlay for viewport size
// queries. Drawing only reads stored detection data; the only side effect is
// on the canvas.
//
// # Coordinates
//
// All rectangles are in overlay (viewport) pixels. Mapping from source image
// space is done by the overlay before a graphic is constructed.
//
// # Errors
//
// Drawing a TextGraphic without a word returns an error wrapping
// ErrInvalidState. The compositor treats it as fatal for the frame.
package graphic
