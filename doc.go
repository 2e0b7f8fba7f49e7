// Package okulus renders bitmaps clipped to rounded rectangles or circles,
// with an optional border, drop shadow and press-feedback overlay.
//
// # Overview
//
// okulus is the rendering core of a shaped image view. A host UI layer
// owns the canvas and the pointer events; okulus computes the layout and
// composites the layers into whatever draw.Image the host hands it.
//
// # Quick Start
//
//	style, _ := okulus.NewStyle(
//	    okulus.WithFullCircle(),
//	    okulus.WithBorder(3, okulus.White),
//	    okulus.WithShadow(2, okulus.DefaultShadowColor),
//	)
//
//	v, _ := okulus.NewView(okulus.WithStyle(style))
//	v.SetBounds(okulus.XYWH(0, 0, 256, 256))
//	v.SetImage(photo)
//
//	canvas := image.NewRGBA(image.Rect(0, 0, 256, 256))
//	v.Draw(canvas)
//
// # Architecture
//
//   - ComputeTransform maps a bitmap into a rectangle under a ScalePolicy.
//   - BuildGeometry derives border, shadow and image rectangles and the
//     bitmap transform from bounds, style and bitmap size.
//   - TouchOverlay is the pressed/idle state machine behind the overlay.
//   - Render draws shadow, image, border and overlay in that order.
//   - View ties them together behind the host-facing API.
//
// # Coordinate System
//
// Device pixels, origin at top-left, X right, Y down. Rect edges Right and
// Bottom are exclusive.
//
// # Threading
//
// Everything runs synchronously on the caller's goroutine. Only SetLogger
// is safe for concurrent use.
package okulus
