// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides drawing operations for 2D graphics.

The PaintOp operation fills a rectangle with the current material,
taking the current transformation into account. The material is set by
a ColorOp.

The LabelOp operation draws a single line of text with its top-left
corner at the current origin, in the current material.
*/
package paint
