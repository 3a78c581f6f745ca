// SPDX-License-Identifier: Unlicense OR MIT

package opconst

type OpType byte

// Start at a high number for easier debugging.
const firstOpIndex = 200

const (
	TypeMacro OpType = iota + firstOpIndex
	TypeCall
	TypeTransform
	TypePopTransform
	TypeColor
	TypePaint
	TypeLabel
)

const (
	TypeMacroLen        = 1 + 4 + 4
	TypeCallLen         = 1 + 4 + 4 + 4 + 4
	TypeTransformLen    = 1 + 1 + 4 + 4
	TypePopTransformLen = 1
	TypeColorLen        = 1 + 4
	TypePaintLen        = 1 + 4*4
	TypeLabelLen        = 1
)

func (t OpType) Size() int {
	return [...]int{
		TypeMacroLen,
		TypeCallLen,
		TypeTransformLen,
		TypePopTransformLen,
		TypeColorLen,
		TypePaintLen,
		TypeLabelLen,
	}[t-firstOpIndex]
}

func (t OpType) NumRefs() int {
	switch t {
	case TypeCall, TypeLabel:
		return 1
	default:
		return 0
	}
}

func (t OpType) String() string {
	switch t {
	case TypeMacro:
		return "Macro"
	case TypeCall:
		return "Call"
	case TypeTransform:
		return "Transform"
	case TypePopTransform:
		return "PopTransform"
	case TypeColor:
		return "Color"
	case TypePaint:
		return "Paint"
	case TypeLabel:
		return "Label"
	default:
		panic("unknown OpType")
	}
}
