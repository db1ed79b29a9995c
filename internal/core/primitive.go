package core

// Shape tags the variant held by a Primitive.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeText
)

// Role is the semantic color role of a primitive; hosts pick the actual color.
type Role int

const (
	RoleBoard Role = iota
	RoleBody
	RoleHead
	RoleApple
	RoleHUD
	RoleBanner
)

func (r Role) String() string {
	switch r {
	case RoleBoard:
		return "board"
	case RoleBody:
		return "body"
	case RoleHead:
		return "head"
	case RoleApple:
		return "apple"
	case RoleHUD:
		return "hud"
	case RoleBanner:
		return "banner"
	default:
		return "unknown"
	}
}

// Anchor says where a text primitive is laid out by the host.
type Anchor int

const (
	AnchorTop    Anchor = iota // HUD line above the board
	AnchorCenter               // Centered banner over the board
)

// Primitive is a single draw instruction. Only the field matching Shape is meaningful.
type Primitive struct {
	Shape  Shape
	Role   Role
	Rect   Rect     // ShapeRect
	Circle Circle   // ShapeCircle
	Lines  []string // ShapeText
	Anchor Anchor   // ShapeText
}

// RectPrimitive builds a rectangle primitive.
func RectPrimitive(r Rect, role Role) Primitive {
	return Primitive{Shape: ShapeRect, Role: role, Rect: r}
}

// CirclePrimitive builds a circle primitive.
func CirclePrimitive(c Circle, role Role) Primitive {
	return Primitive{Shape: ShapeCircle, Role: role, Circle: c}
}

// TextPrimitive builds a text primitive.
func TextPrimitive(anchor Anchor, role Role, lines ...string) Primitive {
	return Primitive{Shape: ShapeText, Role: role, Anchor: anchor, Lines: lines}
}

// Equal reports whether two primitives describe the same draw instruction.
func (p Primitive) Equal(o Primitive) bool {
	if p.Shape != o.Shape || p.Role != o.Role {
		return false
	}
	switch p.Shape {
	case ShapeRect:
		return p.Rect == o.Rect
	case ShapeCircle:
		return p.Circle == o.Circle
	case ShapeText:
		if p.Anchor != o.Anchor || len(p.Lines) != len(o.Lines) {
			return false
		}
		for i := range p.Lines {
			if p.Lines[i] != o.Lines[i] {
				return false
			}
		}
		return true
	}
	return false
}
