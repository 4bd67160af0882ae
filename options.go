package clipper2

import (
	clipper "github.com/ctessum/go.clipper"
)

// ClipType selects which boolean set operation the engine performs.
type ClipType int

const (
	ClipIntersection ClipType = iota
	ClipUnion
	ClipDifference
	ClipXor
)

func (ct ClipType) toClipper() clipper.ClipType {
	switch ct {
	case ClipUnion:
		return clipper.CtUnion
	case ClipDifference:
		return clipper.CtDifference
	case ClipXor:
		return clipper.CtXor
	}
	return clipper.CtIntersection
}

// FillRule is the winding convention that decides which regions a contour
// encloses.
type FillRule int

const (
	EvenOdd FillRule = iota
	NonZero
	Positive
	Negative
)

func (fr FillRule) toClipper() clipper.PolyFillType {
	switch fr {
	case NonZero:
		return clipper.PftNonZero
	case Positive:
		return clipper.PftPositive
	case Negative:
		return clipper.PftNegative
	}
	return clipper.PftEvenOdd
}

// JoinType sets how corners are joined when inflating paths.
type JoinType int

const (
	JoinSquare JoinType = iota
	JoinRound
	JoinMiter
)

func (jt JoinType) toClipper() clipper.JoinType {
	switch jt {
	case JoinRound:
		return clipper.JtRound
	case JoinMiter:
		return clipper.JtMiter
	}
	return clipper.JtSquare
}

// EndType sets how path ends are capped when inflating paths.
type EndType int

const (
	EndClosedPolygon EndType = iota
	EndClosedLine
	EndOpenButt
	EndOpenSquare
	EndOpenRound
)

func (et EndType) toClipper() clipper.EndType {
	switch et {
	case EndClosedLine:
		return clipper.EtClosedLine
	case EndOpenButt:
		return clipper.EtOpenButt
	case EndOpenSquare:
		return clipper.EtOpenSquare
	case EndOpenRound:
		return clipper.EtOpenRound
	}
	return clipper.EtClosedPolygon
}
