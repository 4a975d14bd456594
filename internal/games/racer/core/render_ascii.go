package core

import "strings"

// RenderASCII draws the track and a path as text, one character per grid point.
// It is used by the headless replay command and by tests.
//
// Format:
//   - '.' off course, ':' on course
//   - '=' start line cell
//   - 'o' earlier path position, '@' current position
//
// The drawing covers the track and the path with a one-point margin.
func RenderASCII(t Track, path []GridPos) string {
	var tl, br GridPos
	switch {
	case len(t.Outer) > 0:
		tl, br = t.Bounds()
	case len(path) > 0:
		tl, br = path[0], path[0]
	default:
		return ""
	}
	for _, p := range path {
		tl.X, tl.Y = min(tl.X, p.X), min(tl.Y, p.Y)
		br.X, br.Y = max(br.X, p.X), max(br.Y, p.Y)
	}
	tl = tl.Sub(Pos(1, 1))
	br = br.Add(Pos(1, 1))

	marks := make(map[GridPos]rune, len(t.Start)+len(path))
	for _, s := range t.Start {
		marks[s] = '='
	}
	for i, p := range path {
		if i == len(path)-1 {
			marks[p] = '@'
		} else {
			marks[p] = 'o'
		}
	}

	var sb strings.Builder
	for y := tl.Y; y <= br.Y; y++ {
		if y > tl.Y {
			sb.WriteByte('\n')
		}
		for x := tl.X; x <= br.X; x++ {
			p := GridPos{X: x, Y: y}
			if r, ok := marks[p]; ok {
				sb.WriteRune(r)
				continue
			}
			if t.OnCourse(p) {
				sb.WriteByte(':')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
