package world

// RoomSpec describes a carved room by its center and size.
type RoomSpec struct {
	Center Point
	Size   Size
}

// Origin returns the top-left corner of the room's rectangle. For even
// sizes the extra cell falls on the higher-index side of the center.
func (r RoomSpec) Origin() Point {
	return Point{
		X: r.Center.X - r.Size.Width/2,
		Y: r.Center.Y - r.Size.Height/2,
	}
}

// Contains returns true if the given point is inside the room.
func (r RoomSpec) Contains(p Point) bool {
	o := r.Origin()
	return p.X >= o.X && p.X < o.X+r.Size.Width && p.Y >= o.Y && p.Y < o.Y+r.Size.Height
}

// clampRoomCenter moves center so a room of the given size stays clear of
// the border.
func clampRoomCenter(center Point, size Size, gridWidth, gridHeight int) Point {
	halfWidth := size.Width / 2
	halfHeight := size.Height / 2
	return Point{
		X: clamp(center.X, halfWidth+1, gridWidth-halfWidth-2),
		Y: clamp(center.Y, halfHeight+1, gridHeight-halfHeight-2),
	}
}
