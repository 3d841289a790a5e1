package layout

import "testing"

func TestRect_Edges(t *testing.T) {
	type tc struct {
		rect   Rect
		right  int
		bottom int
		empty  bool
	}

	tests := map[string]tc{
		"placed item": {
			rect:   NewRect(95, 10, 80, 30),
			right:  175,
			bottom: 40,
		},
		"zero size": {
			rect:   NewRect(10, 10, 0, 0),
			right:  10,
			bottom: 10,
			empty:  true,
		},
		"negative width": {
			rect:   NewRect(10, 10, -5, 20),
			right:  5,
			bottom: 30,
			empty:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
			if got := tt.rect.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestRect_Intersects(t *testing.T) {
	type tc struct {
		a, b Rect
		want bool
	}

	tests := map[string]tc{
		"overlapping": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: true,
		},
		"touching edges": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
			want: false,
		},
		"separated by margin": {
			a:    NewRect(10, 10, 80, 30),
			b:    NewRect(95, 10, 80, 30),
			want: false,
		},
		"contained": {
			a:    NewRect(0, 0, 100, 100),
			b:    NewRect(10, 10, 5, 5),
			want: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPoint_In(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	if !(Point{X: 10, Y: 10}).In(r) {
		t.Error("top-left corner should be inside")
	}
	if (Point{X: 30, Y: 10}).In(r) {
		t.Error("right edge should be outside")
	}
	if got := (Point{X: 1, Y: 2}).Add(Point{X: 3, Y: 4}); got != (Point{X: 4, Y: 6}) {
		t.Errorf("Add() = %v, want {4 6}", got)
	}
}

func TestSize_IsUnmeasured(t *testing.T) {
	type tc struct {
		size Size
		want bool
	}

	tests := map[string]tc{
		"zero":            {size: Size{}, want: true},
		"one by one":      {size: Size{Width: 1, Height: 1}, want: true},
		"only width set":  {size: Size{Width: 200, Height: 1}, want: true},
		"only height set": {size: Size{Width: 0, Height: 200}, want: true},
		"measured":        {size: Size{Width: 2, Height: 2}, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.size.IsUnmeasured(); got != tt.want {
				t.Errorf("IsUnmeasured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSize_Constraints(t *testing.T) {
	type tc struct {
		size    Size
		minSize Size
		maxSize Size
		want    Size
	}

	tests := map[string]tc{
		"within range": {
			size:    Size{Width: 50, Height: 50},
			minSize: Size{Width: 10, Height: 10},
			maxSize: Size{Width: 100, Height: 100},
			want:    Size{Width: 50, Height: 50},
		},
		"above max": {
			size:    Size{Width: 150, Height: 50},
			maxSize: Size{Width: 100, Height: 100},
			want:    Size{Width: 100, Height: 50},
		},
		"below min": {
			size:    Size{Width: 5, Height: 50},
			minSize: Size{Width: 10, Height: 60},
			want:    Size{Width: 10, Height: 60},
		},
		"zero max is unbounded": {
			size:    Size{Width: 500, Height: 500},
			maxSize: Size{Width: 0, Height: 100},
			want:    Size{Width: 500, Height: 100},
		},
		"min wins over max": {
			size:    Size{Width: 50, Height: 50},
			minSize: Size{Width: 80, Height: 0},
			maxSize: Size{Width: 60, Height: 0},
			want:    Size{Width: 80, Height: 50},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.size.AtMost(tt.maxSize).AtLeast(tt.minSize)
			if got != tt.want {
				t.Errorf("AtMost().AtLeast() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
