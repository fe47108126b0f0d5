package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	want := strings.Join([]string{"      ", "      ", "      "}, "\n")
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 2)

	tests := []struct {
		name string
		x, y int
		set  bool
	}{
		{"inside", 1, 1, true},
		{"left", -1, 0, false},
		{"right", 4, 0, false},
		{"above", 0, -1, false},
		{"below", 0, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Clear()
			s.Set(tt.x, tt.y, 'x')
			got := strings.Contains(s.String(), "x")
			if got != tt.set {
				t.Errorf("set at (%d, %d) visible = %v, want %v", tt.x, tt.y, got, tt.set)
			}
			if tt.set && s.Get(tt.x, tt.y) != 'x' {
				t.Errorf("Get(%d, %d) = %q", tt.x, tt.y, s.Get(tt.x, tt.y))
			}
			if !tt.set && s.Get(tt.x, tt.y) != ' ' {
				t.Errorf("out of bounds Get should return a space")
			}
		})
	}
}

func TestScreenDrawTextClipsAndCountsRunes(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColored(2, 0, "♥♥♥♥♥", ColorLife)

	if got := s.String(); got != "  ♥♥♥♥" {
		t.Errorf("String() = %q", got)
	}
	if c := s.GetCell(5, 0); c.Color != ColorLife {
		t.Errorf("cell color = %v, want %v", c.Color, ColorLife)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorCyan)

	want := strings.Join([]string{
		"╭───╮",
		"│   │",
		"╰───╯",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nwant:\n%s", got, want)
	}
	if c := s.GetCell(0, 0); c.Color != ColorCyan {
		t.Errorf("corner color = %v, want cyan", c.Color)
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "abc", ColorDefault)
	s.Resize(2, 3)

	want := strings.Join([]string{"ab", "  ", "  "}, "\n")
	if got := s.String(); got != want {
		t.Errorf("after Resize: %q, want %q", got, want)
	}

	// Same size is a no-op.
	s.Resize(2, 3)
	if s.Get(1, 0) != 'b' {
		t.Error("same-size Resize should keep content")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(2, 1, '$', ColorYellow)

	cell := s.GetCell(2, 1)
	if cell.Rune != '$' || cell.Color != ColorYellow {
		t.Errorf("GetCell(2, 1) = %+v, expected '$' in yellow", cell)
	}

	// Plain Set resets color to default
	s.Set(2, 1, 'x')
	if c := s.GetCell(2, 1); c.Color != ColorDefault {
		t.Errorf("Set should use default color, got %v", c.Color)
	}

	s.DrawRectColored(NewRect(0, 0, 2, 2), '#', ColorRed)
	if c := s.GetCell(1, 1); c.Rune != '#' || c.Color != ColorRed {
		t.Errorf("DrawRectColored cell = %+v", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear should reset colored cells, got %+v", c)
	}

	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Errorf("Out of bounds GetCell should be blank, got %+v", c)
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, "default"},
		{ColorHero, "bright-green"},
		{ColorGround, "orange"},
		{ColorGray, "gray"},
		{Color(200), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Color(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
