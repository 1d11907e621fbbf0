package raster

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestDescribe_GoMono(t *testing.T) {
	desc, err := Describe(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if desc.Family == "" {
		t.Error("empty family name")
	}
	if desc.Bold || desc.Italic {
		t.Errorf("aspect = %+v, want regular", desc)
	}
	if !desc.Matches(StyleRegular) {
		t.Error("regular font does not match StyleRegular")
	}
	if desc.Matches(StyleBold) || desc.Matches(StyleItalic) || desc.Matches(StyleBoldItalic) {
		t.Error("regular font matches a styled request")
	}
}

func TestDescribe_Invalid(t *testing.T) {
	if _, err := Describe([]byte("junk")); !errors.Is(err, ErrInvalidFontData) {
		t.Fatalf("err = %v, want ErrInvalidFontData", err)
	}
}

func TestDescriptionMatches(t *testing.T) {
	cases := []struct {
		desc  Description
		style Style
		want  bool
	}{
		{Description{Bold: true}, StyleBold, true},
		{Description{Bold: true}, StyleRegular, false},
		{Description{Italic: true}, StyleItalic, true},
		{Description{Bold: true, Italic: true}, StyleBoldItalic, true},
		{Description{Bold: true, Italic: true}, StyleBold, false},
	}
	for _, c := range cases {
		if got := c.desc.Matches(c.style); got != c.want {
			t.Errorf("%+v Matches(%s) = %v, want %v", c.desc, c.style, got, c.want)
		}
	}
}

func TestFallback(t *testing.T) {
	face, err := Fallback(14, StyleRegular)
	if err != nil {
		t.Fatal(err)
	}
	if face.Size() != 14 {
		t.Errorf("Size = %v, want 14", face.Size())
	}
	desc, err := Describe(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if desc.Family != FallbackFamilyName {
		t.Errorf("fallback family = %q, want %q", desc.Family, FallbackFamilyName)
	}
}
