package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"docx-export-api/resume/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Line
	}{
		{"", Line{Kind: Paragraph}},
		{"   ", Line{Kind: Paragraph}},
		{"item two", Line{Kind: Paragraph, Runs: []model.Run{{Text: "item two"}}}},
		{"- item one", Line{Kind: Bullet, Runs: []model.Run{{Text: "item one"}}}},
		{"* item", Line{Kind: Bullet, Runs: []model.Run{{Text: "item"}}}},
		{"• item", Line{Kind: Bullet, Runs: []model.Run{{Text: "item"}}}},
		{"  - indented", Line{Kind: Bullet, Runs: []model.Run{{Text: "indented"}}}},
		{"- Led **5** engineers", Line{Kind: Bullet, Runs: []model.Run{
			{Text: "Led "}, {Text: "5", Bold: true}, {Text: " engineers"},
		}}},
		{"-item", Line{Kind: Paragraph, Runs: []model.Run{{Text: "-item"}}}},
		{"*Remote* role", Line{Kind: Paragraph, Runs: []model.Run{
			{Text: "Remote", Italic: true}, {Text: " role"},
		}}},
		{"## Notable Projects", Line{Kind: SubHeading, Runs: []model.Run{{Text: "Notable Projects"}}}},
		{"## **Styled** heading", Line{Kind: SubHeading, Runs: []model.Run{{Text: "**Styled** heading"}}}},
		{"##", Line{Kind: Paragraph, Runs: []model.Run{{Text: "##"}}}},
	}

	for _, tt := range tests {
		got := Classify(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("Classify(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestClassifySubHeadingDropsMarker(t *testing.T) {
	line := Classify("## Notable Projects")
	if line.Kind != SubHeading {
		t.Fatalf("expected sub-heading, got %s", line.Kind)
	}
	if line.Text() != "Notable Projects" {
		t.Fatalf("unexpected text %q", line.Text())
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  \n ", nil},
		{"- item one\nitem two", []string{"- item one", "item two"}},
		{"\n\na\n\nb\n", []string{"a", "", "b"}},
		{"a\r\nb", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, SplitLines(tt.in)); diff != "" {
			t.Fatalf("SplitLines(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
